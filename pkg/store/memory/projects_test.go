package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powerwestjava/solar-atlas/pkg/models/domain"
)

func TestProjectStore_ListSeeded(t *testing.T) {
	store := NewProjectStore()

	projects, err := store.ListProjects(context.Background())

	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.Equal(t, "SMA 1 Bandung", projects[0].Name)
	assert.Equal(t, domain.DistrictBandung, projects[0].District)
	assert.Equal(t, 100_000_000.0, projects[0].TargetIDR)
	assert.Equal(t, 45_000_000.0, projects[0].RaisedIDR)
}

func TestProjectStore_RecordInvestment(t *testing.T) {
	store := NewProjectStore()
	ctx := context.Background()

	inv, proj, err := store.RecordInvestment(ctx, 2, 5_000_000)

	require.NoError(t, err)
	assert.NotEmpty(t, inv.ID)
	assert.Equal(t, 2, inv.ProjectID)
	assert.Equal(t, 5_000_000.0, inv.AmountIDR)
	assert.False(t, inv.CreatedAt.IsZero())
	assert.Equal(t, 17_000_000.0, proj.RaisedIDR)

	// The mutation is visible in subsequent listings.
	projects, err := store.ListProjects(ctx)
	require.NoError(t, err)
	assert.Equal(t, 17_000_000.0, projects[1].RaisedIDR)

	ledger, err := store.Investments(ctx)
	require.NoError(t, err)
	require.Len(t, ledger, 1)
	assert.Equal(t, inv, ledger[0])
}

func TestProjectStore_UnknownProject(t *testing.T) {
	store := NewProjectStore()

	_, _, err := store.RecordInvestment(context.Background(), 99, 1_000_000)

	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestProjectStore_ListReturnsCopy(t *testing.T) {
	store := NewProjectStore()
	ctx := context.Background()

	projects, err := store.ListProjects(ctx)
	require.NoError(t, err)
	projects[0].RaisedIDR = 0

	again, err := store.ListProjects(ctx)
	require.NoError(t, err)
	assert.Equal(t, 45_000_000.0, again[0].RaisedIDR)
}
