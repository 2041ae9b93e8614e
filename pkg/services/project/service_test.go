package project

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powerwestjava/solar-atlas/pkg/models/domain"
	"github.com/powerwestjava/solar-atlas/pkg/store/memory"
)

func TestService_Invest(t *testing.T) {
	svc := NewService(memory.NewProjectStore())
	ctx := context.Background()

	inv, proj, err := svc.Invest(ctx, 1, 2_500_000)

	require.NoError(t, err)
	assert.Equal(t, 1, inv.ProjectID)
	assert.Equal(t, 47_500_000.0, proj.RaisedIDR)
}

func TestService_InvestRejectsNonPositiveAmount(t *testing.T) {
	svc := NewService(memory.NewProjectStore())
	ctx := context.Background()

	for _, amount := range []float64{0, -1_000} {
		_, _, err := svc.Invest(ctx, 1, amount)
		assert.ErrorIs(t, err, ErrInvalidAmount, "amount %v", amount)
	}

	// Rejected amounts leave the listing untouched.
	projects, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 45_000_000.0, projects[0].RaisedIDR)
}

func TestService_InvestUnknownProject(t *testing.T) {
	svc := NewService(memory.NewProjectStore())

	_, _, err := svc.Invest(context.Background(), 42, 1_000_000)

	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}
