package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/powerwestjava/solar-atlas/pkg/models/domain"
)

func TestExplanation_SubstitutesComputedNumbers(t *testing.T) {
	result := Estimate(schoolBandungInput(900_000))
	exp := result.Explanation

	assert.Contains(t, exp.Rationale, "2.9 kWp")
	assert.Contains(t, exp.Rationale, "Bandung")
	assert.Contains(t, exp.Rationale, "4.5 h/day")
	assert.Contains(t, exp.Rationale, "Rp 900.000")
	assert.Contains(t, exp.Rationale, "350W")

	assert.Contains(t, exp.Summary, "3.600 kWh/year")
}

func TestExplanation_FixedListsAndPlacement(t *testing.T) {
	result := Estimate(schoolBandungInput(1_500_000))
	exp := result.Explanation

	assert.Len(t, exp.Assumptions, 5)
	assert.Contains(t, exp.Assumptions[0], "350 W")
	assert.Contains(t, exp.Assumptions[1], "75%")

	assert.Len(t, exp.Checklist, 4)
	assert.Contains(t, exp.Checklist[2], "2 installer quotes")

	assert.Equal(t, "roof-mounted", exp.Placement.RecommendedMount)
	assert.NotEmpty(t, exp.Placement.Tilt)
	assert.NotEmpty(t, exp.Placement.Orientation)
	assert.NotEmpty(t, exp.Placement.Note)

	assert.Len(t, exp.Optimizations, 3)
}

func TestExplanation_DistrictAssumptionsFollowInput(t *testing.T) {
	in := domain.NewEstimateInput(
		900_000,
		domain.DistrictCirebon,
		domain.UserTypeSchool,
		domain.RoofSizeMedium,
		domain.ShadingNone,
		domain.FinancingDirect,
		0,
	)
	exp := Estimate(in).Explanation

	assert.Contains(t, exp.Rationale, "Cirebon")
	assert.Contains(t, exp.Rationale, "4.9 h/day")
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.000"},
		{48219178, "48.219.178"},
		{900000, "900.000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, groupThousands(tt.in))
	}
}
