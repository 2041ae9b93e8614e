// Package estimate sizes a rooftop solar system from a monthly electricity
// bill and site parameters, and derives cost, savings, payback and CO2
// figures from static West Java assumption tables. The pipeline is a pure
// function: same input, same output, no I/O.
package estimate

import (
	"math"

	"github.com/powerwestjava/solar-atlas/pkg/models/domain"
)

// Estimate runs the full sizing and financial pipeline. It is total for
// well-formed input; callers validate that the bill is a finite positive
// number and that every enum field is a member of its set before invoking.
func Estimate(in domain.EstimateInput) domain.EstimateResult {
	tariff := TariffIDRPerKwh(in.UserType)
	region := Regional(in.District)
	shading := ShadingFactor(in.Shading)
	roofMax := MaxRoofKwp(in.RoofSize)

	monthlyKwh := in.MonthlyBillIDR / tariff

	yieldPerKwpPerMonth := region.PeakSunHoursPerDay * daysPerMonth * PerformanceRatio * shading
	desiredOffsetKwh := monthlyKwh * TargetOffsetFraction(in.UserType)

	recommendedKwp := desiredOffsetKwh / yieldPerKwpPerMonth
	if math.IsNaN(recommendedKwp) || math.IsInf(recommendedKwp, 0) || recommendedKwp <= 0 {
		recommendedKwp = MinSystemKwp
	}

	// The roof capacity ceiling always wins over the formula recommendation.
	systemKwp := clamp(recommendedKwp, MinSystemKwp, roofMax)

	panels := int(math.Ceil(systemKwp * 1000 / PanelWattage))
	if panels < 1 {
		panels = 1
	}

	annualKwh := systemKwp * region.PeakSunHoursPerDay * 365 * PerformanceRatio * shading
	monthlySavings := annualKwh / 12 * tariff

	capex := systemKwp * region.CapitalCostPerKwp * (1 - in.GrantCoveragePct/100)

	var payback *float64
	if annualSavings := monthlySavings * 12; annualSavings > 0 {
		years := capex / annualSavings
		payback = &years
	}

	result := domain.EstimateResult{
		SystemSizeKwp:     systemKwp,
		PanelCount:        panels,
		CapitalCostIDR:    capex,
		MonthlySavingsIDR: monthlySavings,
		AnnualEnergyKwh:   annualKwh,
		BillReductionPct:  clamp(monthlySavings/in.MonthlyBillIDR*100, 0, 100),
		AnnualCO2Kg:       annualKwh * CO2KgPerKwh,
		PaybackYears:      payback,
	}

	if in.Financing == domain.FinancingCommunity {
		result.GreenFeeIDR = monthlySavings * (1 - CommunityNetRate)
		result.NetSavingsIDR = monthlySavings * CommunityNetRate
		result.UpfrontCostIDR = 0
	} else {
		result.GreenFeeIDR = 0
		result.NetSavingsIDR = monthlySavings
		result.UpfrontCostIDR = capex
	}

	result.Explanation = explain(in, result)
	return result
}

func clamp(n, min, max float64) float64 {
	return math.Max(min, math.Min(max, n))
}
