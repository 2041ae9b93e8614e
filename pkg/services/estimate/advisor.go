package estimate

import (
	"fmt"
	"math"
	"strconv"

	"github.com/powerwestjava/solar-atlas/pkg/models/domain"
)

// explain renders the deterministic rationale for a computed estimate. It is
// a pure formatting function over the already-computed numbers, kept apart
// from the sizing pipeline so numeric correctness can be tested without
// wording.
func explain(in domain.EstimateInput, r domain.EstimateResult) domain.Explanation {
	region := Regional(in.District)

	rationale := fmt.Sprintf(
		"We estimated a %.1f kWp system because your monthly bill of %s suggests that size will meaningfully offset consumption. "+
			"Using a typical panel of %dW and average sun hours for %s (%.1f h/day), the system should produce about %s kWh/year.",
		r.SystemSizeKwp, formatIDR(in.MonthlyBillIDR), PanelWattage, in.District, region.PeakSunHoursPerDay,
		groupThousands(math.Round(r.AnnualEnergyKwh)),
	)

	summary := fmt.Sprintf(
		"Estimated production %s kWh/year - roughly offsetting %.0f%% of your current bill (approx).",
		groupThousands(math.Round(r.AnnualEnergyKwh)), r.BillReductionPct,
	)

	assumptions := []string{
		fmt.Sprintf("Panel power ~ %d W (mono-crystalline)", PanelWattage),
		fmt.Sprintf("Performance ratio (losses) ~ %.0f%%", PerformanceRatio*100),
		fmt.Sprintf("Average peak sun hours ~ %.1f h/day for %s", region.PeakSunHoursPerDay, in.District),
		"No major shading on the array area",
		"Roof is structurally suitable for the estimated array",
	}

	checklist := []string{
		"Get a site survey (shading & roof strength)",
		"Confirm desired backup requirements (battery sizing) with stakeholders",
		"Obtain at least 2 installer quotes including BOM (panels, inverter, mounting)",
		"Check local subsidies or incentives that may reduce upfront cost",
	}

	placement := domain.Placement{
		RecommendedMount: "roof-mounted",
		Tilt:             "~ latitude of location (adjust with installer)",
		Orientation:      "orient to maximize sun exposure; installer will advise exact azimuth",
		Note:             "Avoid shading from trees and nearby structures during peak sun hours",
	}

	optimizations := []string{
		"Consider phased installation to spread CAPEX if budget constrained",
		"Use string inverters for smaller systems, hybrid or split inverters for battery-ready setups",
		"Negotiate a panel warranty and performance guarantee with suppliers",
	}

	return domain.Explanation{
		Rationale:     rationale,
		Summary:       summary,
		Assumptions:   assumptions,
		Checklist:     checklist,
		Placement:     placement,
		Optimizations: optimizations,
	}
}

func formatIDR(n float64) string {
	return "Rp " + groupThousands(math.Round(n))
}

// groupThousands renders a non-negative amount with id-ID dot grouping.
func groupThousands(n float64) string {
	s := strconv.FormatFloat(n, 'f', 0, 64)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, '.')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
