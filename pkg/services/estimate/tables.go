package estimate

import "github.com/powerwestjava/solar-atlas/pkg/models/domain"

const (
	// PerformanceRatio is the cumulative system loss factor (inverter,
	// wiring, temperature). Lower bound of the usual 0.75-0.85 band.
	PerformanceRatio = 0.75

	// PanelWattage is the nameplate wattage assumed per panel.
	PanelWattage = 350

	// CO2KgPerKwh is the grid emission factor for displaced energy.
	CO2KgPerKwh = 0.85

	// CommunityNetRate is the share of gross savings kept by the recipient
	// under community financing; the remainder is the green fee.
	CommunityNetRate = 0.7

	// MinSystemKwp is the smallest system the calculator will recommend.
	MinSystemKwp = 0.1

	daysPerMonth = 365.0 / 12.0
)

// Regional returns the sizing assumptions for a district. The District type
// is closed, so the switch is exhaustive.
func Regional(d domain.District) domain.RegionalConstants {
	switch d {
	case domain.DistrictBekasi:
		return domain.RegionalConstants{PeakSunHoursPerDay: 4.8, CapitalCostPerKwp: 20_000_000}
	case domain.DistrictBogor:
		return domain.RegionalConstants{PeakSunHoursPerDay: 4.6, CapitalCostPerKwp: 17_500_000}
	case domain.DistrictCirebon:
		return domain.RegionalConstants{PeakSunHoursPerDay: 4.9, CapitalCostPerKwp: 17_500_000}
	default:
		return domain.RegionalConstants{PeakSunHoursPerDay: 4.5, CapitalCostPerKwp: 16_500_000}
	}
}

// TariffIDRPerKwh returns the electricity tariff used to convert a bill into
// consumption. Schools pay the PLN social tariff; households and MSMEs the
// standard residential/business rate.
func TariffIDRPerKwh(u domain.UserType) float64 {
	if u == domain.UserTypeSchool {
		return 900
	}
	return 1444.70
}

// TargetOffsetFraction is the intentionally partial share of consumption the
// system is sized to cover, reflecting budget and export-limit realities.
func TargetOffsetFraction(u domain.UserType) float64 {
	switch u {
	case domain.UserTypeHousehold:
		return 0.4
	case domain.UserTypeMSME:
		return 0.5
	default:
		return 0.3
	}
}

// ShadingFactor scales expected output for site shading.
func ShadingFactor(s domain.Shading) float64 {
	switch s {
	case domain.ShadingMedium:
		return 0.85
	case domain.ShadingHeavy:
		return 0.7
	default:
		return 1.0
	}
}

// MaxRoofKwp bounds the installable capacity for a roof size class.
func MaxRoofKwp(r domain.RoofSize) float64 {
	switch r {
	case domain.RoofSizeSmall:
		return 1
	case domain.RoofSizeLarge:
		return 10
	default:
		return 3
	}
}
