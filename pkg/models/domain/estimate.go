package domain

import "fmt"

type District string

const (
	DistrictBandung District = "Bandung"
	DistrictBekasi  District = "Bekasi"
	DistrictBogor   District = "Bogor"
	DistrictCirebon District = "Cirebon"
)

type UserType string

const (
	UserTypeSchool    UserType = "School"
	UserTypeHousehold UserType = "Household"
	UserTypeMSME      UserType = "MSME"
)

type RoofSize string

const (
	RoofSizeSmall  RoofSize = "Small"
	RoofSizeMedium RoofSize = "Medium"
	RoofSizeLarge  RoofSize = "Large"
)

type Shading string

const (
	ShadingNone   Shading = "None"
	ShadingMedium Shading = "Medium"
	ShadingHeavy  Shading = "Heavy"
)

type FinancingMode string

const (
	FinancingDirect    FinancingMode = "Direct"
	FinancingCommunity FinancingMode = "Community"
)

func ParseDistrict(s string) (District, error) {
	switch District(s) {
	case DistrictBandung, DistrictBekasi, DistrictBogor, DistrictCirebon:
		return District(s), nil
	}
	return "", fmt.Errorf("unknown district %q", s)
}

func ParseUserType(s string) (UserType, error) {
	switch UserType(s) {
	case UserTypeSchool, UserTypeHousehold, UserTypeMSME:
		return UserType(s), nil
	}
	return "", fmt.Errorf("unknown user type %q", s)
}

func ParseRoofSize(s string) (RoofSize, error) {
	switch RoofSize(s) {
	case RoofSizeSmall, RoofSizeMedium, RoofSizeLarge:
		return RoofSize(s), nil
	}
	return "", fmt.Errorf("unknown roof size %q", s)
}

func ParseShading(s string) (Shading, error) {
	switch Shading(s) {
	case ShadingNone, ShadingMedium, ShadingHeavy:
		return Shading(s), nil
	}
	return "", fmt.Errorf("unknown shading level %q", s)
}

func ParseFinancingMode(s string) (FinancingMode, error) {
	switch FinancingMode(s) {
	case FinancingDirect, FinancingCommunity:
		return FinancingMode(s), nil
	}
	return "", fmt.Errorf("unknown financing mode %q", s)
}

// RegionalConstants are the per-district assumptions used for sizing and
// capital cost. Peak sun hours are rough West Java averages; installed cost
// per kWp reflects typical local installer pricing.
type RegionalConstants struct {
	PeakSunHoursPerDay float64
	CapitalCostPerKwp  float64 // IDR
}

// EstimateInput is a validated, normalised calculator input. Construct it
// through NewEstimateInput so the Household financing/grant rules and the
// per-type grant range are always applied.
type EstimateInput struct {
	MonthlyBillIDR   float64
	District         District
	UserType         UserType
	RoofSize         RoofSize
	Shading          Shading
	Financing        FinancingMode
	GrantCoveragePct float64
}

// NewEstimateInput normalises the raw field values: Household is locked to
// Direct financing with no grant, and the grant percentage is clamped into
// the range allowed for the user type.
func NewEstimateInput(
	billIDR float64,
	district District,
	userType UserType,
	roofSize RoofSize,
	shading Shading,
	financing FinancingMode,
	grantPct float64,
) EstimateInput {
	if userType == UserTypeHousehold {
		financing = FinancingDirect
	}
	min, max := GrantRange(userType)
	if grantPct < min {
		grantPct = min
	}
	if grantPct > max {
		grantPct = max
	}
	return EstimateInput{
		MonthlyBillIDR:   billIDR,
		District:         district,
		UserType:         userType,
		RoofSize:         roofSize,
		Shading:          shading,
		Financing:        financing,
		GrantCoveragePct: grantPct,
	}
}

// GrantRange returns the closed grant-coverage percentage range allowed for
// a user type. Households are not eligible.
func GrantRange(u UserType) (min, max float64) {
	switch u {
	case UserTypeSchool:
		return 0, 70
	case UserTypeMSME:
		return 0, 50
	default:
		return 0, 0
	}
}

// EstimateResult is the full calculator output. All values are derived
// synchronously from the input and the static assumption tables; nothing is
// persisted.
type EstimateResult struct {
	SystemSizeKwp     float64
	PanelCount        int
	CapitalCostIDR    float64 // after grant deduction
	MonthlySavingsIDR float64
	AnnualEnergyKwh   float64
	BillReductionPct  float64
	AnnualCO2Kg       float64

	// PaybackYears is nil when annual savings are not positive; payback is
	// then indeterminate, never infinite or negative.
	PaybackYears *float64

	// Community-financing split. Under Direct financing the green fee is zero
	// and the recipient pays the full capital cost upfront.
	GreenFeeIDR    float64
	NetSavingsIDR  float64
	UpfrontCostIDR float64

	Explanation Explanation
}

// Explanation is the deterministic rationale rendered alongside the numbers:
// a narrative, the assumptions behind it, a pre-installation checklist and
// panel placement guidance. It is built from the computed result only.
type Explanation struct {
	Rationale     string
	Summary       string
	Assumptions   []string
	Checklist     []string
	Placement     Placement
	Optimizations []string
}

type Placement struct {
	RecommendedMount string
	Tilt             string
	Orientation      string
	Note             string
}
