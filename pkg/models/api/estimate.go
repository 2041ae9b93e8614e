package api

// EstimateRequest mirrors the planner form. Bill is the monthly electricity
// bill in IDR; grant_pct is the requested grant coverage percentage.
type EstimateRequest struct {
	Bill      float64 `json:"bill"`
	District  string  `json:"district"`
	UserType  string  `json:"user_type"`
	RoofSize  string  `json:"roof_size"`
	Shading   string  `json:"shading"`
	Financing string  `json:"financing"`
	GrantPct  float64 `json:"grant_pct"`
}

type EstimateResponse struct {
	SystemSizeKwp    float64  `json:"system_size"`
	Panels           int      `json:"panels"`
	Cost             float64  `json:"cost"`
	Savings          float64  `json:"savings"`
	AnnualKwh        float64  `json:"annual_kwh"`
	BillReductionPct float64  `json:"bill_reduction_pct"`
	CO2KgYear        float64  `json:"co2_kg_year"`
	PaybackYears     *float64 `json:"payback_years"`
	Financing        string   `json:"financing"`
	GrantPct         float64  `json:"grant_pct"`
	UpfrontCost      float64  `json:"upfront_cost"`
	GreenFee         float64  `json:"green_fee"`
	NetSavings       float64  `json:"net_savings"`

	Explanation Explanation `json:"explanation"`
}

type Explanation struct {
	Rationale     string    `json:"rationale"`
	Summary       string    `json:"summary"`
	Assumptions   []string  `json:"assumptions"`
	Checklist     []string  `json:"checklist"`
	Placement     Placement `json:"placement"`
	Optimizations []string  `json:"optimizations"`
}

type Placement struct {
	RecommendedMount string `json:"recommended_mount"`
	Tilt             string `json:"tilt"`
	Orientation      string `json:"orientation"`
	Note             string `json:"note"`
}
