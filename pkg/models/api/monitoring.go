package api

type MonthlyProduction struct {
	Month         string  `json:"month"`
	ProductionKwh float64 `json:"production_kwh"`
	SavingsIDR    float64 `json:"savings_idr"`
}

type MonitoringSummary struct {
	TotalProductionKwh float64             `json:"total_production_kwh"`
	TotalSavingsIDR    float64             `json:"total_savings_idr"`
	CapacityKwp        float64             `json:"capacity_kwp"`
	Months             []MonthlyProduction `json:"months"`
}
