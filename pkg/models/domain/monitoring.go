package domain

// ProductionRecord is one row of the school PLTS monitoring log: the energy a
// plant produced in a month and the bill value it offset at the social tariff.
type ProductionRecord struct {
	PlantName     string
	Month         string // YYYY-MM
	ProductionKwh float64
	SavingsIDR    float64
	CapacityKwp   float64
}

// MonthlyProduction is production and savings aggregated over one month.
type MonthlyProduction struct {
	Month         string
	ProductionKwh float64
	SavingsIDR    float64
}

// MonitoringSummary is the dashboard aggregate over a set of plants.
type MonitoringSummary struct {
	TotalProductionKwh float64
	TotalSavingsIDR    float64
	CapacityKwp        float64
	Months             []MonthlyProduction
}
