// Package analytics aggregates the PLTS production monitoring log into the
// impact-dashboard figures: totals, installed capacity and a month series.
package analytics

import (
	"context"
	"sort"
	"strings"

	"github.com/powerwestjava/solar-atlas/pkg/models/domain"
)

// Source yields the raw monitoring records.
type Source interface {
	Records(ctx context.Context) ([]domain.ProductionRecord, error)
}

type Monitor interface {
	// Summary aggregates production, savings and capacity. A non-empty site
	// filter restricts records to plants whose name contains it.
	Summary(ctx context.Context, site string) (domain.MonitoringSummary, error)
}

type monitor struct {
	source Source
}

func NewMonitor(source Source) Monitor {
	return &monitor{source: source}
}

func (m *monitor) Summary(ctx context.Context, site string) (domain.MonitoringSummary, error) {
	records, err := m.source.Records(ctx)
	if err != nil {
		return domain.MonitoringSummary{}, err
	}

	site = strings.ToLower(strings.TrimSpace(site))

	var summary domain.MonitoringSummary
	byMonth := make(map[string]*domain.MonthlyProduction)
	// A plant reports its capacity on every row; count each plant once at
	// its highest reported value.
	capacityByPlant := make(map[string]float64)

	for _, r := range records {
		if site != "" && !strings.Contains(r.PlantName, site) {
			continue
		}

		summary.TotalProductionKwh += r.ProductionKwh
		summary.TotalSavingsIDR += r.SavingsIDR
		if r.CapacityKwp > capacityByPlant[r.PlantName] {
			capacityByPlant[r.PlantName] = r.CapacityKwp
		}

		mp, ok := byMonth[r.Month]
		if !ok {
			mp = &domain.MonthlyProduction{Month: r.Month}
			byMonth[r.Month] = mp
		}
		mp.ProductionKwh += r.ProductionKwh
		mp.SavingsIDR += r.SavingsIDR
	}

	for _, c := range capacityByPlant {
		summary.CapacityKwp += c
	}

	summary.Months = make([]domain.MonthlyProduction, 0, len(byMonth))
	for _, mp := range byMonth {
		summary.Months = append(summary.Months, *mp)
	}
	sort.Slice(summary.Months, func(i, j int) bool {
		return summary.Months[i].Month < summary.Months[j].Month
	})

	return summary, nil
}
