package analytics

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/powerwestjava/solar-atlas/pkg/models/api"
	"github.com/powerwestjava/solar-atlas/pkg/models/domain"
	"github.com/powerwestjava/solar-atlas/pkg/services/analytics"
)

type Handler struct {
	monitor analytics.Monitor
}

func NewHandler(monitor analytics.Monitor) *Handler {
	return &Handler{monitor: monitor}
}

// Monitoring returns the dashboard aggregate, optionally scoped to a single
// site via ?site=.
func (h *Handler) Monitoring(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	summary, err := h.monitor.Summary(ctx, r.URL.Query().Get("site"))
	if err != nil {
		logger.Error().Err(err).Msg("failed to build monitoring summary")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(api.Error{Error: "Failed to load monitoring data."})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(toAPI(summary)); err != nil {
		logger.Error().Err(err).Msg("failed to encode monitoring summary")
	}
}

func toAPI(s domain.MonitoringSummary) api.MonitoringSummary {
	months := make([]api.MonthlyProduction, 0, len(s.Months))
	for _, m := range s.Months {
		months = append(months, api.MonthlyProduction{
			Month:         m.Month,
			ProductionKwh: m.ProductionKwh,
			SavingsIDR:    m.SavingsIDR,
		})
	}
	return api.MonitoringSummary{
		TotalProductionKwh: s.TotalProductionKwh,
		TotalSavingsIDR:    s.TotalSavingsIDR,
		CapacityKwp:        s.CapacityKwp,
		Months:             months,
	}
}
