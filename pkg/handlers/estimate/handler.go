package estimate

import (
	"encoding/json"
	"math"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/powerwestjava/solar-atlas/pkg/models/api"
	"github.com/powerwestjava/solar-atlas/pkg/models/domain"
	"github.com/powerwestjava/solar-atlas/pkg/services/estimate"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Calculate validates the planner form and runs the estimation pipeline.
// Validation lives here so the engine itself stays total.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.Bill <= 0 || math.IsNaN(req.Bill) || math.IsInf(req.Bill, 0) {
		writeError(w, http.StatusBadRequest, "Monthly bill must be a positive amount.")
		return
	}

	district, err := domain.ParseDistrict(req.District)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	userType, err := domain.ParseUserType(req.UserType)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	roofSize, err := domain.ParseRoofSize(req.RoofSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	shading, err := domain.ParseShading(req.Shading)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	financing, err := domain.ParseFinancingMode(req.Financing)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	input := domain.NewEstimateInput(req.Bill, district, userType, roofSize, shading, financing, req.GrantPct)
	result := estimate.Estimate(input)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(toResponse(input, result)); err != nil {
		logger.Error().Err(err).Msg("failed to encode estimate response")
	}
}

func toResponse(in domain.EstimateInput, r domain.EstimateResult) api.EstimateResponse {
	return api.EstimateResponse{
		SystemSizeKwp:    r.SystemSizeKwp,
		Panels:           r.PanelCount,
		Cost:             r.CapitalCostIDR,
		Savings:          r.MonthlySavingsIDR,
		AnnualKwh:        r.AnnualEnergyKwh,
		BillReductionPct: r.BillReductionPct,
		CO2KgYear:        r.AnnualCO2Kg,
		PaybackYears:     r.PaybackYears,
		Financing:        string(in.Financing),
		GrantPct:         in.GrantCoveragePct,
		UpfrontCost:      r.UpfrontCostIDR,
		GreenFee:         r.GreenFeeIDR,
		NetSavings:       r.NetSavingsIDR,
		Explanation: api.Explanation{
			Rationale:   r.Explanation.Rationale,
			Summary:     r.Explanation.Summary,
			Assumptions: r.Explanation.Assumptions,
			Checklist:   r.Explanation.Checklist,
			Placement: api.Placement{
				RecommendedMount: r.Explanation.Placement.RecommendedMount,
				Tilt:             r.Explanation.Placement.Tilt,
				Orientation:      r.Explanation.Placement.Orientation,
				Note:             r.Explanation.Placement.Note,
			},
			Optimizations: r.Explanation.Optimizations,
		},
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Error: msg})
}
