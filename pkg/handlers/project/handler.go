package project

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/powerwestjava/solar-atlas/pkg/models/api"
	"github.com/powerwestjava/solar-atlas/pkg/models/domain"
	"github.com/powerwestjava/solar-atlas/pkg/services/project"
)

type Handler struct {
	projects project.Service
}

func NewHandler(projects project.Service) *Handler {
	return &Handler{projects: projects}
}

func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	projects, err := h.projects.List(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list projects")
		writeError(w, http.StatusInternalServerError, "Failed to load projects.")
		return
	}

	response := make([]api.Project, 0, len(projects))
	for _, p := range projects {
		response = append(response, toAPI(p))
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode projects")
	}
}

func (h *Handler) Invest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid project id.")
		return
	}

	var req api.InvestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	inv, proj, err := h.projects.Invest(ctx, id, req.Amount)
	switch {
	case errors.Is(err, project.ErrInvalidAmount):
		writeError(w, http.StatusBadRequest, "Investment amount must be greater than zero.")
		return
	case errors.Is(err, domain.ErrProjectNotFound):
		writeError(w, http.StatusNotFound, "Project not found.")
		return
	case err != nil:
		logger.Error().Err(err).Int("project_id", id).Msg("failed to record investment")
		writeError(w, http.StatusInternalServerError, "Failed to record investment.")
		return
	}

	resp := api.InvestResponse{
		InvestmentID: inv.ID,
		ProjectID:    inv.ProjectID,
		Amount:       inv.AmountIDR,
		RaisedAmount: proj.RaisedIDR,
		CreatedAt:    inv.CreatedAt,
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error().Err(err).Msg("failed to encode investment")
	}
}

func toAPI(p domain.Project) api.Project {
	return api.Project{
		ID:           p.ID,
		Name:         p.Name,
		District:     string(p.District),
		TargetAmount: p.TargetIDR,
		RaisedAmount: p.RaisedIDR,
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Error: msg})
}
