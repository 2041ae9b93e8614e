package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/powerwestjava/solar-atlas/pkg/models/api"
	"github.com/powerwestjava/solar-atlas/pkg/models/domain"
	"github.com/powerwestjava/solar-atlas/pkg/services/assistant"
)

// Responder is the assistant guard as seen by the transport layer.
type Responder interface {
	Answer(ctx context.Context, transcript []domain.ChatTurn) (domain.ChatTurn, error)
}

type Handler struct {
	guard Responder
}

func NewHandler(guard Responder) *Handler {
	return &Handler{guard: guard}
}

// Chat forwards the caller's transcript through the guard. The three failure
// classes keep distinct messages: missing transcript, unconfigured service
// and upstream generation failure.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.", "")
		return
	}

	transcript := make([]domain.ChatTurn, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch domain.ChatRole(m.Role) {
		case domain.RoleSystem, domain.RoleUser, domain.RoleAssistant:
		default:
			writeError(w, http.StatusBadRequest, "Messages contain an unknown role.", "")
			return
		}
		transcript = append(transcript, domain.ChatTurn{Role: domain.ChatRole(m.Role), Content: m.Content})
	}

	turn, err := h.guard.Answer(ctx, transcript)
	switch {
	case errors.Is(err, assistant.ErrEmptyTranscript):
		writeError(w, http.StatusBadRequest, "Messages are required.", "")
		return
	case errors.Is(err, assistant.ErrNotConfigured):
		writeError(w, http.StatusInternalServerError, "AI service not configured on server.", "")
		return
	case err != nil:
		logger.Error().Err(err).Msg("chat generation failed")
		writeError(w, http.StatusInternalServerError, "AI Generation Failed", err.Error())
		return
	}

	resp := api.ChatResponse{
		Assistant: api.ChatMessage{Role: string(turn.Role), Content: turn.Content},
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error().Err(err).Msg("failed to encode chat response")
	}
}

func writeError(w http.ResponseWriter, status int, errMsg, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Error: errMsg, Message: detail})
}
