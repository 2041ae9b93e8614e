// Package assistant wraps the external chat-completion service with the
// policy layer that keeps the PowerWestJava helper on topic: a fixed system
// prompt ahead of the conversation and a keyword allow-list gate behind it.
package assistant

import (
	"context"
	"errors"
	"fmt"

	"github.com/powerwestjava/solar-atlas/pkg/models/domain"
)

var (
	// ErrNotConfigured means the service credential was missing at startup.
	// Chat requests fail fast with it; nothing else in the process is affected.
	ErrNotConfigured = errors.New("assistant service not configured")

	// ErrEmptyTranscript means the caller sent no conversation turns.
	ErrEmptyTranscript = errors.New("chat transcript is empty")
)

// RefusalMessage is returned verbatim when the gate decides a completion is
// off topic. A refusal is a normal response, not an error.
const RefusalMessage = "I can only answer questions about solar energy systems, investments, and West Java (Jawa Barat) policy. Please ask a question related to those topics."

const systemPrompt = `You are an expert assistant focused on solar energy systems, investments, and local West Java (Jawa Barat) policy and regulations. You also help users navigate the PowerWestJava platform.

**LANGUAGE SUPPORT:**
You can respond in both English and Bahasa Indonesia. When users communicate in Bahasa Indonesia, respond naturally in Bahasa Indonesia. When users communicate in English, respond in English.

**PLATFORM NAVIGATION:**
- /home - Main landing page with hero section, featured articles, and quick actions
- /planner - Solar Calculator: Estimate solar savings, costs, payback period, CO2 reduction
- /invest - Investment Page: Browse and invest in community solar projects
- /analysis - Impact Dashboard: View real-time monitoring of solar installations (requires login)
- /articles - Knowledge Center: Educational articles about solar energy, finance, and sustainability
- /chat - AI Chat Assistant (current conversation)
- /login - User authentication page
- /profile - User profile and settings (requires login)

When users ask questions related to specific platform features, suggest the appropriate page and encourage them to explore. Be helpful, concise, and factual. For technical questions, recommend consulting certified solar professionals.

**CONTENT SCOPE:**
Only answer questions directly related to:
- Solar energy (system sizing, panels, inverters, batteries, costs, payback)
- Energy savings and tariff calculations
- West Java (Jawa Barat) solar policies and regulations
- Community solar investments
- Platform features and navigation

If users ask about unrelated topics (movies, sports, unrelated finance, gossip, etc.), politely refuse and redirect to solar/West Java topics.`

// Completer produces one assistant completion for an ordered transcript.
type Completer interface {
	Complete(ctx context.Context, turns []domain.ChatTurn) (string, error)
}

type Guard struct {
	completer Completer
	keywords  []string
}

// NewGuard builds a guard over a completer. A nil completer is valid and
// marks the service as unconfigured: every Answer call then fails fast with
// ErrNotConfigured.
func NewGuard(completer Completer) *Guard {
	return NewGuardWithKeywords(completer, DefaultAllowKeywords)
}

// NewGuardWithKeywords is NewGuard with a caller-supplied topic allow-list.
func NewGuardWithKeywords(completer Completer, keywords []string) *Guard {
	return &Guard{completer: completer, keywords: keywords}
}

// Answer prepends the system prompt, requests one completion and applies the
// topic gate. The incoming transcript is never mutated. Upstream failures are
// returned wrapped so callers can tell "service unreachable" from a refusal.
func (g *Guard) Answer(ctx context.Context, transcript []domain.ChatTurn) (domain.ChatTurn, error) {
	if g.completer == nil {
		return domain.ChatTurn{}, ErrNotConfigured
	}
	if len(transcript) == 0 {
		return domain.ChatTurn{}, ErrEmptyTranscript
	}

	turns := make([]domain.ChatTurn, 0, len(transcript)+1)
	turns = append(turns, domain.ChatTurn{Role: domain.RoleSystem, Content: systemPrompt})
	turns = append(turns, transcript...)

	text, err := g.completer.Complete(ctx, turns)
	if err != nil {
		return domain.ChatTurn{}, fmt.Errorf("chat completion failed: %w", err)
	}

	if !OnTopic(text, g.keywords) {
		return domain.ChatTurn{Role: domain.RoleAssistant, Content: RefusalMessage}, nil
	}

	return domain.ChatTurn{Role: domain.RoleAssistant, Content: text}, nil
}
