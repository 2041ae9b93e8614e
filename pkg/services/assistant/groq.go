package assistant

import (
	"context"
	"errors"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/powerwestjava/solar-atlas/pkg/models/domain"
)

const (
	DefaultBaseURL = "https://api.groq.com/openai/v1"
	DefaultModel   = "moonshotai/kimi-k2-instruct"

	// Low temperature and a bounded completion keep answers factual and
	// reduce creative drift outside the prompt's scope.
	defaultTemperature = 0.2
	defaultMaxTokens   = 800
)

// GroqConfig configures the outbound chat-completion client. Groq exposes an
// OpenAI-compatible API, so the client is go-openai pointed at the Groq base
// URL.
type GroqConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

type groqCompleter struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

// NewGroqCompleter builds the production Completer. It errors on a missing
// API key so startup can log the configuration problem once and run the
// guard unconfigured.
func NewGroqCompleter(cfg GroqConfig) (Completer, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("groq: api key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = defaultTemperature
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &groqCompleter{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}, nil
}

func (c *groqCompleter) Complete(ctx context.Context, turns []domain.ChatTurn) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(turns))
	for _, t := range turns {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    string(t.Role),
			Content: t.Content,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("groq: completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
