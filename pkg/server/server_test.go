package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powerwestjava/solar-atlas/pkg/models/api"
	"github.com/powerwestjava/solar-atlas/pkg/models/domain"
	"github.com/powerwestjava/solar-atlas/pkg/services/analytics"
	"github.com/powerwestjava/solar-atlas/pkg/services/assistant"
	"github.com/powerwestjava/solar-atlas/pkg/services/project"
	"github.com/powerwestjava/solar-atlas/pkg/store/memory"
)

type stubCompleter struct {
	reply string
	err   error
}

func (s stubCompleter) Complete(context.Context, []domain.ChatTurn) (string, error) {
	return s.reply, s.err
}

type stubSource struct {
	records []domain.ProductionRecord
}

func (s stubSource) Records(context.Context) ([]domain.ProductionRecord, error) {
	return s.records, nil
}

func newTestServer(t *testing.T, completer assistant.Completer) *httptest.Server {
	t.Helper()

	logger := zerolog.Nop()

	router := ConfigureRouter(Config{
		Addr:            ":0",
		CORSOrigins:     []string{"http://localhost:5173"},
		ShutdownTimeout: 10 * time.Second,
		Dependencies: Dependencies{
			Guard:    assistant.NewGuard(completer),
			Projects: project.NewService(memory.NewProjectStore()),
			Monitor: analytics.NewMonitor(stubSource{records: []domain.ProductionRecord{
				{PlantName: "smkn 1 bandung plts", Month: "2024-07", ProductionKwh: 400, SavingsIDR: 360_000, CapacityKwp: 5.5},
			}}),
			Logger: logger,
		},
	})

	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)
	return ts
}

func TestWebAPI_Health(t *testing.T) {
	ts := newTestServer(t, stubCompleter{reply: "ok"})

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "West Java Solar Backend")
}

func TestWebAPI_Estimate(t *testing.T) {
	ts := newTestServer(t, stubCompleter{reply: "ok"})

	payload, _ := json.Marshal(api.EstimateRequest{
		Bill:      900_000,
		District:  "Bandung",
		UserType:  "School",
		RoofSize:  "Medium",
		Shading:   "None",
		Financing: "Direct",
	})
	resp, err := http.Post(ts.URL+"/api/v1/estimate", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result api.EstimateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.InDelta(t, 2.92, result.SystemSizeKwp, 0.01)
	assert.Equal(t, 9, result.Panels)
}

func TestWebAPI_Chat(t *testing.T) {
	ts := newTestServer(t, stubCompleter{reply: "A solar panel converts sunlight."})

	payload, _ := json.Marshal(api.ChatRequest{Messages: []api.ChatMessage{
		{Role: "user", Content: "What does a panel do?"},
	}})
	resp, err := http.Post(ts.URL+"/api/v1/chat", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result api.ChatResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "A solar panel converts sunlight.", result.Assistant.Content)
}

func TestWebAPI_ChatEmptyTranscript(t *testing.T) {
	ts := newTestServer(t, stubCompleter{reply: "unused"})

	resp, err := http.Post(ts.URL+"/api/v1/chat", "application/json", bytes.NewReader([]byte(`{"messages":[]}`)))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestWebAPI_ChatOffTopicRefused(t *testing.T) {
	ts := newTestServer(t, stubCompleter{reply: "The weather in Paris is lovely."})

	payload, _ := json.Marshal(api.ChatRequest{Messages: []api.ChatMessage{
		{Role: "user", Content: "Tell me about Paris."},
	}})
	resp, err := http.Post(ts.URL+"/api/v1/chat", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result api.ChatResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, assistant.RefusalMessage, result.Assistant.Content)
}

func TestWebAPI_Projects(t *testing.T) {
	ts := newTestServer(t, stubCompleter{reply: "ok"})

	resp, err := http.Get(ts.URL + "/api/v1/projects")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var projects []api.Project
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&projects))
	assert.Len(t, projects, 3)
}

func TestWebAPI_Invest(t *testing.T) {
	ts := newTestServer(t, stubCompleter{reply: "ok"})

	payload, _ := json.Marshal(api.InvestRequest{Amount: 2_000_000})
	resp, err := http.Post(ts.URL+"/api/v1/projects/2/investments", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result api.InvestResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, 14_000_000.0, result.RaisedAmount)
}

func TestWebAPI_Monitoring(t *testing.T) {
	ts := newTestServer(t, stubCompleter{reply: "ok"})

	resp, err := http.Get(ts.URL + "/api/v1/analytics/monitoring")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary api.MonitoringSummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	assert.InDelta(t, 400, summary.TotalProductionKwh, 1e-9)
}

func TestWebAPI_CORSPreflight(t *testing.T) {
	ts := newTestServer(t, stubCompleter{reply: "ok"})

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/api/v1/chat", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "http://localhost:5173", resp.Header.Get("Access-Control-Allow-Origin"))
}
