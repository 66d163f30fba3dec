package messages_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"guestdesk-backend/internal/faqs"
	"guestdesk-backend/internal/llm"
	"guestdesk-backend/internal/messages"
	"guestdesk-backend/internal/shared/config"
	"guestdesk-backend/internal/shared/server"
)

type scriptedLLM struct {
	reply func(input llm.CompleteInput) (string, error)
}

func (s scriptedLLM) Complete(ctx context.Context, input llm.CompleteInput) (string, error) {
	if s.reply != nil {
		return s.reply(input)
	}
	switch {
	case strings.Contains(input.System, "sentiment"):
		return "neutral", nil
	case strings.Contains(input.System, "urgent"):
		return "LOW", nil
	case strings.Contains(input.System, "classify"):
		return `{"topic": "billing", "subtopic": "invoice"}`, nil
	default:
		return "translated text", nil
	}
}

func newTestRouter(t *testing.T, client llm.Client) (*gin.Engine, *messages.MemoryRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := messages.NewMemoryRepo()
	svc := &messages.Service{
		LLM:            client,
		Repo:           repo,
		FAQs:           faqs.NewMemoryRepo(),
		SubcallTimeout: 5 * time.Second,
	}
	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		Env:             "dev",
	}
	return server.NewRouter(cfg, messages.NewHandler(svc)), repo
}

func postAnalyze(t *testing.T, router *gin.Engine, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/messages/analyze", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Guest-Id", "guest-1")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestAnalyzeRejectsMissingFields(t *testing.T) {
	router, _ := newTestRouter(t, scriptedLLM{})

	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "missing task", body: map[string]any{"text": "hello"}},
		{name: "missing text", body: map[string]any{"task": "full_pipeline"}},
		{name: "blank text", body: map[string]any{"task": "full_pipeline", "text": "   "}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			resp := postAnalyze(t, router, tt.body)
			if resp.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", resp.Code)
			}
			var body struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode error envelope: %v", err)
			}
			if body.Error.Code != "validation_error" {
				t.Fatalf("code = %q, want validation_error", body.Error.Code)
			}
		})
	}
}

func TestAnalyzeFullPipelineEndToEnd(t *testing.T) {
	router, repo := newTestRouter(t, scriptedLLM{})
	repo.Seed("msg-9")

	resp := postAnalyze(t, router, map[string]any{
		"task":      "full_pipeline",
		"text":      "There is a charge I don't recognize",
		"messageId": "msg-9",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", resp.Code, resp.Body.String())
	}

	var body struct {
		Task    string  `json:"task"`
		Result  *string `json:"result"`
		Results struct {
			Sentiment  string `json:"sentiment"`
			Urgency    string `json:"urgency"`
			Department string `json:"department"`
			Analyzed   bool   `json:"analyzed"`
		} `json:"results"`
		DBUpdate struct {
			Attempted bool   `json:"attempted"`
			OK        bool   `json:"ok"`
			Detail    string `json:"detail"`
		} `json:"dbUpdate"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Task != "full_pipeline" {
		t.Fatalf("task = %q", body.Task)
	}
	if body.Results.Department != "billing" || !body.Results.Analyzed {
		t.Fatalf("unexpected results: %+v", body.Results)
	}
	if !body.DBUpdate.Attempted || !body.DBUpdate.OK {
		t.Fatalf("dbUpdate = %+v, want attempted and ok", body.DBUpdate)
	}
}

func TestAnalyzeUnknownTaskReturns200Empty(t *testing.T) {
	router, _ := newTestRouter(t, scriptedLLM{})

	resp := postAnalyze(t, router, map[string]any{"task": "summarize", "text": "hello"})
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.Code)
	}
	var body struct {
		Result  *string        `json:"result"`
		Results map[string]any `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Result != nil {
		t.Fatalf("result = %v, want null", body.Result)
	}
	if len(body.Results) != 0 {
		t.Fatalf("results = %v, want empty object", body.Results)
	}
}

func TestAnalyzeUpstreamFailureIsBadGateway(t *testing.T) {
	client := scriptedLLM{reply: func(input llm.CompleteInput) (string, error) {
		return "", &llm.UpstreamError{Status: http.StatusServiceUnavailable, Body: "overloaded"}
	}}
	router, _ := newTestRouter(t, client)

	resp := postAnalyze(t, router, map[string]any{"task": "full_pipeline", "text": "hello"})
	if resp.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", resp.Code)
	}
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Details struct {
				Status int `json:"status"`
			} `json:"details"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	if body.Error.Code != "upstream_error" || body.Error.Details.Status != http.StatusServiceUnavailable {
		t.Fatalf("unexpected envelope: %+v", body.Error)
	}
}

func TestAnalyzeWithoutCredentialIsConfigurationError(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	resp := postAnalyze(t, router, map[string]any{"task": "full_pipeline", "text": "hello"})
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "configuration_error") {
		t.Fatalf("body = %s, want configuration_error", resp.Body.String())
	}
}

func TestAnalyzeAnswerQuestionWithoutContextIs400(t *testing.T) {
	router, _ := newTestRouter(t, scriptedLLM{})

	resp := postAnalyze(t, router, map[string]any{"task": "answer_question", "text": "When is checkout?"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}
}
