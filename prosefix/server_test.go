package prosefix

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prosefix/prosefix/internal/model"
	"github.com/prosefix/prosefix/internal/provider"
)

func postCorrect(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/correct", strings.NewReader(body))
	w := httptest.NewRecorder()
	CorrectHandler(w, req)
	return w
}

func TestCorrectHandler_InlineEdits(t *testing.T) {
	w := postCorrect(t, `{
		"text": "Teh dog",
		"edits": [{"start": 0, "end": 3, "replacement": "The", "reason": "spelling"}]
	}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
	}

	var res model.Result
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if res.Corrected != "The dog" {
		t.Fatalf("Corrected = %q, want %q", res.Corrected, "The dog")
	}
	if len(res.Issues) != 1 || res.Issues[0].Wrong != "Teh" {
		t.Fatalf("Issues = %v, want [{Teh spelling}]", res.Issues)
	}
}

func TestCorrectHandler_InlineEditsKeepClientOffsets(t *testing.T) {
	// The client anchored its offsets to "  Teh dog" as sent, leading
	// whitespace included; the handler must not trim before merging.
	w := postCorrect(t, `{
		"text": "  Teh dog",
		"edits": [{"start": 2, "end": 5, "replacement": "The", "reason": "spelling"}]
	}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
	}

	var res model.Result
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if res.Corrected != "  The dog" {
		t.Fatalf("Corrected = %q, want %q", res.Corrected, "  The dog")
	}
	if len(res.Issues) != 1 || res.Issues[0].Wrong != "Teh" {
		t.Fatalf("Issues = %v, want [{Teh spelling}]", res.Issues)
	}
}

func TestCorrectHandler_InvalidBatchIs400(t *testing.T) {
	w := postCorrect(t, `{"text": "Teh dog", "edits": {"start": 0}}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (%s)", w.Code, w.Body.String())
	}
}

func TestCorrectHandler_BadJSONIs400(t *testing.T) {
	w := postCorrect(t, `{"text": `)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestCorrectHandler_MethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/correct", nil)
	w := httptest.NewRecorder()
	CorrectHandler(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", w.Code)
	}
}

func TestCorrectHandler_NoBackendIs500(t *testing.T) {
	w := postCorrect(t, `{"text": "Teh dog"}`)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500 without a backend", w.Code)
	}
}

func TestCorrectHandler_BackendMode(t *testing.T) {
	Backend = provider.Func{
		ID: "fake",
		Fn: func(ctx context.Context, text string) ([]model.RawMatch, error) {
			return []model.RawMatch{model.NewRawMatch(0, 3, "The", "spelling")}, nil
		},
	}
	defer func() { Backend = nil }()

	w := postCorrect(t, `{"text": "Teh dog"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
	}

	var res model.Result
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if res.Corrected != "The dog" {
		t.Fatalf("Corrected = %q, want %q", res.Corrected, "The dog")
	}
}

func TestCorrectHandler_ProtectedWords(t *testing.T) {
	Backend = provider.Func{
		ID: "fake",
		Fn: func(ctx context.Context, text string) ([]model.RawMatch, error) {
			return []model.RawMatch{model.NewRawMatch(0, 5, "Kafka", "proper noun")}, nil
		},
	}
	defer func() { Backend = nil }()

	w := postCorrect(t, `{"text": "kafka is fine", "words": ["kafka"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
	}

	var res model.Result
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if res.Corrected != "kafka is fine" {
		t.Fatalf("Corrected = %q, want the protected term untouched", res.Corrected)
	}
	if len(res.Issues) != 0 {
		t.Fatalf("Issues = %v, want none", res.Issues)
	}
}

func TestLangSpansHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/lang-spans",
		strings.NewReader(`{"text": "the dog is here and it was not"}`))
	w := httptest.NewRecorder()
	LangSpansHandler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
	}

	var out struct {
		Spans []struct {
			Script string `json:"script"`
			Lang   string `json:"lang"`
		} `json:"spans"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if len(out.Spans) != 1 || out.Spans[0].Script != "Latin" || out.Spans[0].Lang != "en" {
		t.Fatalf("spans = %v, want one Latin/en span", out.Spans)
	}
}

func TestLangSpansHandler_EmptyTextIsEmptyArray(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/lang-spans", strings.NewReader(`{"text": ""}`))
	w := httptest.NewRecorder()
	LangSpansHandler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"spans": []`) {
		t.Fatalf("body = %s, want an empty spans array", w.Body.String())
	}
}

func TestHealthHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	HealthHandler(w, req)

	var out map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if out["status"] != "ok" || out["service"] != "prosefix" {
		t.Fatalf("body = %v, want status ok", out)
	}
}

func TestOpenAPIHandler_IsValidJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/openapi.json", nil)
	w := httptest.NewRecorder()
	OpenAPIHandler(w, req)

	var doc map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("openapi.json is not valid JSON: %v", err)
	}
	if doc["openapi"] != "3.0.3" {
		t.Fatalf("openapi = %v, want 3.0.3", doc["openapi"])
	}
}
