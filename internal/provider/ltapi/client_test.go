package ltapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestLang_OverrideWins(t *testing.T) {
	c := New("", "ko-KR")

	if got := c.requestLang("the dog is here"); got != "ko-KR" {
		t.Fatalf("requestLang() = %q, want the configured override", got)
	}
}

func TestRequestLang_AutodetectSnapsToVariant(t *testing.T) {
	c := New("", "")

	if got := c.requestLang("the dog is here and it was not there"); got != "en-US" {
		t.Fatalf("requestLang() = %q, want en-US", got)
	}
}

func TestAnalyze_PostsFormAndDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v2/check" {
			t.Errorf("got %s %s, want POST /v2/check", r.Method, r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm() error = %v", err)
		}
		if r.PostForm.Get("text") != "Teh dog" {
			t.Errorf("text = %q, want %q", r.PostForm.Get("text"), "Teh dog")
		}
		if r.PostForm.Get("language") == "" {
			t.Error("language parameter missing")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"matches": [{"message": "typo", "offset": 0, "length": 3, "replacements": [{"value": "The"}]}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "en-US")
	raw, err := c.Analyze(context.Background(), "Teh dog")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if len(raw) != 1 || raw[0].Replacement != "The" {
		t.Fatalf("raw = %v, want one match with replacement The", raw)
	}
}

func TestAnalyze_Non200IsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too busy", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := New(srv.URL, "en-US")
	if _, err := c.Analyze(context.Background(), "x"); err == nil {
		t.Fatal("Analyze() error = nil, want status error")
	}
}
