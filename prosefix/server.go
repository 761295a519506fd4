package prosefix

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/prosefix/prosefix/internal/cache"
	"github.com/prosefix/prosefix/internal/lang"
	"github.com/prosefix/prosefix/internal/model"
	"github.com/prosefix/prosefix/internal/provider"
	"github.com/prosefix/prosefix/internal/util"
)

// Backend is the shared analysis backend used when a request carries no
// inline edit batch. Set once at startup, before serving.
var Backend provider.Provider

// ResultCache memoises provider-backed results; nil disables caching.
var ResultCache *cache.Cache

// CorrectRequest is the HTTP request body for /v1/correct.
type CorrectRequest struct {
	Text    string          `json:"text"`              // text to correct (required)
	Edits   json.RawMessage `json:"edits,omitempty"`   // inline edit batch; skips the backend
	Words   []string        `json:"words,omitempty"`   // inline protected words (optional)
	Dict    *Dict           `json:"dict,omitempty"`    // user dictionary {"words":[...]} (optional)
	Timeout int             `json:"timeout,omitempty"` // seconds; default 8, LLM backends 60
}

// CorrectHandler handles POST /v1/correct.
//
// With "edits" present the engine merges the client batch directly against
// the text as sent (offsets anchor to it, so it is never trimmed) and no
// backend is consulted; a batch that is not a JSON array is a 400. In
// backend mode, identical texts are served from the result cache when one
// is configured (dictionary requests bypass it).
func CorrectHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req CorrectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	defaultTimeout := 8 * time.Second
	if Backend != nil && Backend.Name() != "languagetool" {
		defaultTimeout = 60 * time.Second
	}
	timeout := defaultTimeout
	if req.Timeout > 0 {
		timeout = time.Duration(req.Timeout) * time.Second
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	// Protected words: inline list and request dictionary merged.
	var dict *Dict
	if len(req.Words) > 0 || (req.Dict != nil && len(req.Dict.Words) > 0) {
		dict = NewDict(req.Words...)
		if req.Dict != nil {
			dict.Words = append(dict.Words, req.Dict.Words...)
		}
	}

	var res *model.Result
	var err error

	switch {
	case len(req.Edits) > 0:
		// The batch's offsets anchor to the text exactly as the client
		// sent it; trimming here would shift every span.
		res, err = MergeBatch(req.Text, req.Edits)
		if err != nil {
			if errors.Is(err, ErrInvalidBatch) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, fmt.Sprintf("Correct failed: %v", err), http.StatusInternalServerError)
			return
		}

	default:
		if Backend == nil {
			http.Error(w, "no analysis backend configured", http.StatusInternalServerError)
			return
		}

		var key string
		if dict == nil && ResultCache != nil {
			key = ResultCache.Key(Backend.Name(), strings.TrimSpace(req.Text))
			if hit, ok := ResultCache.Get(ctx, key); ok {
				writeResult(w, hit)
				return
			}
		}

		if dict != nil {
			res, err = CorrectWithDict(ctx, req.Text, Backend, dict)
		} else {
			res, err = Correct(ctx, req.Text, Backend)
		}
		if err != nil {
			http.Error(w, fmt.Sprintf("Correct failed: %v", err), http.StatusInternalServerError)
			return
		}
		if key != "" {
			ResultCache.Put(ctx, key, res)
		}
	}

	if n := len(res.Dropped); n > 0 {
		log.Printf("correct: dropped %d invalid edit(s): %v", n, res.Dropped)
	}
	writeResult(w, res)
}

func writeResult(w http.ResponseWriter, res *model.Result) {
	w.Header().Set("Content-Type", "application/json")
	out, _ := util.MarshalNoEscape(res, true)
	fmt.Fprint(w, string(out))
}

// LangSpansRequest is the HTTP request body for /v1/lang-spans.
type LangSpansRequest struct {
	Text string `json:"text"`
}

// LangSpansHandler handles POST /v1/lang-spans.
func LangSpansHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req LangSpansRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	spans := lang.Spans(req.Text)
	if spans == nil {
		spans = []lang.Span{}
	}

	w.Header().Set("Content-Type", "application/json")
	out, _ := util.MarshalNoEscape(map[string]any{"spans": spans}, true)
	fmt.Fprint(w, string(out))
}

// HealthHandler handles GET /health.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": "prosefix",
	})
}

// OpenAPIHandler serves the OpenAPI 3.0 spec at GET /openapi.json.
func OpenAPIHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, openAPISpec)
}

// DocsHandler serves the Redoc UI at GET /.
func DocsHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, redocHTML)
}

const openAPISpec = `{
  "openapi": "3.0.3",
  "info": {
    "title": "prosefix API",
    "description": "Text correction REST API: merges offset-anchored correction edits into a corrected string and an issue list.",
    "version": "1.0.0"
  },
  "paths": {
    "/v1/correct": {
      "post": {
        "summary": "Correct",
        "description": "Corrects text. Supply an inline edit batch to run the merge engine directly, or omit it to consult the configured analysis backend.",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": { "$ref": "#/components/schemas/CorrectRequest" },
              "examples": {
                "backend": {
                  "value": { "text": "Teh dog dont bark" }
                },
                "inline edits": {
                  "value": { "text": "Teh dog", "edits": [ { "start": 0, "end": 3, "replacement": "The", "reason": "spelling" } ] }
                },
                "protected words": {
                  "value": { "text": "kafka is runing", "words": ["kafka"] }
                }
              }
            }
          }
        },
        "responses": {
          "200": {
            "description": "Correction result",
            "content": {
              "application/json": {
                "schema": { "$ref": "#/components/schemas/Result" },
                "example": {
                  "original": "Teh dog",
                  "corrected": "The dog",
                  "editDistance": 2,
                  "charCount": 7,
                  "appliedCount": 1,
                  "issues": [ { "wrong": "Teh", "reason": "spelling" } ]
                }
              }
            }
          },
          "400": { "description": "Bad request (JSON error, or edit batch that is not an array)" },
          "500": { "description": "Backend failure or no backend configured" }
        }
      }
    },
    "/v1/lang-spans": {
      "post": {
        "summary": "Language spans",
        "description": "Segments text into Unicode-script runs with a language guess per run.",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": { "type": "object", "required": ["text"], "properties": { "text": { "type": "string" } } }
            }
          }
        },
        "responses": {
          "200": {
            "description": "Detected spans",
            "content": {
              "application/json": {
                "example": { "spans": [ { "start": 0, "end": 4, "script": "Latin", "lang": "es", "confidence": 0.8 } ] }
              }
            }
          }
        }
      }
    },
    "/health": {
      "get": {
        "summary": "Health",
        "responses": {
          "200": {
            "description": "Service up",
            "content": {
              "application/json": { "example": { "status": "ok", "service": "prosefix" } }
            }
          }
        }
      }
    }
  },
  "components": {
    "schemas": {
      "CorrectRequest": {
        "type": "object",
        "required": ["text"],
        "properties": {
          "text":    { "type": "string", "description": "Text to correct (required)" },
          "edits":   { "type": "array", "items": { "$ref": "#/components/schemas/RawEdit" }, "description": "Inline edit batch; skips the backend. Offsets anchor to text exactly as sent" },
          "words":   { "type": "array", "items": { "type": "string" }, "description": "Protected words (inline)" },
          "dict":    { "type": "object", "properties": { "words": { "type": "array", "items": { "type": "string" } } } },
          "timeout": { "type": "integer", "description": "Timeout in seconds (default 8; LLM backends 60)" }
        }
      },
      "RawEdit": {
        "type": "object",
        "properties": {
          "start":       { "type": "integer", "description": "Start rune offset (inclusive)" },
          "end":         { "type": "integer", "description": "End rune offset (exclusive)" },
          "replacement": { "type": "string" },
          "reason":      { "type": "string" }
        }
      },
      "Result": {
        "type": "object",
        "properties": {
          "original":     { "type": "string" },
          "corrected":    { "type": "string", "description": "Text with surviving edits applied" },
          "editDistance": { "type": "integer", "description": "Levenshtein(original, corrected)" },
          "charCount":    { "type": "integer" },
          "appliedCount": { "type": "integer", "description": "Edits applied after overlap resolution" },
          "issues":       { "type": "array", "items": { "$ref": "#/components/schemas/Issue" }, "description": "Everything flagged, in provider order" },
          "dropped":      { "type": "array", "items": { "$ref": "#/components/schemas/Drop" } }
        }
      },
      "Issue": {
        "type": "object",
        "properties": {
          "wrong":  { "type": "string", "description": "Flagged fragment of the original text" },
          "reason": { "type": "string" }
        }
      },
      "Drop": {
        "type": "object",
        "properties": {
          "index": { "type": "integer", "description": "Position in the raw batch" },
          "kind":  { "type": "string", "enum": ["malformed", "inverted", "out_of_range"] }
        }
      }
    }
  }
}`

const redocHTML = `<!DOCTYPE html>
<html>
<head>
  <title>prosefix API Docs</title>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <link href="https://fonts.googleapis.com/css?family=Montserrat:300,400,700|Roboto:300,400,700" rel="stylesheet">
  <style>body { margin: 0; padding: 0; }</style>
</head>
<body>
  <redoc spec-url="/openapi.json" expand-responses="200" hide-download-button></redoc>
  <script src="https://cdn.jsdelivr.net/npm/redoc@latest/bundles/redoc.standalone.js"></script>
</body>
</html>`
