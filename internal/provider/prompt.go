package provider

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/prosefix/prosefix/internal/merge"
	"github.com/prosefix/prosefix/internal/model"
)

// EditsPrompt instructs an LLM backend to emit the canonical edit batch.
const EditsPrompt = `You are a grammar and spelling correction engine. Output JSON only.

Rules:
- start/end are character offsets into the input text (0-based, end exclusive).
- Flag only real errors; do not rewrite style or tone.
- reason is a short explanation of the error (spelling, grammar, punctuation, ...).
- If nothing is wrong, return {"edits": []}.

Output format (JSON only, no markdown, no prose):
{"edits": [{"start": <int>, "end": <int>, "replacement": "<text>", "reason": "<why>"}]}`

// DecodeEdits parses an LLM response into canonical raw matches. Markdown
// fences are stripped first; anything else unexpected comes back as ErrParse.
func DecodeEdits(content string) ([]model.RawMatch, error) {
	cleaned := stripMarkdownFence(content)

	var out struct {
		Edits json.RawMessage `json:"edits"`
	}
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(out.Edits) == 0 {
		return nil, nil
	}

	raw, err := merge.DecodeBatch(out.Edits)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return raw, nil
}

// stripMarkdownFence removes optional ```json ... ``` wrapping.
func stripMarkdownFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		}
		if idx := strings.LastIndex(s, "```"); idx != -1 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}
	return s
}
