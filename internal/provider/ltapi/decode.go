package ltapi

import (
	"encoding/json"
	"fmt"
	"unicode/utf16"

	"github.com/prosefix/prosefix/internal/model"
	"github.com/prosefix/prosefix/internal/provider"
)

// Wire shape of a /v2/check response, reduced to what the engine needs.
type ltResponse struct {
	Matches []ltMatch `json:"matches"`
}

type ltMatch struct {
	Message      string          `json:"message"`
	ShortMessage string          `json:"shortMessage"`
	Offset       int             `json:"offset"`
	Length       int             `json:"length"`
	Replacements []ltReplacement `json:"replacements"`
}

type ltReplacement struct {
	Value string `json:"value"`
}

// decodeMatches converts the endpoint's offset/length pairs into start/end
// records. The endpoint counts in UTF-16 code units (Java chars), which
// diverge from rune offsets once the text contains astral-plane characters
// (emoji, rare CJK), so every offset is remapped through the text's UTF-16
// boundaries first. A match without a replacement candidate maps to a
// same-text replacement, so the span still surfaces as an issue while the
// corrected text is left alone.
func decodeMatches(body []byte, text string) ([]model.RawMatch, error) {
	var resp ltResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", provider.ErrParse, err)
	}

	runes := []rune(text)
	byUnit := utf16RuneIndex(runes)

	out := make([]model.RawMatch, 0, len(resp.Matches))
	for _, m := range resp.Matches {
		start := runeAt(byUnit, m.Offset)
		end := runeAt(byUnit, m.Offset+m.Length)

		repl := ""
		switch {
		case len(m.Replacements) > 0:
			repl = m.Replacements[0].Value
		case start >= 0 && start <= end && end <= len(runes):
			repl = string(runes[start:end])
		}

		reason := m.Message
		if reason == "" {
			reason = m.ShortMessage
		}
		out = append(out, model.NewRawMatch(start, end, repl, reason))
	}
	return out, nil
}

// utf16RuneIndex maps each UTF-16 code-unit boundary of runes to the rune
// index it falls on; a surrogate pair contributes two units to one rune.
// The final entry is the one-past-the-end boundary.
func utf16RuneIndex(runes []rune) []int {
	idx := make([]int, 0, len(runes)+1)
	for i, r := range runes {
		idx = append(idx, i)
		if utf16.RuneLen(r) == 2 {
			idx = append(idx, i)
		}
	}
	return append(idx, len(runes))
}

// runeAt resolves one UTF-16 offset. An offset outside the text passes
// through unchanged so the engine's validator drops the record with an
// out-of-range kind instead of it being silently clamped.
func runeAt(idx []int, u int) int {
	if u < 0 || u >= len(idx) {
		return u
	}
	return idx[u]
}
