package prosefix

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/prosefix/prosefix/internal/model"
)

// Dict is a user dictionary protecting specific terms from correction.
type Dict struct {
	Words []string `json:"words"`
}

// NewDict creates a Dict from the given words.
func NewDict(words ...string) *Dict {
	return &Dict{Words: words}
}

// LoadDict reads a JSON file of the form {"words": ["kafka", ...]}.
func LoadDict(path string) (*Dict, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var d Dict
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// filterMatches drops raw matches whose flagged fragment contains a
// protected word. Matches with unusable offsets pass through untouched —
// the engine drops those itself with a reportable kind.
func (d *Dict) filterMatches(text string, raw []model.RawMatch) []model.RawMatch {
	runes := []rune(text)
	kept := raw[:0]
	for _, m := range raw {
		if d.protects(runes, m) {
			continue
		}
		kept = append(kept, m)
	}
	return kept
}

func (d *Dict) protects(runes []rune, m model.RawMatch) bool {
	if m.Start == nil || m.End == nil {
		return false
	}
	s, e := int(*m.Start), int(*m.End)
	if s < 0 || e < s || e > len(runes) {
		return false
	}

	wrong := string(runes[s:e])
	for _, w := range d.Words {
		w = strings.TrimSpace(w)
		if w != "" && strings.Contains(wrong, w) {
			return true
		}
	}
	return false
}
