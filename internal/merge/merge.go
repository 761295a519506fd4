// Package merge implements the edit-merge engine: it turns a possibly
// overlapping, possibly malformed batch of offset-anchored edits into a
// corrected text and an issue list.
//
// The engine is pure — no I/O, no shared state — and every offset it ever
// dereferences points into the original, unmodified text. It is safe to call
// concurrently from independent requests.
package merge

import (
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/prosefix/prosefix/internal/model"
	"github.com/prosefix/prosefix/internal/util"
)

// ErrInvalidBatch signals that a raw edit batch is not a JSON array.
// It is the only batch-level failure; individual bad records are dropped.
var ErrInvalidBatch = errors.New("merge: edit batch is not a JSON array")

// Merge validates raw, resolves overlaps, and applies the survivors to text.
//
// The issue list reports every validated edit in the order the batch
// supplied it, including edits the overlap resolution later discarded; the
// corrected text reflects only what was applied. Per-record problems never
// fail the merge — they show up in Result.Dropped.
func Merge(text string, raw []model.RawMatch) *model.Result {
	edits, drops := validate(text, raw)
	applied := resolve(edits)

	res := &model.Result{
		Original:     text,
		Corrected:    apply(text, applied),
		CharCount:    utf8.RuneCountInString(text),
		AppliedCount: len(applied),
		Issues:       issues(text, edits),
		Dropped:      drops,
	}
	res.EditDistance = util.Levenshtein(res.Original, res.Corrected)
	return res
}

// DecodeBatch parses a raw JSON edit batch into canonical matches.
//
// Only a body that is not an array fails (ErrInvalidBatch). An element that
// is not an object decodes to an empty RawMatch and falls out later as a
// malformed drop, so one broken record cannot sink the batch.
func DecodeBatch(data []byte) ([]model.RawMatch, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBatch, err)
	}

	raw := make([]model.RawMatch, len(elems))
	for i, e := range elems {
		if err := json.Unmarshal(e, &raw[i]); err != nil {
			raw[i] = model.RawMatch{}
		}
	}
	return raw, nil
}
