// Package prosefix corrects free-form text by merging provider-supplied
// correction matches into a corrected string plus a normalized issue list.
//
// The merge core is offset-safe: edits are validated and applied against
// offsets into the original text only, so replacements that change length
// never corrupt the edits after them.
package prosefix

import (
	"context"
	"errors"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/prosefix/prosefix/internal/chunk"
	"github.com/prosefix/prosefix/internal/merge"
	"github.com/prosefix/prosefix/internal/model"
	"github.com/prosefix/prosefix/internal/provider"
)

// ChunkWords caps the words per provider request. Overridable at startup.
var ChunkWords = chunk.MaxWords

// Merge runs the edit-merge engine on caller-supplied raw matches.
// Offsets in raw are rune offsets into text exactly as given — no trimming
// happens here. Per-record problems degrade to Result.Dropped entries.
func Merge(text string, raw []model.RawMatch) *model.Result {
	return merge.Merge(text, raw)
}

// MergeBatch decodes a raw JSON edit batch and merges it into text.
// A body that is not a JSON array fails with ErrInvalidBatch and no
// partial result.
func MergeBatch(text string, data []byte) (*model.Result, error) {
	raw, err := merge.DecodeBatch(data)
	if err != nil {
		return nil, err
	}
	return merge.Merge(text, raw), nil
}

// Correct submits text (any length) to p and merges the outcome.
//
// Input is split into ≤ChunkWords-word segments dispatched in parallel
// (bounded by GOMAXPROCS); match offsets come back shifted into full-text
// coordinates before the single merge. ctx controls overall timeout and
// cancellation.
func Correct(ctx context.Context, text string, p provider.Provider) (*model.Result, error) {
	text = strings.TrimSpace(text)
	if ctx == nil {
		return nil, errors.New("ctx is nil")
	}
	if p == nil {
		return nil, errors.New("provider is nil")
	}

	raw, err := collect(ctx, text, p)
	if err != nil {
		return nil, err
	}
	return merge.Merge(text, raw), nil
}

// CorrectWithDict is like Correct but drops matches whose flagged fragment
// contains a protected word, so dictionary terms are never "corrected".
// The dropped matches vanish from the issue list too — a protected term is
// not an issue.
func CorrectWithDict(ctx context.Context, text string, p provider.Provider, dict *Dict) (*model.Result, error) {
	text = strings.TrimSpace(text)
	if ctx == nil {
		return nil, errors.New("ctx is nil")
	}
	if p == nil {
		return nil, errors.New("provider is nil")
	}

	raw, err := collect(ctx, text, p)
	if err != nil {
		return nil, err
	}
	if dict != nil && len(dict.Words) > 0 {
		raw = dict.filterMatches(text, raw)
	}
	return merge.Merge(text, raw), nil
}

// collect fans segments out to the provider and gathers shifted matches in
// segment order, so issue order stays stable regardless of scheduling.
func collect(ctx context.Context, text string, p provider.Provider) ([]model.RawMatch, error) {
	segs := chunk.Split(text, ChunkWords)
	perSeg := make([][]model.RawMatch, len(segs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, seg := range segs {
		g.Go(func() error {
			ms, err := p.Analyze(ctx, seg.Text)
			if err != nil {
				return err
			}
			off := int64(seg.Off)
			for j := range ms {
				if ms[j].Start != nil {
					s := *ms[j].Start + off
					ms[j].Start = &s
				}
				if ms[j].End != nil {
					e := *ms[j].End + off
					ms[j].End = &e
				}
			}
			perSeg[i] = ms
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var raw []model.RawMatch
	for _, ms := range perSeg {
		raw = append(raw, ms...)
	}
	return raw, nil
}
