package merge

import (
	"sort"

	"github.com/prosefix/prosefix/internal/model"
)

// resolve orders edits by start and discards overlaps, so the output is
// strictly increasing and non-overlapping by construction.
//
// The sort is stable: at equal start the first-listed edit wins. The sweep
// accepts an edit only when its start is at or past the end of the last
// accepted one, which also discards edits fully nested inside an accepted
// span.
func resolve(edits []model.Edit) []model.Edit {
	if len(edits) == 0 {
		return nil
	}

	sorted := make([]model.Edit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	out := sorted[:0]
	lastEnd := 0
	for _, e := range sorted {
		if e.Start < lastEnd {
			continue
		}
		out = append(out, e)
		lastEnd = e.End
	}
	return out
}
