package merge

import "github.com/prosefix/prosefix/internal/model"

// issues derives the reported issue list from the validated edits, in the
// order the provider supplied them (pre-sort). The slice is always non-nil
// so an empty list marshals as [].
func issues(text string, edits []model.Edit) []model.Issue {
	out := make([]model.Issue, 0, len(edits))
	if len(edits) == 0 {
		return out
	}

	runes := []rune(text)
	for _, e := range edits {
		out = append(out, model.Issue{
			Wrong:  string(runes[e.Start:e.End]),
			Reason: e.Reason,
		})
	}
	return out
}
