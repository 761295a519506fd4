package merge

import "github.com/prosefix/prosefix/internal/model"

// apply merges a non-overlapping, start-ascending edit list into text in a
// single left-to-right pass.
//
// The cursor and every edit boundary are rune offsets into the original
// text. The output buffer is append-only and never re-sliced by those
// offsets, so a replacement whose length differs from its source span
// cannot skew the edits after it.
func apply(text string, edits []model.Edit) string {
	if len(edits) == 0 {
		return text
	}

	runes := []rune(text)
	out := make([]rune, 0, len(runes))

	cursor := 0
	for _, e := range edits {
		out = append(out, runes[cursor:e.Start]...)
		out = append(out, []rune(e.Replacement)...)
		cursor = e.End
	}
	out = append(out, runes[cursor:]...)
	return string(out)
}
