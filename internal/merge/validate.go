package merge

import (
	"unicode/utf8"

	"fortio.org/safecast"

	"github.com/prosefix/prosefix/internal/model"
)

// validate filters raw matches down to edits satisfying
// 0 ≤ start ≤ end ≤ rune-length(text).
//
// A record can be bad in more than one way; checks run malformed → inverted
// → out-of-range and the first hit names the drop. Invalid records are
// excluded from the edit list but reported, never fatal.
func validate(text string, raw []model.RawMatch) ([]model.Edit, []model.Drop) {
	limit := utf8.RuneCountInString(text)

	edits := make([]model.Edit, 0, len(raw))
	var drops []model.Drop

	for i, m := range raw {
		if m.Start == nil || m.End == nil {
			drops = append(drops, model.Drop{Index: i, Kind: model.DropMalformed})
			continue
		}
		start, serr := safecast.Conv[int](*m.Start)
		end, eerr := safecast.Conv[int](*m.End)
		if serr != nil || eerr != nil {
			drops = append(drops, model.Drop{Index: i, Kind: model.DropMalformed})
			continue
		}
		if start > end {
			drops = append(drops, model.Drop{Index: i, Kind: model.DropInverted})
			continue
		}
		if start < 0 || end > limit {
			drops = append(drops, model.Drop{Index: i, Kind: model.DropOutOfRange})
			continue
		}
		edits = append(edits, model.Edit{
			Start:       start,
			End:         end,
			Replacement: m.Replacement,
			Reason:      m.Reason,
		})
	}
	return edits, drops
}
