package merge

import (
	"testing"

	"github.com/prosefix/prosefix/internal/model"
)

func TestResolve_Empty(t *testing.T) {
	if got := resolve(nil); got != nil {
		t.Fatalf("resolve(nil) = %v, want nil", got)
	}
}

func TestResolve_SortsByStart(t *testing.T) {
	got := resolve([]model.Edit{
		{Start: 8, End: 12},
		{Start: 0, End: 3},
	})

	if len(got) != 2 || got[0].Start != 0 || got[1].Start != 8 {
		t.Fatalf("resolve() = %v, want ascending by start", got)
	}
}

func TestResolve_EqualStartFirstListedWins(t *testing.T) {
	got := resolve([]model.Edit{
		{Start: 0, End: 3, Replacement: "first"},
		{Start: 0, End: 5, Replacement: "second"},
	})

	if len(got) != 1 || got[0].Replacement != "first" {
		t.Fatalf("resolve() = %v, want the first-listed edit only", got)
	}
}

func TestResolve_DiscardsNested(t *testing.T) {
	got := resolve([]model.Edit{
		{Start: 0, End: 6, Replacement: "outer"},
		{Start: 2, End: 4, Replacement: "inner"},
	})

	if len(got) != 1 || got[0].Replacement != "outer" {
		t.Fatalf("resolve() = %v, want outer only", got)
	}
}

func TestResolve_KeepsInput(t *testing.T) {
	in := []model.Edit{
		{Start: 8, End: 12},
		{Start: 0, End: 3},
	}
	resolve(in)

	// The caller's slice backs the issue list; resolve must not reorder it.
	if in[0].Start != 8 || in[1].Start != 0 {
		t.Fatalf("input mutated: %v", in)
	}
}

func TestValidate_MalformedBeforeInverted(t *testing.T) {
	// A record missing an offset is malformed even if its present offset
	// also looks out of range.
	e := int64(-5)
	_, drops := validate("abc", []model.RawMatch{{End: &e}})

	if len(drops) != 1 || drops[0].Kind != model.DropMalformed {
		t.Fatalf("drops = %v, want malformed", drops)
	}
}

func TestValidate_InvertedBeforeOutOfRange(t *testing.T) {
	// start > end and end past the text: inverted is checked first.
	_, drops := validate("abc", []model.RawMatch{raw(99, 5, "", "")})

	if len(drops) != 1 || drops[0].Kind != model.DropInverted {
		t.Fatalf("drops = %v, want inverted", drops)
	}
}

func TestValidate_EndAtTextLengthIsValid(t *testing.T) {
	edits, drops := validate("abc", []model.RawMatch{raw(0, 3, "x", "")})

	if len(drops) != 0 || len(edits) != 1 {
		t.Fatalf("edits=%v drops=%v, want one edit and no drops", edits, drops)
	}
}

func TestValidate_LimitIsRuneCount(t *testing.T) {
	// "héé" is 3 runes, 5 bytes; end == 3 must pass.
	edits, drops := validate("héé", []model.RawMatch{raw(0, 3, "x", "")})

	if len(drops) != 0 || len(edits) != 1 {
		t.Fatalf("edits=%v drops=%v, want rune-length limit", edits, drops)
	}
}
