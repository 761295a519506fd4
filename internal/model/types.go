package model

// Result is JSON-serialisable as-is.
type Result struct {
	Original     string  `json:"original"`     // input text (trimmed)
	Corrected    string  `json:"corrected"`    // text with surviving edits applied
	EditDistance int     `json:"editDistance"` // Levenshtein(original, corrected)
	CharCount    int     `json:"charCount"`    // UTF-8 rune length of the input
	AppliedCount int     `json:"appliedCount"` // edits left after overlap resolution
	Issues       []Issue `json:"issues"`       // everything flagged, provider order
	Dropped      []Drop  `json:"dropped,omitempty"`
}

// Issue is a user-facing report of one flagged span. Issues cover every
// validated edit, including ones a later overlap resolution discarded —
// the corrected text reflects only what was applied.
type Issue struct {
	Wrong  string `json:"wrong"`  // original[start:end] of the edit it came from
	Reason string `json:"reason"` // provider's explanation, verbatim
}

// RawMatch is the canonical record a provider adapter hands over, before
// validation. Offsets are pointers so a field missing from the wire shape
// survives decoding as nil instead of a silent zero.
type RawMatch struct {
	Start       *int64 `json:"start"` // rune offsets into the original text
	End         *int64 `json:"end"`
	Replacement string `json:"replacement"`
	Reason      string `json:"reason"`
}

// NewRawMatch builds a well-formed RawMatch. Adapters that already decoded
// their provider's shape into ints use this instead of spelling out pointers.
func NewRawMatch(start, end int, replacement, reason string) RawMatch {
	s, e := int64(start), int64(end)
	return RawMatch{Start: &s, End: &e, Replacement: replacement, Reason: reason}
}

// Edit is a validated replacement of the half-open rune span [Start, End).
// Edits are immutable once validated; the engine only copies and filters.
type Edit struct {
	Start       int
	End         int
	Replacement string
	Reason      string
}

// DropKind classifies why a raw match was excluded during validation.
type DropKind string

const (
	DropMalformed  DropKind = "malformed"    // offset missing or not representable
	DropInverted   DropKind = "inverted"     // start > end
	DropOutOfRange DropKind = "out_of_range" // span outside [0, len(text)]
)

// Drop records one excluded raw match. Drops are reported on the Result so
// callers can count or log them; they are never fatal.
type Drop struct {
	Index int      `json:"index"` // position in the raw batch
	Kind  DropKind `json:"kind"`
}
