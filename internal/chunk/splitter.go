// Package chunk splits long input into word-bounded segments small enough
// for one provider request, remembering each segment's rune offset so that
// per-segment matches can be shifted back into full-text coordinates.
package chunk

// MaxWords is the default segment size in whitespace-separated words.
const MaxWords = 300

// Segment is a slice of the input plus the rune offset of its first rune.
type Segment struct {
	Text string
	Off  int
}

// Split slices s into segments of at most maxWords words (maxWords ≤ 0
// means MaxWords). Splitting happens only at spaces and newlines, so no
// word is ever cut in half. Zero copies of the text itself.
func Split(s string, maxWords int) []Segment {
	if maxWords <= 0 {
		maxWords = MaxWords
	}

	// Capacity hint: avg 5-byte word + separator.
	segs := make([]Segment, 0, len(s)/(maxWords*6)+1)

	start := 0    // byte index of the current segment
	startOff := 0 // rune offset of the current segment
	words := 0
	off := 0 // rune offset of the rune under the cursor
	for i, r := range s {
		if r == ' ' || r == '\n' {
			words++
			if words == maxWords {
				segs = append(segs, Segment{Text: s[start:i], Off: startOff})
				start = i + 1 // separator is a single byte
				startOff = off + 1
				words = 0
			}
		}
		off++
	}
	segs = append(segs, Segment{Text: s[start:], Off: startOff})
	return segs
}
