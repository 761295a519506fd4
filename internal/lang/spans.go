// Package lang segments text into runs of a single Unicode script and
// guesses a language for each run. It backs the language autodetection of
// HTTP providers and the `langs` CLI command.
//
// Scripts that imply one dominant language (Hangul, Thai, …) map straight
// to a code. Latin and Cyrillic runs, where code-switching is common, are
// decided by weighted stopword voting. Everything else is "und".
package lang

import (
	"strings"
	"unicode"

	"golang.org/x/text/language"
)

// Span is a contiguous run of text sharing one script and language guess.
// Start/End are rune offsets into the original text.
type Span struct {
	Start      int     `json:"start"`
	End        int     `json:"end"`
	Script     string  `json:"script"`
	Lang       string  `json:"lang"`       // BCP-47 code, "und" when unknown
	Confidence float64 `json:"confidence"` // 0..1, heuristic
}

var scriptTables = []struct {
	name  string
	table *unicode.RangeTable
}{
	{"Latin", unicode.Latin},
	{"Cyrillic", unicode.Cyrillic},
	{"Arabic", unicode.Arabic},
	{"Devanagari", unicode.Devanagari},
	{"Han", unicode.Han},
	{"Hiragana", unicode.Hiragana},
	{"Katakana", unicode.Katakana},
	{"Hangul", unicode.Hangul},
	{"Greek", unicode.Greek},
	{"Hebrew", unicode.Hebrew},
	{"Thai", unicode.Thai},
	{"Bengali", unicode.Bengali},
	{"Gurmukhi", unicode.Gurmukhi},
	{"Gujarati", unicode.Gujarati},
	{"Oriya", unicode.Oriya},
	{"Tamil", unicode.Tamil},
	{"Telugu", unicode.Telugu},
	{"Kannada", unicode.Kannada},
	{"Malayalam", unicode.Malayalam},
	{"Sinhala", unicode.Sinhala},
	{"Lao", unicode.Lao},
	{"Khmer", unicode.Khmer},
	{"Myanmar", unicode.Myanmar},
	{"Tibetan", unicode.Tibetan},
}

// scriptLang maps scripts with one overwhelmingly dominant language.
var scriptLang = map[string]string{
	"Arabic":     "ar",
	"Devanagari": "hi",
	"Han":        "zh",
	"Hiragana":   "ja",
	"Katakana":   "ja",
	"Hangul":     "ko",
	"Greek":      "el",
	"Hebrew":     "he",
	"Thai":       "th",
	"Bengali":    "bn",
	"Gurmukhi":   "pa",
	"Gujarati":   "gu",
	"Oriya":      "or",
	"Tamil":      "ta",
	"Telugu":     "te",
	"Kannada":    "kn",
	"Malayalam":  "ml",
	"Sinhala":    "si",
	"Lao":        "lo",
	"Khmer":      "km",
	"Myanmar":    "my",
	"Tibetan":    "bo",
}

const scriptImpliedConfidence = 0.9

// stopwords per language, used for Latin/Cyrillic run voting. Function
// words only — they dominate running text in every register.
var stopwords = map[string][]string{
	"en": {"the", "and", "is", "are", "of", "to", "you", "it", "in", "not", "how", "but", "was", "this", "that", "with"},
	"es": {"el", "la", "los", "las", "de", "que", "y", "es", "en", "un", "una", "por", "como", "para", "hola", "amigo"},
	"fr": {"le", "la", "les", "des", "et", "est", "en", "une", "que", "pas", "pour", "dans", "vous", "je"},
	"de": {"der", "die", "das", "und", "ist", "nicht", "ein", "eine", "zu", "ich", "mit", "auf", "für"},
	"pt": {"os", "as", "de", "que", "é", "em", "um", "uma", "não", "com", "para", "mais"},
	"it": {"il", "lo", "gli", "di", "che", "è", "un", "una", "non", "per", "con", "sono"},
	"ru": {"и", "в", "не", "на", "что", "это", "как", "я", "он", "она", "мы", "вы", "но"},
	"uk": {"і", "в", "не", "на", "що", "це", "як", "я", "він", "вона", "ми", "ви", "але"},
}

func scriptOf(r rune) string {
	if !unicode.IsLetter(r) {
		return "Common"
	}
	for _, s := range scriptTables {
		if unicode.Is(s.table, r) {
			return s.name
		}
	}
	return "Other"
}

type run struct {
	start, end int // rune offsets
	script     string
	text       string
}

// scriptRuns splits text at script boundaries. Common runes (whitespace,
// punctuation, digits) carry no script of their own: they extend the run
// they sit in, so "the dog, the cat" is one Latin run, not seven fragments.
// A run only ends when a letter of a different script appears. Text with no
// letters at all comes back as a single Common run.
func scriptRuns(text string) []run {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	var runs []run
	start := 0
	cur := "" // script of the open run, "" until the first letter
	for i, r := range runes {
		s := scriptOf(r)
		if s == "Common" || s == cur {
			continue
		}
		if cur == "" {
			cur = s
			continue
		}
		runs = append(runs, run{start: start, end: i, script: cur, text: string(runes[start:i])})
		start, cur = i, s
	}
	if cur == "" {
		cur = "Common"
	}
	runs = append(runs, run{start: start, end: len(runes), script: cur, text: string(runes[start:])})
	return runs
}

// vote picks the dominant language of a Latin/Cyrillic run by weighted
// stopword voting: each stopword hit counts its capped length, the winner's
// share of all weights is the confidence.
func vote(text string) (string, float64) {
	weights := make(map[string]float64)
	total := 0.0

	for _, w := range strings.FieldsFunc(text, func(r rune) bool { return !unicode.IsLetter(r) }) {
		w = strings.ToLower(w)
		if len([]rune(w)) < 2 {
			continue
		}
		for code, words := range stopwords {
			for _, sw := range words {
				if w == sw {
					weight := float64(min(len([]rune(w)), 10))
					weights[code] += weight
					total += weight
				}
			}
		}
	}
	if total == 0 {
		return "und", 0
	}

	best, bestW := "und", 0.0
	for code, w := range weights {
		if w > bestW || (w == bestW && code < best) {
			best, bestW = code, w
		}
	}
	return best, bestW / total
}

// Spans detects language spans in text. Runs arrive maximal from
// scriptRuns, so every returned span already covers as much text as its
// script allows; no post-merge is needed.
func Spans(text string) []Span {
	var spans []Span
	for _, r := range scriptRuns(text) {
		sp := Span{Start: r.start, End: r.end, Script: r.script, Lang: "und"}
		switch {
		case r.script == "Common" || r.script == "Other":
		case r.script == "Latin" || r.script == "Cyrillic":
			sp.Lang, sp.Confidence = vote(r.text)
		default:
			if code, ok := scriptLang[r.script]; ok {
				sp.Lang, sp.Confidence = code, scriptImpliedConfidence
			}
		}
		spans = append(spans, sp)
	}
	return spans
}

// Dominant returns the BCP-47 code of the language covering the most text,
// weighting each span by its rune length and confidence. Falls back to "en"
// when nothing is determined.
func Dominant(text string) string {
	weights := make(map[string]float64)
	for _, sp := range Spans(text) {
		if sp.Lang == "und" {
			continue
		}
		weights[sp.Lang] += float64(sp.End-sp.Start) * sp.Confidence
	}

	best, bestW := "", 0.0
	for code, w := range weights {
		if w > bestW || (w == bestW && code < best) {
			best, bestW = code, w
		}
	}
	if best == "" {
		return "en"
	}
	return language.Make(best).String()
}
