package provider

import (
	"errors"
	"testing"
)

func TestDecodeEdits_PlainJSON(t *testing.T) {
	raw, err := DecodeEdits(`{"edits": [{"start": 0, "end": 3, "replacement": "The", "reason": "spelling"}]}`)
	if err != nil {
		t.Fatalf("DecodeEdits() error = %v", err)
	}
	if len(raw) != 1 {
		t.Fatalf("len(raw) = %d, want 1", len(raw))
	}
	m := raw[0]
	if m.Start == nil || *m.Start != 0 || m.End == nil || *m.End != 3 {
		t.Fatalf("offsets = %v/%v, want 0/3", m.Start, m.End)
	}
	if m.Replacement != "The" || m.Reason != "spelling" {
		t.Fatalf("match = %+v, want The/spelling", m)
	}
}

func TestDecodeEdits_StripsMarkdownFence(t *testing.T) {
	content := "```json\n{\"edits\": [{\"start\": 1, \"end\": 2, \"replacement\": \"x\", \"reason\": \"r\"}]}\n```"

	raw, err := DecodeEdits(content)
	if err != nil {
		t.Fatalf("DecodeEdits() error = %v", err)
	}
	if len(raw) != 1 || raw[0].Replacement != "x" {
		t.Fatalf("raw = %v, want one match", raw)
	}
}

func TestDecodeEdits_EmptyEdits(t *testing.T) {
	raw, err := DecodeEdits(`{"edits": []}`)
	if err != nil {
		t.Fatalf("DecodeEdits() error = %v", err)
	}
	if len(raw) != 0 {
		t.Fatalf("raw = %v, want none", raw)
	}
}

func TestDecodeEdits_ProseIsErrParse(t *testing.T) {
	_, err := DecodeEdits("Sure! Here are your corrections:")
	if !errors.Is(err, ErrParse) {
		t.Fatalf("DecodeEdits() error = %v, want ErrParse", err)
	}
}

func TestDecodeEdits_EditsNotArrayIsErrParse(t *testing.T) {
	_, err := DecodeEdits(`{"edits": {"start": 0}}`)
	if !errors.Is(err, ErrParse) {
		t.Fatalf("DecodeEdits() error = %v, want ErrParse", err)
	}
}

func TestStripMarkdownFence_Untouched(t *testing.T) {
	if got := stripMarkdownFence(`{"edits": []}`); got != `{"edits": []}` {
		t.Fatalf("stripMarkdownFence() = %q, want input unchanged", got)
	}
}
