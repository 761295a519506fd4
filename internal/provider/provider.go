// Package provider defines the collaborator contract for grammar-analysis
// backends. A provider turns text into raw match records; validation,
// overlap resolution, and application are the engine's job, so a provider
// may hand back malformed records without breaking anything.
package provider

import (
	"context"
	"errors"

	"github.com/prosefix/prosefix/internal/model"
)

// ErrParse signals an unexpected response shape from a backend.
var ErrParse = errors.New("provider: could not parse backend response")

// Provider is a grammar-analysis backend.
type Provider interface {
	// Analyze returns raw correction matches for text. Offsets are rune
	// offsets into text.
	Analyze(ctx context.Context, text string) ([]model.RawMatch, error)

	// Name identifies the backend in logs and cache keys.
	Name() string
}

// Func adapts a plain function to Provider, for tests and inline backends.
type Func struct {
	ID string
	Fn func(ctx context.Context, text string) ([]model.RawMatch, error)
}

func (f Func) Name() string { return f.ID }

func (f Func) Analyze(ctx context.Context, text string) ([]model.RawMatch, error) {
	return f.Fn(ctx, text)
}
