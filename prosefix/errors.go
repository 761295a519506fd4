package prosefix

import (
	"github.com/prosefix/prosefix/internal/merge"
	"github.com/prosefix/prosefix/internal/provider"
)

// Re-exported sentinels so callers can errors.Is without reaching into
// internal packages.
var (
	// ErrInvalidBatch signals a raw edit batch that is not a JSON array.
	ErrInvalidBatch = merge.ErrInvalidBatch

	// ErrParse signals an unexpected response shape from a backend.
	ErrParse = provider.ErrParse
)
