// Package pagesel parses page selection strings such as "2-4,10-" into a
// canonical set of page intervals.
//
// This package mirrors the CLI functionality and provides a compatible API
// for integrating pagesel into other Go applications.
package pagesel

import (
	"github.com/mydehq/pagesel/internal/i18n"
	"github.com/mydehq/pagesel/internal/selection"
	"github.com/mydehq/pagesel/internal/types"
	"github.com/mydehq/pagesel/internal/version"
)

// Re-export all types from internal/types
type (
	Interval       = types.Interval
	RangeSet       = types.RangeSet
	SelectionError = types.SelectionError

	ErrInvalidNumber   = types.ErrInvalidNumber
	ErrAmbiguousRange  = types.ErrAmbiguousRange
	ErrInvalidRange    = types.ErrInvalidRange
	ErrInvalidInterval = types.ErrInvalidInterval
)

// Error kinds
const (
	KindInvalidNumber  = types.KindInvalidNumber
	KindAmbiguousRange = types.KindAmbiguousRange
	KindInvalidRange   = types.KindInvalidRange
	MaxPage            = types.MaxPage
)

// Re-export interval constructors
var (
	NewBounded    = types.NewBounded
	NewUnbounded  = types.NewUnbounded
	MustBounded   = types.MustBounded
	MustUnbounded = types.MustUnbounded
)

// Re-export all core functions
var (
	Parse     = selection.Parse
	Normalize = selection.Normalize
	Message   = i18n.Message
)

// Version returns the library version
func Version() string {
	return version.Get()
}
