// Package types defines custom error types for pagesel.
package types

import "fmt"

// Error kinds reported by selection errors to transport layers
const (
	KindInvalidNumber  = "invalid_number"
	KindAmbiguousRange = "ambiguous_range"
	KindInvalidRange   = "invalid_range"
)

// SelectionError is implemented by every error Parse can return.
type SelectionError interface {
	error
	// Kind returns one of the Kind* constants
	Kind() string
	// Value returns the offending substring of the input
	Value() string
}

// ErrInvalidNumber indicates a token segment is not a valid page number
type ErrInvalidNumber struct {
	Text string
}

func (e ErrInvalidNumber) Error() string {
	return fmt.Sprintf("invalid number: %s", e.Text)
}

func (e ErrInvalidNumber) Kind() string  { return KindInvalidNumber }
func (e ErrInvalidNumber) Value() string { return e.Text }

// ErrAmbiguousRange indicates a token does not fit any accepted range shape
type ErrAmbiguousRange struct {
	Token string
}

func (e ErrAmbiguousRange) Error() string {
	return fmt.Sprintf("ambiguous page range definition: %s (use n, n1-n2, -n or n-)", e.Token)
}

func (e ErrAmbiguousRange) Kind() string  { return KindAmbiguousRange }
func (e ErrAmbiguousRange) Value() string { return e.Token }

// ErrInvalidRange indicates an explicit range ends before it starts
type ErrInvalidRange struct {
	Token string
}

func (e ErrInvalidRange) Error() string {
	return fmt.Sprintf("invalid range: %s", e.Token)
}

func (e ErrInvalidRange) Kind() string  { return KindInvalidRange }
func (e ErrInvalidRange) Value() string { return e.Token }

// ErrInvalidInterval indicates an attempt to build an interval violating
// start >= 1 and end >= start
type ErrInvalidInterval struct {
	Start     int
	End       int
	Unbounded bool
}

func (e ErrInvalidInterval) Error() string {
	if e.Unbounded {
		return fmt.Sprintf("invalid interval: %d-", e.Start)
	}
	return fmt.Sprintf("invalid interval: %d-%d", e.Start, e.End)
}

// ErrMissingEnd indicates a serialized interval without an "end" field.
// Open-ended intervals carry an explicit null end.
type ErrMissingEnd struct {
	Start int
}

func (e ErrMissingEnd) Error() string {
	return fmt.Sprintf("interval starting at %d has no end (use null for an open-ended interval)", e.Start)
}
