// Package types defines core domain types used throughout pagesel.
package types

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Interval is a 1-based page range, either bounded [start, end] or
// unbounded [start, ∞). Intervals are immutable values comparable with ==.
type Interval struct {
	start     int
	end       int
	unbounded bool
}

// MaxPage is the highest page number an interval may reference.
const MaxPage = math.MaxInt32

// NewBounded returns the interval [start, end].
func NewBounded(start, end int) (Interval, error) {
	if start < 1 || end < start || end > MaxPage {
		return Interval{}, ErrInvalidInterval{Start: start, End: end}
	}
	return Interval{start: start, end: end}, nil
}

// NewUnbounded returns the interval [start, ∞).
func NewUnbounded(start int) (Interval, error) {
	if start < 1 || start > MaxPage {
		return Interval{}, ErrInvalidInterval{Start: start, Unbounded: true}
	}
	return Interval{start: start, unbounded: true}, nil
}

// MustBounded is like NewBounded but panics on invalid input.
func MustBounded(start, end int) Interval {
	iv, err := NewBounded(start, end)
	if err != nil {
		panic(err)
	}
	return iv
}

// MustUnbounded is like NewUnbounded but panics on invalid input.
func MustUnbounded(start int) Interval {
	iv, err := NewUnbounded(start)
	if err != nil {
		panic(err)
	}
	return iv
}

// Start returns the first page of the interval
func (iv Interval) Start() int { return iv.start }

// End returns the last page and true, or 0 and false when the interval is unbounded.
func (iv Interval) End() (int, bool) {
	if iv.unbounded {
		return 0, false
	}
	return iv.end, true
}

// IsUnbounded reports whether the interval runs to the end of the document
func (iv Interval) IsUnbounded() bool { return iv.unbounded }

// Contains reports whether page falls inside the interval
func (iv Interval) Contains(page int) bool {
	if page < iv.start {
		return false
	}
	return iv.unbounded || page <= iv.end
}

// String renders the interval in selection syntax: "5", "2-4" or "10-".
func (iv Interval) String() string {
	switch {
	case iv.unbounded:
		return strconv.Itoa(iv.start) + "-"
	case iv.start == iv.end:
		return strconv.Itoa(iv.start)
	default:
		return fmt.Sprintf("%d-%d", iv.start, iv.end)
	}
}

// intervalJSON is the wire shape; a nil End marks an unbounded interval.
type intervalJSON struct {
	Start int  `json:"start" yaml:"start"`
	End   *int `json:"end" yaml:"end"`
}

func (iv Interval) wire() intervalJSON {
	w := intervalJSON{Start: iv.start}
	if !iv.unbounded {
		end := iv.end
		w.End = &end
	}
	return w
}

func fromWire(w intervalJSON) (Interval, error) {
	if w.End == nil {
		return NewUnbounded(w.Start)
	}
	return NewBounded(w.Start, *w.End)
}

func (iv Interval) MarshalJSON() ([]byte, error) {
	return json.Marshal(iv.wire())
}

func (iv *Interval) UnmarshalJSON(data []byte) error {
	// RawMessage keeps a literal null, so nil means the key is absent
	var raw struct {
		Start int             `json:"start"`
		End   json.RawMessage `json:"end"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.End == nil {
		return ErrMissingEnd{Start: raw.Start}
	}

	w := intervalJSON{Start: raw.Start}
	if err := json.Unmarshal(raw.End, &w.End); err != nil {
		return err
	}
	parsed, err := fromWire(w)
	if err != nil {
		return err
	}
	*iv = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (iv Interval) MarshalYAML() (any, error) {
	return iv.wire(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (iv *Interval) UnmarshalYAML(value *yaml.Node) error {
	var w intervalJSON
	if err := value.Decode(&w); err != nil {
		return err
	}
	if !hasKey(value, "end") {
		return ErrMissingEnd{Start: w.Start}
	}
	parsed, err := fromWire(w)
	if err != nil {
		return err
	}
	*iv = parsed
	return nil
}

func hasKey(node *yaml.Node, key string) bool {
	if node.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return true
		}
	}
	return false
}

// RangeSet is a collection of intervals. Normalized sets are sorted by
// start, disjoint, non-adjacent and hold at most one unbounded interval.
type RangeSet []Interval

// String joins the intervals into a selection string, e.g. "2-4,10-".
func (rs RangeSet) String() string {
	parts := make([]string, len(rs))
	for i, iv := range rs {
		parts[i] = iv.String()
	}
	return strings.Join(parts, ",")
}

// Contains reports whether any interval in the set covers page
func (rs RangeSet) Contains(page int) bool {
	for _, iv := range rs {
		if iv.Contains(page) {
			return true
		}
	}
	return false
}

// Unbounded returns the unbounded interval of the set, if any
func (rs RangeSet) Unbounded() (Interval, bool) {
	for _, iv := range rs {
		if iv.unbounded {
			return iv, true
		}
	}
	return Interval{}, false
}
