package selection

import (
	"github.com/mydehq/pagesel/internal/types"
	"github.com/mydehq/pagesel/internal/util"
)

// Normalize collapses ranges into canonical form: sorted by start, no
// overlaps, no adjacent intervals, and at most one unbounded interval.
// The input is not modified. Input order does not affect the result.
//
// The lowest-starting unbounded interval wins and grows downward over any
// pages that are contiguous with it; every other unbounded interval is a
// subset of it and is dropped.
func Normalize(ranges types.RangeSet) types.RangeSet {
	if len(ranges) == 0 {
		return ranges
	}

	// Select
	unboundStart, hasUnbound := lowestUnboundedStart(ranges)

	// Collect bounded pages below the unbounded start
	var pages util.PageSet
	for _, iv := range ranges {
		// the zero Interval is not a page range
		if iv.IsUnbounded() || iv.Start() < 1 {
			continue
		}
		end, _ := iv.End()
		if hasUnbound {
			if iv.Start() >= unboundStart {
				continue
			}
			end = min(end, unboundStart-1)
		}
		pages.Add(iv.Start(), end)
	}

	// Expand the unbounded interval downward through contiguous pages
	if hasUnbound && unboundStart > 1 {
		if start, ok := pages.TakeRunEndingAt(unboundStart - 1); ok {
			unboundStart = start
		}
	}

	// Rebuild
	runs := pages.Runs()
	normalized := make(types.RangeSet, 0, len(runs)+1)
	for _, r := range runs {
		normalized = append(normalized, types.MustBounded(r.Start, r.End))
	}
	if hasUnbound {
		normalized = append(normalized, types.MustUnbounded(unboundStart))
	}

	return normalized
}

func lowestUnboundedStart(ranges types.RangeSet) (int, bool) {
	start, found := 0, false
	for _, iv := range ranges {
		if iv.IsUnbounded() && (!found || iv.Start() < start) {
			start, found = iv.Start(), true
		}
	}
	return start, found
}
