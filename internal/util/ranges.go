package util

import (
	"slices"
	"sort"
)

// Run is an inclusive span of consecutive page numbers
type Run struct {
	Start int
	End   int
}

// PageSet is a set of page numbers stored as sorted, disjoint, non-adjacent
// runs. Adding [1,2000000] costs one run, not two million entries.
type PageSet struct {
	runs []Run
}

// Add inserts every page from start to end inclusive
func (ps *PageSet) Add(start, end int) {
	if end < start {
		return
	}

	// Runs touching or adjacent to [start, end] occupy runs[i:j].
	// end+1 overflows a 32-bit int at math.MaxInt32; Start-1 cannot.
	i := sort.Search(len(ps.runs), func(k int) bool { return ps.runs[k].End >= start-1 })
	j := sort.Search(len(ps.runs), func(k int) bool { return ps.runs[k].Start-1 > end })

	if i < j {
		start = min(start, ps.runs[i].Start)
		end = max(end, ps.runs[j-1].End)
	}
	ps.runs = slices.Replace(ps.runs, i, j, Run{Start: start, End: end})
}

// TakeRunEndingAt removes the maximal run of consecutive pages ending at
// page and returns its first page. It reports false when page is not in
// the set or is not the last page of its run.
func (ps *PageSet) TakeRunEndingAt(page int) (int, bool) {
	i := sort.Search(len(ps.runs), func(k int) bool { return ps.runs[k].End >= page })
	if i == len(ps.runs) || ps.runs[i].End != page {
		return 0, false
	}

	start := ps.runs[i].Start
	ps.runs = slices.Delete(ps.runs, i, i+1)
	return start, true
}

// Runs returns the runs in ascending order
func (ps *PageSet) Runs() []Run {
	return slices.Clone(ps.runs)
}
