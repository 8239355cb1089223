package util

import (
	"math"
	"reflect"
	"testing"
)

func TestPageSet_Add(t *testing.T) {
	tests := []struct {
		name  string
		spans [][2]int
		want  []Run
	}{
		{"single page", [][2]int{{5, 5}}, []Run{{5, 5}}},
		{"disjoint kept apart", [][2]int{{1, 2}, {5, 6}}, []Run{{1, 2}, {5, 6}}},
		{"adjacent merged", [][2]int{{2, 4}, {5, 6}}, []Run{{2, 6}}},
		{"overlap merged", [][2]int{{1, 5}, {4, 10}}, []Run{{1, 10}}},
		{"out of order", [][2]int{{9, 9}, {1, 1}, {5, 5}}, []Run{{1, 1}, {5, 5}, {9, 9}}},
		{"bridge joins three runs", [][2]int{{1, 2}, {5, 6}, {9, 10}, {3, 8}}, []Run{{1, 10}}},
		{"nested absorbed", [][2]int{{2, 10}, {5, 5}, {7, 7}}, []Run{{2, 10}}},
		{"empty span ignored", [][2]int{{4, 3}}, nil},
		{"backwards singles", [][2]int{{10, 10}, {9, 9}, {8, 8}, {7, 7}}, []Run{{7, 10}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ps PageSet
			for _, s := range tt.spans {
				ps.Add(s[0], s[1])
			}
			if got := ps.Runs(); !reflect.DeepEqual(got, tt.want) && !(len(got) == 0 && len(tt.want) == 0) {
				t.Errorf("Runs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPageSet_TakeRunEndingAt(t *testing.T) {
	var ps PageSet
	ps.Add(1, 3)
	ps.Add(6, 9)

	if _, ok := ps.TakeRunEndingAt(8); ok {
		t.Error("TakeRunEndingAt(8) should fail: 8 is not the end of its run")
	}
	if _, ok := ps.TakeRunEndingAt(5); ok {
		t.Error("TakeRunEndingAt(5) should fail: 5 is not in the set")
	}

	start, ok := ps.TakeRunEndingAt(9)
	if !ok || start != 6 {
		t.Fatalf("TakeRunEndingAt(9) = %d, %v; want 6, true", start, ok)
	}
	if want := []Run{{1, 3}}; !reflect.DeepEqual(ps.Runs(), want) {
		t.Errorf("Runs() = %v, want %v", ps.Runs(), want)
	}
}

func TestPageSet_LargeSpan(t *testing.T) {
	var ps PageSet
	ps.Add(1, 2_000_000_000)
	ps.Add(5, 7)

	if want := []Run{{1, 2_000_000_000}}; !reflect.DeepEqual(ps.Runs(), want) {
		t.Errorf("Runs() = %v, want %v", ps.Runs(), want)
	}
}

func TestPageSet_MaxPage(t *testing.T) {
	const maxPage = math.MaxInt32

	tests := []struct {
		name  string
		spans [][2]int
		want  []Run
	}{
		{"run before max", [][2]int{{5, 5}, {10, maxPage}}, []Run{{5, 5}, {10, maxPage}}},
		{"max before run", [][2]int{{10, maxPage}, {5, 5}}, []Run{{5, 5}, {10, maxPage}}},
		{"adjacent to max", [][2]int{{maxPage, maxPage}, {3, maxPage - 1}}, []Run{{3, maxPage}}},
		{"single max page", [][2]int{{1, 1}, {maxPage, maxPage}}, []Run{{1, 1}, {maxPage, maxPage}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ps PageSet
			for _, s := range tt.spans {
				ps.Add(s[0], s[1])
			}
			if got := ps.Runs(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Runs() = %v, want %v", got, tt.want)
			}
		})
	}
}
