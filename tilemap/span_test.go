package tilemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompactRow(t *testing.T) {
	cases := []struct {
		name string
		row  []int
		want []Span
	}{
		{"empty", []int{0, 0, 0}, nil},
		{"trailing_run_flushed", []int{0, 1, 1}, []Span{{Row: 3, Start: 1, Len: 2}}},
		{"full", []int{1, 1, 1, 1}, []Span{{Row: 3, Start: 0, Len: 4}}},
		{"single_last", []int{0, 0, 0, 7}, []Span{{Row: 3, Start: 3, Len: 1}}},
		{"two_runs", []int{1, 1, 0, 0, 2, 0}, []Span{{Row: 3, Start: 0, Len: 2}, {Row: 3, Start: 4, Len: 1}}},
		{"mixed_codes_merge", []int{2, 3, 1, 0}, []Span{{Row: 3, Start: 0, Len: 3}}},
		// a later run starting at a column equal to an earlier tile code
		{"restart_after_code", []int{0, 2, 0, 0, 1, 1}, []Span{{Row: 3, Start: 1, Len: 1}, {Row: 3, Start: 4, Len: 2}}},
		{"alternating", []int{1, 0, 1, 0, 1}, []Span{{Row: 3, Start: 0, Len: 1}, {Row: 3, Start: 2, Len: 1}, {Row: 3, Start: 4, Len: 1}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, CompactRow(c.row, 3))
		})
	}
}

func TestSpansCoverSolidCellsExactly(t *testing.T) {
	rows := [][]int{
		{0, 1, 1, 0, 1, 0, 0, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{5, 0, 4, 0, 3, 0, 2, 0, 1, 9},
	}
	for r, row := range rows {
		covered := make([]int, len(row))
		for s := range Spans(row, r) {
			assert.Equal(t, r, s.Row)
			assert.Positive(t, s.Len)
			for c := s.Start; c < s.End(); c++ {
				covered[c]++
			}
		}
		for c, code := range row {
			if code == 0 {
				assert.Zero(t, covered[c], "row %d col %d is empty but covered", r, c)
			} else {
				assert.Equal(t, 1, covered[c], "row %d col %d", r, c)
			}
		}
	}
}

func TestSpansStopsEarly(t *testing.T) {
	n := 0
	for range Spans([]int{1, 0, 1, 0, 1}, 0) {
		n++
		break
	}
	assert.Equal(t, 1, n)
}
