package tilemap

import (
	"iter"
	"slices"
)

const unsetColumn = -1

// Span is a maximal run of solid cells inside one row.
type Span struct {
	Row   int `yaml:"row"`
	Start int `yaml:"start"`
	Len   int `yaml:"len"`
}

// End returns the column just past the last cell of the span.
func (s Span) End() int {
	return s.Start + s.Len
}

// Spans scans row left to right and yields one Span per run of nonzero codes.
// A run still open at the last column is flushed. Rows are never merged with
// their neighbours.
func Spans(row []int, rowIndex int) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		units := 0
		start := unsetColumn
		last := len(row) - 1
		for col, code := range row {
			if code != 0 {
				units++
				if start == unsetColumn {
					start = col
				}
			}
			if units > 0 && (code == 0 || col == last) {
				if !yield(Span{Row: rowIndex, Start: start, Len: units}) {
					return
				}
				units = 0
				start = unsetColumn
			}
		}
	}
}

// CompactRow collects Spans into a slice.
func CompactRow(row []int, rowIndex int) []Span {
	return slices.Collect(Spans(row, rowIndex))
}
