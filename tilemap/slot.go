package tilemap

import "fmt"

// Slot maps a 1-based grid index along an axis with count cells to a signed
// slot that skips zero: 1..count becomes -count/2..-1, 1..count/2. The grid is
// therefore centred on the origin with no cell straddling it.
//
// count must be positive and even and index must lie in [1, count]. Anything
// else is a programming error and panics.
func Slot(index, count int) int {
	if count <= 0 || count%2 != 0 {
		panic(fmt.Sprintf("tilemap: slot axis has %d cells, need a positive even count", count))
	}
	if index < 1 || index > count {
		panic(fmt.Sprintf("tilemap: slot index %d out of range [1,%d]", index, count))
	}
	half := count / 2
	if index <= half {
		return index - half - 1
	}
	return index - half
}

// CellBounds returns the low and high edge of the cell at a 1-based index,
// measured along an axis whose cells are unit wide. slot*unit is always the
// cell's outer edge, the one farther from the origin.
func CellBounds(index, count int, unit float64) (lo, hi float64) {
	s := Slot(index, count)
	if s < 0 {
		return float64(s) * unit, float64(s+1) * unit
	}
	return float64(s-1) * unit, float64(s) * unit
}

// CellCenter returns the centre of the cell at a 1-based index.
func CellCenter(index, count int, unit float64) float64 {
	lo, hi := CellBounds(index, count, unit)
	return (lo + hi) / 2
}
