package movement

// Latch turns a stream of held samples into an edge: Sample reports true
// only when the key goes from up to down.
type Latch struct {
	held bool
}

func (l *Latch) Sample(down bool) bool {
	pressed := down && !l.held
	l.held = down
	return pressed
}

// Reset forgets the previous sample.
func (l *Latch) Reset() {
	l.held = false
}
