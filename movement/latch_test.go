package movement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLatch(t *testing.T) {
	var l Latch
	assert.False(t, l.Sample(false))
	assert.True(t, l.Sample(true))
	assert.False(t, l.Sample(true))
	assert.False(t, l.Sample(false))
	assert.True(t, l.Sample(true))

	l.Reset()
	assert.True(t, l.Sample(true))
}
