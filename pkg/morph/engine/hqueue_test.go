package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHQ8AscendingWithinLevel(t *testing.T) {
	arena := NewArena(8)
	q := NewHQ8(arena)
	q.Insert(2, 10)
	q.Insert(0, 5)
	q.Insert(1, 5)

	pos, ok := q.Pop()
	assert.True(t, ok)
	assert.Equal(t, 0, pos)
	assert.Equal(t, uint32(5), q.Level())

	pos, ok = q.Pop()
	assert.True(t, ok)
	assert.Equal(t, 1, pos)

	pos, ok = q.Pop()
	assert.True(t, ok)
	assert.Equal(t, 2, pos)
	assert.Equal(t, uint32(10), q.Level())

	_, ok = q.Pop()
	assert.False(t, ok)
}

func TestHQ8LevelNeverMovesBackward(t *testing.T) {
	arena := NewArena(4)
	q := NewHQ8(arena)
	q.Insert(0, 100)
	q.Pop()
	assert.Equal(t, uint32(100), q.Level())

	q.Insert(1, 3)
	pos, ok := q.Pop()
	assert.True(t, ok)
	assert.Equal(t, 1, pos)
	assert.Equal(t, uint32(100), q.Level())
}

func TestHQ32DrainsOverflowInAscendingRangeOrder(t *testing.T) {
	arena := NewArena(4)
	values := map[int]uint32{0: 0x20000, 1: 0x10005, 2: 0x10001}
	valueOf := func(pos int) uint32 { return values[pos] }
	q := NewHQ32(arena, valueOf)

	q.Insert(0, values[0])
	q.Insert(1, values[1])
	q.Insert(2, values[2])

	pos, ok := q.Pop()
	assert.True(t, ok)
	assert.Equal(t, 2, pos)

	pos, ok = q.Pop()
	assert.True(t, ok)
	assert.Equal(t, 1, pos)

	pos, ok = q.Pop()
	assert.True(t, ok)
	assert.Equal(t, 0, pos)

	_, ok = q.Pop()
	assert.False(t, ok)
}

func TestHQ32OverflowDrainUsesCurrentValueNotInsertionValue(t *testing.T) {
	arena := NewArena(2)
	current := uint32(0x10010)
	valueOf := func(pos int) uint32 { return current }
	q := NewHQ32(arena, valueOf)

	// Inserted while current == 0x10010, but the value is raised before the
	// queue ever advances into that range; the drain must re-read valueOf
	// rather than trust the bucket it landed in at insertion time.
	q.Insert(0, 0x10010)
	current = 0x10020

	pos, ok := q.Pop()
	assert.True(t, ok)
	assert.Equal(t, 0, pos)
	assert.Equal(t, uint32(0x10020), q.Level())
}
