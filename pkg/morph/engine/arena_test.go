package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBucketListFIFO(t *testing.T) {
	arena := NewArena(8)
	list := NewBucketList()
	assert.True(t, list.Empty())

	arena.InsertTail(&list, 3)
	arena.InsertTail(&list, 1)
	arena.InsertTail(&list, 4)

	assert.False(t, list.Empty())
	assert.Equal(t, 3, arena.PopHead(&list))
	assert.Equal(t, 1, arena.PopHead(&list))
	assert.Equal(t, 4, arena.PopHead(&list))
	assert.True(t, list.Empty())
	assert.Equal(t, Sentinel, arena.PopHead(&list))
}

func TestBucketListClear(t *testing.T) {
	arena := NewArena(4)
	list := NewBucketList()
	arena.InsertTail(&list, 0)
	arena.InsertTail(&list, 2)
	list.Clear()
	assert.True(t, list.Empty())
	assert.Equal(t, Sentinel, arena.PopHead(&list))
}

func TestArenaIndependentLists(t *testing.T) {
	arena := NewArena(8)
	a := NewBucketList()
	b := NewBucketList()

	arena.InsertTail(&a, 0)
	arena.InsertTail(&b, 1)
	arena.InsertTail(&a, 2)

	assert.Equal(t, 0, arena.PopHead(&a))
	assert.Equal(t, 2, arena.PopHead(&a))
	assert.True(t, a.Empty())
	assert.Equal(t, 1, arena.PopHead(&b))
}
