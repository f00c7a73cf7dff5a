// Package engine implements the priority-driven propagation engine that
// backs reconstruction, watershed segmentation, distance transform and
// connected-component labeling: a bucket-priority queue over a token arena,
// a pixel-status plane, and a grid-parametric neighborhood iterator
// (pkg/morph/grid), tied together by per-operator flood drivers.
package engine

// Sentinel encodes "no position" in an arena link or a bucket-list
// first/last pointer.
const Sentinel = -1

// Arena is a dense array of next-position links indexed by linear pixel
// coordinate (x + y*width [+ z*width*height]). It doubles as the node
// store for every BucketList built on top of it; a position's link is only
// meaningful while it sits inside some list.
type Arena struct {
	next []int32
}

// NewArena allocates a token arena sized for `size` linear positions.
func NewArena(size int) *Arena {
	return &Arena{next: make([]int32, size)}
}

// InsertTail appends pos to list, in O(1).
func (a *Arena) InsertTail(list *BucketList, pos int) {
	a.next[pos] = int32(Sentinel)
	if list.last == Sentinel {
		list.first = int32(pos)
		list.last = int32(pos)
		return
	}
	a.next[list.last] = int32(pos)
	list.last = int32(pos)
}

// PopHead removes and returns the first position in list, or Sentinel if
// list is empty.
func (a *Arena) PopHead(list *BucketList) int {
	pos := int(list.first)
	if pos == Sentinel {
		return Sentinel
	}
	list.first = a.next[pos]
	if list.first == Sentinel {
		list.last = Sentinel
	}
	return pos
}
