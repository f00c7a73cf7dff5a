package engine

// BucketList is an insertion-ordered singly-linked list of positions,
// described only by its first/last pointers; the actual links live in the
// Arena that built it. Ordering is FIFO, which is what makes the flood
// breadth-first inside a single priority level and is required for
// watershed tie-breaking correctness (§4.2).
type BucketList struct {
	first, last int32
}

// NewBucketList returns an empty bucket list.
func NewBucketList() BucketList {
	return BucketList{first: Sentinel, last: Sentinel}
}

// Empty reports whether the list has no entries.
func (l *BucketList) Empty() bool {
	return l.first == Sentinel
}

// Clear resets the list to empty without touching the arena.
func (l *BucketList) Clear() {
	l.first = Sentinel
	l.last = Sentinel
}
