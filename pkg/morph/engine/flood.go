package engine

// drain pops positions from pop until it reports none left, calling visit
// for each. visit returns false to stop the drain early (watershed's
// max_level cutoff) or true to keep going. This is the one generic
// pop-and-admit loop every flood driver in this package is built on
// (reconstruct's build/dual-build, watershed/basins, and the distance
// transform's breadth-first propagation); the operator-specific admission
// logic lives entirely in visit, per spec.md §9's call for a single flood
// driver definition shared across operators instead of one per operator.
func drain(pop func() (int, bool), visit func(pos int) bool) {
	for {
		pos, ok := pop()
		if !ok {
			return
		}
		if !visit(pos) {
			return
		}
	}
}
