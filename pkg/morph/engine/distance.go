package engine

import (
	"log/slog"

	"github.com/jpfielding/morph/pkg/morph"
	"github.com/jpfielding/morph/pkg/morph/grid"
)

// DistanceTransform writes into dest the geodesic distance of every
// set-pixel in src to the nearest pixel outside the set (or to the image
// edge, under EmptyEdge), and 0 for every non-set pixel (§4.6). src must
// be depth 1; dest must be depth 32.
func DistanceTransform(src, dest morph.Field, kind grid.Kind, edge morph.EdgePolicy) *morph.EngineError {
	if !morph.SameDims(src, dest) {
		return morph.NewEngineError("DistanceTransform", morph.BadSize, "")
	}
	if src.Depth() != morph.Depth1 {
		return morph.NewEngineError("DistanceTransform", morph.BadDepth, "src must be depth 1")
	}
	if dest.Depth() != morph.Depth32 {
		return morph.NewEngineError("DistanceTransform", morph.BadDepth, "dest must be depth 32")
	}

	w, h, l := src.Dims()
	n := w * h * l
	bounds := grid.Bounds{Width: w, Height: h, Length: l}
	slog.Debug("distance: seeding", "width", w, "height", h, "length", l, "edge", edge)

	arena := NewArena(n)
	fifo := NewBucketList()

	outsideSet := func(x, y, z int, ok bool) bool {
		if ok {
			return src.Get(x, y, z) == 0
		}
		return edge == morph.EmptyEdge
	}

	for z := 0; z < l; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if src.Get(x, y, z) == 0 {
					dest.Put(x, y, z, 0)
					continue
				}
				onBorder := false
				grid.VisitAll(kind, x, y, z, bounds, func(nx, ny, nz int, ok bool) {
					if outsideSet(nx, ny, nz, ok) {
						onBorder = true
					}
				})
				if onBorder {
					dest.Put(x, y, z, 1)
					arena.InsertTail(&fifo, Linear(x, y, z, w, h))
				} else {
					dest.Put(x, y, z, 0)
				}
			}
		}
	}

	pop := func() (int, bool) {
		pos := arena.PopHead(&fifo)
		return pos, pos != Sentinel
	}
	drain(pop, func(pos int) bool {
		x, y, z := Unlinear(pos, w, h)
		d := dest.Get(x, y, z)
		grid.Visit(kind, x, y, z, bounds, func(nx, ny, nz int) {
			if src.Get(nx, ny, nz) == 0 {
				return
			}
			if dest.Get(nx, ny, nz) != 0 {
				return
			}
			dest.Put(nx, ny, nz, d+1)
			arena.InsertTail(&fifo, Linear(nx, ny, nz, w, h))
		})
		return true
	})

	slog.Debug("distance: propagation complete")
	return nil
}
