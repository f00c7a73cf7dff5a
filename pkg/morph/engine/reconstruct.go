package engine

import (
	"log/slog"

	"github.com/jpfielding/morph/pkg/morph"
	"github.com/jpfielding/morph/pkg/morph/grid"
)

// Build raises seed, in place, to the largest image that is pointwise <=
// mask and reaches seed from below via the grid's connectivity (§4.4).
func Build(mask, seed morph.Field, kind grid.Kind) *morph.EngineError {
	return reconstruct(mask, seed, kind, false)
}

// DualBuild lowers seed, in place, dually: the smallest image that is
// pointwise >= mask and reaches seed from above (§4.4).
func DualBuild(mask, seed morph.Field, kind grid.Kind) *morph.EngineError {
	return reconstruct(mask, seed, kind, true)
}

func reconstruct(mask, seed morph.Field, kind grid.Kind, dual bool) *morph.EngineError {
	if !morph.SameDims(mask, seed) {
		return morph.NewEngineError("Build", morph.BadSize, "")
	}
	if mask.Depth() != seed.Depth() {
		return morph.NewEngineError("Build", morph.BadDepth, "mask/seed depth mismatch")
	}
	if mask.Depth() != morph.Depth8 && mask.Depth() != morph.Depth32 {
		return morph.NewEngineError("Build", morph.BadDepth, "only 8-8 and 32-32 supported")
	}

	w, h, l := mask.Dims()
	n := w * h * l
	bounds := grid.Bounds{Width: w, Height: h, Length: l}
	slog.Debug("reconstruct: seeding", "dual", dual, "width", w, "height", h, "length", l)

	hasSeed := false
	for z := 0; z < l && !hasSeed; z++ {
		for y := 0; y < h && !hasSeed; y++ {
			for x := 0; x < w; x++ {
				if seed.Get(x, y, z) != 0 {
					hasSeed = true
					break
				}
			}
		}
	}
	if !hasSeed {
		slog.Warn("reconstruct: seed image is entirely zero, reconstruction will equal mask everywhere")
	}

	arena := NewArena(2 * n)
	status := NewPlane(n)

	// valueOf feeds HQ32's overflow drain: it must read seed's *current*
	// value, since the seeding pass below may already have raised it past
	// whatever value it had when first inserted (spec.md §9).
	valueOf := func(tok int) uint32 {
		pos := tok % n
		x, y, z := Unlinear(pos, w, h)
		return seed.Get(x, y, z)
	}
	queue := NewQueue(int(mask.Depth()), arena, valueOf)

	combine := func(a, b uint32) uint32 {
		if dual {
			if a < b {
				return a
			}
			return b
		}
		if a > b {
			return a
		}
		return b
	}

	// Seeding pass (phase 0 tokens): raise/lower seed toward mask and
	// insert every pixel at its resulting value.
	for z := 0; z < l; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				v := combine(seed.Get(x, y, z), mask.Get(x, y, z))
				seed.Put(x, y, z, v)
				pos := Linear(x, y, z, w, h)
				queue.Insert(pos, v)
			}
		}
	}

	// Flood (phase-1 tokens mixed in as neighbors are admitted).
	drain(queue.Pop, func(tok int) bool {
		pos := tok % n
		if status.Get(pos) == Labeled {
			return true
		}
		status.Set(pos, Labeled)
		x, y, z := Unlinear(pos, w, h)

		grid.Visit(kind, x, y, z, bounds, func(nx, ny, nz int) {
			npos := Linear(nx, ny, nz, w, h)
			if status.Get(npos) != Candidate {
				return
			}
			var v uint32
			if dual {
				v = min32(seed.Get(x, y, z), mask.Get(nx, ny, nz))
			} else {
				v = max32(seed.Get(x, y, z), mask.Get(nx, ny, nz))
			}
			seed.Put(nx, ny, nz, v)
			status.Set(npos, Queued)
			queue.Insert(n+npos, v)
		})
		return true
	})

	slog.Debug("reconstruct: flood complete", "dual", dual)
	return nil
}

func max32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}

func min32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}
