package engine

import (
	"log/slog"

	"github.com/jpfielding/morph/pkg/morph"
	"github.com/jpfielding/morph/pkg/morph/grid"
)

// Watershed segments src using marker as the flood's seeds, producing both
// catchment-basin labels and an explicit dividing line (§4.5). marker is
// mutated in place and is the sole output: byte 3 is 0xFF on the line,
// bytes 2..0 hold the label.
func Watershed(src, marker morph.Field, kind grid.Kind, maxLevel int) *morph.EngineError {
	return flood(src, marker, kind, maxLevel, true)
}

// Basins is Watershed without the dividing line: admission is eager and
// every non-background pixel ends up with exactly one label.
func Basins(src, marker morph.Field, kind grid.Kind, maxLevel int) *morph.EngineError {
	return flood(src, marker, kind, maxLevel, false)
}

func flood(src, marker morph.Field, kind grid.Kind, maxLevel int, withLine bool) *morph.EngineError {
	if !morph.SameDims(src, marker) {
		return morph.NewEngineError("Watershed", morph.BadSize, "")
	}
	if marker.Depth() != morph.Depth32 {
		return morph.NewEngineError("Watershed", morph.BadDepth, "marker must be depth 32")
	}
	if src.Depth() != morph.Depth8 && src.Depth() != morph.Depth32 {
		return morph.NewEngineError("Watershed", morph.BadDepth, "src must be depth 8 or 32")
	}
	// max_level's ceiling is depth max + 1 (§4.5): 256 for depth-8 src, and
	// 2^32 for depth-32 src. The ceiling is computed in int64 since 2^32
	// overflows uint32.
	ceiling := int64(src.Depth().MaxValue()) + 1
	if maxLevel < 0 || int64(maxLevel) > ceiling {
		return morph.NewEngineError("Watershed", morph.BadValue, "max_level out of range")
	}

	w, h, l := src.Dims()
	n := w * h * l
	bounds := grid.Bounds{Width: w, Height: h, Length: l}
	slog.Debug("watershed: seeding", "withLine", withLine, "width", w, "height", h, "length", l, "maxLevel", maxLevel)

	arena := NewArena(n)
	valueOf := func(pos int) uint32 {
		x, y, z := Unlinear(pos, w, h)
		return src.Get(x, y, z)
	}
	queue := NewQueue(int(src.Depth()), arena, valueOf)

	// Seeding: marked pixels become QUEUED at priority 0; the rest become
	// CANDIDATE with an implicit zero label.
	seeded := 0
	for z := 0; z < l; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				label := UnpackLabel(marker.Get(x, y, z))
				if label != 0 {
					marker.Put(x, y, z, PackMarker(Queued, label))
					queue.Insert(Linear(x, y, z, w, h), 0)
					seeded++
				} else {
					marker.Put(x, y, z, PackMarker(Candidate, 0))
				}
			}
		}
	}
	if seeded == 0 {
		slog.Warn("watershed: no labeled marker pixels, every pixel will remain CANDIDATE")
	}

	reinsert := NewBucketList()
	fullyFlooded := true

	drain(queue.Pop, func(pos int) bool {
		if maxLevel != 0 && int64(queue.Level()) >= int64(maxLevel) {
			fullyFlooded = false
			return false
		}

		x, y, z := Unlinear(pos, w, h)
		label := UnpackLabel(marker.Get(x, y, z))
		marker.Put(x, y, z, PackMarker(Labeled, label))

		if !withLine {
			grid.Visit(kind, x, y, z, bounds, func(nx, ny, nz int) {
				if UnpackStatus(marker.Get(nx, ny, nz)) != Candidate {
					return
				}
				marker.Put(nx, ny, nz, PackMarker(Queued, label))
				queue.Insert(Linear(nx, ny, nz, w, h), src.Get(nx, ny, nz))
			})
			return true
		}

		reinsert.Clear()
		isWatershed := false

		// Every neighbor must be visited even after a conflict is found,
		// so the reinsert list stays complete for the non-watershed case
		// (spec.md §9's resolved open question: no early exit here).
		grid.Visit(kind, x, y, z, bounds, func(nx, ny, nz int) {
			npos := Linear(nx, ny, nz, w, h)
			nv := marker.Get(nx, ny, nz)
			switch UnpackStatus(nv) {
			case Candidate:
				arena.InsertTail(&reinsert, npos)
			case Labeled:
				nlabel := UnpackLabel(nv)
				if label == 0 {
					label = nlabel
					marker.Put(x, y, z, PackMarker(Labeled, label))
				} else if nlabel != label {
					isWatershed = true
				}
			}
		})

		if isWatershed {
			marker.Put(x, y, z, PackMarker(WatershedLine, 0))
			return true
		}
		for {
			npos := arena.PopHead(&reinsert)
			if npos == Sentinel {
				break
			}
			nx, ny, nz := Unlinear(npos, w, h)
			marker.Put(nx, ny, nz, PackMarker(Queued, 0))
			queue.Insert(npos, src.Get(nx, ny, nz))
		}
		return true
	})

	if withLine && fullyFlooded {
		for z := 0; z < l; z++ {
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					if UnpackStatus(marker.Get(x, y, z)) == Candidate {
						marker.Put(x, y, z, PackMarker(WatershedLine, 0))
					}
				}
			}
		}
	}

	slog.Debug("watershed: flood complete", "withLine", withLine, "fullyFlooded", fullyFlooded)
	return nil
}
