package engine

import (
	"log/slog"

	"github.com/jpfielding/morph/pkg/morph"
	"github.com/jpfielding/morph/pkg/morph/grid"
)

// Label assigns each connected component of non-zero pixels in src a
// distinct label in dest, written as uint32 values drawn from the half-open
// range [lblow, lbhigh), wrapping the low byte back to lblow (and carrying
// into the upper bytes) once lbhigh is reached, mirroring mamba-image's
// MB_Label/MB_find_correct_label (§4.7). Two foreground neighbors only
// merge when they carry the same src value, matching MB_Label8's
// pix==previous_pix gating (a no-op for depth-1 src, where every
// foreground pixel already shares the one nonzero value). It returns the
// number of objects found.
func Label(src, dest morph.Field, kind grid.Kind, lblow, lbhigh uint32) (int, *morph.EngineError) {
	if !morph.SameDims(src, dest) {
		return 0, morph.NewEngineError("Label", morph.BadSize, "")
	}
	if dest.Depth() != morph.Depth32 {
		return 0, morph.NewEngineError("Label", morph.BadDepth, "dest must be depth 32")
	}
	if lblow >= lbhigh || lbhigh > 0x100 {
		return 0, morph.NewEngineError("Label", morph.BadValue, "label range invalid")
	}

	w, h, l := src.Dims()
	bounds := grid.Bounds{Width: w, Height: h, Length: l}
	n := w * h * l

	// raw holds the first-pass provisional label (1-based; 0 is background)
	// before equivalences are resolved. eq is the union-find parent array,
	// indexed by raw label; eq[lb] == lb means lb is a root.
	raw := make([]uint32, n)
	eq := []uint32{0}
	var current uint32

	findRoot := func(lb uint32) uint32 {
		root := lb
		for eq[root] != root {
			root = eq[root]
		}
		for lb != root {
			next := eq[lb]
			eq[lb] = root
			lb = next
		}
		return root
	}

	union := func(a, b uint32) uint32 {
		ra, rb := findRoot(a), findRoot(b)
		if ra == rb {
			return ra
		}
		if ra < rb {
			eq[rb] = ra
			return ra
		}
		eq[ra] = rb
		return rb
	}

	// First pass: raster-order provisional labeling, unioning against every
	// already-scanned neighbor that's foreground.
	for z := 0; z < l; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if src.Get(x, y, z) == 0 {
					continue
				}
				pos := Linear(x, y, z, w, h)
				v := src.Get(x, y, z)
				var minLabel uint32
				grid.VisitPrevious(kind, x, y, z, bounds, func(nx, ny, nz int) {
					if src.Get(nx, ny, nz) != v {
						return
					}
					nlabel := raw[Linear(nx, ny, nz, w, h)]
					if nlabel == 0 {
						return
					}
					if minLabel == 0 {
						minLabel = findRoot(nlabel)
					} else {
						minLabel = union(minLabel, nlabel)
					}
				})
				if minLabel == 0 {
					current++
					eq = append(eq, current)
					minLabel = current
				}
				raw[pos] = minLabel
			}
		}
	}

	// Tidy pass: walk roots in discovery order (ascending raw label, which
	// is also ascending since union always keeps the smaller side as root)
	// and assign each its external label, wrapping per correctLabel.
	tidy := make(map[uint32]uint32, current)
	ccurrent := lblow
	nbObjs := 0
	for lb := uint32(1); lb <= current; lb++ {
		if findRoot(lb) != lb {
			continue
		}
		ccurrent = correctLabel(ccurrent, lblow, lbhigh)
		tidy[lb] = ccurrent
		ccurrent++
		nbObjs++
	}
	slog.Debug("label: tidy pass complete", "objects", nbObjs)

	for z := 0; z < l; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				pos := Linear(x, y, z, w, h)
				if raw[pos] == 0 {
					dest.Put(x, y, z, 0)
					continue
				}
				dest.Put(x, y, z, tidy[findRoot(raw[pos])])
			}
		}
	}

	return nbObjs, nil
}

// correctLabel pulls raw's low byte back into [lblow, lbhigh), carrying the
// difference into the upper bytes so successive wraps don't collide,
// mirroring MB_find_correct_label.
func correctLabel(raw, lblow, lbhigh uint32) uint32 {
	lowbyte := raw & 0xFF
	switch {
	case lowbyte < lblow:
		raw += lblow - lowbyte
	case lowbyte >= lbhigh:
		raw += 0x100 + lblow - lowbyte
	}
	return raw
}
