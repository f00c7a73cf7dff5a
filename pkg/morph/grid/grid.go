// Package grid enumerates the neighbor offsets for the 2D and 3D
// connectivities the propagation engine floods over, and the parity rules
// that select the right offset table for hexagonal and face-centered-cubic
// grids. Offset tables are grounded on mamba-image's sqNbDir/hxNbDir
// (MB_Watershed.c) and cubeNbDir/fccNbDir (MB3D_Watershed.c) constants.
package grid

// Kind identifies a connectivity. Square and Hexagonal are 2D; Cubic and
// FCC (face-centered cubic) are 3D.
type Kind int

const (
	Square Kind = iota
	Hexagonal
	Cubic
	FCC
)

// Is3D reports whether the grid kind requires a z coordinate.
func (k Kind) Is3D() bool {
	return k == Cubic || k == FCC
}

// NeighborCount returns the number of neighbors a pixel has under the grid.
func (k Kind) NeighborCount() int {
	switch k {
	case Square:
		return 8
	case Hexagonal:
		return 6
	case Cubic:
		return 26
	case FCC:
		return 12
	}
	return 0
}

// offset is a single (dx, dy, dz) neighbor displacement.
type offset struct{ dx, dy, dz int }

// squareOffsets holds the 8 square-grid displacements. Index 0 of the
// source table ({0,0}) is the center and is dropped here.
var squareOffsets = [8]offset{
	{0, -1, 0}, {1, -1, 0}, {1, 0, 0}, {1, 1, 0},
	{0, 1, 0}, {-1, 1, 0}, {-1, 0, 0}, {-1, -1, 0},
}

// hexOffsets holds the 6 hexagonal-grid displacements, indexed by y%2.
var hexOffsets = [2][6]offset{
	{{0, -1, 0}, {1, 0, 0}, {0, 1, 0}, {-1, 1, 0}, {-1, 0, 0}, {-1, -1, 0}},
	{{1, -1, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}, {-1, 0, 0}, {0, -1, 0}},
}

// cubicOffsets holds the 26 cubic-grid displacements.
var cubicOffsets = [26]offset{
	{0, -1, 0}, {1, -1, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}, {-1, 1, 0}, {-1, 0, 0}, {-1, -1, 0},
	{0, 0, -1}, {0, -1, -1}, {1, -1, -1}, {1, 0, -1}, {1, 1, -1}, {0, 1, -1}, {-1, 1, -1}, {-1, 0, -1}, {-1, -1, -1},
	{0, 0, 1}, {0, -1, 1}, {1, -1, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}, {-1, 1, 1}, {-1, 0, 1}, {-1, -1, 1},
}

// fccOffsets holds the 12 FCC-grid displacements per parity class, selected
// by ParityClass(y, z).
var fccOffsets = [6][12]offset{
	{{0, -1, 0}, {1, 0, 0}, {0, 1, 0}, {-1, 1, 0}, {-1, 0, 0}, {-1, -1, 0}, {0, 0, -1}, {-1, 0, -1}, {-1, -1, -1}, {0, 0, 1}, {0, -1, 1}, {-1, -1, 1}},
	{{1, -1, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}, {-1, 0, 0}, {0, -1, 0}, {0, 0, -1}, {-1, 0, -1}, {0, -1, -1}, {0, 0, 1}, {1, -1, 1}, {0, -1, 1}},
	{{0, -1, 0}, {1, 0, 0}, {0, 1, 0}, {-1, 1, 0}, {-1, 0, 0}, {-1, -1, 0}, {0, 0, -1}, {0, 1, -1}, {-1, 1, -1}, {0, 0, 1}, {-1, 1, 1}, {-1, 0, 1}},
	{{1, -1, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}, {-1, 0, 0}, {0, -1, 0}, {0, 0, -1}, {1, 1, -1}, {0, 1, -1}, {0, 0, 1}, {0, 1, 1}, {-1, 0, 1}},
	{{0, -1, 0}, {1, 0, 0}, {0, 1, 0}, {-1, 1, 0}, {-1, 0, 0}, {-1, -1, 0}, {0, 0, -1}, {0, -1, -1}, {1, 0, -1}, {0, 0, 1}, {1, 0, 1}, {0, 1, 1}},
	{{1, -1, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}, {-1, 0, 0}, {0, -1, 0}, {0, 0, -1}, {1, -1, -1}, {1, 0, -1}, {0, 0, 1}, {1, 0, 1}, {1, 1, 1}},
}

// ParityClass returns the FCC offset-table selector for plane z and row y:
// ((z%3)<<1) | (y%2). Negative z/y are normalized into [0,3) / [0,2) first
// since Go's % preserves the operand's sign.
func ParityClass(y, z int) int {
	zm := ((z % 3) + 3) % 3
	ym := ((y % 2) + 2) % 2
	return (zm << 1) | ym
}

// Bounds describes the extent neighbors are clipped against.
type Bounds struct {
	Width, Height, Length int // Length is ignored for 2D grids
}

func (b Bounds) inBounds(x, y, z int) bool {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return false
	}
	if z < 0 || (b.Length > 0 && z >= b.Length) {
		return false
	}
	return true
}

// offsetsFor returns the offset table applicable at (x, y, z) for kind,
// already resolved for hexagonal/FCC row-or-plane parity.
func offsetsFor(kind Kind, y, z int) []offset {
	switch kind {
	case Square:
		return squareOffsets[:]
	case Hexagonal:
		return hexOffsets[((y%2)+2)%2][:]
	case Cubic:
		return cubicOffsets[:]
	case FCC:
		return fccOffsets[ParityClass(y, z)][:]
	}
	return nil
}

// Visit enumerates the in-bounds neighbors of (x, y, z) under the given
// grid kind, calling fn for each. z is ignored for 2D kinds. Order matches
// the source offset tables, which is significant for watershed/
// reconstruction tie-breaking (§4.3's FIFO policy relies on a stable visit
// order within a single popped pixel).
func Visit(kind Kind, x, y, z int, bounds Bounds, fn func(nx, ny, nz int)) {
	for _, o := range offsetsFor(kind, y, z) {
		nx, ny, nz := x+o.dx, y+o.dy, z+o.dz
		if bounds.inBounds(nx, ny, nz) {
			fn(nx, ny, nz)
		}
	}
}

// VisitAll enumerates every neighbor offset of (x, y, z) under kind,
// in-bounds or not, calling fn with whether that neighbor is in bounds.
// Used where a caller's edge policy needs to resolve out-of-bounds
// neighbors itself rather than have them silently skipped (distance
// transform's seeding pass, §4.6).
func VisitAll(kind Kind, x, y, z int, bounds Bounds, fn func(nx, ny, nz int, ok bool)) {
	for _, o := range offsetsFor(kind, y, z) {
		nx, ny, nz := x+o.dx, y+o.dy, z+o.dz
		fn(nx, ny, nz, bounds.inBounds(nx, ny, nz))
	}
}

// VisitPrevious enumerates only the in-bounds neighbors of (x, y, z) that
// precede it in raster order (z, then y, then x ascending). Used by the
// labeling first pass, which only looks backward at already-scanned
// pixels.
func VisitPrevious(kind Kind, x, y, z int, bounds Bounds, fn func(nx, ny, nz int)) {
	Visit(kind, x, y, z, bounds, func(nx, ny, nz int) {
		if before(nz, ny, nx, z, y, x) {
			fn(nx, ny, nz)
		}
	})
}

// before reports whether (z1,y1,x1) precedes (z2,y2,x2) in raster order.
func before(z1, y1, x1, z2, y2, x2 int) bool {
	if z1 != z2 {
		return z1 < z2
	}
	if y1 != y2 {
		return y1 < y2
	}
	return x1 < x2
}
