package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeighborCount(t *testing.T) {
	assert.Equal(t, 8, Square.NeighborCount())
	assert.Equal(t, 6, Hexagonal.NeighborCount())
	assert.Equal(t, 26, Cubic.NeighborCount())
	assert.Equal(t, 12, FCC.NeighborCount())
}

func TestIs3D(t *testing.T) {
	assert.False(t, Square.Is3D())
	assert.False(t, Hexagonal.Is3D())
	assert.True(t, Cubic.Is3D())
	assert.True(t, FCC.Is3D())
}

func TestVisitSquareInterior(t *testing.T) {
	bounds := Bounds{Width: 10, Height: 10}
	var got []struct{ x, y int }
	Visit(Square, 5, 5, 0, bounds, func(nx, ny, nz int) {
		got = append(got, struct{ x, y int }{nx, ny})
	})
	assert.Len(t, got, 8)
}

func TestVisitSquareCorner(t *testing.T) {
	bounds := Bounds{Width: 10, Height: 10}
	count := 0
	Visit(Square, 0, 0, 0, bounds, func(nx, ny, nz int) {
		count++
		assert.True(t, nx >= 0 && ny >= 0)
	})
	assert.Equal(t, 3, count)
}

func TestVisitHexagonalParity(t *testing.T) {
	bounds := Bounds{Width: 10, Height: 10}
	var even, odd int
	Visit(Hexagonal, 5, 4, 0, bounds, func(nx, ny, nz int) { even++ })
	Visit(Hexagonal, 5, 5, 0, bounds, func(nx, ny, nz int) { odd++ })
	assert.Equal(t, 6, even)
	assert.Equal(t, 6, odd)
}

func TestParityClass(t *testing.T) {
	assert.Equal(t, 0, ParityClass(0, 0))
	assert.Equal(t, 1, ParityClass(1, 0))
	assert.Equal(t, 2, ParityClass(0, 1))
	assert.Equal(t, 3, ParityClass(1, 1))
	assert.Equal(t, 4, ParityClass(0, 2))
	assert.Equal(t, 5, ParityClass(1, 2))
	// negative inputs normalize the same as their positive-mod equivalents
	assert.Equal(t, ParityClass(-1, 0), ParityClass(1, 0))
	assert.Equal(t, ParityClass(0, -1), ParityClass(0, 2))
}

func TestVisitCubicInterior(t *testing.T) {
	bounds := Bounds{Width: 10, Height: 10, Length: 10}
	count := 0
	Visit(Cubic, 5, 5, 5, bounds, func(nx, ny, nz int) { count++ })
	assert.Equal(t, 26, count)
}

func TestVisitFCCInterior(t *testing.T) {
	bounds := Bounds{Width: 10, Height: 10, Length: 10}
	count := 0
	Visit(FCC, 5, 5, 5, bounds, func(nx, ny, nz int) { count++ })
	assert.Equal(t, 12, count)
}

func TestVisitPreviousOnlyPrecedes(t *testing.T) {
	bounds := Bounds{Width: 10, Height: 10}
	Visit(Square, 5, 5, 0, bounds, func(nx, ny, nz int) {})
	var prev []struct{ x, y int }
	VisitPrevious(Square, 5, 5, 0, bounds, func(nx, ny, nz int) {
		prev = append(prev, struct{ x, y int }{nx, ny})
	})
	for _, p := range prev {
		assert.True(t, before(0, p.y, p.x, 0, 5, 5))
	}
	// a full 8-neighborhood splits into exactly 4 "previous" raster
	// predecessors for an interior pixel
	assert.Len(t, prev, 4)
}
