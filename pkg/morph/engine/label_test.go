package engine

import (
	"testing"

	"github.com/jpfielding/morph/pkg/morph"
	"github.com/jpfielding/morph/pkg/morph/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelCountsDisjointComponents(t *testing.T) {
	src, err := morph.NewImage(64, 2, morph.Depth1)
	require.NoError(t, err)
	src.Put(1, 0, 1)
	src.Put(2, 0, 1)
	src.Put(40, 1, 1)

	dest, err := morph.NewImage(64, 2, morph.Depth32)
	require.NoError(t, err)

	nb, errv := Label(src.Field(), dest.Field(), grid.Square, 1, 0x100)
	require.Nil(t, errv)
	assert.Equal(t, 2, nb)

	l1 := dest.Get(1, 0)
	l2 := dest.Get(2, 0)
	l3 := dest.Get(40, 1)
	assert.Equal(t, l1, l2)
	assert.NotEqual(t, l1, l3)
	assert.Equal(t, uint32(0), dest.Get(0, 0))
}

func TestLabelMergesDiagonalNeighborsUnderSquareGrid(t *testing.T) {
	src, err := morph.NewImage(64, 2, morph.Depth1)
	require.NoError(t, err)
	src.Put(5, 0, 1)
	src.Put(6, 1, 1)

	dest, err := morph.NewImage(64, 2, morph.Depth32)
	require.NoError(t, err)

	nb, errv := Label(src.Field(), dest.Field(), grid.Square, 1, 0x100)
	require.Nil(t, errv)
	assert.Equal(t, 1, nb)
	assert.Equal(t, dest.Get(5, 0), dest.Get(6, 1))
}

func TestLabelWrapsIntoRangeOnManyObjects(t *testing.T) {
	src, err := morph.NewImage(64, 2, morph.Depth1)
	require.NoError(t, err)
	for x := 0; x < 20; x++ {
		src.Put(x*3, 0, 1) // 20 isolated single-pixel objects
	}

	dest, err := morph.NewImage(64, 2, morph.Depth32)
	require.NoError(t, err)

	nb, errv := Label(src.Field(), dest.Field(), grid.Square, 1, 11)
	require.Nil(t, errv)
	assert.Equal(t, 20, nb)

	for x := 0; x < 20; x++ {
		v := dest.Get(x*3, 0)
		low := v & 0xFF
		assert.True(t, low >= 1 && low < 11, "label %d out of [1,11) on low byte", v)
	}
}

// touching pixels with different nonzero src values must not merge into the
// same component under a greyscale src, mirroring MB_Label8's
// pix==previous_pix gating.
func TestLabelRequiresSameSourceValueForGreyscaleSrc(t *testing.T) {
	src, err := morph.NewImage(64, 2, morph.Depth8)
	require.NoError(t, err)
	src.Put(10, 0, 5)
	src.Put(11, 0, 9) // touching neighbor, different value: must not merge

	dest, err := morph.NewImage(64, 2, morph.Depth32)
	require.NoError(t, err)

	nb, errv := Label(src.Field(), dest.Field(), grid.Square, 1, 0x100)
	require.Nil(t, errv)
	assert.Equal(t, 2, nb)
	assert.NotEqual(t, dest.Get(10, 0), dest.Get(11, 0))
}

func TestLabelRejectsInvalidRange(t *testing.T) {
	src, err := morph.NewImage(64, 2, morph.Depth1)
	require.NoError(t, err)
	dest, err := morph.NewImage(64, 2, morph.Depth32)
	require.NoError(t, err)

	_, errv := Label(src.Field(), dest.Field(), grid.Square, 5, 5)
	require.NotNil(t, errv)
	assert.Equal(t, morph.BadValue, errv.Kind)
}
