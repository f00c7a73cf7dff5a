package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackUnpackMarker(t *testing.T) {
	v := PackMarker(Queued, 0x00ABCDEF&0x00FFFFFF)
	assert.Equal(t, Queued, UnpackStatus(v))
	assert.Equal(t, uint32(0x00ABCDEF&0x00FFFFFF), UnpackLabel(v))
}

func TestPackMarkerLabelTruncatedTo24Bits(t *testing.T) {
	v := PackMarker(Labeled, 0xFFFFFFFF)
	assert.Equal(t, uint32(0x00FFFFFF), UnpackLabel(v))
}

func TestPlaneDefaultsToCandidate(t *testing.T) {
	p := NewPlane(4)
	for i := 0; i < 4; i++ {
		assert.Equal(t, Candidate, p.Get(i))
	}
	p.Set(2, Labeled)
	assert.Equal(t, Labeled, p.Get(2))
	assert.Equal(t, Candidate, p.Get(1))
}

func TestLinearUnlinearRoundTrip(t *testing.T) {
	width, height := 7, 5
	for z := 0; z < 3; z++ {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				pos := Linear(x, y, z, width, height)
				gx, gy, gz := Unlinear(pos, width, height)
				assert.Equal(t, [3]int{x, y, z}, [3]int{gx, gy, gz})
			}
		}
	}
}
