package engine

// Status is a pixel's place in the flood's state machine (§3). Values
// match the byte actually packed into the high byte of a 32-bit marker by
// watershed/basins; reconstruction uses the same enum against a separate
// status plane instead of packing it into the image.
type Status uint32

const (
	// Labeled: processed, assigned to a basin or reconstructed; low 24
	// bits (when packed) hold the final label.
	Labeled Status = 0x00
	// Candidate: never queued; low 24 bits undefined.
	Candidate Status = 0x01
	// Queued: currently sitting in the hierarchical queue; low 24 bits
	// hold the tentative label.
	Queued Status = 0x02
	// WatershedLine: processed, on the watershed line.
	WatershedLine Status = 0xFF
)

// PackMarker encodes a status and a label into the 32-bit layout watershed
// and basins write: byte 3 is the status, bytes 2..0 are the label.
func PackMarker(status Status, label uint32) uint32 {
	return uint32(status)<<24 | (label & 0x00FFFFFF)
}

// UnpackStatus extracts the status byte from a packed marker value.
func UnpackStatus(v uint32) Status {
	return Status(v >> 24)
}

// UnpackLabel extracts the 24-bit label from a packed marker value.
func UnpackLabel(v uint32) uint32 {
	return v & 0x00FFFFFF
}

// Plane is a per-pixel Status array used where status is not packed into
// the output image itself (reconstruction's seed/mask images keep their
// native depth, so status needs its own backing store).
type Plane struct {
	data []Status
}

// NewPlane allocates a status plane of n positions, all Candidate.
func NewPlane(n int) *Plane {
	p := &Plane{data: make([]Status, n)}
	for i := range p.data {
		p.data[i] = Candidate
	}
	return p
}

// Get returns the status at a linear position.
func (p *Plane) Get(pos int) Status { return p.data[pos] }

// Set assigns the status at a linear position.
func (p *Plane) Set(pos int, s Status) { p.data[pos] = s }

// Linear converts (x, y[, z]) to the linear index used by Arena, Plane and
// Queue positions throughout this package.
func Linear(x, y, z, width, height int) int {
	return z*width*height + y*width + x
}

// Unlinear is the inverse of Linear.
func Unlinear(pos, width, height int) (x, y, z int) {
	plane := width * height
	z = pos / plane
	rem := pos % plane
	y = rem / width
	x = rem % width
	return
}
