package morph

// Field is the minimal pixel-grid contract the engine package floods over.
// Image (2D) and Volume (3D) both expose a Field so every engine operator
// is written once against (x, y, z) and grid.Kind.Is3D() rather than once
// per dimensionality, generalizing the source's per-depth textual
// specialization (spec.md §9) one step further.
type Field interface {
	// Dims returns width, height and length (length is 1 for a 2D field).
	Dims() (width, height, length int)
	Depth() Depth
	Get(x, y, z int) uint32
	Put(x, y, z int, v uint32)
}

type imageField struct{ img *Image }

func (f imageField) Dims() (int, int, int)     { return f.img.Width, f.img.Height, 1 }
func (f imageField) Depth() Depth              { return f.img.Depth }
func (f imageField) Get(x, y, z int) uint32    { return f.img.Get(x, y) }
func (f imageField) Put(x, y, z int, v uint32) { f.img.Put(x, y, v) }

// Field adapts img to the Field interface.
func (img *Image) Field() Field { return imageField{img} }

type volumeField struct{ vol *Volume }

func (f volumeField) Dims() (int, int, int)     { return f.vol.Width, f.vol.Height, f.vol.Length }
func (f volumeField) Depth() Depth              { return f.vol.Depth }
func (f volumeField) Get(x, y, z int) uint32    { return f.vol.Get(x, y, z) }
func (f volumeField) Put(x, y, z int, v uint32) { f.vol.Put(x, y, z, v) }

// Field adapts vol to the Field interface.
func (vol *Volume) Field() Field { return volumeField{vol} }

// SameDims reports whether two fields share width, height and length (not
// depth).
func SameDims(a, b Field) bool {
	aw, ah, al := a.Dims()
	bw, bh, bl := b.Dims()
	return aw == bw && ah == bh && al == bl
}
