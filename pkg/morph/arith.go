package morph

// This file holds the thin pointwise collaborators the engine's callers
// need around an Image (§1: "out of scope... specified only at their
// interface"), grounded on the mamba-image originals MB_Copy.c,
// MB_Compare.c, MB_Inv.c, MB_Histo.c and MB_Frame.c. Full arithmetic
// (Add/Sub/Mul/Div/Inf/Sup/Mask) stays out of scope per spec.md's Non-goals
// and is not implemented here.

// Copy copies src into dst pixel by pixel. Images must share Width and
// Height; depths may differ, in which case values are truncated or
// zero-extended.
func Copy(dst, src *Image) error {
	if !SameSize(dst, src) {
		return NewEngineError("Copy", BadSize, "")
	}
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			dst.Put(x, y, src.Get(x, y))
		}
	}
	return nil
}

// Invert writes dst[p] = depth.MaxValue() - src[p] for every pixel.
func Invert(dst, src *Image) error {
	if !SameSize(dst, src) {
		return NewEngineError("Invert", BadSize, "")
	}
	max := src.Depth.MaxValue()
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			dst.Put(x, y, max-src.Get(x, y))
		}
	}
	return nil
}

// Threshold writes 1 into dst wherever lo <= src[p] <= hi and 0 elsewhere.
// dst must be a depth-1 image.
func Threshold(dst, src *Image, lo, hi uint32) error {
	if !SameSize(dst, src) {
		return NewEngineError("Threshold", BadSize, "")
	}
	if dst.Depth != Depth1 {
		return NewEngineError("Threshold", BadDepth, "dst must be depth 1")
	}
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			v := src.Get(x, y)
			if v >= lo && v <= hi {
				dst.Put(x, y, 1)
			} else {
				dst.Put(x, y, 0)
			}
		}
	}
	return nil
}

// Compare reports whether a and b hold identical pixel values, as returned
// by Get. Depth is not compared: images of different depth are equal when
// every pixel value matches.
func Compare(a, b *Image) (bool, error) {
	if !SameSize(a, b) {
		return false, NewEngineError("Compare", BadSize, "")
	}
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			if a.Get(x, y) != b.Get(x, y) {
				return false, nil
			}
		}
	}
	return true, nil
}

// Frame fills every pixel on the border of the image (the outer ring of
// thickness 1) with value, leaving the interior untouched.
func Frame(img *Image, value uint32) {
	for x := 0; x < img.Width; x++ {
		img.Put(x, 0, value)
		img.Put(x, img.Height-1, value)
	}
	for y := 0; y < img.Height; y++ {
		img.Put(0, y, value)
		img.Put(img.Width-1, y, value)
	}
}

// Histogram returns a count of occurrences of each pixel value in [0,
// depth.MaxValue()] for depth-1 and depth-8 images. Depth-32 images are
// rejected with BadDepth.
func Histogram(img *Image) ([]uint64, error) {
	if img.Depth == Depth32 {
		return nil, NewEngineError("Histogram", BadDepth, "depth 32 histogram unsupported")
	}
	hist := make([]uint64, img.Depth.MaxValue()+1)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			hist[img.Get(x, y)]++
		}
	}
	return hist, nil
}
