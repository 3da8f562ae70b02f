// ABOUTME: Horizontal mirroring of composited frames
// ABOUTME: Produces new buffers; inputs are never mutated

package frames

import "image"

// Mirror returns horizontally flipped copies of the given frames.
func Mirror(in []*image.NRGBA) []*image.NRGBA {
	out := make([]*image.NRGBA, len(in))
	for i, src := range in {
		out[i] = flipHorizontal(src)
	}
	return out
}

func flipHorizontal(src *image.NRGBA) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.SetNRGBA(b.Min.X+b.Max.X-1-x, y, src.NRGBAAt(x, y))
		}
	}
	return dst
}
