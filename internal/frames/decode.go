// ABOUTME: GIF frame decoder producing fully composited RGBA canvases
// ABOUTME: Honors per-frame disposal methods so partial frames render correctly

package frames

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"
)

// disposal is the canvas action applied after a frame is composited,
// before the next frame is drawn.
type disposal uint8

const (
	disposeNone       disposal = iota // keep the canvas as composited
	disposeBackground                 // clear the canvas to transparent
	disposePrevious                   // approximated as disposeNone; see Decode
)

// disposalOf maps the GIF disposal byte to a disposal value.
func disposalOf(b byte) disposal {
	switch b {
	case gif.DisposalBackground:
		return disposeBackground
	case gif.DisposalPrevious:
		return disposePrevious
	default:
		return disposeNone
	}
}

// Decode reads an animated GIF and returns one fully composited NRGBA
// frame per source frame, all sharing the logical screen dimensions.
//
// Each source frame is alpha-masked onto a persistent canvas: opaque
// pixels overwrite, transparent pixels leave the canvas untouched. The
// "restore to previous" disposal method is treated as "do not dispose";
// a fully general decoder would need a canvas stack, which the bundled
// asset never exercises.
func Decode(r io.Reader) ([]*image.NRGBA, error) {
	g, err := gif.DecodeAll(r)
	if err != nil {
		return nil, fmt.Errorf("decoding gif: %w", err)
	}
	return Composite(g)
}

// Composite flattens an already-decoded GIF into composited frames.
func Composite(g *gif.GIF) ([]*image.NRGBA, error) {
	if len(g.Image) == 0 {
		return nil, fmt.Errorf("gif has no frames")
	}

	w, h := g.Config.Width, g.Config.Height
	if w == 0 || h == 0 {
		b := g.Image[0].Bounds()
		w, h = b.Max.X, b.Max.Y
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, w, h))
	out := make([]*image.NRGBA, 0, len(g.Image))

	for i, src := range g.Image {
		compositeOver(canvas, src)
		out = append(out, snapshot(canvas))

		var d disposal
		if i < len(g.Disposal) {
			d = disposalOf(g.Disposal[i])
		}
		switch d {
		case disposeBackground:
			canvas = image.NewNRGBA(image.Rect(0, 0, w, h))
		case disposeNone, disposePrevious:
			// canvas carries forward
		}
	}

	return out, nil
}

// compositeOver alpha-masks src onto dst within src's bounds. GIF frames
// may cover a sub-rectangle of the logical screen.
func compositeOver(dst *image.NRGBA, src *image.Paletted) {
	b := src.Bounds().Intersect(dst.Bounds())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			if c.A != 0 {
				dst.SetNRGBA(x, y, c)
			}
		}
	}
}

// snapshot returns an immutable copy of the canvas.
func snapshot(canvas *image.NRGBA) *image.NRGBA {
	cp := image.NewNRGBA(canvas.Rect)
	copy(cp.Pix, canvas.Pix)
	return cp
}
