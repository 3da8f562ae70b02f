// ABOUTME: ANSI half-block rasterizer turning composited frames into text lines
// ABOUTME: Uses ▀/▄ with true-color escapes to pack two pixel rows per terminal row

package render

import (
	"image"
	"math"
	"strings"

	"golang.org/x/image/draw"
)

// alphaThreshold is the alpha value at and above which a pixel counts as
// opaque. Below it the pixel renders as terminal background.
const alphaThreshold = 30

// Frame converts an image into ANSI half-block art lines at the given
// character width. Height follows the source aspect ratio, forced even so
// every terminal row maps to exactly one pixel-row pair. Scaling uses
// CatmullRom; nearest-neighbor visibly degrades glyph colors.
//
// Output is deterministic: the same frame at the same width always yields
// byte-identical lines.
func Frame(src image.Image, width int) []string {
	b := src.Bounds()
	srcW, srcH := b.Dx(), b.Dy()
	if srcW == 0 || srcH == 0 || width <= 0 {
		return nil
	}

	height := int(math.Round(float64(width) * float64(srcH) / float64(srcW)))
	if height%2 != 0 {
		height++
	}
	if height == 0 {
		return nil
	}

	scaled := resample(src, width, height)

	lines := make([]string, 0, height/2)
	for y := 0; y < height; y += 2 {
		var sb strings.Builder
		var state colorState
		for x := 0; x < width; x++ {
			top := scaled.NRGBAAt(x, y)
			bot := scaled.NRGBAAt(x, y+1)
			c, glyph := classify(
				rgb{top.R, top.G, top.B}, top.A,
				rgb{bot.R, bot.G, bot.B}, bot.A,
			)
			state.apply(&sb, c)
			sb.WriteString(glyph)
		}
		state.finish(&sb)
		lines = append(lines, sb.String())
	}

	return lines
}

// classify maps a top/bottom pixel pair to its glyph and color requirement.
func classify(top rgb, topA uint8, bot rgb, botA uint8) (span, string) {
	topOpaque := topA >= alphaThreshold
	botOpaque := botA >= alphaThreshold

	switch {
	case !topOpaque && !botOpaque:
		return span{}, " "
	case !topOpaque:
		return span{fg: bot, hasFG: true}, "▄"
	case !botOpaque:
		return span{fg: top, hasFG: true}, "▀"
	default:
		return span{fg: top, hasFG: true, bg: bot, hasBG: true}, "▀"
	}
}

// resample scales src to the target size into a straight-alpha buffer.
// A copy is skipped when the source already matches and is NRGBA.
func resample(src image.Image, w, h int) *image.NRGBA {
	b := src.Bounds()
	if b.Dx() == w && b.Dy() == h {
		if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
			return n
		}
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
