// ABOUTME: Tests for GIF compositing with disposal methods
// ABOUTME: Verifies canvas carry-over, background restore, and error cases

package frames

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"strings"
	"testing"
)

var testPalette = color.Palette{
	color.RGBA{},               // 0: transparent
	color.RGBA{R: 255, A: 255}, // 1: red
	color.RGBA{B: 255, A: 255}, // 2: blue
	color.RGBA{G: 255, A: 255}, // 3: green
}

// paletted builds a frame covering rect with every pixel set to idx.
func paletted(rect image.Rectangle, idx uint8) *image.Paletted {
	p := image.NewPaletted(rect, testPalette)
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			p.SetColorIndex(x, y, idx)
		}
	}
	return p
}

func TestComposite_FrameCountAndDimensions(t *testing.T) {
	t.Parallel()

	g := &gif.GIF{
		Image: []*image.Paletted{
			paletted(image.Rect(0, 0, 4, 4), 1),
			paletted(image.Rect(0, 0, 4, 4), 2),
			paletted(image.Rect(0, 0, 4, 4), 3),
		},
		Disposal: []byte{gif.DisposalNone, gif.DisposalNone, gif.DisposalNone},
		Config:   image.Config{Width: 4, Height: 4},
	}

	out, err := Composite(g)
	if err != nil {
		t.Fatalf("Composite() error: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 composited frames, got %d", len(out))
	}
	for i, f := range out {
		if f.Bounds().Dx() != 4 || f.Bounds().Dy() != 4 {
			t.Errorf("frame %d bounds = %v, want 4x4", i, f.Bounds())
		}
	}
}

func TestComposite_TransparentPixelsRetainCanvas(t *testing.T) {
	t.Parallel()

	// Frame 0 fills the screen red; frame 1 draws a blue 2x2 patch in the
	// top-left corner. Outside the patch the red canvas must show through.
	g := &gif.GIF{
		Image: []*image.Paletted{
			paletted(image.Rect(0, 0, 4, 4), 1),
			paletted(image.Rect(0, 0, 2, 2), 2),
		},
		Disposal: []byte{gif.DisposalNone, gif.DisposalNone},
		Config:   image.Config{Width: 4, Height: 4},
	}

	out, err := Composite(g)
	if err != nil {
		t.Fatalf("Composite() error: %v", err)
	}

	second := out[1]
	if got := second.NRGBAAt(0, 0); got.B != 255 || got.A != 255 {
		t.Errorf("patch pixel = %v, want blue", got)
	}
	if got := second.NRGBAAt(3, 3); got.R != 255 || got.A != 255 {
		t.Errorf("carried pixel = %v, want red from previous frame", got)
	}

	// The first snapshot must be unaffected by later compositing.
	if got := out[0].NRGBAAt(0, 0); got.R != 255 {
		t.Errorf("earlier snapshot mutated: %v", got)
	}
}

func TestComposite_RestoreBackground(t *testing.T) {
	t.Parallel()

	// Frame 0 fills red with background disposal; frame 1 draws only a
	// 1x1 patch. Everything outside the patch must be transparent.
	g := &gif.GIF{
		Image: []*image.Paletted{
			paletted(image.Rect(0, 0, 4, 4), 1),
			paletted(image.Rect(0, 0, 1, 1), 2),
		},
		Disposal: []byte{gif.DisposalBackground, gif.DisposalNone},
		Config:   image.Config{Width: 4, Height: 4},
	}

	out, err := Composite(g)
	if err != nil {
		t.Fatalf("Composite() error: %v", err)
	}

	if got := out[1].NRGBAAt(0, 0); got.B != 255 {
		t.Errorf("patch pixel = %v, want blue", got)
	}
	if got := out[1].NRGBAAt(3, 3); got.A != 0 {
		t.Errorf("disposed pixel = %v, want transparent", got)
	}
}

func TestComposite_RestorePreviousKeepsCanvas(t *testing.T) {
	t.Parallel()

	g := &gif.GIF{
		Image: []*image.Paletted{
			paletted(image.Rect(0, 0, 2, 2), 1),
			paletted(image.Rect(0, 0, 1, 1), 2),
		},
		Disposal: []byte{gif.DisposalPrevious, gif.DisposalNone},
		Config:   image.Config{Width: 2, Height: 2},
	}

	out, err := Composite(g)
	if err != nil {
		t.Fatalf("Composite() error: %v", err)
	}
	if got := out[1].NRGBAAt(1, 1); got.R != 255 {
		t.Errorf("pixel after restore-previous = %v, want carried red", got)
	}
}

func TestComposite_ZeroFrames(t *testing.T) {
	t.Parallel()

	_, err := Composite(&gif.GIF{})
	if err == nil {
		t.Fatal("expected error for gif with no frames")
	}
	if !strings.Contains(err.Error(), "no frames") {
		t.Errorf("error = %q, want mention of missing frames", err)
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	g := &gif.GIF{
		Image: []*image.Paletted{
			paletted(image.Rect(0, 0, 4, 4), 1),
			paletted(image.Rect(0, 0, 4, 4), 2),
		},
		Delay:    []int{3, 3},
		Disposal: []byte{gif.DisposalNone, gif.DisposalNone},
		Config:   image.Config{Width: 4, Height: 4},
	}

	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, g); err != nil {
		t.Fatalf("EncodeAll() error: %v", err)
	}

	out, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if len(out) != 2 {
		t.Errorf("expected 2 frames, got %d", len(out))
	}
	if got := out[0].NRGBAAt(0, 0); got.R != 255 || got.A != 255 {
		t.Errorf("frame 0 pixel = %v, want red", got)
	}
}

func TestDecode_InvalidData(t *testing.T) {
	t.Parallel()

	_, err := Decode(strings.NewReader("not a gif"))
	if err == nil {
		t.Fatal("expected error for invalid data")
	}
}
