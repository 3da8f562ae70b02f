// ABOUTME: Tests for horizontal frame mirroring
// ABOUTME: Verifies pixel symmetry and that source frames stay untouched

package frames

import (
	"image"
	"image/color"
	"testing"
)

func TestMirror_Symmetry(t *testing.T) {
	t.Parallel()

	src := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 10), G: uint8(y), A: 255})
		}
	}

	out := Mirror([]*image.NRGBA{src})
	if len(out) != 1 {
		t.Fatalf("expected 1 mirrored frame, got %d", len(out))
	}

	m := out[0]
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			want := src.NRGBAAt(3-x, y)
			if got := m.NRGBAAt(x, y); got != want {
				t.Errorf("mirror(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}

	// Source must not be mutated.
	if got := src.NRGBAAt(1, 0); got.R != 10 {
		t.Errorf("source mutated: %v", got)
	}
}

func TestMirror_Empty(t *testing.T) {
	t.Parallel()

	if out := Mirror(nil); len(out) != 0 {
		t.Errorf("expected empty result, got %d frames", len(out))
	}
}
