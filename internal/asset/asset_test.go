// ABOUTME: Tests that the embedded animation decodes into usable frames
// ABOUTME: Guards the asset against accidental corruption or replacement

package asset

import (
	"bytes"
	"testing"

	"github.com/mauromedda/sipping/internal/frames"
)

func TestGIF_Decodes(t *testing.T) {
	t.Parallel()

	data := GIF()
	if len(data) == 0 {
		t.Fatal("embedded asset is empty")
	}

	decoded, err := frames.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if len(decoded) < 2 {
		t.Fatalf("expected an animation with multiple frames, got %d", len(decoded))
	}

	w, h := decoded[0].Bounds().Dx(), decoded[0].Bounds().Dy()
	for i, f := range decoded {
		if f.Bounds().Dx() != w || f.Bounds().Dy() != h {
			t.Errorf("frame %d bounds = %v, want %dx%d", i, f.Bounds(), w, h)
		}
	}
}
