package texture

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// twoRowImage is 2x2: top row red, bottom row blue.
func twoRowImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	img.SetRGBA(0, 0, red)
	img.SetRGBA(1, 0, red)
	img.SetRGBA(0, 1, blue)
	img.SetRGBA(1, 1, blue)
	return img
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	tests := []struct {
		n    int
		want bool
	}{
		{0, false},
		{1, true},
		{2, true},
		{3, false},
		{256, true},
		{384, false},
		{1024, true},
		{-4, false},
	}
	for _, tt := range tests {
		if got := IsPowerOfTwo(tt.n); got != tt.want {
			t.Errorf("IsPowerOfTwo(%d): expected %v, got %v", tt.n, tt.want, got)
		}
	}
}

func TestFlipVertical(t *testing.T) {
	img := twoRowImage()
	FlipVertical(img)

	if c := img.RGBAAt(0, 0); c.B != 255 {
		t.Errorf("expected blue on top after flip, got %v", c)
	}
	if c := img.RGBAAt(1, 1); c.R != 255 {
		t.Errorf("expected red at the bottom after flip, got %v", c)
	}
}

func TestFlipVerticalOddHeight(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 3))
	for y := 0; y < 3; y++ {
		img.SetRGBA(0, y, color.RGBA{R: uint8(y), A: 255})
	}
	FlipVertical(img)
	for y := 0; y < 3; y++ {
		if got := img.RGBAAt(0, y).R; got != uint8(2-y) {
			t.Errorf("row %d: expected %d, got %d", y, 2-y, got)
		}
	}
}

func TestPrepare(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planks.png")
	writePNG(t, path, twoRowImage())

	img, err := Prepare(path)
	if err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Fatalf("expected 2x2, got %v", img.Bounds())
	}
	// Prepared rows are bottom-first.
	if c := img.RGBAAt(0, 0); c.B != 255 {
		t.Errorf("expected the bottom (blue) row first, got %v", c)
	}
}

func TestPrepareNonPowerOfTwo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sail.png")
	writePNG(t, path, image.NewRGBA(image.Rect(0, 0, 3, 5)))

	img, err := Prepare(path)
	if err != nil {
		t.Fatalf("expected NPOT texture to load, got %v", err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 5 {
		t.Errorf("expected 3x5, got %v", img.Bounds())
	}
}

func TestDecodeErrors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if _, err := Decode(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("expected error for a missing file")
	}
	if _, err := Decode(garbage); err == nil {
		t.Error("expected error for undecodable data")
	}
}

func TestToRGBAOffsetOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 7, 6))
	src.SetRGBA(5, 5, color.RGBA{G: 200, A: 255})

	got := ToRGBA(src)
	if got.Bounds() != image.Rect(0, 0, 2, 1) {
		t.Fatalf("expected bounds at origin, got %v", got.Bounds())
	}
	if got.RGBAAt(0, 0).G != 200 {
		t.Errorf("expected pixel moved to (0, 0), got %v", got.RGBAAt(0, 0))
	}
}
