package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"

	"github.com/Faultbox/galleon/internal/engine/texture"
)

// Screenshots writes timestamped PNG captures of the framebuffer.
type Screenshots struct {
	dir    string
	prefix string
	now    func() time.Time
}

// NewScreenshots writes into dir, which is created on the first capture.
func NewScreenshots(dir, prefix string) *Screenshots {
	return &Screenshots{dir: dir, prefix: prefix, now: time.Now}
}

// Capture reads the back buffer and saves it. It returns the file name.
func (s *Screenshots) Capture(width, height int) (string, error) {
	if width <= 0 || height <= 0 {
		return "", errors.Errorf("invalid screenshot size %dx%d", width, height)
	}
	pixels := make([]byte, width*height*4)
	gl.ReadBuffer(gl.BACK)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	img, err := FromPixels(pixels, width, height)
	if err != nil {
		return "", err
	}
	return s.Save(img)
}

// FromPixels wraps bottom-up RGBA rows, as GL returns them, in a top-down
// image.
func FromPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("invalid screenshot size %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return nil, errors.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}
	img := &image.RGBA{
		Pix:    pixels,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	texture.FlipVertical(img)
	return img, nil
}

// Save encodes img as PNG under a timestamped name.
func (s *Screenshots) Save(img image.Image) (string, error) {
	if s.dir != "" {
		if err := os.MkdirAll(s.dir, 0755); err != nil {
			return "", errors.Wrap(err, "creating screenshot dir")
		}
	}
	name := filepath.Join(s.dir, s.filename())

	f, err := os.Create(name)
	if err != nil {
		return "", errors.Wrap(err, "creating screenshot")
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", errors.Wrap(err, "encoding screenshot")
	}
	return name, nil
}

func (s *Screenshots) filename() string {
	return fmt.Sprintf("%s_%s.png", s.prefix, s.now().Format("2006-01-02_15-04-05.000"))
}
