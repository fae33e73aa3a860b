package texture

import (
	"fmt"
	"image"
	"image/color"
)

// TGA image types.
const (
	TGATypeTrueColor    = 2
	TGATypeGray         = 3
	TGATypeTrueColorRLE = 10
	TGATypeGrayRLE      = 11
)

const tgaHeaderSize = 18

// DecodeTGA decodes an uncompressed or RLE true-color (24/32 bit) or
// grayscale (8 bit) TGA image. Color-mapped files are rejected.
func DecodeTGA(data []byte) (*image.RGBA, error) {
	if len(data) < tgaHeaderSize {
		return nil, fmt.Errorf("tga: header truncated (%d bytes)", len(data))
	}

	idLength := int(data[0])
	if data[1] != 0 {
		return nil, fmt.Errorf("tga: color-mapped images are not supported")
	}
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	topToBottom := data[17]&0x20 != 0

	gray := imageType == TGATypeGray || imageType == TGATypeGrayRLE
	rle := imageType == TGATypeTrueColorRLE || imageType == TGATypeGrayRLE
	switch {
	case imageType != TGATypeTrueColor && imageType != TGATypeTrueColorRLE && !gray:
		return nil, fmt.Errorf("tga: unsupported image type %d", imageType)
	case gray && bpp != 8:
		return nil, fmt.Errorf("tga: unsupported grayscale depth %d", bpp)
	case !gray && bpp != 24 && bpp != 32:
		return nil, fmt.Errorf("tga: unsupported color depth %d", bpp)
	case width == 0 || height == 0:
		return nil, fmt.Errorf("tga: empty image %dx%d", width, height)
	}

	offset := tgaHeaderSize + idLength
	if offset > len(data) {
		return nil, fmt.Errorf("tga: image id truncated")
	}

	r := &tgaReader{
		src:         data[offset:],
		img:         image.NewRGBA(image.Rect(0, 0, width, height)),
		pixelSize:   bpp / 8,
		topToBottom: topToBottom,
	}
	var err error
	if rle {
		err = r.readRLE()
	} else {
		err = r.readRaw()
	}
	if err != nil {
		return nil, err
	}
	return r.img, nil
}

type tgaReader struct {
	src         []byte
	pos         int
	img         *image.RGBA
	pixelSize   int
	topToBottom bool
	written     int
}

func (r *tgaReader) total() int {
	b := r.img.Bounds()
	return b.Dx() * b.Dy()
}

// next reads one BGR(A) or gray pixel.
func (r *tgaReader) next() (color.RGBA, error) {
	if r.pos+r.pixelSize > len(r.src) {
		return color.RGBA{}, fmt.Errorf("tga: pixel data truncated at pixel %d of %d", r.written, r.total())
	}
	p := r.src[r.pos : r.pos+r.pixelSize]
	r.pos += r.pixelSize

	switch r.pixelSize {
	case 1:
		return color.RGBA{R: p[0], G: p[0], B: p[0], A: 255}, nil
	case 3:
		return color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}, nil
	default:
		return color.RGBA{R: p[2], G: p[1], B: p[0], A: p[3]}, nil
	}
}

// put stores c at the next pixel in file order. Files are bottom-up
// unless the descriptor says otherwise.
func (r *tgaReader) put(c color.RGBA) {
	w := r.img.Bounds().Dx()
	x, y := r.written%w, r.written/w
	if !r.topToBottom {
		y = r.img.Bounds().Dy() - 1 - y
	}
	r.img.SetRGBA(x, y, c)
	r.written++
}

func (r *tgaReader) readRaw() error {
	for r.written < r.total() {
		c, err := r.next()
		if err != nil {
			return err
		}
		r.put(c)
	}
	return nil
}

func (r *tgaReader) readRLE() error {
	for r.written < r.total() {
		if r.pos >= len(r.src) {
			return fmt.Errorf("tga: RLE data truncated at pixel %d of %d", r.written, r.total())
		}
		header := r.src[r.pos]
		r.pos++
		count := min(int(header&0x7F)+1, r.total()-r.written)

		if header&0x80 != 0 {
			c, err := r.next()
			if err != nil {
				return err
			}
			for i := 0; i < count; i++ {
				r.put(c)
			}
			continue
		}
		for i := 0; i < count; i++ {
			c, err := r.next()
			if err != nil {
				return err
			}
			r.put(c)
		}
	}
	return nil
}
