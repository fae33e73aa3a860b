package texture

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Upload creates a mipmapped sRGB 2D texture from img and returns its id.
// It must run on the thread that owns the GL context.
func Upload(img *image.RGBA) uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.SRGB_ALPHA,
		int32(img.Bounds().Dx()), int32(img.Bounds().Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return id
}

// Solid creates a 1x1 texture of a single color, bound where a material
// has no texture so the shaders can always sample.
func Solid(r, g, b, a uint8) uint32 {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	copy(img.Pix, []byte{r, g, b, a})
	return Upload(img)
}

// Delete frees a texture created by Upload or Solid.
func Delete(id uint32) {
	if id != 0 {
		gl.DeleteTextures(1, &id)
	}
}

// Loader loads texture files into GL textures. It satisfies the model
// package's TextureLoader.
type Loader struct {
	uploaded int
}

// NewLoader creates a Loader. A GL context must be current.
func NewLoader() *Loader {
	return &Loader{}
}

// Load decodes path and uploads it.
func (l *Loader) Load(path string) (uint32, error) {
	img, err := Prepare(path)
	if err != nil {
		return 0, err
	}
	l.uploaded++
	return Upload(img), nil
}

// Release deletes a texture returned by Load.
func (l *Loader) Release(id uint32) {
	Delete(id)
}

// Uploaded returns the number of textures uploaded so far.
func (l *Loader) Uploaded() int {
	return l.uploaded
}
