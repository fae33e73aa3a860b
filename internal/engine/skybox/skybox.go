// Package skybox draws a cube-mapped sky around the camera.
package skybox

import (
	"fmt"
	"path/filepath"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/galleon/internal/engine/shader"
	"github.com/Faultbox/galleon/internal/engine/texture"
)

// FaceNames are the face file stems in GL cube map order (+X, -X, +Y, -Y, +Z, -Z).
var FaceNames = [6]string{"xpos", "xneg", "ypos", "yneg", "zpos", "zneg"}

// FacePaths returns the six face image paths inside dir.
func FacePaths(dir, ext string) [6]string {
	var paths [6]string
	for i, name := range FaceNames {
		paths[i] = filepath.Join(dir, name+ext)
	}
	return paths
}

// Haze tints the sky towards a color near the horizon.
type Haze struct {
	Color    mgl32.Vec3
	Height   float32
	Strength float32
}

// Skybox is a cube map and the unit cube it is drawn on.
type Skybox struct {
	cubeMap  uint32
	vao, vbo uint32
}

// Load decodes the six faces and uploads them as a cube map. All faces
// must share one size.
func Load(paths [6]string) (*Skybox, error) {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, tex)

	size := -1
	for i, path := range paths {
		img, err := texture.Decode(path)
		if err == nil && size >= 0 && (img.Bounds().Dx() != size || img.Bounds().Dy() != size) {
			err = fmt.Errorf("face is %dx%d, expected %dx%d", img.Bounds().Dx(), img.Bounds().Dy(), size, size)
		}
		if err != nil {
			gl.DeleteTextures(1, &tex)
			return nil, fmt.Errorf("skybox face %s: %w", FaceNames[i], err)
		}
		size = img.Bounds().Dx()
		gl.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i), 0, gl.SRGB_ALPHA,
			int32(img.Bounds().Dx()), int32(img.Bounds().Dy()), 0,
			gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	}

	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)

	s := &Skybox{cubeMap: tex}
	verts := cubeVertices()
	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)
	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, unsafe.Pointer(&verts[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)
	return s, nil
}

// Draw renders the sky behind everything already drawn. p must be the
// skybox program.
func (s *Skybox) Draw(p *shader.Program, view, projection mgl32.Mat4, haze Haze) {
	gl.DepthFunc(gl.LEQUAL)
	gl.DepthMask(false)

	p.Use()
	p.SetMat4("view", SkyView(view))
	p.SetMat4("projection", projection)
	p.SetVec3("hazeColor", haze.Color)
	p.SetFloat("hazeHeight", haze.Height)
	p.SetFloat("hazeStrength", haze.Strength)
	p.SetInt("skybox", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, s.cubeMap)
	gl.BindVertexArray(s.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 36)
	gl.BindVertexArray(0)

	gl.DepthMask(true)
}

// Destroy frees the cube map and the cube.
func (s *Skybox) Destroy() {
	gl.DeleteTextures(1, &s.cubeMap)
	gl.DeleteVertexArrays(1, &s.vao)
	gl.DeleteBuffers(1, &s.vbo)
}

// SkyView drops the translation from a view matrix so the sky stays
// centered on the camera.
func SkyView(view mgl32.Mat4) mgl32.Mat4 {
	return view.Mat3().Mat4()
}

// cubeVertices returns the 36 positions of a unit cube, wound to face inwards.
func cubeVertices() []float32 {
	corners := [8]mgl32.Vec3{
		{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
		{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	}
	faces := [6][4]int{
		{1, 5, 6, 2}, // +X
		{4, 0, 3, 7}, // -X
		{3, 2, 6, 7}, // +Y
		{4, 5, 1, 0}, // -Y
		{5, 4, 7, 6}, // +Z
		{0, 1, 2, 3}, // -Z
	}
	out := make([]float32, 0, 36*3)
	for _, f := range faces {
		for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
			c := corners[f[i]]
			out = append(out, c[0], c[1], c[2])
		}
	}
	return out
}
