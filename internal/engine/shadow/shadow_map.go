// Package shadow renders directional-light depth maps.
package shadow

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// DefaultSize is the shadow map edge length in texels.
const DefaultSize = 2048

// Map is a depth-only framebuffer sampled with sampler2DShadow.
type Map struct {
	FBO   uint32
	Depth uint32
	Size  int32

	savedViewport [4]int32
}

// NewMap creates a square shadow map. A size <= 0 selects DefaultSize.
func NewMap(size int32) (*Map, error) {
	if size <= 0 {
		size = DefaultSize
	}
	m := &Map{Size: size}

	gl.GenFramebuffers(1, &m.FBO)
	gl.BindFramebuffer(gl.FRAMEBUFFER, m.FBO)

	gl.GenTextures(1, &m.Depth)
	gl.BindTexture(gl.TEXTURE_2D, m.Depth)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.DEPTH_COMPONENT24, size, size, 0, gl.DEPTH_COMPONENT, gl.FLOAT, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// Outside the light frustum reads as fully lit.
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_BORDER)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_BORDER)
	border := [4]float32{1, 1, 1, 1}
	gl.TexParameterfv(gl.TEXTURE_2D, gl.TEXTURE_BORDER_COLOR, &border[0])

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_COMPARE_MODE, gl.COMPARE_REF_TO_TEXTURE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_COMPARE_FUNC, gl.LEQUAL)

	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, m.Depth, 0)
	gl.DrawBuffer(gl.NONE)
	gl.ReadBuffer(gl.NONE)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		m.Destroy()
		return nil, fmt.Errorf("shadow framebuffer incomplete: 0x%x", status)
	}
	return m, nil
}

// Begin redirects drawing into the depth map. Front faces are culled
// during the pass to keep lit surfaces free of acne.
func (m *Map) Begin() {
	gl.GetIntegerv(gl.VIEWPORT, &m.savedViewport[0])
	gl.BindFramebuffer(gl.FRAMEBUFFER, m.FBO)
	gl.Viewport(0, 0, m.Size, m.Size)
	gl.Clear(gl.DEPTH_BUFFER_BIT)
	gl.CullFace(gl.FRONT)
}

// End restores the default framebuffer and viewport, and culls back
// faces again.
func (m *Map) End() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(m.savedViewport[0], m.savedViewport[1], m.savedViewport[2], m.savedViewport[3])
	gl.CullFace(gl.BACK)
}

// BindDepth binds the depth texture to texture unit gl.TEXTURE0+unit.
func (m *Map) BindDepth(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, m.Depth)
}

// Destroy releases the framebuffer and texture.
func (m *Map) Destroy() {
	if m.FBO != 0 {
		gl.DeleteFramebuffers(1, &m.FBO)
		m.FBO = 0
	}
	if m.Depth != 0 {
		gl.DeleteTextures(1, &m.Depth)
		m.Depth = 0
	}
}
