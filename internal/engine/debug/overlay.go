package debug

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/galleon/internal/engine/shader"
)

// Lines is a static line list on the GPU.
type Lines struct {
	vao, vbo uint32
	count    int32
	Color    mgl32.Vec3
}

// NewLines uploads vertices, three floats per vertex. It returns nil for
// an empty list.
func NewLines(vertices []float32, color mgl32.Vec3) *Lines {
	if len(vertices) == 0 {
		return nil
	}
	l := &Lines{count: int32(len(vertices) / 3), Color: color}

	gl.GenVertexArrays(1, &l.vao)
	gl.BindVertexArray(l.vao)
	gl.GenBuffers(1, &l.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, l.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)
	return l
}

// Draw renders the lines with p, which must be in use, under modelMatrix.
func (l *Lines) Draw(p *shader.Program, modelMatrix mgl32.Mat4) {
	if l == nil {
		return
	}
	p.SetMat4("model", modelMatrix)
	p.SetVec3("color", l.Color)
	gl.BindVertexArray(l.vao)
	gl.DrawArrays(gl.LINES, 0, l.count)
	gl.BindVertexArray(0)
}

// Destroy frees the buffers.
func (l *Lines) Destroy() {
	if l == nil {
		return
	}
	gl.DeleteVertexArrays(1, &l.vao)
	gl.DeleteBuffers(1, &l.vbo)
}
