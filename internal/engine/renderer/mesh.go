package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/galleon/internal/engine/model"
	"github.com/Faultbox/galleon/internal/engine/shader"
	"github.com/Faultbox/galleon/internal/engine/texture"
)

// Texture units used by the model shader.
const (
	UnitAmbient  = 0
	UnitDiffuse  = 1
	UnitSpecular = 2
	UnitShadow   = 3
)

var roleUnits = map[model.TextureRole]uint32{
	model.RoleAmbient:  UnitAmbient,
	model.RoleDiffuse:  UnitDiffuse,
	model.RoleSpecular: UnitSpecular,
}

type gpuMesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
	textures      [3]uint32 // by unit; 0 falls back to white
	material      materialUniforms
}

type materialUniforms struct {
	ambient, diffuse, specular mgl32.Vec3
	shininess, opacity         float32
}

// MeshRenderer draws the sub-meshes of one model. It borrows the model's
// texture ids and owns only its vertex buffers.
type MeshRenderer struct {
	meshes []gpuMesh
	white  uint32
}

// NewMeshRenderer uploads every non-empty sub-mesh of m. white is bound
// for texture slots the material leaves empty.
func NewMeshRenderer(m *model.Model, white uint32) *MeshRenderer {
	mr := &MeshRenderer{white: white}
	for _, sm := range m.Meshes() {
		if len(sm.Indices) == 0 {
			continue
		}
		mr.meshes = append(mr.meshes, uploadMesh(sm))
	}
	return mr
}

func uploadMesh(sm model.SubMesh) gpuMesh {
	g := gpuMesh{
		indexCount: int32(len(sm.Indices)),
		material:   materialOf(sm),
	}
	for _, tex := range sm.Textures {
		if unit, ok := roleUnits[tex.Role]; ok {
			g.textures[unit] = tex.ID
		}
	}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	stride := int32(unsafe.Sizeof(model.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(sm.Vertices)*int(stride), unsafe.Pointer(&sm.Vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, unsafe.Offsetof(model.Vertex{}.Position))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, unsafe.Offsetof(model.Vertex{}.Normal))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, unsafe.Offsetof(model.Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(sm.Indices)*4, unsafe.Pointer(&sm.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return g
}

// materialOf maps MTL colors to shader factors. Exporters often leave a
// color at zero when a texture carries it, so zero means "use the texture".
func materialOf(sm model.SubMesh) materialUniforms {
	mat := sm.Material
	u := materialUniforms{
		ambient:   orWhite(mat.Ambient),
		diffuse:   orWhite(mat.Diffuse),
		specular:  mat.Specular,
		shininess: mat.Shininess,
		opacity:   mat.Dissolve,
	}
	if u.opacity <= 0 {
		u.opacity = 1
	}
	if u.shininess <= 0 {
		u.shininess = 32
	}
	return u
}

func orWhite(c mgl32.Vec3) mgl32.Vec3 {
	if c == (mgl32.Vec3{}) {
		return mgl32.Vec3{1, 1, 1}
	}
	return c
}

// Draw renders the model with p, which must be in use and have its
// camera, light and shadow uniforms set.
func (mr *MeshRenderer) Draw(p *shader.Program, world mgl32.Mat4) {
	p.SetMat4("model", world)
	p.SetMat3("normalMatrix", world.Mat3().Inv().Transpose())
	p.SetInt("ambientTexture", UnitAmbient)
	p.SetInt("diffuseTexture", UnitDiffuse)
	p.SetInt("specularTexture", UnitSpecular)

	for i := range mr.meshes {
		g := &mr.meshes[i]
		for unit, id := range g.textures {
			if id == 0 {
				id = mr.white
			}
			gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
			gl.BindTexture(gl.TEXTURE_2D, id)
		}
		p.SetVec3("materialAmbient", g.material.ambient)
		p.SetVec3("materialDiffuse", g.material.diffuse)
		p.SetVec3("materialSpecular", g.material.specular)
		p.SetFloat("shininess", g.material.shininess)
		p.SetFloat("opacity", g.material.opacity)

		gl.BindVertexArray(g.vao)
		gl.DrawElements(gl.TRIANGLES, g.indexCount, gl.UNSIGNED_INT, nil)
	}
	gl.BindVertexArray(0)
}

// DrawDepth renders positions only, for the shadow pass.
func (mr *MeshRenderer) DrawDepth(p *shader.Program, world mgl32.Mat4) {
	p.SetMat4("model", world)
	for i := range mr.meshes {
		gl.BindVertexArray(mr.meshes[i].vao)
		gl.DrawElements(gl.TRIANGLES, mr.meshes[i].indexCount, gl.UNSIGNED_INT, nil)
	}
	gl.BindVertexArray(0)
}

// Destroy deletes the vertex buffers. Textures stay with the model.
func (mr *MeshRenderer) Destroy() {
	for i := range mr.meshes {
		g := &mr.meshes[i]
		gl.DeleteVertexArrays(1, &g.vao)
		gl.DeleteBuffers(1, &g.vbo)
		gl.DeleteBuffers(1, &g.ebo)
	}
	mr.meshes = nil
}

// NewWhiteTexture creates the fallback texture for empty material slots.
func NewWhiteTexture() uint32 {
	return texture.Solid(255, 255, 255, 255)
}
