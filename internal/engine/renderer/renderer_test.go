package renderer

import (
	"testing"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/galleon/internal/engine/model"
	"github.com/Faultbox/galleon/pkg/formats"
)

func TestVertexLayout(t *testing.T) {
	var v model.Vertex
	if size := unsafe.Sizeof(v); size != 32 {
		t.Errorf("expected 32-byte vertices, got %d", size)
	}
	if off := unsafe.Offsetof(v.Normal); off != 12 {
		t.Errorf("expected normal at offset 12, got %d", off)
	}
	if off := unsafe.Offsetof(v.TexCoord); off != 24 {
		t.Errorf("expected texcoord at offset 24, got %d", off)
	}
}

func TestPerspective(t *testing.T) {
	p := Perspective(45, 1280, 720, 0.1, 100)
	want := mgl32.Perspective(mgl32.DegToRad(45), 1280.0/720.0, 0.1, 100)
	if !p.ApproxEqual(want) {
		t.Errorf("expected %v, got %v", want, p)
	}

	// A minimized window must not produce NaNs.
	p = Perspective(45, 800, 0, 0.1, 100)
	for i, f := range p {
		if f != f {
			t.Fatalf("element %d is NaN", i)
		}
	}
}

func TestMaterialOf(t *testing.T) {
	tests := []struct {
		name string
		mat  formats.Material
		want materialUniforms
	}{
		{
			name: "no material",
			mat:  formats.Material{},
			want: materialUniforms{
				ambient:   mgl32.Vec3{1, 1, 1},
				diffuse:   mgl32.Vec3{1, 1, 1},
				shininess: 32,
				opacity:   1,
			},
		},
		{
			name: "explicit colors",
			mat: formats.Material{
				Ambient:   mgl32.Vec3{0.1, 0.1, 0.1},
				Diffuse:   mgl32.Vec3{0.8, 0.6, 0.4},
				Specular:  mgl32.Vec3{0.5, 0.5, 0.5},
				Shininess: 96,
				Dissolve:  0.5,
			},
			want: materialUniforms{
				ambient:   mgl32.Vec3{0.1, 0.1, 0.1},
				diffuse:   mgl32.Vec3{0.8, 0.6, 0.4},
				specular:  mgl32.Vec3{0.5, 0.5, 0.5},
				shininess: 96,
				opacity:   0.5,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := materialOf(model.SubMesh{Material: tt.mat})
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestErrorName(t *testing.T) {
	tests := []struct {
		code uint32
		want string
	}{
		{0x0500, "INVALID_ENUM"},
		{0x0502, "INVALID_OPERATION"},
		{0x0506, "INVALID_FRAMEBUFFER_OPERATION"},
		{0x1234, "0x1234"},
	}
	for _, tt := range tests {
		if got := ErrorName(tt.code); got != tt.want {
			t.Errorf("ErrorName(0x%04X): expected %s, got %s", tt.code, tt.want, got)
		}
	}
}
