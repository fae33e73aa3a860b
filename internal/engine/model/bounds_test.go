package model

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestEmptyBounds(t *testing.T) {
	b := EmptyBounds()
	if !b.IsEmpty() {
		t.Error("expected EmptyBounds to be empty")
	}
	if b.Contains(mgl32.Vec3{}) {
		t.Error("expected empty bounds to contain nothing")
	}
	if got := b.Transform(mgl32.Ident4()); !got.IsEmpty() {
		t.Errorf("expected transformed empty bounds to stay empty, got %v", got)
	}
}

func TestBoundsExtend(t *testing.T) {
	b := EmptyBounds()
	points := []mgl32.Vec3{
		{1, 2, 3},
		{-4, 0.5, 6},
		{2, -1, -7},
	}
	for _, p := range points {
		b.Extend(p)
	}

	if b.IsEmpty() {
		t.Fatal("expected bounds to be non-empty after Extend")
	}
	if b.Min != (mgl32.Vec3{-4, -1, -7}) {
		t.Errorf("expected min (-4, -1, -7), got %v", b.Min)
	}
	if b.Max != (mgl32.Vec3{2, 2, 6}) {
		t.Errorf("expected max (2, 2, 6), got %v", b.Max)
	}
	for _, p := range points {
		if !b.Contains(p) {
			t.Errorf("expected bounds to contain %v", p)
		}
	}
	if b.Contains(mgl32.Vec3{3, 0, 0}) {
		t.Error("expected (3, 0, 0) to be outside")
	}
	if c := b.Center(); c != (mgl32.Vec3{-1, 0.5, -0.5}) {
		t.Errorf("expected center (-1, 0.5, -0.5), got %v", c)
	}
	if s := b.Size(); s != (mgl32.Vec3{6, 3, 13}) {
		t.Errorf("expected size (6, 3, 13), got %v", s)
	}
}

func TestBoundsSinglePoint(t *testing.T) {
	b := EmptyBounds()
	b.Extend(mgl32.Vec3{1, 1, 1})
	if b.IsEmpty() {
		t.Error("expected a single point to give a non-empty box")
	}
	if b.Size() != (mgl32.Vec3{}) {
		t.Errorf("expected zero size, got %v", b.Size())
	}
}

func TestBoundsTransform(t *testing.T) {
	b := Bounds{Min: mgl32.Vec3{-1, 0, -2}, Max: mgl32.Vec3{1, 1, 2}}
	m := mgl32.Translate3D(10, 0, 0).Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(90)))

	got := b.Transform(m)
	want := Bounds{Min: mgl32.Vec3{8, 0, -1}, Max: mgl32.Vec3{12, 1, 1}}
	if !got.Min.ApproxEqualThreshold(want.Min, 1e-5) || !got.Max.ApproxEqualThreshold(want.Max, 1e-5) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
