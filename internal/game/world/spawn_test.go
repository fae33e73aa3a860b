package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/galleon/internal/engine/model"
)

func TestSpawnPoint(t *testing.T) {
	p, ok := SpawnPoint(testDeck())
	if !ok {
		t.Fatal("expected a spawn point")
	}
	// The ledge straddles the middle of the deck.
	if !mgl32.FloatEqualThreshold(p[1], 0.4, 1e-6) {
		t.Errorf("expected to spawn on the ledge, got %v", p)
	}
	if h, ok := testDeck().HeightAt(p[0], p[2], p[1]); !ok || !mgl32.FloatEqualThreshold(h, p[1], 1e-5) {
		t.Errorf("expected the spawn point on the surface, got %f (%v)", h, ok)
	}
}

func TestSpawnPoint_NothingWalkable(t *testing.T) {
	wall := model.SubMesh{
		Vertices: []model.Vertex{
			{Position: mgl32.Vec3{0, 0, 0}},
			{Position: mgl32.Vec3{1, 0, 0}},
			{Position: mgl32.Vec3{0, 1, 0}},
		},
		Indices: []uint32{0, 1, 2},
	}
	if _, ok := SpawnPoint(model.New([]model.SubMesh{wall})); ok {
		t.Error("expected no spawn point on a wall")
	}
}
