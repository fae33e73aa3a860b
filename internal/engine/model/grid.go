package model

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// WalkCellSize is the edge length of a walk grid cell in model units.
const WalkCellSize = 0.5

// walkEpsilon is both the degenerate-projection threshold and the
// barycentric tolerance of height queries.
const walkEpsilon = 1e-4

// WalkGrid buckets walkable triangles into uniform XZ cells so a height
// query only tests the triangles around the query point.
type WalkGrid struct {
	origin   mgl32.Vec2 // (min.x, min.z) of the model bounds
	cellSize float32
	width    int // cells along X
	height   int // cells along Z
	cells    [][]int
	tris     []WalkTriangle
}

// BuildWalkGrid indexes tris over the XZ extent of bounds. Every triangle
// is registered in each cell its XZ bounding rectangle touches, clamped to
// the grid. Empty bounds produce no grid.
func BuildWalkGrid(tris []WalkTriangle, bounds Bounds) *WalkGrid {
	if bounds.IsEmpty() {
		return nil
	}

	size := bounds.Size()
	g := &WalkGrid{
		origin:   mgl32.Vec2{bounds.Min[0], bounds.Min[2]},
		cellSize: WalkCellSize,
		width:    int(math.Ceil(float64(size[0])/WalkCellSize)) + 1,
		height:   int(math.Ceil(float64(size[2])/WalkCellSize)) + 1,
		tris:     tris,
	}
	g.cells = make([][]int, g.width*g.height)

	for id, t := range tris {
		minX, maxX := min(t.V0[0], t.V1[0], t.V2[0]), max(t.V0[0], t.V1[0], t.V2[0])
		minZ, maxZ := min(t.V0[2], t.V1[2], t.V2[2]), max(t.V0[2], t.V1[2], t.V2[2])

		col0, row0 := g.clampedCell(minX, minZ)
		col1, row1 := g.clampedCell(maxX, maxZ)
		for row := row0; row <= row1; row++ {
			for col := col0; col <= col1; col++ {
				i := row*g.width + col
				g.cells[i] = append(g.cells[i], id)
			}
		}
	}
	return g
}

// Width returns the number of cells along X.
func (g *WalkGrid) Width() int { return g.width }

// Height returns the number of cells along Z.
func (g *WalkGrid) Height() int { return g.height }

// Origin returns the XZ corner of cell (0, 0).
func (g *WalkGrid) Origin() mgl32.Vec2 { return g.origin }

// CellSize returns the cell edge length.
func (g *WalkGrid) CellSize() float32 { return g.cellSize }

// Triangles returns the indexed triangles; cell entries are indices into it.
func (g *WalkGrid) Triangles() []WalkTriangle { return g.tris }

// Cell returns the triangle ids registered in cell (col, row), or nil when
// the cell is outside the grid.
func (g *WalkGrid) Cell(col, row int) []int {
	if col < 0 || col >= g.width || row < 0 || row >= g.height {
		return nil
	}
	return g.cells[row*g.width+col]
}

// CellOf returns the cell containing (x, z). ok is false outside the grid.
func (g *WalkGrid) CellOf(x, z float32) (col, row int, ok bool) {
	fc := g.cellCoord(x, g.origin[0])
	fr := g.cellCoord(z, g.origin[1])
	// Compare before converting so huge or NaN inputs cannot wrap around.
	if !(fc >= 0 && fc < float64(g.width) && fr >= 0 && fr < float64(g.height)) {
		return 0, 0, false
	}
	return int(fc), int(fr), true
}

func (g *WalkGrid) cellCoord(v, origin float32) float64 {
	return math.Floor(float64(v-origin) / float64(g.cellSize))
}

func (g *WalkGrid) clampedCell(x, z float32) (col, row int) {
	return clampIndex(g.cellCoord(x, g.origin[0]), g.width), clampIndex(g.cellCoord(z, g.origin[1]), g.height)
}

func clampIndex(f float64, n int) int {
	switch {
	case !(f > 0):
		return 0
	case f >= float64(n-1):
		return n - 1
	default:
		return int(f)
	}
}

// HeightAt returns the height of the walkable surface under (x, z) that is
// closest to refY. It scans the point's cell and its eight neighbours, so
// triangles registered in adjacent cells are still found. ok is false when
// the point is outside the grid or no triangle covers it. A nil grid
// always reports not found.
func (g *WalkGrid) HeightAt(x, z, refY float32) (float32, bool) {
	if g == nil || g.width == 0 || g.height == 0 {
		return 0, false
	}
	col, row, ok := g.CellOf(x, z)
	if !ok {
		return 0, false
	}

	var best float32
	bestDiff := float32(math.MaxFloat32)
	found := false

	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			for _, id := range g.Cell(col+dc, row+dr) {
				y, hit := g.tris[id].heightAt(x, z)
				if !hit {
					continue
				}
				if diff := abs32(y - refY); diff < bestDiff {
					bestDiff = diff
					best = y
					found = true
				}
			}
		}
	}
	return best, found
}
