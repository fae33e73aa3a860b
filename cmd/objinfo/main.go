// objinfo inspects Wavefront OBJ models the way the viewer sees them:
// sub-meshes, bounds, walkable surface and deck heights.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Faultbox/galleon/internal/engine/model"
	"github.com/Faultbox/galleon/internal/logger"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "info":
		err = cmdInfo(os.Stdout, args)
	case "probe":
		err = cmdProbe(os.Stdout, args)
	case "grid":
		err = cmdGrid(os.Stdout, args)
	case "materials", "mtl":
		err = cmdMaterials(os.Stdout, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`objinfo - OBJ model inspector

Usage:
  objinfo <command> [options]

Commands:
  info <file.obj>                 Show meshes, bounds and walkable surface
  probe <file.obj> <x> <z> [y]    Query the deck height at (x, z) nearest y
  grid <file.obj>                 Print the walk grid occupancy
  materials <file.obj>            List materials and their texture files

Options:
  -v                              Log loader warnings (all commands)

Examples:
  objinfo info assets/ship/ship.obj
  objinfo probe assets/ship/ship.obj 1.5 -3
  objinfo grid -max 80 assets/ship/ship.obj`)
}

// load reads an OBJ without textures; -v routes loader warnings to stderr.
func load(fs *flag.FlagSet, args []string) (*model.Model, error) {
	verbose := fs.Bool("v", false, "Log loader warnings")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() < 1 {
		return nil, fmt.Errorf("missing OBJ file")
	}
	if *verbose {
		if err := logger.Init("debug", ""); err != nil {
			return nil, err
		}
	}
	return model.Load(fs.Arg(0), model.LoadOptions{})
}

func cmdInfo(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	m, err := load(fs, args)
	if err != nil {
		return err
	}

	b := m.Bounds()
	fmt.Fprintf(w, "Model:     %s\n", m.Path())
	fmt.Fprintf(w, "Meshes:    %d\n", len(m.Meshes()))
	fmt.Fprintf(w, "Triangles: %d\n", m.TriangleCount())
	if b.IsEmpty() {
		fmt.Fprintln(w, "Bounds:    (empty)")
	} else {
		fmt.Fprintf(w, "Bounds:    min %s max %s\n", vec(b.Min[:]), vec(b.Max[:]))
		size := b.Size()
		fmt.Fprintf(w, "Size:      %s\n", vec(size[:]))
	}
	fmt.Fprintf(w, "Walkable:  %d triangles\n", len(m.Walkable()))
	if g := m.Grid(); g != nil {
		fmt.Fprintf(w, "Grid:      %dx%d cells of %g\n", g.Width(), g.Height(), g.CellSize())
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Meshes:")
	for _, sm := range m.Meshes() {
		name := sm.Name
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Fprintf(w, "  %-24s %6d tris  material %s\n", name, sm.TriangleCount(), orNone(sm.Material.Name))
	}
	return nil
}

func cmdProbe(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("probe", flag.ContinueOnError)
	m, err := load(fs, args)
	if err != nil {
		return err
	}
	if fs.NArg() < 3 {
		return fmt.Errorf("usage: objinfo probe <file.obj> <x> <z> [y]")
	}

	coords := make([]float32, 0, 3)
	for _, s := range fs.Args()[1:] {
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return fmt.Errorf("bad coordinate %q: %w", s, err)
		}
		coords = append(coords, float32(f))
	}
	x, z := coords[0], coords[1]
	refY := m.Bounds().Max[1] + 1
	if len(coords) > 2 {
		refY = coords[2]
	}

	h, ok := m.HeightAt(x, z, refY)
	if !ok {
		fmt.Fprintf(w, "(%g, %g): no deck\n", x, z)
		return nil
	}
	fmt.Fprintf(w, "(%g, %g): height %g (nearest to %g)\n", x, z, h, refY)
	return nil
}

func cmdGrid(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("grid", flag.ContinueOnError)
	maxCols := fs.Int("max", 120, "Widest map to print")
	m, err := load(fs, args)
	if err != nil {
		return err
	}
	g := m.Grid()
	if g == nil {
		return fmt.Errorf("%s has no geometry", m.Path())
	}

	fmt.Fprintf(w, "Grid %dx%d, cell %g, origin (%g, %g)\n", g.Width(), g.Height(), g.CellSize(), g.Origin()[0], g.Origin()[1])
	if g.Width() > *maxCols {
		fmt.Fprintf(w, "(too wide to print, use -max %d)\n", g.Width())
		return nil
	}
	// Rows run along +Z. Each cell shows its triangle count, '+' above nine.
	for row := 0; row < g.Height(); row++ {
		var sb strings.Builder
		for col := 0; col < g.Width(); col++ {
			sb.WriteByte(cellGlyph(len(g.Cell(col, row))))
		}
		fmt.Fprintln(w, sb.String())
	}
	return nil
}

func cellGlyph(n int) byte {
	switch {
	case n == 0:
		return '.'
	case n > 9:
		return '+'
	default:
		return byte('0' + n)
	}
}

func cmdMaterials(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("materials", flag.ContinueOnError)
	m, err := load(fs, args)
	if err != nil {
		return err
	}

	baseDir := filepath.Dir(m.Path())
	seen := make(map[string]bool)
	for _, sm := range m.Meshes() {
		mat := sm.Material
		if mat.Name == "" || seen[mat.Name] {
			continue
		}
		seen[mat.Name] = true
		fmt.Fprintf(w, "%s\n", mat.Name)
		for i, tex := range mat.Textures() {
			if tex == "" {
				continue
			}
			status := "ok"
			if _, err := os.Stat(filepath.Join(baseDir, tex)); err != nil {
				status = "missing"
			}
			fmt.Fprintf(w, "  %-8s %s (%s)\n", textureSlots[i], tex, status)
		}
	}
	if len(seen) == 0 {
		fmt.Fprintln(w, "(no materials)")
	}
	return nil
}

var textureSlots = [3]string{"ambient", "diffuse", "specular"}

func vec(v []float32) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v[0], v[1], v[2])
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
