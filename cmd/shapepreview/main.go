// Command shapepreview generates a formation's target points and writes
// them to CSV for offline inspection, along with summary statistics.
package main

import (
	"flag"
	"log/slog"
	"math/rand"
	"os"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"

	"github.com/calder-vis/constel/shapes"
)

// pointRow is one generated target point in the CSV output.
type pointRow struct {
	Index int     `csv:"index"`
	X     float64 `csv:"x"`
	Y     float64 `csv:"y"`
	Z     float64 `csv:"z"`
}

func main() {
	shapeName := flag.String("shape", "sphere", "Formation to generate")
	count := flag.Int("count", 600, "Number of points")
	bound := flag.Float64("bound", 200, "Domain half-width")
	seed := flag.Int64("seed", 1, "RNG seed")
	out := flag.String("out", "", "Output CSV path (empty = stdout)")
	list := flag.Bool("list", false, "List available formations and exit")

	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	registry := shapes.NewRegistry()
	if *list {
		for _, name := range registry.Names() {
			os.Stdout.WriteString(name + "\n")
		}
		return
	}

	rng := rand.New(rand.NewSource(*seed))
	points, shape, err := registry.Generate(*shapeName, *count, shapes.Options{Bound: *bound}, rng)
	if err != nil {
		slog.Error("failed to generate", "shape", *shapeName, "error", err)
		os.Exit(1)
	}

	rows := make([]pointRow, len(points))
	radii := make([]float64, len(points))
	for i, p := range points {
		rows[i] = pointRow{Index: i, X: p.X, Y: p.Y, Z: p.Z}
		radii[i] = r3.Norm(p)
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			slog.Error("failed to create output", "path", *out, "error", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		slog.Error("failed to write CSV", "error", err)
		os.Exit(1)
	}

	slog.Info("generated formation",
		"shape", shape.Name,
		"points", len(points),
		"has_zone", shape.HasExclusionZone(),
		"radius_mean", stat.Mean(radii, nil),
		"radius_std", stat.StdDev(radii, nil),
	)
}
