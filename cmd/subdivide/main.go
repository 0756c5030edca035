// Command subdivide builds a planar subdivision from a JSON segment list and
// reports its structure, optionally rendering it to SVG.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/go-dcel/subdivision/geom"
	"github.com/go-dcel/subdivision/render"
	"github.com/go-dcel/subdivision/subdiv"
	"github.com/go-dcel/subdivision/toolkit"
)

func main() {
	cmd := &cli.Command{
		Name:  "subdivide",
		Usage: "construct and inspect planar subdivisions",
		Commands: []*cli.Command{
			buildCommand(),
			svgCommand(),
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "subdivide:", err)
		os.Exit(1)
	}
}

func epsilonFlag() cli.Flag {
	return &cli.FloatFlag{Name: "epsilon", Value: 0, Usage: "construction tolerance"}
}

func inputFlag() cli.Flag {
	return &cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "segment JSON file (defaults to stdin)"}
}

func buildCommand() *cli.Command {
	return &cli.Command{
		Name:  "build",
		Usage: "construct a subdivision and print a summary",
		Flags: []cli.Flag{epsilonFlag(), inputFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := constructFromFlags(cmd)
			if err != nil {
				return err
			}
			printSummary(os.Stdout, s)
			return nil
		},
	}
}

func svgCommand() *cli.Command {
	return &cli.Command{
		Name:  "svg",
		Usage: "construct a subdivision and render it to SVG",
		Flags: []cli.Flag{
			epsilonFlag(),
			inputFlag(),
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Required: true, Usage: "output SVG path"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := constructFromFlags(cmd)
			if err != nil {
				return err
			}
			printSummary(os.Stdout, s)

			out := toolkit.JoinClean(cmd.String("out"))
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			defer f.Close()
			return render.WriteSVG(f, s, render.DefaultOptions)
		},
	}
}

func constructFromFlags(cmd *cli.Command) (*subdiv.Subdivision, error) {
	segments, err := readSegments(cmd.String("input"))
	if err != nil {
		return nil, err
	}
	s, err := subdiv.FromLines(segments, cmd.Float("epsilon"))
	if err != nil {
		return nil, fmt.Errorf("constructing subdivision: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("constructed subdivision fails validation: %w", err)
	}
	return s, nil
}

// segmentPoint matches one [x, y] pair in the input JSON.
type segmentPoint [2]float64

// segmentPair matches one [[x1,y1],[x2,y2]] entry in the input JSON.
type segmentPair [2]segmentPoint

func readSegments(path string) ([]geom.SegmentD, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(toolkit.JoinClean(path))
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	var pairs []segmentPair
	if err := json.NewDecoder(r).Decode(&pairs); err != nil {
		return nil, fmt.Errorf("decoding segment JSON: %w", err)
	}

	segments := make([]geom.SegmentD, len(pairs))
	for i, pair := range pairs {
		segments[i] = geom.SegmentD{
			Start: geom.PointD{X: pair[0][0], Y: pair[0][1]},
			End:   geom.PointD{X: pair[1][0], Y: pair[1][1]},
		}
	}
	return segments, nil
}

func printSummary(w io.Writer, s *subdiv.Subdivision) {
	fmt.Fprintf(w, "vertices: %d\n", len(s.Vertices()))
	fmt.Fprintf(w, "half-edges: %d\n", len(s.Edges()))
	faces := s.Faces()
	fmt.Fprintf(w, "faces: %d (including unbounded)\n", len(faces))
	for id, face := range faces {
		if id == 0 {
			fmt.Fprintf(w, "  face 0: unbounded, %d inner boundaries\n", len(face.InnerEdges))
			continue
		}
		area, _ := s.CycleArea(face.OuterEdge)
		centroid, ok, _ := s.CycleCentroid(face.OuterEdge)
		if ok {
			fmt.Fprintf(w, "  face %d: area=%.4f centroid=(%.4f, %.4f)\n", id, area, centroid.X, centroid.Y)
		} else {
			fmt.Fprintf(w, "  face %d: area=%.4f\n", id, area)
		}
	}
	zero := s.ZeroAreaCycles()
	fmt.Fprintf(w, "zero-area cycles: %d\n", len(zero))
}
