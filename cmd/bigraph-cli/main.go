package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"spatial-bigraph/internal/bigraph/footprint"
	"spatial-bigraph/internal/bigraph/graph"
	"spatial-bigraph/internal/bigraph/layout"
	"spatial-bigraph/internal/bigraph/parser"
	"spatial-bigraph/internal/bigraph/surface"

	"github.com/google/uuid"
)

// ============================================================
// Bigraph CLI
// ============================================================

func main() {
	in := flag.String("in", "", "floor JSON file (required)")
	out := flag.String("out", "", "output file (default stdout)")
	mode := flag.String("mode", "graph", "graph | layout | footprint")
	skipInvalid := flag.Bool("skip-invalid", false, "drop invalid rooms and unattached devices instead of failing")
	convention := flag.String("convention", "analyzed", "box extent convention: analyzed | consistent")
	strategy := flag.String("strategy", "surface", "nearest strategy: surface | centroid")
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(*in, *out, *mode, *skipInvalid, *convention, *strategy); err != nil {
		log.Printf("[CLI] %v", err)
		os.Exit(1)
	}
}

func run(in, out, mode string, skipInvalid bool, conventionName, strategyName string) error {
	conv, ok := surface.ParseConvention(conventionName)
	if !ok {
		return fmt.Errorf("unknown convention %q", conventionName)
	}
	strat, ok := surface.ParseStrategy(strategyName)
	if !ok {
		return fmt.Errorf("unknown strategy %q", strategyName)
	}

	f, err := os.Open(in)
	if err != nil {
		return err
	}
	defer f.Close()

	floor, err := parser.ParseFloor(f)
	if err != nil {
		return err
	}

	var payload any
	switch mode {
	case "footprint":
		fc, err := footprint.ProjectFloor(floor)
		if err != nil {
			return err
		}
		payload = fc
	case "graph", "layout":
		builder := graph.NewBuilder(
			graph.WithConvention(conv),
			graph.WithStrategy(strat),
			graph.WithSkipInvalid(skipInvalid),
		)
		result, err := builder.Build(floor)
		if err != nil {
			return err
		}
		for _, s := range result.Skipped {
			log.Printf("[CLI] skipped room=%q node=%q: %v", s.Room, s.Node, s.Err)
		}

		buildID := uuid.NewString()
		if mode == "graph" {
			payload = map[string]any{"build_id": buildID, "graph": result.Graph, "skipped": result.Skipped}
		} else {
			payload = map[string]any{
				"build_id":  buildID,
				"roots":     result.Graph.Roots(),
				"positions": layout.Hierarchy(result.Graph, layout.DefaultOptions()),
			}
		}
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}

	var w io.Writer = os.Stdout
	if out != "" {
		file, err := os.Create(out)
		if err != nil {
			return err
		}
		defer file.Close()
		w = file
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
