// Package main provides the Polaris CLI application.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/cpprhtn/Polaris/internal/adapters/analyzer"
	"github.com/cpprhtn/Polaris/internal/adapters/canvas"
	"github.com/cpprhtn/Polaris/internal/app/dto"
	"github.com/cpprhtn/Polaris/internal/app/services"
	"github.com/cpprhtn/Polaris/internal/app/store"
	"github.com/cpprhtn/Polaris/internal/app/usecases"
	"github.com/cpprhtn/Polaris/internal/core/graph"
	"github.com/cpprhtn/Polaris/internal/core/node"
	"github.com/cpprhtn/Polaris/internal/core/schema"
	"github.com/cpprhtn/Polaris/internal/infrastructure/config"
)

// Version information set during build
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Polaris %s (commit: %s, built: %s)\n", Version, Commit, BuildTime)
			return
		case "demo":
			if err := runDemo(); err != nil {
				fmt.Fprintln(os.Stderr, "An error occurred while processing the pipeline.")
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("Polaris - visual pipeline builder core")
	fmt.Println("Commands: version, demo")
}

// runDemo builds a two-node pipeline headlessly and submits it to the
// analyzer configured via POLARIS_ANALYZER_URL.
func runDemo() error {
	cfg := config.Load()

	st := store.New()
	cv := canvas.NewHeadless(graph.Rect{Width: 1280, Height: 720})
	drop := usecases.NewDropController(st, cv)

	a, ok := drop.Drop(usecases.DropGesture{
		ClientX: 200, ClientY: 200,
		Data: map[string]string{dto.DragDataType: `{"nodeType":"text"}`},
	})
	if !ok {
		return fmt.Errorf("drop ignored")
	}
	b, ok := drop.Drop(usecases.DropGesture{
		ClientX: 600, ClientY: 200,
		Data: map[string]string{dto.DragDataType: `{"nodeType":"customOutput"}`},
	})
	if !ok {
		return fmt.Errorf("drop ignored")
	}

	rt := node.NewRuntime(a.ID, a.Kind, a.Fields, cv.UpdateNodeInternals)
	rt.SetField("text", "{{x}}")
	st.UpdateField(a.ID, "text", "{{x}}")

	st.Connect(dto.Connection{
		Source:       a.ID,
		SourceHandle: schema.HandleID(a.ID, "output"),
		Target:       b.ID,
		TargetHandle: schema.HandleID(b.ID, "value"),
	})

	submitter := usecases.NewSubmitter(st,
		analyzer.NewClient(cfg.Analyzer.BaseURL,
			analyzer.WithHTTPClient(&http.Client{Timeout: cfg.Analyzer.Timeout})),
		services.NewHistory(cfg.History.Capacity))
	result, err := submitter.Submit(context.Background())
	if err != nil {
		return err
	}

	isDag := "no"
	if result.IsDAG {
		isDag = "yes"
	}
	fmt.Printf("Number of nodes: %d, Number of edges: %d, Is DAG: %s\n",
		result.NumNodes, result.NumEdges, isDag)
	return nil
}
