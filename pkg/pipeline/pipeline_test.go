package pipeline

import (
	"context"
	"math"
	"testing"

	"github.com/den3110/pulsemap/pkg/layout"
	"github.com/den3110/pulsemap/pkg/topology"
)

func testTopology() topology.Topology {
	return topology.Topology{
		Nodes: []topology.Node{
			{ID: "srv-1", Kind: topology.KindServer, Label: "api-1", Status: "online"},
			{ID: "srv-2", Kind: topology.KindServer, Label: "api-2", Status: "online"},
			{ID: "proj-1", Kind: topology.KindProject, Label: "billing"},
		},
		Edges: []topology.Edge{
			{Source: "proj-1", Target: "srv-1", Label: "deploys"},
			{Source: "proj-1", Target: "ghost", Label: "dangling"},
		},
	}
}

func TestSetLayoutDefaults(t *testing.T) {
	opts := Options{}
	opts.SetLayoutDefaults()

	if opts.Width != layout.DefaultWidth {
		t.Errorf("Width = %v, want %v", opts.Width, layout.DefaultWidth)
	}
	if opts.Iterations != layout.DefaultIterations {
		t.Errorf("Iterations = %v, want %v", opts.Iterations, layout.DefaultIterations)
	}
	if opts.Seed != layout.DefaultSeed {
		t.Errorf("Seed = %v, want %v", opts.Seed, layout.DefaultSeed)
	}
	if opts.Logger == nil {
		t.Error("Logger is nil after defaults")
	}
}

func TestSetLayoutDefaultsKeepsExplicitValues(t *testing.T) {
	opts := Options{Width: 1080, Height: 1920, Seed: 7}
	opts.SetLayoutDefaults()

	if opts.Width != 1080 || opts.Height != 1920 {
		t.Errorf("canvas = %vx%v, want 1080x1920", opts.Width, opts.Height)
	}
	if opts.Seed != 7 {
		t.Errorf("Seed = %v, want 7", opts.Seed)
	}
}

func TestValidateForFetch(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{"valid https", "https://pulse.example.com", false},
		{"valid http", "http://localhost:8080", false},
		{"empty", "", true},
		{"missing scheme", "pulse.example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Options{BaseURL: tt.baseURL}
			err := opts.ValidateForFetch()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateForFetch() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateForLayoutRejectsBadCanvas(t *testing.T) {
	opts := Options{Width: 100, Height: 100, Margin: 60}
	if err := opts.ValidateForLayout(); err == nil {
		t.Error("expected error for margin consuming the full canvas width")
	}
}

func TestValidateAndSetDefaultsIsIdempotent(t *testing.T) {
	opts := Options{BaseURL: "https://pulse.example.com"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("second call: %v", err)
	}
	if opts.Seed != layout.DefaultSeed {
		t.Errorf("Seed = %v, want default %v", opts.Seed, layout.DefaultSeed)
	}
}

func TestLayoutConfigMirrorsOptions(t *testing.T) {
	opts := Options{
		Width: 1000, Height: 500, Margin: 25,
		Iterations: 10, Damping: 0.5, Repulsion: 100,
		Attraction: 0.1, IdealEdgeLength: 50,
		ServerRadius: 75, JitterRange: 10, Seed: 99,
	}
	cfg := opts.LayoutConfig()

	if cfg.Width != 1000 || cfg.Height != 500 || cfg.Margin != 25 {
		t.Errorf("canvas mismatch: %+v", cfg)
	}
	if cfg.Iterations != 10 || cfg.Seed != 99 {
		t.Errorf("simulation mismatch: %+v", cfg)
	}
}

func TestGenerateLayout(t *testing.T) {
	opts := Options{Seed: 42}
	snapshot, stats, err := GenerateLayout(context.Background(), testTopology(), opts)
	if err != nil {
		t.Fatalf("GenerateLayout() error = %v", err)
	}

	if len(snapshot.Nodes) != 3 {
		t.Errorf("placed nodes = %d, want 3", len(snapshot.Nodes))
	}
	if stats.NodeCount != 3 {
		t.Errorf("NodeCount = %d, want 3", stats.NodeCount)
	}
	if stats.EdgeCount != 1 {
		t.Errorf("EdgeCount = %d, want 1 (dangling edge dropped)", stats.EdgeCount)
	}
	if stats.DroppedEdges != 1 {
		t.Errorf("DroppedEdges = %d, want 1", stats.DroppedEdges)
	}

	for _, n := range snapshot.Nodes {
		if math.IsNaN(n.X) || math.IsNaN(n.Y) || math.IsInf(n.X, 0) || math.IsInf(n.Y, 0) {
			t.Errorf("node %s has non-finite position (%v, %v)", n.ID, n.X, n.Y)
		}
		if n.X < snapshot.Margin || n.X > snapshot.Width-snapshot.Margin {
			t.Errorf("node %s x=%v outside [%v, %v]", n.ID, n.X, snapshot.Margin, snapshot.Width-snapshot.Margin)
		}
		if n.Y < snapshot.Margin || n.Y > snapshot.Height-snapshot.Margin {
			t.Errorf("node %s y=%v outside [%v, %v]", n.ID, n.Y, snapshot.Margin, snapshot.Height-snapshot.Margin)
		}
	}
}

func TestGenerateLayoutIsDeterministic(t *testing.T) {
	opts := Options{Seed: 42}
	first, _, err := GenerateLayout(context.Background(), testTopology(), opts)
	if err != nil {
		t.Fatal(err)
	}
	second, _, err := GenerateLayout(context.Background(), testTopology(), opts)
	if err != nil {
		t.Fatal(err)
	}

	for i := range first.Nodes {
		a, b := first.Nodes[i], second.Nodes[i]
		if a.X != b.X || a.Y != b.Y {
			t.Errorf("node %s moved between runs: (%v,%v) vs (%v,%v)", a.ID, a.X, a.Y, b.X, b.Y)
		}
	}
}

func TestGenerateLayoutEmptyTopology(t *testing.T) {
	snapshot, stats, err := GenerateLayout(context.Background(), topology.Topology{}, Options{})
	if err != nil {
		t.Fatalf("GenerateLayout() error = %v", err)
	}
	if len(snapshot.Nodes) != 0 || len(snapshot.Edges) != 0 {
		t.Errorf("expected empty snapshot, got %d nodes, %d edges", len(snapshot.Nodes), len(snapshot.Edges))
	}
	if stats.NodeCount != 0 {
		t.Errorf("NodeCount = %d, want 0", stats.NodeCount)
	}
}
