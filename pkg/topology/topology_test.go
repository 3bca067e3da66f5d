package topology

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestUnmarshalTopology(t *testing.T) {
	data := []byte(`{
		"nodes": [
			{"id": "srv-1", "kind": "server", "label": "api-1", "status": "online"},
			{"id": "proj-1", "kind": "project", "label": "billing", "meta": {"owner": "platform"}}
		],
		"edges": [
			{"source": "proj-1", "target": "srv-1", "label": "deploys"}
		]
	}`)

	got, err := UnmarshalTopology(data)
	if err != nil {
		t.Fatalf("UnmarshalTopology() error = %v", err)
	}
	if len(got.Nodes) != 2 || len(got.Edges) != 1 {
		t.Fatalf("got %d nodes, %d edges; want 2, 1", len(got.Nodes), len(got.Edges))
	}
	if got.Nodes[0].Kind != KindServer || !got.Nodes[0].IsServer() {
		t.Errorf("first node should be a server, got kind %q", got.Nodes[0].Kind)
	}
	if got.Nodes[1].Meta["owner"] != "platform" {
		t.Errorf("Meta not preserved: %v", got.Nodes[1].Meta)
	}
	if got.Edges[0].Source != "proj-1" || got.Edges[0].Target != "srv-1" {
		t.Errorf("edge endpoints = %q → %q", got.Edges[0].Source, got.Edges[0].Target)
	}
}

func TestUnmarshalTopologyMalformed(t *testing.T) {
	if _, err := UnmarshalTopology([]byte(`{"nodes": [`)); err == nil {
		t.Error("expected error for truncated JSON")
	}
}

func TestTopologyFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topology.json")
	original := Topology{
		Nodes: []Node{{ID: "srv-1", Kind: KindServer, Label: "api-1"}},
		Edges: []Edge{},
	}

	if err := WriteTopologyFile(original, path); err != nil {
		t.Fatalf("WriteTopologyFile() error = %v", err)
	}
	got, err := ReadTopologyFile(path)
	if err != nil {
		t.Fatalf("ReadTopologyFile() error = %v", err)
	}
	if len(got.Nodes) != 1 || got.Nodes[0].ID != "srv-1" {
		t.Errorf("round trip lost nodes: %+v", got.Nodes)
	}
}

func TestReadTopologyFileMissing(t *testing.T) {
	_, err := ReadTopologyFile(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLayoutFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")
	original := Layout{
		Width: 800, Height: 600, Margin: 50, Seed: 42,
		Nodes: []PlacedNode{
			{Node: Node{ID: "srv-1", Kind: KindServer}, X: 550, Y: 300},
		},
		Edges: []Edge{},
	}

	if err := WriteLayoutFile(original, path); err != nil {
		t.Fatalf("WriteLayoutFile() error = %v", err)
	}
	got, err := ReadLayoutFile(path)
	if err != nil {
		t.Fatalf("ReadLayoutFile() error = %v", err)
	}
	if got.Seed != 42 {
		t.Errorf("Seed = %d, want 42", got.Seed)
	}
	if len(got.Nodes) != 1 || got.Nodes[0].X != 550 {
		t.Errorf("placed node lost in round trip: %+v", got.Nodes)
	}
}

func TestMarshalTopologyIsIndented(t *testing.T) {
	data, err := MarshalTopology(Topology{Nodes: []Node{{ID: "a", Kind: KindServer}}})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "\n  ") {
		t.Error("output should be pretty-printed")
	}
}

func TestDisplayLabel(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"label set", Node{ID: "srv-1", Label: "api-1"}, "api-1"},
		{"label empty", Node{ID: "srv-1"}, "srv-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.DisplayLabel(); got != tt.want {
				t.Errorf("DisplayLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}
