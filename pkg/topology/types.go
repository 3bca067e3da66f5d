package topology

import (
	"encoding/json"
	"fmt"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Node kinds.
const (
	KindServer  = "server"
	KindProject = "project"
)

// =============================================================================
// Topology - Fleet Graph Serialization
// =============================================================================

// Topology is the canonical serialization format for fleet graphs.
// Used for API responses, files, and caching. It is raw caller input:
// nothing about it is validated until [BuildModel] runs.
type Topology struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// =============================================================================
// Node
// =============================================================================

// Node is a positioned entity on the fleet map: a server or a project
// deployed on one. Label and Status are display-only and never influence
// layout.
type Node struct {
	ID     string         `json:"id"`
	Kind   string         `json:"kind,omitempty"`
	Label  string         `json:"label,omitempty"`
	Status string         `json:"status,omitempty"`
	Meta   map[string]any `json:"meta,omitempty"`
}

// IsServer reports whether the node is a server.
func (n Node) IsServer() bool { return n.Kind == KindServer }

// IsProject reports whether the node is a project.
func (n Node) IsProject() bool { return n.Kind == KindProject }

// DisplayLabel returns the label if set, otherwise the ID.
func (n Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// =============================================================================
// Edge
// =============================================================================

// Edge is a directed relation between two node ids, typically
// project → server ("deployed on"). Label is display-only.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Label  string `json:"label,omitempty"`
}

// =============================================================================
// Layout - Positioned Output
// =============================================================================

// PlacedNode is a node augmented with its final canvas position.
// Simulation velocity is an internal artifact and never appears here.
type PlacedNode struct {
	Node
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Layout is the serialization format for a computed fleet map: the input
// node set with final coordinates, the surviving edges, and the canvas
// parameters the positions were computed against. Renderers consume this
// snapshot; the engine retains nothing between requests.
type Layout struct {
	Width  float64      `json:"width"`
	Height float64      `json:"height"`
	Margin float64      `json:"margin"`
	Seed   uint64       `json:"seed"`
	Nodes  []PlacedNode `json:"nodes"`
	Edges  []Edge       `json:"edges,omitempty"`
}

// =============================================================================
// Layout Serialization API
// =============================================================================

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a Layout.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("unmarshal layout: %w", err)
	}
	return l, nil
}
