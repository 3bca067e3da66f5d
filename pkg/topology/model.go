package topology

import "slices"

// =============================================================================
// Model - Validated, Indexed Graph
// =============================================================================

// Link is an edge with both endpoints resolved to node indices.
// The layout engine works exclusively on indices so the hot loops never
// search by id.
type Link struct {
	From int
	To   int
}

// Model is the validated internal form of a Topology: nodes deduplicated
// and indexed by id, edges filtered down to those whose endpoints resolve,
// and nodes partitioned into servers and the rest for seeding.
//
// A Model is built fresh for each layout request and is immutable after
// [BuildModel] returns. It carries no simulation state.
type Model struct {
	nodes   []Node
	index   map[string]int // id → position in nodes
	edges   []Edge         // surviving edges, input order
	links   []Link         // same edges with resolved indices
	servers []int          // indices of server nodes, input order
	anchors map[int]int    // non-server index → anchor node index
}

// BuildModel validates and indexes raw topology input.
//
// Malformed content never fails: nodes with empty ids are skipped,
// duplicate ids resolve last-write-wins (the later node replaces the
// earlier one in place), and edges naming unknown ids are dropped
// silently. The id→index map is built exactly once and reused for the
// whole simulation.
func BuildModel(t Topology) *Model {
	m := &Model{
		index:   make(map[string]int, len(t.Nodes)),
		anchors: make(map[int]int),
	}

	for _, n := range t.Nodes {
		if n.ID == "" {
			continue
		}
		if i, ok := m.index[n.ID]; ok {
			m.nodes[i] = n // last write wins
			continue
		}
		m.index[n.ID] = len(m.nodes)
		m.nodes = append(m.nodes, n)
	}

	for _, e := range t.Edges {
		from, okF := m.index[e.Source]
		to, okT := m.index[e.Target]
		if !okF || !okT {
			continue // dangling edge, dropped
		}
		m.edges = append(m.edges, e)
		m.links = append(m.links, Link{From: from, To: to})
	}

	for i := range m.nodes {
		if m.nodes[i].IsServer() {
			m.servers = append(m.servers, i)
		}
	}

	// Anchor = target of the first surviving edge leaving the node.
	// Only non-servers are anchored; servers sit on the placement circle.
	for _, l := range m.links {
		if m.nodes[l.From].IsServer() {
			continue
		}
		if _, ok := m.anchors[l.From]; !ok {
			m.anchors[l.From] = l.To
		}
	}

	return m
}

// NodeCount returns the number of distinct nodes.
func (m *Model) NodeCount() int { return len(m.nodes) }

// EdgeCount returns the number of surviving edges.
func (m *Model) EdgeCount() int { return len(m.links) }

// DroppedEdges returns how many input edges were discarded for naming
// unknown node ids. It requires the original input for the total.
func DroppedEdges(t Topology, m *Model) int { return len(t.Edges) - m.EdgeCount() }

// Node returns the node at index i.
func (m *Model) Node(i int) Node { return m.nodes[i] }

// Nodes returns a copy of the deduplicated node list, input order.
func (m *Model) Nodes() []Node { return slices.Clone(m.nodes) }

// Edges returns a copy of the surviving edges, input order.
func (m *Model) Edges() []Edge { return slices.Clone(m.edges) }

// Links returns the surviving edges as resolved index pairs.
// The returned slice is shared; treat it as read-only.
func (m *Model) Links() []Link { return m.links }

// Servers returns the indices of server nodes, input order.
func (m *Model) Servers() []int { return m.servers }

// Index returns the index for a node id.
func (m *Model) Index(id string) (int, bool) {
	i, ok := m.index[id]
	return i, ok
}

// Anchor returns the anchor node index for a non-server node: the target
// of its first surviving outgoing edge. ok is false for servers and for
// nodes with no outgoing edges.
func (m *Model) Anchor(i int) (int, bool) {
	a, ok := m.anchors[i]
	return a, ok
}
