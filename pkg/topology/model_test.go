package topology

import "testing"

func TestBuildModel(t *testing.T) {
	input := Topology{
		Nodes: []Node{
			{ID: "srv-1", Kind: KindServer},
			{ID: "srv-2", Kind: KindServer},
			{ID: "proj-1", Kind: KindProject},
			{ID: "proj-2", Kind: KindProject},
		},
		Edges: []Edge{
			{Source: "proj-1", Target: "srv-1"},
			{Source: "proj-2", Target: "srv-2"},
		},
	}

	m := BuildModel(input)

	if m.NodeCount() != 4 {
		t.Errorf("NodeCount() = %d, want 4", m.NodeCount())
	}
	if m.EdgeCount() != 2 {
		t.Errorf("EdgeCount() = %d, want 2", m.EdgeCount())
	}
	if got := len(m.Servers()); got != 2 {
		t.Errorf("len(Servers()) = %d, want 2", got)
	}

	// Kind predicates must work directly on the accessor's return value.
	si, _ := m.Index("srv-1")
	if !m.Node(si).IsServer() {
		t.Error("srv-1 should report as a server")
	}
	pi, _ := m.Index("proj-1")
	if !m.Node(pi).IsProject() {
		t.Error("proj-1 should report as a project")
	}
}

func TestBuildModelDuplicateIDsLastWriteWins(t *testing.T) {
	input := Topology{
		Nodes: []Node{
			{ID: "srv-1", Kind: KindServer, Label: "first"},
			{ID: "proj-1", Kind: KindProject},
			{ID: "srv-1", Kind: KindServer, Label: "second"},
		},
	}

	m := BuildModel(input)

	if m.NodeCount() != 2 {
		t.Fatalf("NodeCount() = %d, want 2", m.NodeCount())
	}
	i, ok := m.Index("srv-1")
	if !ok {
		t.Fatal("srv-1 not indexed")
	}
	if i != 0 {
		t.Errorf("duplicate should keep the original position, got index %d", i)
	}
	if got := m.Node(i).Label; got != "second" {
		t.Errorf("Label = %q, want %q (later occurrence wins)", got, "second")
	}
}

func TestBuildModelSkipsEmptyIDs(t *testing.T) {
	input := Topology{
		Nodes: []Node{
			{ID: "", Kind: KindServer},
			{ID: "srv-1", Kind: KindServer},
		},
	}

	m := BuildModel(input)
	if m.NodeCount() != 1 {
		t.Errorf("NodeCount() = %d, want 1", m.NodeCount())
	}
}

func TestBuildModelDropsDanglingEdges(t *testing.T) {
	input := Topology{
		Nodes: []Node{
			{ID: "srv-1", Kind: KindServer},
			{ID: "proj-1", Kind: KindProject},
		},
		Edges: []Edge{
			{Source: "proj-1", Target: "srv-1"},
			{Source: "proj-1", Target: "missing"},
			{Source: "missing", Target: "srv-1"},
			{Source: "nope", Target: "nada"},
		},
	}

	m := BuildModel(input)

	if m.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", m.EdgeCount())
	}
	if got := DroppedEdges(input, m); got != 3 {
		t.Errorf("DroppedEdges() = %d, want 3", got)
	}
	for _, l := range m.Links() {
		if l.From < 0 || l.From >= m.NodeCount() || l.To < 0 || l.To >= m.NodeCount() {
			t.Errorf("link %+v references out-of-range index", l)
		}
	}
}

func TestBuildModelAnchors(t *testing.T) {
	input := Topology{
		Nodes: []Node{
			{ID: "srv-1", Kind: KindServer},
			{ID: "srv-2", Kind: KindServer},
			{ID: "proj-1", Kind: KindProject},
			{ID: "proj-lone", Kind: KindProject},
		},
		Edges: []Edge{
			{Source: "proj-1", Target: "broken"}, // dropped, must not anchor
			{Source: "proj-1", Target: "srv-2"},
			{Source: "proj-1", Target: "srv-1"}, // second edge, ignored
			{Source: "srv-1", Target: "srv-2"},  // servers are never anchored
		},
	}

	m := BuildModel(input)

	pi, _ := m.Index("proj-1")
	anchor, ok := m.Anchor(pi)
	if !ok {
		t.Fatal("proj-1 should be anchored")
	}
	want, _ := m.Index("srv-2")
	if anchor != want {
		t.Errorf("Anchor(proj-1) = %d, want %d (first surviving edge)", anchor, want)
	}

	li, _ := m.Index("proj-lone")
	if _, ok := m.Anchor(li); ok {
		t.Error("proj-lone has no outgoing edges and must not be anchored")
	}

	si, _ := m.Index("srv-1")
	if _, ok := m.Anchor(si); ok {
		t.Error("servers must not be anchored")
	}
}

func TestBuildModelUnknownKindTreatedAsProject(t *testing.T) {
	input := Topology{
		Nodes: []Node{
			{ID: "srv-1", Kind: KindServer},
			{ID: "mystery", Kind: "database"},
		},
		Edges: []Edge{
			{Source: "mystery", Target: "srv-1"},
		},
	}

	m := BuildModel(input)

	if got := len(m.Servers()); got != 1 {
		t.Fatalf("len(Servers()) = %d, want 1", got)
	}
	mi, _ := m.Index("mystery")
	if _, ok := m.Anchor(mi); !ok {
		t.Error("unknown-kind node with an outgoing edge should be anchored")
	}
}

func TestBuildModelEmptyInput(t *testing.T) {
	m := BuildModel(Topology{})
	if m.NodeCount() != 0 || m.EdgeCount() != 0 {
		t.Errorf("empty input produced %d nodes, %d edges", m.NodeCount(), m.EdgeCount())
	}
	if len(m.Nodes()) != 0 || len(m.Servers()) != 0 {
		t.Error("empty input should produce empty slices")
	}
}
