// Package topology provides the data model for fleet topology graphs.
//
// A topology describes the infrastructure entities shown on the fleet map:
// servers and the projects deployed on them, plus the directed edges that
// connect a project to the server it runs on. The package defines the
// canonical wire format ([Topology], [Layout]) and the validated internal
// form ([Model]) consumed by the layout engine.
//
// # Wire Format
//
// Topologies use a simple node-link JSON format:
//
//	{
//	  "nodes": [
//	    {"id": "srv-1", "kind": "server", "label": "web-01"},
//	    {"id": "prj-9", "kind": "project", "label": "api", "status": "online"}
//	  ],
//	  "edges": [{"source": "prj-9", "target": "srv-1"}]
//	}
//
// Common operations:
//
//	t, _ := topology.ReadTopologyFile("topology.json")  // File → Topology
//	m := topology.BuildModel(t)                         // Topology → Model
//	data, _ := topology.MarshalLayout(l)                // Layout → []byte
//
// # Validation Semantics
//
// [BuildModel] never fails on malformed content. Duplicate node ids resolve
// last-write-wins, edges referencing unknown ids are dropped, and nodes with
// empty ids are skipped. The resulting Model exposes an id→index map so the
// simulation never performs per-iteration linear searches.
//
// # Concurrency
//
// Topology and Layout values are plain data and safe to share for reads.
// A Model is immutable after BuildModel returns.
package topology
