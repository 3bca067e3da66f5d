package topology

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Topology Serialization API
// =============================================================================

// MarshalTopology converts a Topology to pretty-printed JSON bytes.
func MarshalTopology(t Topology) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeTopologyTo(t, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalTopology deserializes JSON bytes to a Topology.
func UnmarshalTopology(data []byte) (Topology, error) {
	return readTopologyFrom(bytes.NewReader(data))
}

// WriteTopologyFile writes a Topology to a JSON file.
// The file is created with 0644 permissions.
func WriteTopologyFile(t Topology, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeTopologyTo(t, f)
}

// WriteTopology writes a Topology as JSON to an io.Writer.
func WriteTopology(t Topology, w io.Writer) error {
	return writeTopologyTo(t, w)
}

// ReadTopologyFile reads a JSON file and returns the decoded Topology.
func ReadTopologyFile(path string) (Topology, error) {
	f, err := os.Open(path)
	if err != nil {
		return Topology{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readTopologyFrom(f)
}

// ReadTopology decodes a JSON topology from an io.Reader.
func ReadTopology(r io.Reader) (Topology, error) {
	return readTopologyFrom(r)
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeTopologyTo(t Topology, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readTopologyFrom(r io.Reader) (Topology, error) {
	var t Topology
	if err := json.NewDecoder(r).Decode(&t); err != nil {
		return Topology{}, fmt.Errorf("decode: %w", err)
	}
	return t, nil
}
