// Package graph implements the interactive character-graph engine:
// a force-directed layout simulation, a pan/zoom camera, hit-testing
// and drag interaction, and PNG/SVG renderers for the current scene.
package graph

import (
	"encoding/json"
	"strings"
)

// RawNode is one character as produced by the upstream analyzer.
type RawNode struct {
	ID          string  `json:"id"`
	Size        float64 `json:"size"`
	Role        string  `json:"role"`
	Description string  `json:"description,omitempty"`
}

// RawLink is one relationship between two characters, by id.
type RawLink struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Value  float64 `json:"value"`
	Type   string  `json:"type"`
}

// Graph is the raw input document. It carries no layout state; a
// Graph is turned into a simulation-ready Model by Build.
type Graph struct {
	Nodes []RawNode `json:"nodes"`
	Links []RawLink `json:"links"`
}

// Default values applied when the analyzer omits a field.
const (
	DefaultNodeSize = 10
	DefaultRole     = "other"
	DefaultValue    = 2
	DefaultType     = "relationship"
)

// ParseJSON parses a graph document. A document whose nodes or links
// are absent, null, or not list-shaped yields an empty graph rather
// than an error: the engine treats malformed input as an empty state.
func ParseJSON(data []byte) *Graph {
	var probe struct {
		Nodes json.RawMessage `json:"nodes"`
		Links json.RawMessage `json:"links"`
	}
	g := &Graph{}
	if err := json.Unmarshal(data, &probe); err != nil {
		return g
	}
	if isList(probe.Nodes) {
		json.Unmarshal(probe.Nodes, &g.Nodes)
	}
	if isList(probe.Links) {
		json.Unmarshal(probe.Links, &g.Links)
	}
	return g
}

// isList reports whether the raw message is a JSON array.
func isList(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return strings.HasPrefix(s, "[")
}

// ToJSON serializes a graph back to the wire format.
func ToJSON(g *Graph, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(g, "", "  ")
	}
	return json.Marshal(g)
}
