package graph

import (
	"strings"
	"testing"

	"github.com/quartercastle/vector"
)

func svgModel() *Model {
	g := &Graph{
		Nodes: []RawNode{
			{ID: "Alice", Size: 20, Role: "main"},
			{ID: "Bob", Size: 10, Role: "supporting"},
		},
		Links: []RawLink{{Source: "Alice", Target: "Bob", Value: 5, Type: "Friend"}},
	}
	m := Build(g, 800, 600)
	m.Nodes[0].Pos = vector.Vector{200, 200}
	m.Nodes[1].Pos = vector.Vector{400, 300}
	return m
}

func TestRenderSVG(t *testing.T) {
	m := svgModel()
	svg := RenderSVG(m, NewTransform(), DefaultSVGOptions())

	checks := []struct {
		name   string
		substr string
	}{
		{"SVG root", `<svg xmlns="http://www.w3.org/2000/svg"`},
		{"Main role color", colorRoleMain.Hex()},
		{"Supporting role color", colorRoleSupporting.Hex()},
		{"Friend link color", colorLinkFriend.Hex()},
		{"Alice label", ">Alice</text>"},
		{"Bob label", ">Bob</text>"},
		{"Zoom readout", "Zoom: 100%"},
	}
	for _, c := range checks {
		if !strings.Contains(svg, c.substr) {
			t.Errorf("%s: output missing %q", c.name, c.substr)
		}
	}

	if n := strings.Count(svg, "<circle"); n != 2 {
		t.Errorf("Expected 2 circles, got %d", n)
	}
	// Each link renders a colored stroke plus a halo line.
	if n := strings.Count(svg, "<line"); n != 2 {
		t.Errorf("Expected 2 line elements for 1 link, got %d", n)
	}
}

func TestRenderSVGAppliesTransform(t *testing.T) {
	m := svgModel()
	cam := Transform{Scale: 2, TranslateX: 50, TranslateY: -10}
	svg := RenderSVG(m, cam, DefaultSVGOptions())

	if !strings.Contains(svg, `transform="translate(50.00,-10.00) scale(2.0000)"`) {
		t.Errorf("Missing camera group transform in output")
	}
	if !strings.Contains(svg, "Zoom: 200%") {
		t.Errorf("Zoom readout should reflect the scale")
	}
}

func TestRenderSVGEscapesTitle(t *testing.T) {
	svg := RenderSVG(svgModel(), NewTransform(), SVGOptions{Title: `a <b> & "c"`})
	if strings.Contains(svg, "<b>") {
		t.Error("Title not escaped")
	}
	if !strings.Contains(svg, "&lt;b&gt;") {
		t.Error("Escaped title missing from output")
	}
}

func TestRenderSVGNilModel(t *testing.T) {
	svg := RenderSVG(nil, NewTransform(), DefaultSVGOptions())
	if !strings.Contains(svg, "</svg>") {
		t.Error("Nil model should still produce a closed document")
	}
	if strings.Contains(svg, "<circle") {
		t.Error("Nil model should render no nodes")
	}
}
