package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/hollisb/chargraph/pkg/graph"
)

// Styles
var (
	styleDefault = tcell.StyleDefault
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleHelp    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTooltip = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	styleReadout = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

// roleStyle derives a tcell style from the shared palette so the TUI
// agrees with the PNG/SVG renderers about role colors.
func roleStyle(role string) tcell.Style {
	r, g, b := graph.RoleColor(role).RGB255()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b))).Bold(true)
}

func linkStyle(linkType string) tcell.Style {
	r, g, b := graph.LinkColor(linkType).RGB255()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
}

func (a *App) draw() {
	a.screen.Clear()
	w, h := a.screen.Size()
	canvasH := h - statusRows

	m := a.engine.Model
	if m != nil {
		a.drawLinks(m, w, canvasH)
		a.drawNodes(m, w, canvasH)
	}

	a.drawZoomReadout(w)
	a.drawTooltip(w, canvasH)
	a.drawStatusBar(w, h)
}

// cell maps a world position through the camera into terminal cells.
func (a *App) cell(p graph.Point) (int, int) {
	s := a.engine.Camera.ToScreen(p)
	return int(s.X) / a.config.CellWidth, int(s.Y) / a.config.CellHeight
}

func (a *App) drawLinks(m *graph.Model, w, canvasH int) {
	for _, l := range m.Links {
		src := m.Nodes[l.Source]
		dst := m.Nodes[l.Target]
		x0, y0 := a.cell(graph.Point{X: src.Pos[0], Y: src.Pos[1]})
		x1, y1 := a.cell(graph.Point{X: dst.Pos[0], Y: dst.Pos[1]})

		style := linkStyle(l.Type)
		if l.Value >= 5 {
			style = style.Bold(true)
		}
		a.plotLine(x0, y0, x1, y1, w, canvasH, style)
	}
}

// plotLine draws a straight segment in cells, choosing the rune from
// the dominant direction.
func (a *App) plotLine(x0, y0, x1, y1, w, canvasH int, style tcell.Style) {
	dx := x1 - x0
	dy := y1 - y0
	steps := abs(dx)
	if abs(dy) > steps {
		steps = abs(dy)
	}
	if steps == 0 {
		return
	}

	var r rune
	switch {
	case abs(dx) >= 3*abs(dy):
		r = '─'
	case abs(dy) >= 3*abs(dx):
		r = '│'
	case (dx > 0) == (dy > 0):
		r = '╲'
	default:
		r = '╱'
	}

	for i := 1; i < steps; i++ {
		x := x0 + dx*i/steps
		y := y0 + dy*i/steps
		if x >= 0 && x < w && y >= 0 && y < canvasH {
			a.screen.SetContent(x, y, r, nil, style)
		}
	}
}

func (a *App) drawNodes(m *graph.Model, w, canvasH int) {
	dragged := a.engine.DraggedNode()

	for _, n := range m.Nodes {
		x, y := a.cell(graph.Point{X: n.Pos[0], Y: n.Pos[1]})
		if y < 0 || y >= canvasH {
			continue
		}

		style := roleStyle(n.Role)
		if n == dragged {
			style = style.Reverse(true)
		}
		if a.hover.Kind == graph.HoverNode && a.hover.Node == n {
			style = style.Underline(true)
		}

		label := "●" + n.ID
		for i, r := range []rune(label) {
			if x+i >= 0 && x+i < w {
				a.screen.SetContent(x+i, y, r, nil, style)
			}
		}
	}
}

func (a *App) drawZoomReadout(w int) {
	text := fmt.Sprintf("Zoom %d%%", int(a.engine.Camera.Scale*100+0.5))
	x := w - len(text) - 1
	for i, r := range text {
		a.screen.SetContent(x+i, 0, r, nil, styleReadout)
	}
}

// drawTooltip shows the hover target near the pointer.
func (a *App) drawTooltip(w, canvasH int) {
	var lines []string
	switch a.hover.Kind {
	case graph.HoverNode:
		n := a.hover.Node
		lines = append(lines, n.ID+" ("+n.Role+")")
		if n.Description != "" {
			lines = append(lines, truncate(n.Description, 40))
		}
	case graph.HoverLink:
		lines = append(lines, a.hover.Source+" - "+a.hover.Target)
		lines = append(lines, truncate(a.hover.Type, 40))
	default:
		return
	}

	boxW := 0
	for _, l := range lines {
		if len([]rune(l))+2 > boxW {
			boxW = len([]rune(l)) + 2
		}
	}
	boxH := len(lines)

	x := int(a.hover.Screen.X)/a.config.CellWidth + 2
	y := int(a.hover.Screen.Y)/a.config.CellHeight + 1
	if x+boxW >= w {
		x = w - boxW - 1
	}
	if y+boxH >= canvasH {
		y = canvasH - boxH - 1
	}
	if x < 0 || y < 0 {
		return
	}

	for row, l := range lines {
		runes := []rune(fmt.Sprintf(" %-*s", boxW-1, l))
		for i, r := range runes {
			a.screen.SetContent(x+i, y+row, r, nil, styleTooltip)
		}
	}
}

func (a *App) drawStatusBar(w, h int) {
	y := h - 1
	for x := 0; x < w; x++ {
		a.screen.SetContent(x, y, ' ', nil, styleStatus)
	}

	info := a.filename
	if m := a.engine.Model; m != nil {
		info = fmt.Sprintf("%s  %d nodes, %d links", a.filename, len(m.Nodes), len(m.Links))
	}
	if a.paused {
		info += "  [paused]"
	}
	drawText(a.screen, 1, y, info, styleStatus)

	if a.message != "" {
		drawText(a.screen, w-len(a.message)-2, y, a.message, styleStatus)
	}

	help := "drag:move node  Alt+drag/middle:pan  wheel:zoom  R:reset  Space:pause  Q:quit"
	y = h - 2
	for x := 0; x < w; x++ {
		a.screen.SetContent(x, y, ' ', nil, styleDefault)
	}
	drawText(a.screen, 1, y, help, styleHelp)
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
