package graph

import (
	"fmt"
	"html"
	"math"
	"strings"
)

// SVGOptions controls native SVG rendering.
type SVGOptions struct {
	Width    int    // canvas width in pixels
	Height   int    // canvas height in pixels
	FontSize int    // label font size
	Title    string // optional document title
}

// DefaultSVGOptions returns sensible defaults.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:    800,
		Height:   600,
		FontSize: 12,
	}
}

// RenderSVG renders the model under the camera transform to SVG
// markup. The world transform is applied at the group level; stroke
// widths, radii, and the label font are divided by the scale so they
// stay visually constant under zoom, matching the PNG renderer and
// the live viewer.
func RenderSVG(m *Model, t Transform, opts SVGOptions) string {
	if opts.Width == 0 {
		opts.Width = 800
	}
	if opts.Height == 0 {
		opts.Height = 600
	}
	if opts.FontSize == 0 {
		opts.FontSize = 12
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		opts.Width, opts.Height, opts.Width, opts.Height))
	if opts.Title != "" {
		sb.WriteString("  <title>" + html.EscapeString(opts.Title) + "</title>\n")
	}
	sb.WriteString(`  <rect width="100%" height="100%" fill="#fafafa"/>` + "\n")

	sb.WriteString(fmt.Sprintf(`  <g transform="translate(%.2f,%.2f) scale(%.4f)">`+"\n",
		t.TranslateX, t.TranslateY, t.Scale))

	if m != nil {
		writeLinks(&sb, m, t.Scale)
		writeNodes(&sb, m, t.Scale, opts.FontSize)
	}

	sb.WriteString("  </g>\n")

	// Zoom readout, unscaled, fixed corner.
	sb.WriteString(fmt.Sprintf(
		`  <text x="10" y="%d" font-family="sans-serif" font-size="%d" fill="#666">Zoom: %d%%</text>`+"\n",
		10+opts.FontSize, opts.FontSize, int(math.Round(t.Scale*100))))

	sb.WriteString("</svg>\n")
	return sb.String()
}

func writeLinks(sb *strings.Builder, m *Model, scale float64) {
	for _, l := range m.Links {
		src := m.Nodes[l.Source]
		dst := m.Nodes[l.Target]

		stroke := clamp(l.Value, 2, 4) / scale
		halo := (clamp(l.Value, 3, 5) + 2) / scale

		sb.WriteString(fmt.Sprintf(
			`    <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.3f"/>`+"\n",
			src.Pos[0], src.Pos[1], dst.Pos[0], dst.Pos[1],
			LinkColor(l.Type).Hex(), stroke))
		sb.WriteString(fmt.Sprintf(
			`    <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="#ffffff" stroke-opacity="0.35" stroke-width="%.3f"/>`+"\n",
			src.Pos[0], src.Pos[1], dst.Pos[0], dst.Pos[1], halo))
	}
}

func writeNodes(sb *strings.Builder, m *Model, scale float64, fontSize int) {
	fs := float64(fontSize) / scale

	for _, n := range m.Nodes {
		r := nodeRadius(n) / scale

		sb.WriteString(fmt.Sprintf(
			`    <circle cx="%.2f" cy="%.2f" r="%.3f" fill="%s" stroke="#ffffff" stroke-width="%.3f"/>`+"\n",
			n.Pos[0], n.Pos[1], r, RoleColor(n.Role).Hex(), 1.5/scale))

		// Label on a plate below the node. Width estimated from the
		// glyph count; SVG has no measurement primitive.
		label := html.EscapeString(n.ID)
		estWidth := float64(len(n.ID)) * fs * 0.6
		plateX := n.Pos[0] - estWidth/2 - 2/scale
		plateY := n.Pos[1] + r + 2/scale
		sb.WriteString(fmt.Sprintf(
			`    <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="#ffffff" fill-opacity="0.85"/>`+"\n",
			plateX, plateY, estWidth+4/scale, fs+4/scale))
		sb.WriteString(fmt.Sprintf(
			`    <text x="%.2f" y="%.2f" font-family="sans-serif" font-size="%.3f" fill="#333" text-anchor="middle">%s</text>`+"\n",
			n.Pos[0], plateY+fs, fs, label))
	}
}
