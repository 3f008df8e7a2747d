// Native PNG rendering of the graph scene.
// Mirrors what the live viewer shows: links as colored strokes with a
// translucent halo, nodes as role-colored circles with id labels, and
// a zoom readout. Uses Go's image packages with supersampling.

package graph

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// PNGOptions configures PNG rendering.
type PNGOptions struct {
	Width    int
	Height   int
	FontSize int
}

// DefaultPNGOptions returns sensible defaults for PNG rendering.
func DefaultPNGOptions() PNGOptions {
	return PNGOptions{
		Width:    800,
		Height:   600,
		FontSize: 12,
	}
}

var (
	pngBackground = color.RGBA{250, 250, 250, 255}
	pngOutline    = color.RGBA{255, 255, 255, 255}
	pngLabelText  = color.RGBA{51, 51, 51, 255}  // #333
	pngLabelPlate = color.RGBA{255, 255, 255, 220}
	pngHalo       = color.RGBA{255, 255, 255, 90}
	pngReadout    = color.RGBA{102, 102, 102, 255} // #666
)

// sceneContext holds rendering parameters including the supersample
// factor.
type sceneContext struct {
	img  *image.RGBA
	ss   float64 // supersample multiplier applied to all coordinates
	face font.Face
}

func newSceneContext(img *image.RGBA, ss int, fontSize int) *sceneContext {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		panic(err) // embedded font always parses
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    float64(fontSize * ss),
		DPI:     72,
		Hinting: font.HintingNone, // supersampling smooths instead
	})
	if err != nil {
		panic(err)
	}
	return &sceneContext{img: img, ss: float64(ss), face: face}
}

// RenderPNG renders the model under the given camera transform.
// Renders at 4x and downsamples with CatmullRom for smooth edges.
func RenderPNG(m *Model, t Transform, w io.Writer, opts PNGOptions) error {
	if opts.Width == 0 {
		opts.Width = 800
	}
	if opts.Height == 0 {
		opts.Height = 600
	}
	if opts.FontSize == 0 {
		opts.FontSize = 12
	}

	const ss = 4
	large := image.NewRGBA(image.Rect(0, 0, opts.Width*ss, opts.Height*ss))
	ctx := newSceneContext(large, ss, opts.FontSize)

	fillRect(large, large.Bounds(), pngBackground)
	if m != nil {
		drawScene(ctx, m, t)
	}
	drawZoomReadout(ctx, t)

	final := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.CatmullRom.Scale(final, final.Bounds(), large, large.Bounds(), draw.Over, nil)
	return png.Encode(w, final)
}

// drawScene paints links first, then nodes and labels on top. All
// stroke widths and radii are held constant in screen space; only
// positions go through the camera transform.
func drawScene(ctx *sceneContext, m *Model, t Transform) {
	for _, l := range m.Links {
		a := ctx.screen(t, m.Nodes[l.Source])
		b := ctx.screen(t, m.Nodes[l.Target])

		stroke := clamp(l.Value, 2, 4) * ctx.ss
		halo := (clamp(l.Value, 3, 5) + 2) * ctx.ss

		strokeSegment(ctx.img, a, b, stroke, rgba(LinkColor(l.Type), 255))
		strokeSegment(ctx.img, a, b, halo, pngHalo)
	}

	for _, n := range m.Nodes {
		p := ctx.screen(t, n)
		r := nodeRadius(n) * ctx.ss

		fillCircle(ctx.img, p.X, p.Y, r+1.5*ctx.ss, pngOutline)
		fillCircle(ctx.img, p.X, p.Y, r, rgba(RoleColor(n.Role), 255))

		drawNodeLabel(ctx, n.ID, p, r)
	}
}

// nodeRadius is the drawn radius in screen pixels (before
// supersampling); the camera scale is already cancelled out so nodes
// stay the same apparent size under zoom.
func nodeRadius(n *Node) float64 {
	return math.Max(8, n.Size/2+4)
}

func (ctx *sceneContext) screen(t Transform, n *Node) Point {
	p := t.ToScreen(Point{n.Pos[0], n.Pos[1]})
	return Point{p.X * ctx.ss, p.Y * ctx.ss}
}

// drawNodeLabel draws the id on a measured plate below the node.
func drawNodeLabel(ctx *sceneContext, text string, p Point, r float64) {
	width := font.MeasureString(ctx.face, text).Ceil()
	metrics := ctx.face.Metrics()
	ascent := metrics.Ascent.Ceil()
	height := ascent + metrics.Descent.Ceil()
	pad := int(2 * ctx.ss)

	left := int(p.X) - width/2
	top := int(p.Y+r) + pad
	plate := image.Rect(left-pad, top, left+width+pad, top+height+pad)
	blendRect(ctx.img, plate, pngLabelPlate)

	d := &font.Drawer{
		Dst:  ctx.img,
		Src:  image.NewUniform(pngLabelText),
		Face: ctx.face,
		Dot:  fixed.P(left, top+ascent),
	}
	d.DrawString(text)
}

func drawZoomReadout(ctx *sceneContext, t Transform) {
	text := fmt.Sprintf("Zoom: %d%%", int(math.Round(t.Scale*100)))
	margin := int(10 * ctx.ss)
	ascent := ctx.face.Metrics().Ascent.Ceil()
	d := &font.Drawer{
		Dst:  ctx.img,
		Src:  image.NewUniform(pngReadout),
		Face: ctx.face,
		Dot:  fixed.P(margin, margin+ascent),
	}
	d.DrawString(text)
}

// Raster primitives.

func fillRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// blendRect source-over blends a translucent rectangle.
func blendRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	draw.Draw(img, r.Intersect(img.Bounds()), image.NewUniform(c), image.Point{}, draw.Over)
}

// fillCircle rasterizes a filled circle by scanline.
func fillCircle(img *image.RGBA, cx, cy, r float64, c color.RGBA) {
	if r <= 0 {
		return
	}
	b := img.Bounds()
	y0 := int(math.Floor(cy - r))
	y1 := int(math.Ceil(cy + r))
	for y := y0; y <= y1; y++ {
		if y < b.Min.Y || y >= b.Max.Y {
			continue
		}
		dy := float64(y) + 0.5 - cy
		span := r*r - dy*dy
		if span < 0 {
			continue
		}
		half := math.Sqrt(span)
		x0 := int(math.Floor(cx - half))
		x1 := int(math.Ceil(cx + half))
		if x0 < b.Min.X {
			x0 = b.Min.X
		}
		if x1 > b.Max.X {
			x1 = b.Max.X
		}
		for x := x0; x < x1; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// strokeSegment draws a segment of the given total width. Coverage is
// computed per pixel from the point-to-segment distance, so each
// pixel blends exactly once even for translucent strokes.
func strokeSegment(img *image.RGBA, a, b Point, width float64, c color.RGBA) {
	if width <= 0 {
		return
	}
	half := width / 2
	bounds := img.Bounds()

	x0 := int(math.Floor(math.Min(a.X, b.X) - half))
	x1 := int(math.Ceil(math.Max(a.X, b.X) + half))
	y0 := int(math.Floor(math.Min(a.Y, b.Y) - half))
	y1 := int(math.Ceil(math.Max(a.Y, b.Y) + half))

	if x0 < bounds.Min.X {
		x0 = bounds.Min.X
	}
	if y0 < bounds.Min.Y {
		y0 = bounds.Min.Y
	}
	if x1 > bounds.Max.X {
		x1 = bounds.Max.X
	}
	if y1 > bounds.Max.Y {
		y1 = bounds.Max.Y
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			p := Point{float64(x) + 0.5, float64(y) + 0.5}
			if pointSegmentDistance(p, a, b) <= half {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// blendPixel source-over blends a single pixel.
func blendPixel(img *image.RGBA, x, y int, c color.RGBA) {
	if c.A == 255 {
		img.SetRGBA(x, y, c)
		return
	}
	dst := img.RGBAAt(x, y)
	a := uint32(c.A)
	inv := 255 - a
	img.SetRGBA(x, y, color.RGBA{
		R: uint8((uint32(c.R)*a + uint32(dst.R)*inv) / 255),
		G: uint8((uint32(c.G)*a + uint32(dst.G)*inv) / 255),
		B: uint8((uint32(c.B)*a + uint32(dst.B)*inv) / 255),
		A: uint8(a + uint32(dst.A)*inv/255),
	})
}
