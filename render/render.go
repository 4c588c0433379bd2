// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"

	"github.com/katalvlaran/rectilinear/polygon"
	"github.com/katalvlaran/rectilinear/rectsearch"
	"github.com/katalvlaran/rectilinear/vertex"
)

// Draw renders p, and best when it is non-nil and found, onto a new canvas.
// Complexity: O(V) path operations plus rasterisation of the canvas.
func Draw(p *polygon.Polygon, best *rectsearch.Result, opts Options) (*image.RGBA, error) {
	if p == nil {
		return nil, ErrNilPolygon
	}
	if float64(opts.Width) <= 2*opts.Padding || float64(opts.Height) <= 2*opts.Padding {
		return nil, fmt.Errorf("Draw: %d×%d with padding %.1f: %w", opts.Width, opts.Height, opts.Padding, ErrCanvasTooSmall)
	}
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	gc := draw2dimg.NewGraphicContext(img)
	tr := fit(p, opts)

	gc.SetFillColor(opts.Background)
	draw2dkit.Rectangle(gc, 0, 0, float64(opts.Width), float64(opts.Height))
	gc.Fill()

	gc.SetFillColor(opts.Fill)
	gc.SetStrokeColor(opts.Outline)
	gc.SetLineWidth(opts.LineWidth)
	for i := 0; i < p.Len(); i++ {
		x, y := tr.apply(p.Vertex(i))
		if i == 0 {
			gc.MoveTo(x, y)
		} else {
			gc.LineTo(x, y)
		}
	}
	gc.Close()
	gc.FillStroke()

	if best != nil && best.Found() {
		lo, hi := best.Bounds()
		x0, y0 := tr.apply(lo)
		x1, y1 := tr.apply(hi)
		gc.SetFillColor(opts.Highlight)
		gc.SetStrokeColor(opts.HighlightOutline)
		draw2dkit.Rectangle(gc, min(x0, x1), min(y0, y1), max(x0, x1), max(y0, y1))
		gc.FillStroke()
	}

	return img, nil
}

// SavePNG writes img to path as a PNG file.
func SavePNG(path string, img image.Image) error {
	if err := draw2dimg.SaveToPngFile(path, img); err != nil {
		return fmt.Errorf("SavePNG(%s): %w", path, err)
	}

	return nil
}

// transform maps polygon coordinates to canvas pixels.
type transform struct {
	lo     vertex.Vertex
	scale  float64
	pad    float64
	height float64
	flipY  bool
}

// fit scales the bounding box of p uniformly into the padded canvas.
// A zero-width or zero-height box is treated as one unit wide.
func fit(p *polygon.Polygon, opts Options) transform {
	lo, hi := p.Bounds()
	spanX := max(float64(hi.X)-float64(lo.X), 1)
	spanY := max(float64(hi.Y)-float64(lo.Y), 1)
	scale := min((float64(opts.Width)-2*opts.Padding)/spanX, (float64(opts.Height)-2*opts.Padding)/spanY)

	return transform{lo: lo, scale: scale, pad: opts.Padding, height: float64(opts.Height), flipY: opts.FlipY}
}

func (t transform) apply(v vertex.Vertex) (x, y float64) {
	x = t.pad + (float64(v.X)-float64(t.lo.X))*t.scale
	y = t.pad + (float64(v.Y)-float64(t.lo.Y))*t.scale
	if t.flipY {
		y = t.height - y
	}

	return x, y
}
