package export

import (
	"bytes"
	"fmt"

	"github.com/mklettner/ledsmith/pkg/plan"
)

// SVGOption configures the SVG sink.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	margin      float64
	scale       float64
	outlineFill string
	moduleFill  string
	showCenters bool
}

// WithMargin sets the whitespace around the letter in outline units.
func WithMargin(m float64) SVGOption { return func(r *svgRenderer) { r.margin = m } }

// WithScale multiplies the rendered pixel size. The coordinate system is
// unchanged; only the svg width/height attributes scale.
func WithScale(s float64) SVGOption { return func(r *svgRenderer) { r.scale = s } }

// WithCenters draws a dot on every module center, useful when checking
// pitch evenness by eye.
func WithCenters() SVGOption { return func(r *svgRenderer) { r.showCenters = true } }

// RenderSVG renders the plan as a standalone SVG document.
func RenderSVG(p *plan.Plan, opts ...SVGOption) []byte {
	r := svgRenderer{
		margin:      2,
		scale:       10,
		outlineFill: "#1a1a2e",
		moduleFill:  "#ffd166",
	}
	for _, opt := range opts {
		opt(&r)
	}

	x := p.Bounds.X - r.margin
	y := p.Bounds.Y - r.margin
	w := p.Bounds.Width + 2*r.margin
	h := p.Bounds.Height + 2*r.margin

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.2f %.2f %.2f %.2f" width="%.0f" height="%.0f">`+"\n",
		x, y, w, h, w*r.scale, h*r.scale)

	fmt.Fprintf(&buf, `  <path d=%q fill=%q fill-rule="nonzero" stroke="none"/>`+"\n",
		p.Path, r.outlineFill)

	for _, m := range p.Modules {
		fmt.Fprintf(&buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.2f" fill=%q transform="rotate(%.1f %.2f %.2f)"/>`+"\n",
			m.X-m.W/2, m.Y-m.H/2, m.W, m.H, m.H/4, r.moduleFill, m.Rotation, m.X, m.Y)
		if r.showCenters {
			fmt.Fprintf(&buf, `  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="#ef476f"/>`+"\n",
				m.X, m.Y, m.H/6)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
