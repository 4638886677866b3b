package outline

import "github.com/mklettner/ledsmith/pkg/geom"

// Outline is a parsed path: the ordered contours plus the raw string they
// came from. It is the handle the containment and placement packages work
// against. Outlines are rebuilt from scratch on every external path change
// and never mutated in place.
type Outline struct {
	Path     string
	Contours []Contour

	bbox    geom.Rect
	hasBBox bool
}

// FromPath parses d and wraps the result. The outline may be empty when d
// contains no usable contours; callers gate on the validate package before
// doing real work.
func FromPath(d string) *Outline {
	return &Outline{Path: d, Contours: Parse(d)}
}

// Empty reports whether the outline has no contours.
func (o *Outline) Empty() bool { return len(o.Contours) == 0 }

// BBox returns the union bounding box of all contour points. The value is
// computed once and cached; Outline is immutable after construction.
func (o *Outline) BBox() geom.Rect {
	if o.hasBBox {
		return o.bbox
	}
	var b geom.BBox
	for _, c := range o.Contours {
		for _, p := range c.Points {
			b.Add(p)
		}
	}
	o.bbox = b.Rect()
	o.hasBBox = true
	return o.bbox
}

// Perimeter returns the summed arc length of all contours.
func (o *Outline) Perimeter() float64 {
	var total float64
	for _, c := range o.Contours {
		total += c.Length()
	}
	return total
}

// Longest returns the contour with the greatest arc length, or nil for an
// empty outline. Stroke-following placement walks this contour.
func (o *Outline) Longest() *Contour {
	var best *Contour
	var bestLen float64
	for i := range o.Contours {
		if l := o.Contours[i].Length(); best == nil || l > bestLen {
			best = &o.Contours[i]
			bestLen = l
		}
	}
	return best
}
