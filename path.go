package kinema

import "github.com/chewxy/math32"

// PathElement represents a single element in a path.
// This is a sealed interface - only types in this package implement it.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
// The animation description emits cubic segments only, so the element set
// carries no quadratic variant.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path.
//
// Paths are rebuilt every frame during scene evaluation; Reset keeps the
// element storage so steady-state frames do not allocate.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float32) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float32) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float32) {
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Reset removes all elements from the path, keeping the storage.
func (p *Path) Reset() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// Empty returns true if the path has no elements.
func (p *Path) Empty() bool {
	return len(p.elements) == 0
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Transform replaces the path's contents with the elements of src
// transformed by m.
func (p *Path) Transform(src *Path, m Matrix) {
	p.Reset()
	for _, elem := range src.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := m.Map(e.Point)
			p.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.Map(e.Point)
			p.LineTo(pt.X, pt.Y)
		case CubicTo:
			c1 := m.Map(e.Control1)
			c2 := m.Map(e.Control2)
			pt := m.Map(e.Point)
			p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		case Close:
			p.Close()
		}
	}
}

// Append appends all elements of src to the path unchanged.
func (p *Path) Append(src *Path) {
	for _, elem := range src.elements {
		switch e := elem.(type) {
		case MoveTo:
			p.MoveTo(e.Point.X, e.Point.Y)
		case LineTo:
			p.LineTo(e.Point.X, e.Point.Y)
		case CubicTo:
			p.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case Close:
			p.Close()
		}
	}
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := &Path{
		elements: make([]PathElement, len(p.elements)),
		start:    p.start,
		current:  p.current,
	}
	copy(result.elements, p.elements)
	return result
}

// Bounds returns the control-point bounding box of the path.
// Control points of cubics are included, so the box may be looser than the
// tight curve bounds; it is conservative, never too small.
func (p *Path) Bounds() Rect {
	first := true
	var out Rect
	add := func(pt Point) {
		if first {
			out = Rect{Min: pt, Max: pt}
			first = false
			return
		}
		out = out.Union(Rect{Min: pt, Max: pt})
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			add(e.Point)
		case LineTo:
			add(e.Point)
		case CubicTo:
			add(e.Control1)
			add(e.Control2)
			add(e.Point)
		}
	}
	return out
}

// Magic constant for circle approximation with cubic Beziers:
// 4/3 * (sqrt(2) - 1).
const circleKappa = 0.5522847498307936

// Rectangle adds a rectangle with rounded corners to the path.
// A roundness of 0 produces sharp corners; the radius is clamped to half
// of the smaller dimension. If clockwise is false the rectangle winds in
// reverse, which matters when composing with even-odd fills.
func (p *Path) Rectangle(x, y, w, h, roundness float32, clockwise bool) {
	r := math32.Min(roundness, math32.Min(w, h)/2)
	if r <= 0 {
		if clockwise {
			p.MoveTo(x, y)
			p.LineTo(x+w, y)
			p.LineTo(x+w, y+h)
			p.LineTo(x, y+h)
		} else {
			p.MoveTo(x, y)
			p.LineTo(x, y+h)
			p.LineTo(x+w, y+h)
			p.LineTo(x+w, y)
		}
		p.Close()
		return
	}

	k := r * circleKappa
	if clockwise {
		p.MoveTo(x+r, y)
		p.LineTo(x+w-r, y)
		p.CubicTo(x+w-r+k, y, x+w, y+r-k, x+w, y+r)
		p.LineTo(x+w, y+h-r)
		p.CubicTo(x+w, y+h-r+k, x+w-r+k, y+h, x+w-r, y+h)
		p.LineTo(x+r, y+h)
		p.CubicTo(x+r-k, y+h, x, y+h-r+k, x, y+h-r)
		p.LineTo(x, y+r)
		p.CubicTo(x, y+r-k, x+r-k, y, x+r, y)
	} else {
		p.MoveTo(x+r, y)
		p.CubicTo(x+r-k, y, x, y+r-k, x, y+r)
		p.LineTo(x, y+h-r)
		p.CubicTo(x, y+h-r+k, x+r-k, y+h, x+r, y+h)
		p.LineTo(x+w-r, y+h)
		p.CubicTo(x+w-r+k, y+h, x+w, y+h-r+k, x+w, y+h-r)
		p.LineTo(x+w, y+r)
		p.CubicTo(x+w, y+r-k, x+w-r+k, y, x+w-r, y)
	}
	p.Close()
}

// Ellipse adds an ellipse centered at (cx, cy) with radii rx, ry.
// If clockwise is false the ellipse winds in reverse.
func (p *Path) Ellipse(cx, cy, rx, ry float32, clockwise bool) {
	ox := rx * circleKappa
	oy := ry * circleKappa

	if clockwise {
		p.MoveTo(cx, cy-ry)
		p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
		p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
		p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
		p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	} else {
		p.MoveTo(cx, cy-ry)
		p.CubicTo(cx-ox, cy-ry, cx-rx, cy-oy, cx-rx, cy)
		p.CubicTo(cx-rx, cy+oy, cx-ox, cy+ry, cx, cy+ry)
		p.CubicTo(cx+ox, cy+ry, cx+rx, cy+oy, cx+rx, cy)
		p.CubicTo(cx+rx, cy-oy, cx+ox, cy-ry, cx, cy-ry)
	}
	p.Close()
}
