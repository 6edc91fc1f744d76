package kinema

import "github.com/chewxy/math32"

// Curve types for 2D geometry operations.
// The cubic Bezier kernel backs all path math in the engine: path
// evaluation, arc-length trimming, dash placement and gradient geometry.

// Rect represents an axis-aligned rectangle.
// Min is the top-left corner (minimum coordinates).
// Max is the bottom-right corner (maximum coordinates).
type Rect struct {
	Min, Max Point
}

// NewRect creates a rectangle from two points.
// The points are normalized so Min <= Max.
func NewRect(p1, p2 Point) Rect {
	return Rect{
		Min: Point{X: math32.Min(p1.X, p2.X), Y: math32.Min(p1.Y, p2.Y)},
		Max: Point{X: math32.Max(p1.X, p2.X), Y: math32.Max(p1.Y, p2.Y)},
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float32 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float32 {
	return r.Max.Y - r.Min.Y
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Point{X: math32.Min(r.Min.X, other.Min.X), Y: math32.Min(r.Min.Y, other.Min.Y)},
		Max: Point{X: math32.Max(r.Max.X, other.Max.X), Y: math32.Max(r.Max.Y, other.Max.Y)},
	}
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// -------------------------------------------------------------------
// Line
// -------------------------------------------------------------------

// Line represents a line segment from P0 to P1.
type Line struct {
	P0, P1 Point
}

// NewLine creates a new line segment.
func NewLine(p0, p1 Point) Line {
	return Line{P0: p0, P1: p1}
}

// Eval evaluates the line at parameter t (0 to 1).
// t=0 returns P0, t=1 returns P1.
func (l Line) Eval(t float32) Point {
	return l.P0.Lerp(l.P1, t)
}

// Length returns the length of the line segment.
func (l Line) Length() float32 {
	return l.P0.Distance(l.P1)
}

// Angle returns the direction of the line in degrees.
// A horizontal line pointing right is 0; angles increase clockwise
// in the engine's y-down coordinate system.
func (l Line) Angle() float32 {
	d := l.P1.Sub(l.P0)
	return math32.Atan2(d.Y, d.X) * 180 / math32.Pi
}

// -------------------------------------------------------------------
// CubicBez - Cubic Bezier Curve
// -------------------------------------------------------------------

// CubicBez represents a cubic Bezier curve with control points P0, P1, P2, P3.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
// It is an immutable value type with no identity beyond its coordinates.
//
// All operations are total over t in [0, 1]. Behavior for t outside that
// range is undefined; callers clamp their parameters before invoking the
// kernel. The kernel does not clamp on the caller's behalf.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// NewCubicBez creates a new cubic Bezier curve.
func NewCubicBez(p0, p1, p2, p3 Point) CubicBez {
	return CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Coefficients returns the four Bernstein basis weights at parameter t.
// Callers doing bulk evaluation weight the control points directly:
//
//	p = a*P0 + b*P1 + c*P2 + d*P3
func Coefficients(t float32) (a, b, c, d float32) {
	mt := 1 - t
	b = mt * mt
	c = t * t
	d = c * t
	a = b * mt
	b *= 3 * t
	c *= 3 * mt
	return a, b, c, d
}

// Eval evaluates the curve at parameter t using the nested-lerp
// (de Casteljau) formulation. The expanded Bernstein polynomial cancels
// badly near the curve ends in single precision; the nested form does not.
func (c CubicBez) Eval(t float32) Point {
	mt := 1 - t
	a := c.P0.Lerp(c.P1, t)
	b := c.P1.Lerp(c.P2, t)
	d := c.P2.Lerp(c.P3, t)
	a = Point{X: a.X*mt + b.X*t, Y: a.Y*mt + b.Y*t}
	b = Point{X: b.X*mt + d.X*t, Y: b.Y*mt + d.Y*t}
	return Point{X: a.X*mt + b.X*t, Y: a.Y*mt + b.Y*t}
}

// Deriv returns the tangent vector at parameter t.
func (c CubicBez) Deriv(t float32) Point {
	mt := 1 - t
	d := t * t
	a := -mt * mt
	b := 1 - 4*t + 3*d
	e := 2*t - 3*d
	return Point{
		X: 3 * (a*c.P0.X + b*c.P1.X + e*c.P2.X + d*c.P3.X),
		Y: 3 * (a*c.P0.Y + b*c.P1.Y + e*c.P2.Y + d*c.P3.Y),
	}
}

// AngleAt returns the tangent angle at parameter t in degrees.
// Used for auto-orient transforms following a motion path.
func (c CubicBez) AngleAt(t float32) float32 {
	if t < 0 || t > 1 {
		return 0
	}
	d := c.Deriv(t)
	return math32.Atan2(d.Y, d.X) * 180 / math32.Pi
}

// SplitMid splits the curve at t=0.5 into two halves using the
// midpoint-averaging subdivision construction.
func (c CubicBez) SplitMid() (CubicBez, CubicBez) {
	var first, second CubicBez

	mid := Point{X: (c.P1.X + c.P2.X) * 0.5, Y: (c.P1.Y + c.P2.Y) * 0.5}
	first.P0 = c.P0
	second.P3 = c.P3
	first.P1 = Point{X: (c.P0.X + c.P1.X) * 0.5, Y: (c.P0.Y + c.P1.Y) * 0.5}
	second.P2 = Point{X: (c.P2.X + c.P3.X) * 0.5, Y: (c.P2.Y + c.P3.Y) * 0.5}
	first.P2 = Point{X: (first.P1.X + mid.X) * 0.5, Y: (first.P1.Y + mid.Y) * 0.5}
	second.P1 = Point{X: (second.P2.X + mid.X) * 0.5, Y: (second.P2.Y + mid.Y) * 0.5}
	shared := Point{X: (first.P2.X + second.P1.X) * 0.5, Y: (first.P2.Y + second.P1.Y) * 0.5}
	first.P3 = shared
	second.P0 = shared

	return first, second
}

// Split partitions the curve at parameter t into two sub-curves by
// de Casteljau subdivision. The shared boundary point equals Eval(t)
// to numeric tolerance: left.P3 == right.P0 == Eval(t).
func (c CubicBez) Split(t float32) (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	mid := p012.Lerp(p123, t)

	return CubicBez{P0: c.P0, P1: p01, P2: p012, P3: mid},
		CubicBez{P0: mid, P1: p123, P2: p23, P3: c.P3}
}

// OnInterval returns the sub-curve restricted to [t0, t1], composed from
// two splits. t0 <= t1 is the caller's responsibility.
func (c CubicBez) OnInterval(t0, t1 float32) CubicBez {
	if t0 == 0 && t1 == 1 {
		return c
	}
	_, right := c.Split(t0)
	if t0 == 1 {
		return right
	}
	trueT := (t1 - t0) / (1 - t0)
	left, _ := right.Split(trueT)
	return left
}

// Length returns the approximate arc length of the curve.
// The estimate refines monotonically by recursive subdivision: the chord
// length is a lower bound and the control polygon an upper bound, so the
// curve is halved until the two agree.
func (c CubicBez) Length() float32 {
	chord := c.P3.Sub(c.P0).Length()
	poly := c.P1.Sub(c.P0).Length() +
		c.P2.Sub(c.P1).Length() +
		c.P3.Sub(c.P2).Length()

	if poly-chord > lengthTolerance {
		left, right := c.SplitMid()
		return left.Length() + right.Length()
	}
	return (poly + chord) * 0.5
}

const (
	lengthTolerance  = 0.01
	tSearchTolerance = 0.01
)

// TAtLength returns the parameter t at which the accumulated arc length
// from the curve start equals target. target <= 0 returns 0 and a target at
// or past Length() returns 1; the mapping never extrapolates past the
// curve's domain.
func (c CubicBez) TAtLength(target float32) float32 {
	if target <= 0 {
		return 0
	}
	total := c.Length()
	if target >= total || math32.Abs(target-total) < tSearchTolerance {
		return 1
	}

	// Bisection over t, comparing the left split's arc length against
	// the target. Converges quickly because Length is monotone in t.
	t := float32(0.5)
	biggest := float32(1.0)
	for {
		left, _ := c.Split(t)
		l := left.Length()
		if math32.Abs(l-target) < tSearchTolerance {
			return t
		}
		if l < target {
			t += (biggest - t) * 0.5
		} else {
			biggest = t
			t -= t * 0.5
		}
	}
}

// SplitAtLength splits the curve at the point where the accumulated arc
// length equals target. See TAtLength for boundary handling.
func (c CubicBez) SplitAtLength(target float32) (CubicBez, CubicBez) {
	return c.Split(c.TAtLength(target))
}
