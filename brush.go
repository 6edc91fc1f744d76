package kinema

import "github.com/chewxy/math32"

// Brush represents what to paint spans with.
// This is a sealed interface - only types in this package implement it.
//
// Supported brush types:
//   - SolidBrush: a single solid color
//   - LinearGradientBrush: color ramp between two points
//   - RadialGradientBrush: color ramp from a focal point to a circle
//
// Gradient brushes are pointer types: the scene model updates their
// geometry in place every frame while the merged stop list is only
// re-populated when the underlying samples animate.
type Brush interface {
	// brushMarker is an unexported method that seals this interface.
	// Only types in this package can implement Brush.
	brushMarker()

	// ColorAt returns the premultiplied color at the given coordinates.
	// For solid brushes, this returns the same color regardless of position.
	ColorAt(x, y float32) RGBA
}

// ColorStop is one stop of a gradient ramp. Color is premultiplied and
// already carries the merged stop opacity.
type ColorStop struct {
	Pos   float32
	Color RGBA
}

// SolidBrush is a single-color brush.
type SolidBrush struct {
	// Color is the solid color of this brush.
	Color RGBA
}

// brushMarker implements the sealed Brush interface.
func (SolidBrush) brushMarker() {}

// ColorAt implements Brush. Returns the solid color regardless of position.
func (b SolidBrush) ColorAt(_, _ float32) RGBA {
	return b.Color.Premultiplied()
}

// Solid creates a SolidBrush from an RGBA color.
func Solid(c RGBA) SolidBrush {
	return SolidBrush{Color: c}
}

// Premultiplied returns the color with RGB scaled by alpha, as float
// channels. Gradient stop interpolation and span blending both operate on
// premultiplied channels.
func (c RGBA) Premultiplied() RGBA {
	return RGBA{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// colorRampAt samples the stop list at offset t with pad extension: before
// the first stop and past the last one the boundary color holds. Stops are
// ascending by Pos; interpolation is linear on premultiplied channels.
func colorRampAt(stops []ColorStop, t float32) RGBA {
	if len(stops) == 0 {
		return RGBA{}
	}
	if t <= stops[0].Pos {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Pos {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		if t > stops[i].Pos {
			continue
		}
		prev := stops[i-1]
		next := stops[i]
		span := next.Pos - prev.Pos
		if span <= 0 {
			return next.Color
		}
		k := (t - prev.Pos) / span
		return prev.Color.Lerp(next.Color, k)
	}
	return last.Color
}

// LinearGradientBrush paints a color ramp along the line from Start to End.
type LinearGradientBrush struct {
	Start, End Point
	Stops      []ColorStop
}

func (*LinearGradientBrush) brushMarker() {}

// ColorAt implements Brush.
func (b *LinearGradientBrush) ColorAt(x, y float32) RGBA {
	d := b.End.Sub(b.Start)
	lenSq := d.X*d.X + d.Y*d.Y
	var t float32
	if lenSq > 0 {
		t = (Point{X: x, Y: y}.Sub(b.Start)).Dot(d) / lenSq
	}
	return colorRampAt(b.Stops, clamp01(t))
}

// RadialGradientBrush paints a color ramp from the focal point Focal out to
// the circle of Radius around Center.
type RadialGradientBrush struct {
	Center Point
	Radius float32
	Focal  Point
	Stops  []ColorStop
}

func (*RadialGradientBrush) brushMarker() {}

// ColorAt implements Brush. The offset is the relative position of (x, y)
// on the ray from the focal point through it, reaching 1 on the circle
// boundary. With the focal point at the center this reduces to
// distance/radius.
func (b *RadialGradientBrush) ColorAt(x, y float32) RGBA {
	if b.Radius <= 0 {
		return colorRampAt(b.Stops, 0)
	}
	p := Point{X: x, Y: y}
	if b.Focal == b.Center {
		t := p.Distance(b.Center) / b.Radius
		return colorRampAt(b.Stops, clamp01(t))
	}

	// Solve |F + s*(P-F) - C| = R for s >= 0; the offset is 1/s.
	d := p.Sub(b.Focal)
	f := b.Focal.Sub(b.Center)
	a := d.X*d.X + d.Y*d.Y
	if a == 0 {
		return colorRampAt(b.Stops, 0)
	}
	bq := 2 * (f.X*d.X + f.Y*d.Y)
	cq := f.X*f.X + f.Y*f.Y - b.Radius*b.Radius
	disc := bq*bq - 4*a*cq
	if disc < 0 {
		return colorRampAt(b.Stops, 1)
	}
	s := (-bq + math32.Sqrt(disc)) / (2 * a)
	if s <= 0 {
		return colorRampAt(b.Stops, 1)
	}
	return colorRampAt(b.Stops, clamp01(1/s))
}
