package model

import (
	"github.com/chewxy/math32"

	"github.com/gokinema/kinema"
)

// GradientKind distinguishes linear and radial gradients.
type GradientKind int

const (
	GradientLinear GradientKind = iota + 1
	GradientRadial
)

// GradientSamples is the raw animated gradient data: ColorPoints groups of
// four floats (position, r, g, b) followed by optional pairs of
// (position, opacity). Color and opacity stops are merged lazily when the
// gradient is converted into a brush.
type GradientSamples struct {
	Values []float32
}

// Lerp interpolates two sample sets element-wise. Mismatched lengths mean
// the data is malformed; the receiver is returned unchanged rather than
// interpolating across unrelated stops.
func (g GradientSamples) Lerp(other GradientSamples, t float32) GradientSamples {
	if len(g.Values) != len(other.Values) {
		return g
	}
	out := make([]float32, len(g.Values))
	for i, v := range g.Values {
		out[i] = v + (other.Values[i]-v)*t
	}
	return GradientSamples{Values: out}
}

// Gradient is the animated model of a gradient paint. Start and End are
// the gradient axis endpoints; for radial gradients HighlightLength and
// HighlightAngle place the focal point along a ray from the center.
type Gradient struct {
	Kind GradientKind

	// ColorPoints is the number of 4-float color stops at the front of
	// the sample data. A value of -1 marks legacy data where every
	// sample is a color stop.
	ColorPoints int

	Samples Value[GradientSamples]
	Start   Value[kinema.Point]
	End     Value[kinema.Point]

	HighlightLength Value[Scalar]
	HighlightAngle  Value[Scalar]

	populated bool
	stops     []kinema.ColorStop
}

// IsStatic reports whether every animated channel of the gradient is
// static, so a single brush update serves all frames.
func (g *Gradient) IsStatic() bool {
	return g.Samples.IsStatic() && g.Start.IsStatic() && g.End.IsStatic() &&
		g.HighlightLength.IsStatic() && g.HighlightAngle.IsStatic()
}

func gradStop(pos, r, g, b, opacity float32) kinema.ColorStop {
	c := kinema.RGBA{R: r, G: g, B: b, A: 1}.ApplyOpacity(opacity)
	return kinema.ColorStop{Pos: pos, Color: c.Premultiplied()}
}

// populate merges the color and opacity stop lists into a single stop
// list. The two lists carry independent positions: the merge walks the
// color stops in order, advancing an opacity cursor alongside. Opacity
// samples ahead of the current color stop are emitted as extra stops
// holding the upcoming color; a color stop between opacity samples gets
// its opacity interpolated; opacity samples past the last consumed color
// stop are dropped.
func (g *Gradient) populate(frameNo int) []kinema.ColorStop {
	data := g.Samples.At(frameNo).Values
	size := len(data)
	colorPoints := g.ColorPoints
	if colorPoints*4 > size {
		kinema.Logger().Warn("gradient declares more color stops than its data holds",
			"colorPoints", colorPoints, "samples", size)
		colorPoints = size / 4
	} else if colorPoints < 0 {
		colorPoints = size / 4
	}

	stops := g.stops[:0]
	opacityArraySize := size - colorPoints*4
	if opacityArraySize&1 != 0 {
		kinema.Logger().Warn("gradient opacity samples are not position/value pairs, dropping the last",
			"samples", opacityArraySize)
		opacityArraySize--
	}
	if opacityArraySize < 2 {
		// No opacity stops, colors carry full alpha.
		for i := 0; i < colorPoints; i++ {
			off := i * 4
			stops = append(stops, gradStop(data[off], data[off+1], data[off+2], data[off+3], 1))
		}
		g.stops = stops
		return stops
	}

	opacityPtr := data[colorPoints*4:]
	j := 0
	for i := 0; i < colorPoints; i++ {
		off := i * 4
		colorStop := data[off]
		r, gg, b := data[off+1], data[off+2], data[off+3]

		if j == opacityArraySize {
			// Opacity samples exhausted: extend from the last two pairs,
			// holding past their domain.
			opacity := opacityPtr[opacityArraySize-1]
			if opacityArraySize >= 4 {
				stop1 := opacityPtr[opacityArraySize-4]
				op1 := opacityPtr[opacityArraySize-3]
				stop2 := opacityPtr[opacityArraySize-2]
				op2 := opacityPtr[opacityArraySize-1]
				if colorStop <= stop2 && stop2 > stop1 {
					t := (colorStop - stop1) / (stop2 - stop1)
					opacity = op1 + t*(op2-op1)
				}
			}
			stops = append(stops, gradStop(colorStop, r, gg, b, opacity))
			continue
		}
		for j < opacityArraySize {
			opacityStop := opacityPtr[j]
			if opacityStop < colorStop {
				// Opacity sample ahead of the color stop: emit an extra
				// stop carrying the upcoming color. If every remaining
				// sample precedes the color stop, the color stop itself
				// is absorbed into them.
				stops = append(stops, gradStop(opacityStop, r, gg, b, opacityPtr[j+1]))
				j += 2
				continue
			}
			var opacity float32
			if j == 0 {
				opacity = opacityPtr[1]
			} else {
				span := opacityPtr[j] - opacityPtr[j-2]
				t := float32(0)
				if span > 0 {
					t = (colorStop - opacityPtr[j-2]) / span
				}
				opacity = opacityPtr[j-1] + t*(opacityPtr[j+1]-opacityPtr[j-1])
			}
			stops = append(stops, gradStop(colorStop, r, gg, b, opacity))
			j += 2
			break
		}
	}

	g.stops = stops
	return stops
}

// Update evaluates the gradient at the given frame and returns a brush
// carrying the result. The previous brush is reused when its concrete
// type still matches, so per-frame updates do not allocate once the
// gradient settles. Stop merging reruns only for animated sample data.
func (g *Gradient) Update(b kinema.Brush, frameNo int) kinema.Brush {
	switch g.Kind {
	case GradientRadial:
		rb, ok := b.(*kinema.RadialGradientBrush)
		if !ok {
			rb = &kinema.RadialGradientBrush{}
		}
		if !g.populated || !g.Samples.IsStatic() {
			g.populated = true
			rb.Stops = append(rb.Stops[:0], g.populate(frameNo)...)
		}
		g.updateRadial(rb, frameNo)
		return rb
	default:
		lb, ok := b.(*kinema.LinearGradientBrush)
		if !ok {
			lb = &kinema.LinearGradientBrush{}
		}
		if !g.populated || !g.Samples.IsStatic() {
			g.populated = true
			lb.Stops = append(lb.Stops[:0], g.populate(frameNo)...)
		}
		lb.Start = g.Start.At(frameNo)
		lb.End = g.End.At(frameNo)
		return lb
	}
}

func (g *Gradient) updateRadial(rb *kinema.RadialGradientBrush, frameNo int) {
	start := g.Start.At(frameNo)
	end := g.End.At(frameNo)
	rb.Center = start
	rb.Radius = start.Distance(end)
	rb.Focal = start

	highlight := float32(g.HighlightLength.At(frameNo))
	if highlight == 0 {
		return
	}
	// The focal point sits along a ray from the center; its distance is a
	// fraction of the radius, clamped just inside the circle so the
	// focal-ray solve stays well conditioned.
	progress := highlight / 100
	if progress > 0.99 {
		progress = 0.99
	} else if progress < -0.99 {
		progress = -0.99
	}
	angle := (kinema.NewLine(start, end).Angle() + float32(g.HighlightAngle.At(frameNo))) * math32.Pi / 180
	rb.Focal = kinema.Pt(
		rb.Center.X+math32.Cos(angle)*progress*rb.Radius,
		rb.Center.Y+math32.Sin(angle)*progress*rb.Radius,
	)
}
