// Package raster is the engine's default span source: it flattens paths
// into polygons and scanline-fills them into RLE coverage spans. Stroke
// outlines are produced by the rasterx stroking engine (see stroker.go)
// and filled by the same machinery.
package raster

import (
	"github.com/chewxy/math32"

	"github.com/gokinema/kinema"
)

// Tolerance is the maximum distance from the true curve accepted when
// flattening curves to line segments.
const Tolerance = 0.1

// FlattenPath converts a path into one polyline per subpath.
// Every polyline is explicitly closed (last point equals first) so the
// edge builder never has to special-case open contours; filling treats
// all subpaths as closed.
func FlattenPath(p *kinema.Path) [][]kinema.Point {
	var polys [][]kinema.Point
	var cur []kinema.Point
	var current kinema.Point

	flush := func() {
		if len(cur) >= 3 {
			if cur[0] != cur[len(cur)-1] {
				cur = append(cur, cur[0])
			}
			polys = append(polys, cur)
		}
		cur = nil
	}

	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case kinema.MoveTo:
			flush()
			current = e.Point
			cur = append(cur, current)

		case kinema.LineTo:
			current = e.Point
			cur = append(cur, current)

		case kinema.CubicTo:
			flattenCubic(current, e.Control1, e.Control2, e.Point, Tolerance, &cur)
			current = e.Point

		case kinema.Close:
			if len(cur) > 0 {
				current = cur[0]
			}
			flush()
		}
	}
	flush()
	return polys
}

// flattenChains converts a path into open polylines, one per subpath,
// without closing any of them. Stroke outlines arrive as fences of
// directed edges whose union already bounds the stroked region under the
// winding rule; appending a closing edge to a chain would cancel it.
func flattenChains(p *kinema.Path) [][]kinema.Point {
	var polys [][]kinema.Point
	var cur []kinema.Point
	var current kinema.Point

	flush := func() {
		if len(cur) >= 2 {
			polys = append(polys, cur)
		}
		cur = nil
	}

	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case kinema.MoveTo:
			flush()
			current = e.Point
			cur = append(cur, current)

		case kinema.LineTo:
			current = e.Point
			cur = append(cur, current)

		case kinema.CubicTo:
			flattenCubic(current, e.Control1, e.Control2, e.Point, Tolerance, &cur)
			current = e.Point

		case kinema.Close:
			if len(cur) > 0 && cur[0] != current {
				cur = append(cur, cur[0])
			}
			flush()
		}
	}
	flush()
	return polys
}

// flattenCubic recursively subdivides a cubic Bezier curve until the
// control points are within tolerance of the chord.
func flattenCubic(p0, p1, p2, p3 kinema.Point, tolerance float32, points *[]kinema.Point) {
	d1 := distanceToLine(p1, p0, p3)
	d2 := distanceToLine(p2, p0, p3)

	if math32.Max(d1, d2) < tolerance {
		*points = append(*points, p3)
		return
	}

	// Subdivide the curve using de Casteljau's algorithm
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	flattenCubic(p0, q0, r0, s, tolerance, points)
	flattenCubic(s, r1, q2, p3, tolerance, points)
}

// distanceToLine calculates the perpendicular distance from point p to the
// line segment (a, b).
func distanceToLine(p, a, b kinema.Point) float32 {
	ab := b.Sub(a)
	abLenSq := ab.Dot(ab)

	if abLenSq < 1e-10 {
		return p.Distance(a)
	}

	ap := p.Sub(a)
	t := ap.Dot(ab) / abLenSq

	if t < 0 {
		return p.Distance(a)
	}
	if t > 1 {
		return p.Distance(b)
	}

	closest := a.Add(ab.Mul(t))
	return p.Distance(closest)
}
