package kinema

// Arc-length path trimming. Backs the trim-path shape modifier: the
// [begin, end] fraction of a path's total arc length is extracted, with
// partially covered curve segments split by the kernel's inverse
// arc-length mapping.

// pathSegment is one drawable segment of a path in traversal order.
type pathSegment struct {
	bez     CubicBez
	isLine  bool
	length  float32
	contour int // contour index, for subpath breaks
}

// segments flattens the path's element list into measurable segments.
// Lines are represented as degenerate cubics with the control points on
// the chord, so the same split machinery covers both.
func segments(p *Path) []pathSegment {
	var segs []pathSegment
	var current, start Point
	contour := -1
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			current = e.Point
			start = e.Point
			contour++
		case LineTo:
			segs = append(segs, lineSegment(current, e.Point, contour))
			current = e.Point
		case CubicTo:
			bez := CubicBez{P0: current, P1: e.Control1, P2: e.Control2, P3: e.Point}
			segs = append(segs, pathSegment{bez: bez, length: bez.Length(), contour: contour})
			current = e.Point
		case Close:
			if current != start {
				segs = append(segs, lineSegment(current, start, contour))
			}
			current = start
		}
	}
	return segs
}

func lineSegment(a, b Point, contour int) pathSegment {
	bez := CubicBez{
		P0: a,
		P1: a.Lerp(b, 1.0/3.0),
		P2: a.Lerp(b, 2.0/3.0),
		P3: b,
	}
	return pathSegment{bez: bez, isLine: true, length: a.Distance(b), contour: contour}
}

// PathLength returns the total arc length of the path, including the
// implicit closing edges of closed subpaths.
func PathLength(p *Path) float32 {
	var total float32
	for _, s := range segments(p) {
		total += s.length
	}
	return total
}

// TrimPath appends the sub-path covering the [begin, end] span of src's
// total arc length to dst. begin and end are fractions in [0, 1]; callers
// clamp. When begin > end the span wraps around the path end, producing
// two runs. begin == end produces an empty path.
func TrimPath(dst *Path, src *Path, begin, end float32) {
	if begin == end {
		return
	}
	if begin > end {
		TrimPath(dst, src, begin, 1)
		TrimPath(dst, src, 0, end)
		return
	}

	segs := segments(src)
	var total float32
	for _, s := range segs {
		total += s.length
	}
	if total == 0 {
		return
	}

	lo := begin * total
	hi := end * total

	var pos float32
	open := false
	lastContour := -1
	for _, s := range segs {
		segEnd := pos + s.length
		if segEnd <= lo || pos >= hi {
			pos = segEnd
			continue
		}

		bez := s.bez
		if pos < lo || segEnd > hi {
			// Partially covered segment: restrict by arc length.
			a := maxf(lo-pos, 0)
			b := minf(hi-pos, s.length)
			t0 := bez.TAtLength(a)
			t1 := bez.TAtLength(b)
			bez = bez.OnInterval(t0, t1)
		}

		if !open || s.contour != lastContour || dst.CurrentPoint() != bez.P0 {
			dst.MoveTo(bez.P0.X, bez.P0.Y)
			open = true
		}
		if s.isLine {
			dst.LineTo(bez.P3.X, bez.P3.Y)
		} else {
			dst.CubicTo(bez.P1.X, bez.P1.Y, bez.P2.X, bez.P2.Y, bez.P3.X, bez.P3.Y)
		}
		lastContour = s.contour
		pos = segEnd
	}
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
