package kinema

// Span is one horizontal run of covered pixels: Len pixels starting at
// (X, Y), all at the same Coverage weight (0-255).
type Span struct {
	X, Y     int16
	Len      uint16
	Coverage uint8
}

// SpanList is the rasterizer's output: a run-length representation of the
// pixels a filled or stroked path covers. Spans are y-major and
// x-ascending within a scanline.
type SpanList []Span

// Empty returns true if the list contains no spans.
func (s SpanList) Empty() bool {
	return len(s) == 0
}

// Bounds returns the integer bounding box of the spans as
// (minX, minY, maxX, maxY), where max is exclusive. An empty list returns
// all zeros.
func (s SpanList) Bounds() (minX, minY, maxX, maxY int) {
	if len(s) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = int(s[0].X), int(s[0].Y)
	maxX, maxY = minX, minY
	for _, sp := range s {
		x0, y := int(sp.X), int(sp.Y)
		x1 := x0 + int(sp.Len)
		if x0 < minX {
			minX = x0
		}
		if x1 > maxX {
			maxX = x1
		}
		if y < minY {
			minY = y
		}
		if y+1 > maxY {
			maxY = y + 1
		}
	}
	return minX, minY, maxX, maxY
}
