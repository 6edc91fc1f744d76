package kinema

// Surface describes a caller-owned destination pixel buffer in
// ARGB32-premultiplied format. The engine never allocates or resizes the
// buffer; it only writes pixels inside width x height.
type Surface struct {
	buf          []uint32
	width        int
	height       int
	bytesPerLine int
}

// NewSurface wraps a pre-allocated pixel buffer. bytesPerLine is the
// scanline stride in bytes and must be at least width*4.
func NewSurface(buf []uint32, width, height, bytesPerLine int) Surface {
	return Surface{buf: buf, width: width, height: height, bytesPerLine: bytesPerLine}
}

// Width returns the surface width in pixels.
func (s Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s Surface) Height() int { return s.height }

// BytesPerLine returns the scanline stride in bytes.
func (s Surface) BytesPerLine() int { return s.bytesPerLine }

// Buffer returns the underlying pixel buffer.
func (s Surface) Buffer() []uint32 { return s.buf }

// Row returns the pixel slice for scanline y.
func (s Surface) Row(y int) []uint32 {
	start := y * (s.bytesPerLine / 4)
	return s.buf[start : start+s.width]
}

// Valid reports whether the buffer is large enough for the declared
// geometry.
func (s Surface) Valid() bool {
	if s.width <= 0 || s.height <= 0 || s.bytesPerLine < s.width*4 {
		return false
	}
	need := (s.height-1)*(s.bytesPerLine/4) + s.width
	return len(s.buf) >= need
}
