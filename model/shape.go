package model

import "github.com/gokinema/kinema"

// Shape is a node of the shape tree inside a layer. Implementations are
// *Group, *Repeater, the geometry shapes, the paint nodes and *TrimShape.
type Shape interface {
	shapeMarker()
}

// Group nests child shapes under a shared transform. Children render
// back to front: later children paint first, so a paint node applies to
// the geometry that precedes it in the slice.
type Group struct {
	Name      string
	Transform *Transform
	Children  []Shape
}

// Repeater duplicates the shapes that precede it in its group. Copies and
// Offset animate; each copy k applies the repeater transform with
// multiplier Offset+k and an opacity interpolated from StartOpacity to
// EndOpacity across the copies.
type Repeater struct {
	Copies       Value[Scalar]
	Offset       Value[Scalar]
	Transform    *Transform
	StartOpacity Value[Scalar]
	EndOpacity   Value[Scalar]
	Hidden       bool

	// Content is the synthetic group the repeater's captured shapes are
	// moved into when the composition is processed. It is nil until
	// then.
	Content *Group
}

// MaxCopies returns the largest copy count the Copies channel ever
// reaches, for preallocating render instances.
func (r *Repeater) MaxCopies() int {
	n := int(maxScalar(&r.Copies))
	if n < 0 {
		kinema.Logger().Warn("repeater copy count is negative, clamping to zero",
			"copies", n)
		return 0
	}
	return n
}

// RectShape is a rectangle with optional rounded corners.
type RectShape struct {
	Position  Value[kinema.Point]
	Size      Value[kinema.Point]
	Roundness Value[Scalar]
	Reversed  bool
	Hidden    bool
}

// EllipseShape is an axis-aligned ellipse.
type EllipseShape struct {
	Position Value[kinema.Point]
	Size     Value[kinema.Point]
	Reversed bool
	Hidden   bool
}

// PathShape is a freeform cubic Bezier path, possibly animated.
type PathShape struct {
	Geometry Value[PathData]
	Hidden   bool
}

// TrimShape trims the geometry preceding it in its group to the animated
// [Begin, End] fraction of its arc length, shifted by Offset rotations.
type TrimShape struct {
	Begin  Value[Scalar]
	End    Value[Scalar]
	Offset Value[Scalar]
	Hidden bool
}

func (*Group) shapeMarker()          {}
func (*Repeater) shapeMarker()       {}
func (*RectShape) shapeMarker()      {}
func (*EllipseShape) shapeMarker()   {}
func (*PathShape) shapeMarker()      {}
func (*TrimShape) shapeMarker()      {}
func (*Fill) shapeMarker()           {}
func (*Stroke) shapeMarker()         {}
func (*GradientFill) shapeMarker()   {}
func (*GradientStroke) shapeMarker() {}

// PathData is the raw animated form of a freeform path: parallel vertex
// and tangent slices, with tangents stored relative to their vertex.
type PathData struct {
	Vertices    []kinema.Point
	InTangents  []kinema.Point
	OutTangents []kinema.Point
	Closed      bool
}

// Lerp interpolates two paths vertex-wise. Topology mismatches return the
// receiver unchanged.
func (p PathData) Lerp(other PathData, t float32) PathData {
	if len(p.Vertices) != len(other.Vertices) {
		return p
	}
	out := PathData{
		Vertices:    make([]kinema.Point, len(p.Vertices)),
		InTangents:  make([]kinema.Point, len(p.InTangents)),
		OutTangents: make([]kinema.Point, len(p.OutTangents)),
		Closed:      p.Closed,
	}
	for i := range p.Vertices {
		out.Vertices[i] = p.Vertices[i].Lerp(other.Vertices[i], t)
	}
	for i := range p.InTangents {
		out.InTangents[i] = p.InTangents[i].Lerp(other.InTangents[i], t)
	}
	for i := range p.OutTangents {
		out.OutTangents[i] = p.OutTangents[i].Lerp(other.OutTangents[i], t)
	}
	return out
}

// ToPath converts the vertex data into a path, resetting dst first.
func (p PathData) ToPath(dst *kinema.Path) {
	dst.Reset()
	p.Append(dst)
}

// Append appends the vertex data to dst as one subpath. Tangents are
// relative offsets, so each cubic's control points are vertex+tangent.
// Data whose tangent arrays are shorter than the vertex array is
// malformed and appends nothing.
func (p PathData) Append(dst *kinema.Path) {
	if len(p.Vertices) == 0 {
		return
	}
	if len(p.InTangents) < len(p.Vertices) || len(p.OutTangents) < len(p.Vertices) {
		kinema.Logger().Warn("path data tangent arrays shorter than vertices, skipping subpath",
			"vertices", len(p.Vertices), "in", len(p.InTangents), "out", len(p.OutTangents))
		return
	}
	first := p.Vertices[0]
	dst.MoveTo(first.X, first.Y)
	for i := 1; i < len(p.Vertices); i++ {
		c1 := p.Vertices[i-1].Add(p.OutTangents[i-1])
		c2 := p.Vertices[i].Add(p.InTangents[i])
		v := p.Vertices[i]
		dst.CubicTo(c1.X, c1.Y, c2.X, c2.Y, v.X, v.Y)
	}
	if p.Closed {
		last := len(p.Vertices) - 1
		c1 := p.Vertices[last].Add(p.OutTangents[last])
		c2 := first.Add(p.InTangents[0])
		dst.CubicTo(c1.X, c1.Y, c2.X, c2.Y, first.X, first.Y)
		dst.Close()
	}
}
