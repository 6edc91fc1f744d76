package model

import "github.com/gokinema/kinema"

// Dash is an animated dash pattern: a list of alternating dash/gap
// lengths and a phase offset, each independently keyframable.
type Dash struct {
	Lengths []Value[Scalar]
	Offset  Value[Scalar]
}

// Info evaluates the dash lengths at the given frame into out, which must
// have room for len(Lengths)+1 values, and returns the number written.
// An even number of lengths duplicates the last one as a trailing gap so
// the effective pattern always alternates cleanly; an odd count copies
// 1:1. The phase offset is evaluated separately with OffsetAt.
func (d *Dash) Info(frameNo int, out []float32) int {
	if d == nil || len(d.Lengths) == 0 {
		return 0
	}
	n := 0
	for i := range d.Lengths {
		out[n] = float32(d.Lengths[i].At(frameNo))
		n++
	}
	if n%2 == 0 {
		out[n] = out[n-1]
		n++
	}
	return n
}

// OffsetAt evaluates the dash phase offset at the given frame.
func (d *Dash) OffsetAt(frameNo int) float32 {
	if d == nil {
		return 0
	}
	return float32(d.Offset.At(frameNo))
}

// Fill is a solid fill paint node.
type Fill struct {
	Color   Value[kinema.RGBA]
	Opacity Value[Scalar]
	Rule    kinema.FillRule
	Hidden  bool
}

// Stroke is a solid stroke paint node.
type Stroke struct {
	Color      Value[kinema.RGBA]
	Opacity    Value[Scalar]
	Width      Value[Scalar]
	Cap        kinema.Cap
	Join       kinema.Join
	MiterLimit float32
	Dash       *Dash
	Hidden     bool
}

// GradientFill is a gradient fill paint node.
type GradientFill struct {
	Gradient Gradient
	Opacity  Value[Scalar]
	Rule     kinema.FillRule
	Hidden   bool
}

// GradientStroke is a gradient stroke paint node.
type GradientStroke struct {
	Gradient   Gradient
	Opacity    Value[Scalar]
	Width      Value[Scalar]
	Cap        kinema.Cap
	Join       kinema.Join
	MiterLimit float32
	Dash       *Dash
	Hidden     bool
}
