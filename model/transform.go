package model

import (
	"github.com/chewxy/math32"

	"github.com/gokinema/kinema"
)

// Separate holds position channels animated independently per axis, used
// when the description splits position into X and Y scalar tracks.
type Separate struct {
	X, Y Value[Scalar]
}

// Extra3D holds the pseudo-3D rotation channels of a 3D layer transform.
type Extra3D struct {
	RX, RY, RZ Value[Scalar]
}

// Transform is an animated transform node: anchor, position, scale
// (percent), rotation (degrees) and opacity (percent), with optional
// separate X/Y position channels and 3D rotations.
//
// A transform whose channels are all static computes its matrix once and
// serves the cached copy forever; the cache never needs invalidation
// because the source data provably never varies.
type Transform struct {
	Anchor   Value[kinema.Point]
	Position Position
	Scale    Value[kinema.Point]
	Rotation Value[Scalar]
	Opacity  Value[Scalar]

	SeparateXY *Separate
	Extra      *Extra3D

	prepared bool
	static   bool
	cached   kinema.Matrix
}

// NewTransform returns a transform with identity defaults: scale 100%,
// opacity 100%, everything else zero.
func NewTransform() *Transform {
	return &Transform{
		Scale:   Static(kinema.Pt(100, 100)),
		Opacity: Static(Scalar(100)),
	}
}

// IsStatic returns true when every channel of the transform is static.
func (t *Transform) IsStatic() bool {
	if !t.Anchor.IsStatic() || !t.Position.IsStatic() ||
		!t.Scale.IsStatic() || !t.Rotation.IsStatic() {
		return false
	}
	if t.SeparateXY != nil && (!t.SeparateXY.X.IsStatic() || !t.SeparateXY.Y.IsStatic()) {
		return false
	}
	if t.Extra != nil && (!t.Extra.RX.IsStatic() || !t.Extra.RY.IsStatic() || !t.Extra.RZ.IsStatic()) {
		return false
	}
	return true
}

// Matrix returns the transform matrix at the given frame. Scene evaluation
// is single-threaded, so the lazy static-cache initialization needs no
// synchronization.
func (t *Transform) Matrix(frameNo int, autoOrient bool) kinema.Matrix {
	if !t.prepared {
		t.prepared = true
		if t.static = t.IsStatic(); t.static {
			t.cached = t.computeMatrix(0, false)
		}
	}
	if t.static {
		return t.cached
	}
	return t.computeMatrix(frameNo, autoOrient)
}

// computeMatrix composes the node transform in the fixed order
//
//	translate(position) * rotate(rotation) * rotate(autoOrient)
//	* [rz, ry, rx] * scale(scale/100) * translate(-anchor)
//
// The order is significant: translation happens in parent space, scale and
// the anchor offset in local space.
func (t *Transform) computeMatrix(frameNo int, autoOrient bool) kinema.Matrix {
	position := t.Position.At(frameNo)
	if t.SeparateXY != nil {
		position.X = float32(t.SeparateXY.X.At(frameNo))
		position.Y = float32(t.SeparateXY.Y.At(frameNo))
	}

	m := kinema.Translate(position.X, position.Y).
		Multiply(kinema.Rotate(float32(t.Rotation.At(frameNo))))

	if autoOrient {
		if angle := t.Position.Angle(frameNo); angle != 0 {
			m = m.Multiply(kinema.Rotate(angle))
		}
	}

	if t.Extra != nil {
		m = m.Multiply(kinema.Rotate(float32(t.Extra.RZ.At(frameNo)))).
			Multiply(kinema.RotateAxis(float32(t.Extra.RY.At(frameNo)), kinema.AxisY)).
			Multiply(kinema.RotateAxis(float32(t.Extra.RX.At(frameNo)), kinema.AxisX))
	}

	scale := t.Scale.At(frameNo)
	anchor := t.Anchor.At(frameNo)
	return m.Multiply(kinema.Scale(scale.X/100, scale.Y/100)).
		Multiply(kinema.Translate(-anchor.X, -anchor.Y))
}

// MatrixForRepeater returns the incremental transform applied to the Nth
// repeated copy. Every per-instance quantity scales with the multiplier:
// position, rotation and anchor multiply by it, while scale exponentiates
// component-wise, because repeated scaling compounds multiplicatively.
// A multiplier of 0 is always the identity.
func (t *Transform) MatrixForRepeater(frameNo int, multiplier float32) kinema.Matrix {
	scale := t.Scale.At(frameNo)
	sx := math32.Pow(scale.X/100, multiplier)
	sy := math32.Pow(scale.Y/100, multiplier)
	position := t.Position.At(frameNo)
	anchor := t.Anchor.At(frameNo)
	rotation := float32(t.Rotation.At(frameNo))

	return kinema.Translate(position.X*multiplier, position.Y*multiplier).
		Multiply(kinema.Rotate(rotation * multiplier)).
		Multiply(kinema.Scale(sx, sy)).
		Multiply(kinema.Translate(anchor.X*multiplier, anchor.Y*multiplier))
}

// Alpha returns the transform opacity at the given frame as a [0,1]
// factor.
func (t *Transform) Alpha(frameNo int) float32 {
	op := float32(t.Opacity.At(frameNo)) / 100
	if op < 0 {
		return 0
	}
	if op > 1 {
		return 1
	}
	return op
}
