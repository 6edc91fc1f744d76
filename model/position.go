package model

import "github.com/gokinema/kinema"

// PositionKeyframe is one segment of an animated position. Unlike plain
// point keyframes, position segments can carry spatial tangents: the value
// then travels along a cubic Bezier between From and To instead of the
// straight chord, and the tangent direction drives auto-orient rotation.
type PositionKeyframe struct {
	Start, End float32
	From, To   kinema.Point

	// OutTangent and InTangent are spatial control offsets relative to
	// From and To respectively. Both zero means a non-spatial segment.
	OutTangent, InTangent kinema.Point

	Interp *Easing
	Hold   bool
}

func (k *PositionKeyframe) spatial() bool {
	zero := kinema.Point{}
	return k.OutTangent != zero || k.InTangent != zero
}

func (k *PositionKeyframe) bezier() kinema.CubicBez {
	return kinema.CubicBez{
		P0: k.From,
		P1: k.From.Add(k.OutTangent),
		P2: k.To.Add(k.InTangent),
		P3: k.To,
	}
}

// Position is an animated 2D position with optional spatial interpolation.
type Position struct {
	frames []PositionKeyframe
	value  kinema.Point
	static bool
}

// StaticPosition creates a constant position.
func StaticPosition(p kinema.Point) Position {
	return Position{value: p, static: true}
}

// KeyframedPosition creates an animated position from sorted,
// non-overlapping segments.
func KeyframedPosition(frames []PositionKeyframe) Position {
	if len(frames) == 0 {
		return Position{static: true}
	}
	return Position{frames: frames}
}

// IsStatic returns true if the position never varies across frames.
func (p *Position) IsStatic() bool {
	return p.static || len(p.frames) == 0
}

// At evaluates the position at the given frame number.
func (p *Position) At(frameNo int) kinema.Point {
	if p.static || len(p.frames) == 0 {
		return p.value
	}
	kf, progress := p.locate(frameNo)
	if kf.Hold {
		return kf.From
	}
	if kf.spatial() {
		return kf.bezier().Eval(progress)
	}
	return kf.From.Lerp(kf.To, progress)
}

// Angle returns the motion direction at the given frame in degrees, for
// auto-orient transforms. Non-spatial segments have no defined direction
// and return 0.
func (p *Position) Angle(frameNo int) float32 {
	if p.static || len(p.frames) == 0 {
		return 0
	}
	kf, progress := p.locate(frameNo)
	if !kf.spatial() {
		return 0
	}
	return kf.bezier().AngleAt(progress)
}

func (p *Position) locate(frameNo int) (*PositionKeyframe, float32) {
	f := float32(frameNo)
	if f <= p.frames[0].Start {
		return &p.frames[0], 0
	}
	last := &p.frames[len(p.frames)-1]
	if f >= last.End {
		return last, 1
	}
	for i := range p.frames {
		kf := &p.frames[i]
		if f < kf.End {
			span := kf.End - kf.Start
			if span <= 0 {
				return kf, 1
			}
			progress := (f - kf.Start) / span
			if kf.Interp != nil {
				progress = kf.Interp.Ease(progress)
			}
			return kf, progress
		}
	}
	return last, 1
}
