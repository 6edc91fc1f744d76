// Package model holds the in-memory animation description: animated
// property containers, the shape/layer tree and the composition. An
// upstream loader builds these values from the description format; the
// render package evaluates them frame by frame.
package model

// Lerpable is the constraint on animatable value types: anything that can
// linearly interpolate toward another value of its own type.
type Lerpable[T any] interface {
	Lerp(other T, t float32) T
}

// Scalar is an animatable float32.
type Scalar float32

// Lerp implements Lerpable.
func (s Scalar) Lerp(other Scalar, t float32) Scalar {
	return s + Scalar(t)*(other-s)
}

// Keyframe is one interpolation segment of an animated value, covering the
// frame range [Start, End].
type Keyframe[T Lerpable[T]] struct {
	Start, End float32
	From, To   T

	// Interp is the easing curve applied to the segment progress.
	// nil means linear.
	Interp *Easing

	// Hold freezes the segment at From for its whole range.
	Hold bool
}

// Value is an animated value: a pure function from frame number to a
// concrete value. A static Value holds a constant; a keyframed Value
// interpolates between its bracketing keyframes. Evaluation is idempotent
// and ordering-independent: the same frame number always yields the same
// result.
type Value[T Lerpable[T]] struct {
	frames []Keyframe[T]
	value  T
	static bool
}

// Static creates a constant Value.
func Static[T Lerpable[T]](v T) Value[T] {
	return Value[T]{value: v, static: true}
}

// Keyframed creates an animated Value from keyframe segments. The segments
// must be sorted by Start and non-overlapping; the loader guarantees this.
// An empty segment list yields a static zero value.
func Keyframed[T Lerpable[T]](frames []Keyframe[T]) Value[T] {
	if len(frames) == 0 {
		return Value[T]{static: true}
	}
	return Value[T]{frames: frames}
}

// IsStatic returns true if the value never varies across frames.
func (v *Value[T]) IsStatic() bool {
	return v.static || len(v.frames) == 0
}

// At evaluates the value at the given frame number. Before the first
// keyframe the first segment's From holds; after the last keyframe the
// last segment's To holds.
func (v *Value[T]) At(frameNo int) T {
	if v.static || len(v.frames) == 0 {
		return v.value
	}
	kf, progress := locate(v.frames, frameNo)
	if kf.Hold {
		return kf.From
	}
	return kf.From.Lerp(kf.To, progress)
}

// locate finds the segment bracketing frameNo and the eased progress
// within it, clamping to the boundary segments outside the animated range.
func locate[T Lerpable[T]](frames []Keyframe[T], frameNo int) (*Keyframe[T], float32) {
	f := float32(frameNo)
	if f <= frames[0].Start {
		return &frames[0], 0
	}
	last := &frames[len(frames)-1]
	if f >= last.End {
		return last, 1
	}
	for i := range frames {
		kf := &frames[i]
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

// maxScalar returns the maximum value a scalar ever takes across its
// keyframes (the constant, for static values). Used to size per-copy
// content built ahead of time for repeaters.
func maxScalar(v *Value[Scalar]) float32 {
	if v.IsStatic() {
		return float32(v.value)
	}
	max := float32(v.frames[0].From)
	for i := range v.frames {
		if f := float32(v.frames[i].From); f > max {
			max = f
		}
		if t := float32(v.frames[i].To); t > max {
			max = t
		}
	}
	return max
}
