package model

// Easing is a cubic-bezier timing curve through (0,0), (OutX,OutY),
// (InX,InY), (1,1), the standard easing parameterization of the animation
// description. Ease maps segment progress on the x axis to eased progress
// on the y axis by solving x(t) = progress for t.
type Easing struct {
	ax, bx, cx float32
	ay, by, cy float32
}

// NewEasing builds an easing curve from its two control points. Control
// points that collapse to the diagonal describe linear timing; nil is
// returned so callers skip the solve entirely.
func NewEasing(outX, outY, inX, inY float32) *Easing {
	if outX == outY && inX == inY {
		return nil
	}
	e := &Easing{}
	e.cx = 3 * outX
	e.bx = 3*(inX-outX) - e.cx
	e.ax = 1 - e.cx - e.bx
	e.cy = 3 * outY
	e.by = 3*(inY-outY) - e.cy
	e.ay = 1 - e.cy - e.by
	return e
}

func (e *Easing) sampleX(t float32) float32 {
	// Horner's method on the expanded polynomial; t stays well inside
	// [0,1] here so the cancellation concern of the geometry kernel does
	// not apply.
	return ((e.ax*t+e.bx)*t + e.cx) * t
}

func (e *Easing) sampleY(t float32) float32 {
	return ((e.ay*t+e.by)*t + e.cy) * t
}

func (e *Easing) sampleDerivX(t float32) float32 {
	return (3*e.ax*t+2*e.bx)*t + e.cx
}

const easingEpsilon = 1e-5

// solveX finds t such that sampleX(t) == x: a few Newton iterations, then
// bisection when the derivative is too flat for Newton to behave.
func (e *Easing) solveX(x float32) float32 {
	t := x
	for i := 0; i < 8; i++ {
		x2 := e.sampleX(t) - x
		if absf(x2) < easingEpsilon {
			return t
		}
		d := e.sampleDerivX(t)
		if absf(d) < 1e-6 {
			break
		}
		t -= x2 / d
	}

	lo, hi := float32(0), float32(1)
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	t = x
	for hi-lo > easingEpsilon {
		x2 := e.sampleX(t)
		if absf(x2-x) < easingEpsilon {
			return t
		}
		if x > x2 {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) * 0.5
	}
	return t
}

// Ease maps raw segment progress in [0,1] to eased progress.
func (e *Easing) Ease(progress float32) float32 {
	return e.sampleY(e.solveX(progress))
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
