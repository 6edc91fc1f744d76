package kinema

import (
	"testing"

	"github.com/chewxy/math32"
)

func matricesClose(a, b Matrix, tol float32) bool {
	return math32.Abs(a.A-b.A) <= tol && math32.Abs(a.B-b.B) <= tol &&
		math32.Abs(a.C-b.C) <= tol && math32.Abs(a.D-b.D) <= tol &&
		math32.Abs(a.E-b.E) <= tol && math32.Abs(a.F-b.F) <= tol &&
		math32.Abs(a.G-b.G) <= tol && math32.Abs(a.H-b.H) <= tol &&
		math32.Abs(a.I-b.I) <= tol
}

func TestMatrix_Map(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{
			name: "identity is a no-op",
			m:    Identity(),
			in:   Pt(3, 4),
			want: Pt(3, 4),
		},
		{
			name: "translate",
			m:    Translate(10, -5),
			in:   Pt(1, 1),
			want: Pt(11, -4),
		},
		{
			name: "scale",
			m:    Scale(2, 3),
			in:   Pt(4, 5),
			want: Pt(8, 15),
		},
		{
			name: "rotate 90 degrees",
			m:    Rotate(90),
			in:   Pt(1, 0),
			want: Pt(0, 1),
		},
		{
			name: "rotate 180 degrees",
			m:    Rotate(180),
			in:   Pt(1, 2),
			want: Pt(-1, -2),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.Map(tt.in)
			if !pointsClose(got, tt.want, geomTolerance) {
				t.Errorf("Map(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatrix_MultiplyOrder(t *testing.T) {
	// Translate-then-scale differs from scale-then-translate.
	ts := Translate(10, 0).Multiply(Scale(2, 2))
	st := Scale(2, 2).Multiply(Translate(10, 0))

	if got := ts.Map(Pt(1, 0)); !pointsClose(got, Pt(12, 0), geomTolerance) {
		t.Errorf("translate*scale maps (1,0) to %v, want (12,0)", got)
	}
	if got := st.Map(Pt(1, 0)); !pointsClose(got, Pt(22, 0), geomTolerance) {
		t.Errorf("scale*translate maps (1,0) to %v, want (22,0)", got)
	}
}

func TestMatrix_RotateAxisZMatchesRotate(t *testing.T) {
	for _, deg := range []float32{0, 30, 90, 210} {
		if !matricesClose(RotateAxis(deg, AxisZ), Rotate(deg), geomTolerance) {
			t.Errorf("RotateAxis(%v, AxisZ) != Rotate(%v)", deg, deg)
		}
	}
}

func TestMatrix_AxisRotationProjective(t *testing.T) {
	// X and Y axis rotations are projective: the matrix stops being
	// affine and Map applies the perspective divide.
	m := RotateAxis(45, AxisY)
	if m.IsAffine() {
		t.Fatal("Y-axis rotation should not be affine")
	}
	got := m.Map(Pt(100, 0))
	// Foreshortening shrinks x toward the axis; the perspective divide
	// pulls it back some but never past the original.
	if got.X >= 100 || got.X <= 100*math32.Cos(45*math32.Pi/180)-geomTolerance {
		t.Errorf("Map(100,0).X = %v, expected foreshortened value", got.X)
	}

	if !RotateAxis(0, AxisX).IsIdentity() {
		t.Error("zero-angle axis rotation should be identity")
	}
}

func TestMatrix_MapRect(t *testing.T) {
	m := Translate(5, 5).Multiply(Scale(2, 2))
	r := m.MapRect(NewRect(Pt(0, 0), Pt(10, 10)))
	if !pointsClose(r.Min, Pt(5, 5), geomTolerance) || !pointsClose(r.Max, Pt(25, 25), geomTolerance) {
		t.Errorf("MapRect = %+v", r)
	}
}

func TestMatrix_IsIdentity(t *testing.T) {
	if !Identity().IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
	if Translate(1, 0).IsIdentity() {
		t.Error("Translate(1,0).IsIdentity() = true")
	}
	round := Rotate(90).Multiply(Rotate(-90))
	if !matricesClose(round, Identity(), geomTolerance) {
		t.Errorf("Rotate(90)*Rotate(-90) = %+v, want identity", round)
	}
}
