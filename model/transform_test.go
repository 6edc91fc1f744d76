package model

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokinema/kinema"
)

func assertMatrixEqual(t *testing.T, want, got kinema.Matrix, tol float32) {
	t.Helper()
	assert.InDelta(t, want.A, got.A, float64(tol))
	assert.InDelta(t, want.B, got.B, float64(tol))
	assert.InDelta(t, want.C, got.C, float64(tol))
	assert.InDelta(t, want.D, got.D, float64(tol))
	assert.InDelta(t, want.E, got.E, float64(tol))
	assert.InDelta(t, want.F, got.F, float64(tol))
	assert.InDelta(t, want.G, got.G, float64(tol))
	assert.InDelta(t, want.H, got.H, float64(tol))
	assert.InDelta(t, want.I, got.I, float64(tol))
}

func TestNewTransform_Defaults(t *testing.T) {
	tr := NewTransform()
	assert.True(t, tr.IsStatic())
	assertMatrixEqual(t, kinema.Identity(), tr.Matrix(0, false), 1e-5)
	assert.InDelta(t, 1, tr.Alpha(0), 1e-5)
}

func TestTransform_ComposeOrder(t *testing.T) {
	tr := NewTransform()
	tr.Position = StaticPosition(kinema.Pt(100, 50))
	tr.Rotation = Static(Scalar(90))
	tr.Scale = Static(kinema.Pt(200, 200))
	tr.Anchor = Static(kinema.Pt(10, 10))

	want := kinema.Translate(100, 50).
		Multiply(kinema.Rotate(90)).
		Multiply(kinema.Scale(2, 2)).
		Multiply(kinema.Translate(-10, -10))
	assertMatrixEqual(t, want, tr.Matrix(0, false), 1e-4)
}

func TestTransform_StaticCacheMatchesCompute(t *testing.T) {
	tr := NewTransform()
	tr.Position = StaticPosition(kinema.Pt(30, 40))
	tr.Rotation = Static(Scalar(45))
	require.True(t, tr.IsStatic())

	first := tr.Matrix(0, false)
	// Frame number is irrelevant for a static transform.
	assertMatrixEqual(t, first, tr.Matrix(500, false), 0)
	assertMatrixEqual(t, first, tr.computeMatrix(0, false), 1e-5)
}

func TestTransform_Animated(t *testing.T) {
	tr := NewTransform()
	tr.Rotation = Keyframed([]Keyframe[Scalar]{
		{Start: 0, End: 10, From: 0, To: 90},
	})
	assert.False(t, tr.IsStatic())

	p0 := tr.Matrix(0, false).Map(kinema.Pt(1, 0))
	p10 := tr.Matrix(10, false).Map(kinema.Pt(1, 0))
	assert.InDelta(t, 1, p0.X, 1e-4)
	assert.InDelta(t, 0, p10.X, 1e-4)
	assert.InDelta(t, 1, p10.Y, 1e-4)
}

func TestTransform_SeparateXY(t *testing.T) {
	tr := NewTransform()
	tr.SeparateXY = &Separate{
		X: Static(Scalar(25)),
		Y: Keyframed([]Keyframe[Scalar]{{Start: 0, End: 10, From: 0, To: 100}}),
	}
	got := tr.Matrix(5, false).Map(kinema.Pt(0, 0))
	assert.InDelta(t, 25, got.X, 1e-4)
	assert.InDelta(t, 50, got.Y, 1e-4)
}

func TestTransform_AutoOrient(t *testing.T) {
	tr := NewTransform()
	tr.Position = KeyframedPosition([]PositionKeyframe{
		{
			Start: 0, End: 10,
			From: kinema.Pt(0, 0), To: kinema.Pt(100, 0),
			OutTangent: kinema.Pt(0, 50), InTangent: kinema.Pt(0, 50),
		},
	})

	// Moving along a curved path, auto-orient rotates with the tangent.
	// At the arc midpoint the tangent is horizontal again, so probe off
	// center where it still has slope.
	plain := tr.Matrix(2, false).Map(kinema.Pt(10, 0))
	oriented := tr.Matrix(2, true).Map(kinema.Pt(10, 0))
	assert.NotEqual(t, plain, oriented)
}

func TestTransform_MatrixForRepeater(t *testing.T) {
	tr := NewTransform()
	tr.Position = StaticPosition(kinema.Pt(10, 0))
	tr.Rotation = Static(Scalar(30))
	tr.Scale = Static(kinema.Pt(50, 50))
	tr.Anchor = Static(kinema.Pt(5, 5))

	t.Run("zero multiplier is identity", func(t *testing.T) {
		assertMatrixEqual(t, kinema.Identity(), tr.MatrixForRepeater(0, 0), 1e-5)
	})

	t.Run("unit multiplier composes base quantities", func(t *testing.T) {
		want := kinema.Translate(10, 0).
			Multiply(kinema.Rotate(30)).
			Multiply(kinema.Scale(0.5, 0.5)).
			Multiply(kinema.Translate(5, 5))
		assertMatrixEqual(t, want, tr.MatrixForRepeater(0, 1), 1e-4)
	})

	t.Run("scale compounds multiplicatively", func(t *testing.T) {
		m2 := tr.MatrixForRepeater(0, 2)
		// pow(0.5, 2) = 0.25 shows up in the linear part's magnitude.
		sx := math32.Sqrt(m2.A*m2.A + m2.D*m2.D)
		assert.InDelta(t, 0.25, sx, 1e-3)
	})
}

func TestTransform_Alpha(t *testing.T) {
	tr := NewTransform()
	tr.Opacity = Keyframed([]Keyframe[Scalar]{{Start: 0, End: 10, From: 0, To: 100}})
	assert.InDelta(t, 0, tr.Alpha(0), 1e-5)
	assert.InDelta(t, 0.5, tr.Alpha(5), 1e-5)
	assert.InDelta(t, 1, tr.Alpha(10), 1e-5)
}

func TestPosition_SpatialTangents(t *testing.T) {
	p := KeyframedPosition([]PositionKeyframe{
		{
			Start: 0, End: 10,
			From: kinema.Pt(0, 0), To: kinema.Pt(100, 0),
			OutTangent: kinema.Pt(0, 60), InTangent: kinema.Pt(0, 60),
		},
	})
	mid := p.At(5)
	// The spatial bezier bows away from the straight line.
	assert.InDelta(t, 50, mid.X, 1)
	assert.Greater(t, mid.Y, float32(10))

	straight := KeyframedPosition([]PositionKeyframe{
		{Start: 0, End: 10, From: kinema.Pt(0, 0), To: kinema.Pt(100, 0)},
	})
	lin := straight.At(5)
	assert.InDelta(t, 50, lin.X, 1e-3)
	assert.InDelta(t, 0, lin.Y, 1e-3)
}
