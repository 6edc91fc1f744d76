package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokinema/kinema"
)

func namedGroup(name string) *Group { return &Group{Name: name} }

func TestComposition_Timing(t *testing.T) {
	c := &Composition{StartFrame: 10, EndFrame: 70, FrameRate: 30}
	assert.Equal(t, 61, c.TotalFrames())
	assert.InDelta(t, 2, c.Duration(), 1e-5)

	assert.Equal(t, 10, c.FrameAtPos(0))
	assert.Equal(t, 70, c.FrameAtPos(1))
	assert.Equal(t, 40, c.FrameAtPos(0.5))
	assert.Equal(t, 10, c.FrameAtPos(-1))
	assert.Equal(t, 70, c.FrameAtPos(2))
}

func TestProcessRepeaters_CapturesPrecedingSiblings(t *testing.T) {
	a := namedGroup("a")
	b := namedGroup("b")
	rep := &Repeater{Copies: Static(Scalar(3))}
	layer := &Layer{
		Kind:   LayerShape,
		Shapes: []Shape{a, b, rep},
	}
	c := &Composition{RootLayer: layer, EndFrame: 1}
	c.ProcessRepeaters()

	require.Len(t, layer.Shapes, 1)
	got, ok := layer.Shapes[0].(*Repeater)
	require.True(t, ok)
	require.NotNil(t, got.Content)
	require.Len(t, got.Content.Children, 2)
	assert.Same(t, a, got.Content.Children[0])
	assert.Same(t, b, got.Content.Children[1])
}

func TestProcessRepeaters_Idempotent(t *testing.T) {
	a := namedGroup("a")
	rep := &Repeater{Copies: Static(Scalar(2))}
	layer := &Layer{Kind: LayerShape, Shapes: []Shape{a, rep}}
	c := &Composition{RootLayer: layer, EndFrame: 1}

	c.ProcessRepeaters()
	first := layer.Shapes[0].(*Repeater).Content

	// Re-running the rewrite on an already rewritten tree is a no-op.
	processLayerRepeaters(layer)
	assert.Len(t, layer.Shapes, 1)
	assert.Same(t, first, layer.Shapes[0].(*Repeater).Content)
	assert.Len(t, first.Children, 1)
}

func TestProcessRepeaters_Nested(t *testing.T) {
	a := namedGroup("a")
	inner := &Repeater{Copies: Static(Scalar(2))}
	b := namedGroup("b")
	outer := &Repeater{Copies: Static(Scalar(3))}
	layer := &Layer{Kind: LayerShape, Shapes: []Shape{a, inner, b, outer}}
	c := &Composition{RootLayer: layer, EndFrame: 1}
	c.ProcessRepeaters()

	require.Len(t, layer.Shapes, 1)
	got := layer.Shapes[0].(*Repeater)
	require.Same(t, outer, got)
	require.NotNil(t, outer.Content)

	// The outer repeater captured [a, inner, b]; the inner repeater then
	// captured [a] within that synthetic group.
	require.Len(t, outer.Content.Children, 2)
	gotInner, ok := outer.Content.Children[0].(*Repeater)
	require.True(t, ok)
	require.Same(t, inner, gotInner)
	require.NotNil(t, inner.Content)
	require.Len(t, inner.Content.Children, 1)
	assert.Same(t, a, inner.Content.Children[0])
	assert.Same(t, b, outer.Content.Children[1])
}

func TestProcessRepeaters_InsideGroups(t *testing.T) {
	leaf := namedGroup("leaf")
	rep := &Repeater{Copies: Static(Scalar(2))}
	parent := &Group{Name: "parent", Children: []Shape{leaf, rep}}
	layer := &Layer{Kind: LayerShape, Shapes: []Shape{parent}}
	c := &Composition{RootLayer: layer, EndFrame: 1}
	c.ProcessRepeaters()

	require.Len(t, parent.Children, 1)
	got := parent.Children[0].(*Repeater)
	require.NotNil(t, got.Content)
	assert.Same(t, leaf, got.Content.Children[0])
}

func TestRepeater_MaxCopies(t *testing.T) {
	r := &Repeater{Copies: Static(Scalar(4))}
	assert.Equal(t, 4, r.MaxCopies())

	r = &Repeater{Copies: Keyframed([]Keyframe[Scalar]{
		{Start: 0, End: 10, From: 2, To: 7},
	})}
	assert.Equal(t, 7, r.MaxCopies())

	r = &Repeater{Copies: Static(Scalar(-3))}
	assert.Equal(t, 0, r.MaxCopies())
}

func TestLayer_Visible(t *testing.T) {
	l := &Layer{InFrame: 10, OutFrame: 20}
	assert.False(t, l.Visible(9))
	assert.True(t, l.Visible(10))
	assert.True(t, l.Visible(19))
	assert.False(t, l.Visible(20))

	l.Hidden = true
	assert.False(t, l.Visible(15))
}

func TestPathData_ToPath(t *testing.T) {
	pd := PathData{
		Vertices:    []kinema.Point{kinema.Pt(0, 0), kinema.Pt(10, 0), kinema.Pt(10, 10)},
		InTangents:  make([]kinema.Point, 3),
		OutTangents: make([]kinema.Point, 3),
		Closed:      true,
	}
	var p kinema.Path
	pd.ToPath(&p)
	require.False(t, p.Empty())

	// One MoveTo, a cubic per edge including the closing one, one Close.
	els := p.Elements()
	require.Len(t, els, 5)
	_, ok := els[0].(kinema.MoveTo)
	assert.True(t, ok)
	_, ok = els[len(els)-1].(kinema.Close)
	assert.True(t, ok)

	// Zero tangents reduce every edge to its chord.
	b := p.Bounds()
	assert.InDelta(t, 0, b.Min.X, 1e-4)
	assert.InDelta(t, 10, b.Max.Y, 1e-4)
}

func TestPathData_ShortTangents(t *testing.T) {
	// Tangent arrays shorter than the vertex array are malformed input;
	// the subpath is skipped rather than indexed out of bounds.
	pd := PathData{
		Vertices:    []kinema.Point{kinema.Pt(0, 0), kinema.Pt(10, 0), kinema.Pt(10, 10)},
		InTangents:  make([]kinema.Point, 1),
		OutTangents: make([]kinema.Point, 3),
		Closed:      true,
	}
	var p kinema.Path
	pd.ToPath(&p)
	assert.True(t, p.Empty())
}

func TestPathData_Lerp(t *testing.T) {
	a := PathData{
		Vertices:    []kinema.Point{kinema.Pt(0, 0), kinema.Pt(10, 0)},
		InTangents:  make([]kinema.Point, 2),
		OutTangents: make([]kinema.Point, 2),
	}
	b := PathData{
		Vertices:    []kinema.Point{kinema.Pt(0, 10), kinema.Pt(10, 10)},
		InTangents:  make([]kinema.Point, 2),
		OutTangents: make([]kinema.Point, 2),
	}
	mid := a.Lerp(b, 0.5)
	assert.InDelta(t, 5, mid.Vertices[0].Y, 1e-5)

	// Topology mismatch returns the receiver.
	c := PathData{Vertices: []kinema.Point{kinema.Pt(1, 1)}}
	got := a.Lerp(c, 0.5)
	assert.Equal(t, a.Vertices, got.Vertices)
}
