package model

import "github.com/gokinema/kinema"

// LayerKind is the kind of a composition layer.
type LayerKind int

const (
	LayerShape LayerKind = iota + 1
	LayerSolid
	LayerNull
	LayerPrecomp
)

// Layer is one layer of a composition. Shape layers carry a shape tree,
// solid layers a colored rectangle, precomp layers nested child layers,
// and null layers only a transform for their children to inherit.
type Layer struct {
	Name       string
	Kind       LayerKind
	Transform  *Transform
	AutoOrient bool
	Hidden     bool

	// The layer renders only for frames in [InFrame, OutFrame).
	InFrame  int
	OutFrame int

	// TimeStretch rescales the layer's local timeline; 0 means 1.
	TimeStretch float32
	StartFrame  float32

	Shapes   []Shape
	Children []*Layer

	SolidWidth  float32
	SolidHeight float32
	SolidColor  kinema.RGBA
}

// Visible reports whether the layer renders at the given frame.
func (l *Layer) Visible(frameNo int) bool {
	return !l.Hidden && frameNo >= l.InFrame && frameNo < l.OutFrame
}

// LocalFrame maps a composition frame into the layer's own timeline.
func (l *Layer) LocalFrame(frameNo int) int {
	stretch := l.TimeStretch
	if stretch == 0 {
		stretch = 1
	}
	return int((float32(frameNo) - l.StartFrame) / stretch)
}
