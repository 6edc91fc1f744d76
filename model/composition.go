// Package model defines the animated scene graph a renderer evaluates:
// compositions of layers, shape trees, keyframed properties and paints.
package model

// Composition is a complete animation: a layer tree with frame range,
// frame rate and design size.
type Composition struct {
	RootLayer  *Layer
	StartFrame float32
	EndFrame   float32
	FrameRate  float32
	Width      int
	Height     int

	processed bool
}

// TotalFrames returns the number of frames the animation spans.
func (c *Composition) TotalFrames() int {
	return int(c.EndFrame-c.StartFrame) + 1
}

// Duration returns the animation length in seconds.
func (c *Composition) Duration() float32 {
	if c.FrameRate == 0 {
		return 0
	}
	return (c.EndFrame - c.StartFrame) / c.FrameRate
}

// FrameAtPos maps a normalized position in [0,1] to a frame number.
// Positions outside the range clamp.
func (c *Composition) FrameAtPos(pos float32) int {
	if pos < 0 {
		pos = 0
	}
	if pos > 1 {
		pos = 1
	}
	return int(c.StartFrame + pos*(c.EndFrame-c.StartFrame))
}

// ProcessRepeaters rewrites every shape list so each repeater owns the
// shapes that preceded it, moved into a synthetic content group. The
// rewrite is idempotent: repeaters that already have content are left
// alone, so calling this twice changes nothing.
func (c *Composition) ProcessRepeaters() {
	if c.processed {
		return
	}
	c.processed = true
	if c.RootLayer != nil {
		processLayerRepeaters(c.RootLayer)
	}
}

func processLayerRepeaters(l *Layer) {
	processShapeRepeaters(&l.Shapes)
	for _, child := range l.Children {
		processLayerRepeaters(child)
	}
}

// processShapeRepeaters scans a shape list back to front. When it finds a
// repeater without content, the shapes before it become the repeater's
// content group and are removed from the list; the rewritten content is
// then scanned again so nested repeaters capture correctly.
func processShapeRepeaters(shapes *[]Shape) {
	list := *shapes
	for i := len(list) - 1; i >= 0; i-- {
		switch s := list[i].(type) {
		case *Repeater:
			if s.Content != nil {
				continue
			}
			captured := make([]Shape, i)
			copy(captured, list[:i])
			s.Content = &Group{Name: "repeater-content", Children: captured}
			list = append(list[:0], list[i:]...)
			*shapes = list
			processShapeRepeaters(&s.Content.Children)
			return
		case *Group:
			processShapeRepeaters(&s.Children)
		}
	}
	*shapes = list
}
