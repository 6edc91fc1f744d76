package render

import (
	"github.com/gokinema/kinema"
	"github.com/gokinema/kinema/model"
)

// layerItem is the per-layer evaluation node. Layers outside their frame
// range contribute nothing.
type layerItem interface {
	update(frameNo int, m kinema.Matrix, alpha float32)
	renderList(out []*Drawable) []*Drawable
}

func buildLayerItem(ctx *buildContext, l *model.Layer) layerItem {
	switch l.Kind {
	case model.LayerShape:
		return newShapeLayerItem(ctx, l)
	case model.LayerSolid:
		return newSolidLayerItem(ctx, l)
	default:
		// Null and precomp layers carry no content of their own, only
		// a transform their children inherit.
		return newCompositeLayerItem(ctx, l)
	}
}

// layerState is the per-frame state shared by all layer kinds.
type layerState struct {
	l       *model.Layer
	visible bool
}

// enter computes the layer's local frame, matrix and alpha for this
// frame, reporting whether the layer renders at all.
func (s *layerState) enter(frameNo int, m kinema.Matrix, alpha float32) (int, kinema.Matrix, float32, bool) {
	s.visible = s.l.Visible(frameNo)
	if !s.visible {
		return 0, m, alpha, false
	}
	local := s.l.LocalFrame(frameNo)
	if t := s.l.Transform; t != nil {
		m = m.Multiply(t.Matrix(local, s.l.AutoOrient))
		alpha *= t.Alpha(local)
	}
	if alpha <= 0 {
		s.visible = false
		return local, m, alpha, false
	}
	return local, m, alpha, true
}

type shapeLayerItem struct {
	layerState
	items []contentItem
}

func newShapeLayerItem(ctx *buildContext, l *model.Layer) *shapeLayerItem {
	items := buildContentItems(ctx, l.Shapes)
	bindPaintItems(items, nil, 0)
	return &shapeLayerItem{layerState: layerState{l: l}, items: items}
}

func (li *shapeLayerItem) update(frameNo int, m kinema.Matrix, alpha float32) {
	local, m, alpha, ok := li.enter(frameNo, m, alpha)
	if !ok {
		return
	}
	for _, c := range li.items {
		c.update(local, m, alpha)
	}
}

func (li *shapeLayerItem) renderList(out []*Drawable) []*Drawable {
	if !li.visible {
		return out
	}
	for _, c := range li.items {
		out = c.renderList(out)
	}
	return out
}

// solidLayerItem paints a solid-colored rectangle of the layer's design
// size.
type solidLayerItem struct {
	layerState
	d      *Drawable
	local  kinema.Path
	final  kinema.Path
	matrix kinema.Matrix
	built  bool
}

func newSolidLayerItem(ctx *buildContext, l *model.Layer) *solidLayerItem {
	li := &solidLayerItem{
		layerState: layerState{l: l},
		d:          NewDrawable(DrawableFill, ctx.pool, ctx.source),
	}
	li.local.Rectangle(0, 0, l.SolidWidth, l.SolidHeight, 0, true)
	li.d.SetBrush(kinema.Solid(l.SolidColor))
	return li
}

func (li *solidLayerItem) update(frameNo int, m kinema.Matrix, alpha float32) {
	_, m, alpha, ok := li.enter(frameNo, m, alpha)
	if !ok {
		return
	}
	li.d.SetAlpha(alpha)
	if !li.built || m != li.matrix {
		li.matrix = m
		li.final.Transform(&li.local, m)
		li.d.SetPath(&li.final)
		li.built = true
	}
}

func (li *solidLayerItem) renderList(out []*Drawable) []*Drawable {
	if !li.visible || li.l.SolidColor.A <= 0 {
		return out
	}
	return append(out, li.d)
}

// compositeLayerItem holds child layers under the parent transform; used
// for precomp and null layers.
type compositeLayerItem struct {
	layerState
	children []layerItem
}

func newCompositeLayerItem(ctx *buildContext, l *model.Layer) *compositeLayerItem {
	children := make([]layerItem, 0, len(l.Children))
	for _, child := range l.Children {
		children = append(children, buildLayerItem(ctx, child))
	}
	return &compositeLayerItem{layerState: layerState{l: l}, children: children}
}

func (li *compositeLayerItem) update(frameNo int, m kinema.Matrix, alpha float32) {
	local, m, alpha, ok := li.enter(frameNo, m, alpha)
	if !ok {
		return
	}
	// Child layers run on the precomp's local timeline.
	for _, c := range li.children {
		c.update(local, m, alpha)
	}
}

func (li *compositeLayerItem) renderList(out []*Drawable) []*Drawable {
	if !li.visible {
		return out
	}
	// Layers stack bottom-up: the last child paints first.
	for i := len(li.children) - 1; i >= 0; i-- {
		out = li.children[i].renderList(out)
	}
	return out
}
