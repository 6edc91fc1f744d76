package render

import (
	"github.com/gokinema/kinema"
	"github.com/gokinema/kinema/internal/parallel"
	"github.com/gokinema/kinema/model"
)

// contentItem is one node of the per-frame evaluation tree that mirrors
// the (rewritten) shape tree. update is single-threaded and walks the
// tree in document order; renderList collects the drawables to rasterize
// and paint, back to front.
type contentItem interface {
	update(frameNo int, m kinema.Matrix, alpha float32)
	renderList(out []*Drawable) []*Drawable
}

type buildContext struct {
	pool   *parallel.WorkerPool
	source SpanSource
}

// buildContentItems mirrors a shape list into content items, in document
// order. The shape list is assumed already rewritten, so repeaters own
// their content group.
func buildContentItems(ctx *buildContext, shapes []model.Shape) []contentItem {
	items := make([]contentItem, 0, len(shapes))
	for _, s := range shapes {
		switch s := s.(type) {
		case *model.Group:
			items = append(items, newGroupItem(ctx, s))
		case *model.Repeater:
			if !s.Hidden && s.Content != nil {
				items = append(items, newRepeaterItem(ctx, s))
			}
		case *model.RectShape:
			if !s.Hidden {
				items = append(items, newPathItem(&rectGeometry{s: s}))
			}
		case *model.EllipseShape:
			if !s.Hidden {
				items = append(items, newPathItem(&ellipseGeometry{s: s}))
			}
		case *model.PathShape:
			if !s.Hidden {
				items = append(items, newPathItem(&freeformGeometry{s: s}))
			}
		case *model.TrimShape:
			if !s.Hidden {
				items = append(items, &trimItem{s: s})
			}
		case *model.Fill:
			if !s.Hidden {
				items = append(items, newPaintItem(ctx, DrawableFill, &fillEval{s: s}))
			}
		case *model.Stroke:
			if !s.Hidden {
				items = append(items, newPaintItem(ctx, DrawableStroke, &strokeEval{s: s}))
			}
		case *model.GradientFill:
			if !s.Hidden {
				items = append(items, newPaintItem(ctx, DrawableFill, &gradientFillEval{s: s}))
			}
		case *model.GradientStroke:
			if !s.Hidden {
				items = append(items, newPaintItem(ctx, DrawableStroke, &gradientStrokeEval{s: s}))
			}
		}
	}
	return items
}

// groupItem nests child items under the group's animated transform.
type groupItem struct {
	g        *model.Group
	children []contentItem
}

func newGroupItem(ctx *buildContext, g *model.Group) *groupItem {
	return &groupItem{g: g, children: buildContentItems(ctx, g.Children)}
}

func (gi *groupItem) update(frameNo int, m kinema.Matrix, alpha float32) {
	if t := gi.g.Transform; t != nil {
		m = m.Multiply(t.Matrix(frameNo, false))
		alpha *= t.Alpha(frameNo)
	}
	for _, c := range gi.children {
		c.update(frameNo, m, alpha)
	}
}

func (gi *groupItem) renderList(out []*Drawable) []*Drawable {
	for _, c := range gi.children {
		out = c.renderList(out)
	}
	return out
}

// bindPaints resolves which geometry each paint and trim item applies to:
// a paint or trim captures every path item that preceded it in document
// order since its group was entered, grandchild groups included. start is
// the capture boundary at group entry.
func (gi *groupItem) bindPaints(paths []*pathItem, start int) []*pathItem {
	return bindPaintItems(gi.children, paths, start)
}

func bindPaintItems(items []contentItem, paths []*pathItem, start int) []*pathItem {
	for _, c := range items {
		switch c := c.(type) {
		case *pathItem:
			paths = append(paths, c)
		case *paintItem:
			c.paths = append(c.paths, paths[start:]...)
		case *trimItem:
			c.paths = append(c.paths, paths[start:]...)
		case *groupItem:
			paths = c.bindPaints(paths, len(paths))
		case *repeaterItem:
			for _, inst := range c.instances {
				paths = inst.bindPaints(paths, len(paths))
			}
		}
	}
	return paths
}

// pathGeometry evaluates one shape's object-space path for a frame.
type pathGeometry interface {
	isStatic() bool
	evaluate(frameNo int, dst *kinema.Path)
}

// pathItem holds a geometry's evaluated object-space path, the transform
// it was last seen under, and the change flag paint items poll when
// rebuilding their merged device-space paths.
type pathItem struct {
	geom pathGeometry

	local     kinema.Path
	trimmed   *kinema.Path
	matrix    kinema.Matrix
	evaluated bool
	changed   bool
}

func newPathItem(g pathGeometry) *pathItem {
	return &pathItem{geom: g}
}

func (pi *pathItem) update(frameNo int, m kinema.Matrix, alpha float32) {
	changed := false
	if !pi.evaluated || !pi.geom.isStatic() {
		pi.geom.evaluate(frameNo, &pi.local)
		pi.evaluated = true
		changed = true
	}
	if !pi.evaluated || m != pi.matrix {
		pi.matrix = m
		changed = true
	}
	pi.changed = changed
}

func (pi *pathItem) renderList(out []*Drawable) []*Drawable { return out }

// effective returns the path paints consume: the trimmed geometry when a
// trim item rewrote it this frame, the raw local path otherwise.
func (pi *pathItem) effective() *kinema.Path {
	if pi.trimmed != nil {
		return pi.trimmed
	}
	return &pi.local
}

type rectGeometry struct{ s *model.RectShape }

func (g *rectGeometry) isStatic() bool {
	return g.s.Position.IsStatic() && g.s.Size.IsStatic() && g.s.Roundness.IsStatic()
}

func (g *rectGeometry) evaluate(frameNo int, dst *kinema.Path) {
	pos := g.s.Position.At(frameNo)
	size := g.s.Size.At(frameNo)
	round := float32(g.s.Roundness.At(frameNo))
	dst.Reset()
	dst.Rectangle(pos.X-size.X/2, pos.Y-size.Y/2, size.X, size.Y, round, !g.s.Reversed)
}

type ellipseGeometry struct{ s *model.EllipseShape }

func (g *ellipseGeometry) isStatic() bool {
	return g.s.Position.IsStatic() && g.s.Size.IsStatic()
}

func (g *ellipseGeometry) evaluate(frameNo int, dst *kinema.Path) {
	pos := g.s.Position.At(frameNo)
	size := g.s.Size.At(frameNo)
	dst.Reset()
	dst.Ellipse(pos.X, pos.Y, size.X/2, size.Y/2, !g.s.Reversed)
}

type freeformGeometry struct{ s *model.PathShape }

func (g *freeformGeometry) isStatic() bool { return g.s.Geometry.IsStatic() }

func (g *freeformGeometry) evaluate(frameNo int, dst *kinema.Path) {
	g.s.Geometry.At(frameNo).ToPath(dst)
}

// trimItem rewrites the captured path items' effective geometry to the
// animated arc-length window. It contributes no drawables itself.
type trimItem struct {
	s     *model.TrimShape
	paths []*pathItem

	begin, end float32
	valid      bool
}

func (ti *trimItem) update(frameNo int, m kinema.Matrix, alpha float32) {
	begin := clamp01(float32(ti.s.Begin.At(frameNo)) / 100)
	end := clamp01(float32(ti.s.End.At(frameNo)) / 100)
	if begin > end {
		begin, end = end, begin
	}
	if begin != end {
		// The offset rotates the window around the path, wrapping
		// modulo one full revolution. A full window stays full.
		offset := fract(float32(ti.s.Offset.At(frameNo)) / 360)
		if offset != 0 && end-begin < 1 {
			begin = fract(begin + offset)
			end = fract(end + offset)
			if begin == end {
				begin, end = 0, 1
			}
		}
	}

	trimChanged := !ti.valid || begin != ti.begin || end != ti.end
	ti.begin, ti.end = begin, end
	ti.valid = true

	for _, pi := range ti.paths {
		if !pi.changed && !trimChanged {
			continue
		}
		if pi.trimmed == nil {
			pi.trimmed = &kinema.Path{}
		}
		pi.trimmed.Reset()
		kinema.TrimPath(pi.trimmed, &pi.local, begin, end)
		pi.changed = true
	}
}

func (ti *trimItem) renderList(out []*Drawable) []*Drawable { return out }

// repeaterItem renders up to MaxCopies pre-built instances of the
// repeater's synthetic content group, each under an incremental multiple
// of the repeater transform.
type repeaterItem struct {
	r         *model.Repeater
	instances []*groupItem
	active    int
}

func newRepeaterItem(ctx *buildContext, r *model.Repeater) *repeaterItem {
	n := r.MaxCopies()
	instances := make([]*groupItem, n)
	for i := range instances {
		instances[i] = newGroupItem(ctx, r.Content)
	}
	return &repeaterItem{r: r, instances: instances}
}

func (ri *repeaterItem) update(frameNo int, m kinema.Matrix, alpha float32) {
	copies := int(ri.r.Copies.At(frameNo))
	if copies < 0 {
		copies = 0
	}
	if copies > len(ri.instances) {
		copies = len(ri.instances)
	}
	ri.active = copies
	if copies == 0 {
		return
	}

	offset := float32(ri.r.Offset.At(frameNo))
	startOp := clamp01(float32(ri.r.StartOpacity.At(frameNo)) / 100)
	endOp := clamp01(float32(ri.r.EndOpacity.At(frameNo)) / 100)
	for i := 0; i < copies; i++ {
		multiplier := offset + float32(i)
		im := m
		if ri.r.Transform != nil {
			im = m.Multiply(ri.r.Transform.MatrixForRepeater(frameNo, multiplier))
		}
		t := float32(i) / float32(copies)
		ri.instances[i].update(frameNo, im, alpha*(startOp+(endOp-startOp)*t))
	}
}

func (ri *repeaterItem) renderList(out []*Drawable) []*Drawable {
	for i := 0; i < ri.active; i++ {
		out = ri.instances[i].renderList(out)
	}
	return out
}

// paintEval evaluates one paint node's animated state into a drawable.
// It returns false when the paint is fully transparent this frame.
type paintEval interface {
	apply(d *Drawable, frameNo int, alpha float32) bool
}

// paintItem owns one drawable and feeds it the merged device-space path
// of its captured geometry plus the paint's evaluated brush state.
type paintItem struct {
	d      *Drawable
	eval   paintEval
	paths  []*pathItem
	merged kinema.Path
	tmp    kinema.Path
	built  bool
	show   bool
}

func newPaintItem(ctx *buildContext, typ DrawableType, eval paintEval) *paintItem {
	return &paintItem{d: NewDrawable(typ, ctx.pool, ctx.source), eval: eval}
}

func (p *paintItem) update(frameNo int, m kinema.Matrix, alpha float32) {
	p.show = p.eval.apply(p.d, frameNo, alpha)
}

func (p *paintItem) renderList(out []*Drawable) []*Drawable {
	if !p.show {
		// Geometry changes are flagged only for the frame they happen
		// in, so a hidden paint must rebuild when it reappears.
		p.built = false
		return out
	}
	dirty := !p.built
	for _, pi := range p.paths {
		if pi.changed {
			dirty = true
			break
		}
	}
	if dirty {
		p.merged.Reset()
		for _, pi := range p.paths {
			p.tmp.Transform(pi.effective(), pi.matrix)
			p.merged.Append(&p.tmp)
		}
		p.d.SetPath(&p.merged)
		p.built = true
	}
	return append(out, p.d)
}

type fillEval struct {
	s       *model.Fill
	applied bool
}

func (e *fillEval) apply(d *Drawable, frameNo int, alpha float32) bool {
	color := e.s.Color.At(frameNo)
	opacity := clamp01(float32(e.s.Opacity.At(frameNo)) / 100)
	if !e.applied || !e.s.Color.IsStatic() {
		d.SetBrush(kinema.Solid(color))
		d.SetFillRule(e.s.Rule)
		e.applied = true
	}
	d.SetAlpha(alpha * opacity)
	return alpha*opacity > 0 && color.A > 0
}

type strokeEval struct {
	s       *model.Stroke
	applied bool
	dashBuf []float32
}

func (e *strokeEval) apply(d *Drawable, frameNo int, alpha float32) bool {
	color := e.s.Color.At(frameNo)
	opacity := clamp01(float32(e.s.Opacity.At(frameNo)) / 100)
	width := float32(e.s.Width.At(frameNo))
	if !e.applied || !e.s.Color.IsStatic() {
		d.SetBrush(kinema.Solid(color))
		e.applied = true
	}
	d.SetAlpha(alpha * opacity)
	d.SetStrokeInfo(e.s.Cap, e.s.Join, e.s.MiterLimit, width)
	e.dashBuf = applyDash(d, e.s.Dash, frameNo, e.dashBuf)
	return width > 0 && alpha*opacity > 0 && color.A > 0
}

type gradientFillEval struct {
	s       *model.GradientFill
	brush   kinema.Brush
	applied bool
}

func (e *gradientFillEval) apply(d *Drawable, frameNo int, alpha float32) bool {
	opacity := clamp01(float32(e.s.Opacity.At(frameNo)) / 100)
	if !e.applied || !e.s.Gradient.IsStatic() {
		e.brush = e.s.Gradient.Update(e.brush, frameNo)
		d.SetBrush(e.brush)
		d.SetFillRule(e.s.Rule)
		e.applied = true
	}
	d.SetAlpha(alpha * opacity)
	return alpha*opacity > 0
}

type gradientStrokeEval struct {
	s       *model.GradientStroke
	brush   kinema.Brush
	applied bool
	dashBuf []float32
}

func (e *gradientStrokeEval) apply(d *Drawable, frameNo int, alpha float32) bool {
	opacity := clamp01(float32(e.s.Opacity.At(frameNo)) / 100)
	width := float32(e.s.Width.At(frameNo))
	if !e.applied || !e.s.Gradient.IsStatic() {
		e.brush = e.s.Gradient.Update(e.brush, frameNo)
		d.SetBrush(e.brush)
		e.applied = true
	}
	d.SetAlpha(alpha * opacity)
	d.SetStrokeInfo(e.s.Cap, e.s.Join, e.s.MiterLimit, width)
	e.dashBuf = applyDash(d, e.s.Dash, frameNo, e.dashBuf)
	return width > 0 && alpha*opacity > 0
}

func applyDash(d *Drawable, dash *model.Dash, frameNo int, buf []float32) []float32 {
	if dash == nil || len(dash.Lengths) == 0 {
		d.SetDashInfo(nil, 0)
		return buf
	}
	if cap(buf) < len(dash.Lengths)+1 {
		buf = make([]float32, len(dash.Lengths)+1)
	}
	buf = buf[:len(dash.Lengths)+1]
	n := dash.Info(frameNo, buf)
	d.SetDashInfo(buf[:n], dash.OffsetAt(frameNo))
	return buf
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func fract(v float32) float32 {
	return v - floorf(v)
}

func floorf(v float32) float32 {
	f := float32(int(v))
	if f > v {
		f--
	}
	return f
}
