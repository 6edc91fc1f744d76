package render

import (
	"image"
	"slices"

	"github.com/gokinema/kinema"
	"github.com/gokinema/kinema/internal/parallel"
)

// DrawableType distinguishes fill drawables from stroke drawables.
type DrawableType int

const (
	DrawableFill DrawableType = iota
	DrawableStroke
)

// Dirty bits tracked per drawable. A freshly constructed drawable is
// fully dirty so the first Preprocess always rasterizes.
const (
	dirtyNone   uint8 = 0
	dirtyPath   uint8 = 1 << 0
	dirtyStroke uint8 = 1 << 1
	dirtyBrush  uint8 = 1 << 2
	dirtyAll          = dirtyPath | dirtyStroke | dirtyBrush
)

// Drawable is one rasterizable unit: a path, a brush, optional stroke
// info, and the cached coverage spans produced for it. Setters mark the
// matching dirty bit; Preprocess dispatches rasterization work for dirty
// drawables onto the worker pool without blocking; Rle blocks for the
// result and memoizes it.
//
// A drawable is driven from a single evaluation goroutine: only the
// rasterization of its spans runs concurrently, through the task slot.
type Drawable struct {
	typ   DrawableType
	path  *kinema.Path
	brush kinema.Brush
	style kinema.StrokeStyle
	rule  kinema.FillRule
	alpha float32

	dirty   uint8
	outline *kinema.Path
	task    *rleTask

	pool   *parallel.WorkerPool
	source SpanSource
}

// NewDrawable returns a drawable of the given type bound to the pool and
// span source it will rasterize with.
func NewDrawable(typ DrawableType, pool *parallel.WorkerPool, source SpanSource) *Drawable {
	return &Drawable{
		typ:    typ,
		path:   &kinema.Path{},
		rule:   kinema.FillRuleWinding,
		alpha:  1,
		dirty:  dirtyAll,
		pool:   pool,
		source: source,
	}
}

// Type returns the drawable's type tag.
func (d *Drawable) Type() DrawableType { return d.typ }

// Brush returns the current brush.
func (d *Drawable) Brush() kinema.Brush { return d.brush }

// Alpha returns the accumulated group opacity applied when painting.
func (d *Drawable) Alpha() float32 { return d.alpha }

// SetPath replaces the drawable's path.
func (d *Drawable) SetPath(p *kinema.Path) {
	d.path = p
	d.dirty |= dirtyPath
}

// SetBrush replaces the brush used when painting the spans.
func (d *Drawable) SetBrush(b kinema.Brush) {
	d.brush = b
	d.dirty |= dirtyBrush
}

// SetAlpha sets the paint-time opacity factor. Alpha does not affect the
// spans, so it marks only the brush bit.
func (d *Drawable) SetAlpha(a float32) {
	if d.alpha != a {
		d.alpha = a
		d.dirty |= dirtyBrush
	}
}

// SetStrokeInfo updates cap, join, miter limit and width.
func (d *Drawable) SetStrokeInfo(cap kinema.Cap, join kinema.Join, miterLimit, width float32) {
	if d.style.Cap == cap && d.style.Join == join &&
		d.style.MiterLimit == miterLimit && d.style.Width == width {
		return
	}
	d.style.Cap = cap
	d.style.Join = join
	d.style.MiterLimit = miterLimit
	d.style.Width = width
	d.dirty |= dirtyStroke
}

// SetDashInfo updates the dash pattern: alternating dash/gap lengths and
// the phase offset. An empty slice clears dashing.
func (d *Drawable) SetDashInfo(dash []float32, offset float32) {
	if len(dash) == 0 {
		if d.style.Dash != nil {
			d.style.Dash = nil
			d.style.DashOffset = 0
			d.dirty |= dirtyStroke
		}
		return
	}
	if offset == d.style.DashOffset && slices.Equal(d.style.Dash, dash) {
		return
	}
	d.style.DashOffset = offset
	d.style.Dash = append(d.style.Dash[:0], dash...)
	d.dirty |= dirtyStroke
}

// SetFillRule sets the fill rule used to rasterize fill drawables.
func (d *Drawable) SetFillRule(rule kinema.FillRule) {
	if d.rule != rule {
		d.rule = rule
		d.dirty |= dirtyPath
	}
}

// Preprocess dispatches rasterization for this drawable if any state
// changed since the last call. It never blocks: the work runs on the
// worker pool and Rle picks up the result. Clean drawables keep their
// cached task untouched.
func (d *Drawable) Preprocess(clip image.Rectangle) {
	if d.dirty == dirtyNone && d.task != nil {
		return
	}
	regen := d.dirty&(dirtyPath|dirtyStroke) != 0 || d.task == nil
	restroke := d.typ == DrawableStroke &&
		(d.dirty&(dirtyPath|dirtyStroke) != 0 || d.outline == nil)
	d.dirty = dirtyNone
	if !regen {
		// Brush or alpha changes do not move the coverage spans.
		return
	}

	if d.typ == DrawableStroke && d.style.Width <= 0 {
		d.outline = nil
		d.task = resolvedTask(nil)
		return
	}

	source := d.source
	if d.typ == DrawableStroke {
		if restroke {
			d.outline = source.StrokeOutline(d.path, d.style)
		}
		if d.outline == nil {
			d.task = resolvedTask(nil)
			return
		}
		task := newPendingTask()
		d.task = task
		outline := d.outline
		d.pool.Submit(func() {
			task.pending <- source.StrokeSpans(outline, clip)
		})
		return
	}

	task := newPendingTask()
	d.task = task
	path, rule := d.path, d.rule
	d.pool.Submit(func() {
		task.pending <- source.FillSpans(path, rule, clip)
	})
}

// Rle returns the drawable's coverage spans, blocking for an in-flight
// rasterization the first time and serving the memoized result after.
// Calling Rle before any Preprocess returns nil.
func (d *Drawable) Rle() kinema.SpanList {
	if d.task == nil {
		return nil
	}
	return d.task.wait()
}
