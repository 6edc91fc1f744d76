// Package render evaluates an animation composition frame by frame and
// rasterizes it into coverage spans and pixels.
//
// The entry point is New, which builds a per-frame evaluation tree from a
// model.Composition. Update evaluates a frame into drawable state;
// RenderSync and Render rasterize a frame onto a caller-owned Surface,
// dispatching span computation for changed drawables onto a shared worker
// pool.
package render

import (
	"errors"
	"image"
	"runtime"
	"sync"
	"time"

	"github.com/gokinema/kinema"
	"github.com/gokinema/kinema/internal/parallel"
	"github.com/gokinema/kinema/model"
)

// ErrInvalidSurface is returned when a render target has no buffer or a
// buffer too small for its declared dimensions.
var ErrInvalidSurface = errors.New("render: invalid surface")

var (
	sharedPoolOnce sync.Once
	sharedPool     *parallel.WorkerPool
)

func defaultPool() *parallel.WorkerPool {
	sharedPoolOnce.Do(func() {
		sharedPool = parallel.NewWorkerPool(runtime.GOMAXPROCS(0))
	})
	return sharedPool
}

type config struct {
	workers    int
	source     SpanSource
	keepAspect bool
}

// Option configures an Animation.
type Option func(*config)

// WithWorkers sets a private worker pool of n workers for this animation
// instead of the shared pool.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// WithSpanSource injects a custom rasterizer in place of the built-in
// scanline span source.
func WithSpanSource(s SpanSource) Option {
	return func(c *config) { c.source = s }
}

// WithKeepAspectRatio controls whether rendering preserves the
// composition's aspect ratio when fitting it to the surface, centering
// the result. Default is a plain stretch.
func WithKeepAspectRatio(keep bool) Option {
	return func(c *config) { c.keepAspect = keep }
}

// Animation renders a composition. One Animation serializes its renders:
// a frame's rasterization results are fully retrieved before the next
// frame's dispatch, so each drawable has at most one task in flight.
type Animation struct {
	comp *model.Composition
	root layerItem

	pool       *parallel.WorkerPool
	keepAspect bool

	mu        sync.Mutex
	curFrame  int
	curMatrix kinema.Matrix
	evaluated bool
	drawables []*Drawable
}

// New builds the evaluation tree for comp. The composition's repeater
// rewrite runs here if it has not already.
func New(comp *model.Composition, opts ...Option) *Animation {
	cfg := config{source: rasterSource{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	pool := defaultPool()
	if cfg.workers > 0 {
		pool = parallel.NewWorkerPool(cfg.workers)
	}

	comp.ProcessRepeaters()
	ctx := &buildContext{pool: pool, source: cfg.source}

	a := &Animation{
		comp:       comp,
		pool:       pool,
		keepAspect: cfg.keepAspect,
		curFrame:   -1,
	}
	if comp.RootLayer != nil {
		a.root = buildLayerItem(ctx, comp.RootLayer)
	}
	kinema.Logger().Debug("animation built",
		"frames", comp.TotalFrames(), "workers", pool.Workers())
	return a
}

// FrameRate returns the composition frame rate.
func (a *Animation) FrameRate() float64 { return float64(a.comp.FrameRate) }

// TotalFrames returns the number of frames in the animation.
func (a *Animation) TotalFrames() int { return a.comp.TotalFrames() }

// Duration returns the animation length.
func (a *Animation) Duration() time.Duration {
	return time.Duration(float64(a.comp.Duration()) * float64(time.Second))
}

// FrameAtPos maps a normalized position in [0,1] to a frame number.
func (a *Animation) FrameAtPos(pos float64) int {
	return a.comp.FrameAtPos(float32(pos))
}

// Size returns the composition's design size.
func (a *Animation) Size() (w, h float32) {
	return float32(a.comp.Width), float32(a.comp.Height)
}

// Update evaluates the animation at frameNo, clamped to the valid range,
// without rasterizing. It reports whether anything changed since the last
// evaluation; a repeated frame number is a no-op returning false.
func (a *Animation) Update(frameNo int) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.update(frameNo, a.curMatrixOrIdentity())
}

func (a *Animation) curMatrixOrIdentity() kinema.Matrix {
	if !a.evaluated {
		return kinema.Identity()
	}
	return a.curMatrix
}

func (a *Animation) clampFrame(frameNo int) int {
	if frameNo < 0 {
		return 0
	}
	if last := a.comp.TotalFrames() - 1; frameNo > last {
		return last
	}
	return frameNo
}

func (a *Animation) update(frameNo int, m kinema.Matrix) bool {
	frameNo = a.clampFrame(frameNo)
	if a.evaluated && frameNo == a.curFrame && m == a.curMatrix {
		return false
	}
	a.curFrame = frameNo
	a.curMatrix = m
	a.evaluated = true

	if a.root == nil {
		a.drawables = a.drawables[:0]
		return true
	}
	a.root.update(frameNo, m, 1)
	a.drawables = a.root.renderList(a.drawables[:0])
	return true
}

// fitMatrix maps the composition's design box onto a w x h surface.
func (a *Animation) fitMatrix(w, h int) kinema.Matrix {
	cw, ch := float32(a.comp.Width), float32(a.comp.Height)
	if cw <= 0 || ch <= 0 {
		return kinema.Identity()
	}
	sx := float32(w) / cw
	sy := float32(h) / ch
	if !a.keepAspect {
		return kinema.Scale(sx, sy)
	}
	s := sx
	if sy < s {
		s = sy
	}
	tx := (float32(w) - cw*s) / 2
	ty := (float32(h) - ch*s) / 2
	return kinema.Translate(tx, ty).Multiply(kinema.Scale(s, s))
}

// RenderSync evaluates frameNo and rasterizes it onto surface, blocking
// until every span is ready and composited. The surface buffer is cleared
// to transparent first.
func (a *Animation) RenderSync(frameNo int, surface kinema.Surface) error {
	if !surface.Valid() {
		return ErrInvalidSurface
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	a.update(frameNo, a.fitMatrix(surface.Width(), surface.Height()))

	clip := image.Rect(0, 0, surface.Width(), surface.Height())
	for _, d := range a.drawables {
		d.Preprocess(clip)
	}

	clearSurface(surface)
	for _, d := range a.drawables {
		paintSpans(surface, d.Rle(), d.Brush(), d.Alpha())
	}
	kinema.Logger().Debug("frame rendered",
		"frame", a.curFrame, "drawables", len(a.drawables))
	return nil
}

// RenderTask is the handle of an asynchronous render. Wait blocks until
// the frame is composited and returns the surface it was written to.
type RenderTask struct {
	surface kinema.Surface
	done    chan error
	err     error
	waited  bool
}

// Wait blocks until the render finishes.
func (t *RenderTask) Wait() (kinema.Surface, error) {
	if !t.waited {
		t.err = <-t.done
		t.waited = true
	}
	return t.surface, t.err
}

// Render starts rendering frameNo onto surface without blocking the
// caller. Renders on one animation are serialized in dispatch order.
func (a *Animation) Render(frameNo int, surface kinema.Surface) *RenderTask {
	t := &RenderTask{surface: surface, done: make(chan error, 1)}
	go func() {
		t.done <- a.RenderSync(frameNo, surface)
	}()
	return t
}
