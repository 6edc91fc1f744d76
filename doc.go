// Package kinema is a keyframe-driven vector animation engine.
//
// # Overview
//
// kinema evaluates a declarative animation description (shape layers,
// animated transforms, gradients, strokes, repeaters) frame by frame and
// rasterizes the result into RLE coverage spans. Compositing of those spans
// onto a destination buffer is intentionally minimal; callers with their own
// compositor consume the spans directly.
//
// # Quick Start
//
//	import (
//	    "github.com/gokinema/kinema"
//	    "github.com/gokinema/kinema/render"
//	)
//
//	comp := loadComposition() // built by an upstream loader
//	anim := render.New(comp)
//
//	buf := make([]uint32, w*h)
//	surface := kinema.NewSurface(buf, w, h, w*4)
//	anim.RenderSync(frameNo, surface)
//
// # Architecture
//
// The engine is organized into:
//   - Root package: geometry and paint value types (Point, CubicBez,
//     Matrix, Path, Brush, Span)
//   - model: animated properties and the shape/layer tree
//   - render: per-frame evaluation and the concurrent span pipeline
//   - internal/raster: the default scanline span source
//   - internal/parallel: the shared worker pool
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Angles on the animation model are in degrees, matching the source
// description format; the geometry kernel documents its units per method.
package kinema
