package render

import (
	"image"

	"github.com/gokinema/kinema"
	"github.com/gokinema/kinema/internal/raster"
)

// SpanSource turns paths into coverage spans. The default implementation
// is the built-in scanline rasterizer; callers with their own rasterizer
// can inject one with WithSpanSource.
type SpanSource interface {
	// FillSpans rasterizes the interior of p under the given fill rule,
	// clipped to clip.
	FillSpans(p *kinema.Path, rule kinema.FillRule, clip image.Rectangle) kinema.SpanList

	// StrokeOutline converts p into its stroke outline, applying caps,
	// joins, miter limit and dashing. A nil result means the stroke
	// produces no geometry. The outline is an opaque intermediate: only
	// StrokeSpans of the same source consumes it.
	StrokeOutline(p *kinema.Path, style kinema.StrokeStyle) *kinema.Path

	// StrokeSpans rasterizes an outline previously returned by
	// StrokeOutline, clipped to clip.
	StrokeSpans(outline *kinema.Path, clip image.Rectangle) kinema.SpanList
}

type rasterSource struct{}

func (rasterSource) FillSpans(p *kinema.Path, rule kinema.FillRule, clip image.Rectangle) kinema.SpanList {
	return raster.Fill(p, rule, clip)
}

func (rasterSource) StrokeOutline(p *kinema.Path, style kinema.StrokeStyle) *kinema.Path {
	return raster.StrokeOutline(p, style)
}

func (rasterSource) StrokeSpans(outline *kinema.Path, clip image.Rectangle) kinema.SpanList {
	return raster.StrokeSpans(outline, clip)
}
