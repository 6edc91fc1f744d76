package raster

import (
	"image"
	"sort"

	"github.com/chewxy/math32"

	"github.com/gokinema/kinema"
)

// subsamples is the vertical supersampling factor. Horizontal coverage is
// fractional at span ends, so only the vertical axis needs sampling.
const subsamples = 4

// Fill rasterizes a path filled with the given rule into coverage spans,
// clipped to clip. The spans are y-major and x-ascending.
func Fill(p *kinema.Path, rule kinema.FillRule, clip image.Rectangle) kinema.SpanList {
	return fillPolys(FlattenPath(p), rule, clip)
}

func fillPolys(polys [][]kinema.Point, rule kinema.FillRule, clip image.Rectangle) kinema.SpanList {
	edges := buildEdges(polys)
	if len(edges) == 0 || clip.Empty() {
		return nil
	}

	yMin := float32(math32.MaxFloat32)
	yMax := float32(-math32.MaxFloat32)
	for i := range edges {
		yMin = math32.Min(yMin, edges[i].y0)
		yMax = math32.Max(yMax, edges[i].y1)
	}

	y0 := int(math32.Floor(yMin))
	y1 := int(math32.Ceil(yMax))
	if y0 < clip.Min.Y {
		y0 = clip.Min.Y
	}
	if y1 > clip.Max.Y {
		y1 = clip.Max.Y
	}
	if y0 >= y1 {
		return nil
	}

	width := clip.Dx()
	row := make([]float32, width)
	var xs []crossing
	var spans kinema.SpanList

	for y := y0; y < y1; y++ {
		for i := range row {
			row[i] = 0
		}
		covered := false

		for s := 0; s < subsamples; s++ {
			sy := float32(y) + (float32(s)+0.5)/subsamples
			xs = crossingsAt(edges, sy, xs[:0])
			if len(xs) == 0 {
				continue
			}
			sort.Slice(xs, func(i, j int) bool { return xs[i].x < xs[j].x })

			if rule == kinema.FillRuleWinding {
				winding := 0
				var start float32
				for _, c := range xs {
					if winding == 0 {
						start = c.x
					}
					winding += c.dir
					if winding == 0 {
						covered = accumulate(row, clip, start, c.x) || covered
					}
				}
			} else {
				for i := 0; i+1 < len(xs); i += 2 {
					covered = accumulate(row, clip, xs[i].x, xs[i+1].x) || covered
				}
			}
		}

		if covered {
			spans = emitRow(spans, row, clip.Min.X, y)
		}
	}
	return spans
}

// accumulate adds sub-scanline coverage for the interval [x0, x1) to the
// row buffer, with fractional weight at partially covered end pixels.
// Returns true if any coverage landed inside the clip.
func accumulate(row []float32, clip image.Rectangle, x0, x1 float32) bool {
	const weight = 1.0 / subsamples

	if x0 < float32(clip.Min.X) {
		x0 = float32(clip.Min.X)
	}
	if x1 > float32(clip.Max.X) {
		x1 = float32(clip.Max.X)
	}
	if x0 >= x1 {
		return false
	}

	// Shift to row-local coordinates.
	x0 -= float32(clip.Min.X)
	x1 -= float32(clip.Min.X)

	i0 := int(math32.Floor(x0))
	i1 := int(math32.Floor(x1))
	if i1 >= len(row) {
		i1 = len(row) - 1
		if x1 > float32(i1+1) {
			x1 = float32(i1 + 1)
		}
	}

	if i0 == i1 {
		row[i0] += (x1 - x0) * weight
		return true
	}

	row[i0] += (float32(i0+1) - x0) * weight
	for i := i0 + 1; i < i1; i++ {
		row[i] += weight
	}
	row[i1] += (x1 - float32(i1)) * weight
	return true
}

// emitRow converts one accumulated coverage row into spans, merging
// adjacent pixels with equal coverage into single runs.
func emitRow(spans kinema.SpanList, row []float32, xOff, y int) kinema.SpanList {
	runStart := -1
	var runCov uint8

	flush := func(end int) {
		if runStart >= 0 {
			spans = append(spans, kinema.Span{
				X:        int16(xOff + runStart),
				Y:        int16(y),
				Len:      uint16(end - runStart),
				Coverage: runCov,
			})
			runStart = -1
		}
	}

	for i, c := range row {
		// Quantize on a 0-256 scale and fold the top value into 255 so
		// full coverage stays representable in a byte.
		v := uint32(c*256 + 0.5)
		if v > 255 {
			v = 255
		}
		cov := uint8(v)

		if cov == 0 {
			flush(i)
			continue
		}
		if runStart >= 0 && cov == runCov {
			continue
		}
		flush(i)
		runStart = i
		runCov = cov
	}
	flush(len(row))
	return spans
}
