package raster

import (
	"image"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/gokinema/kinema"
)

// The stroke geometry (offset curves, caps, joins, miter limiting and dash
// segmentation) comes from the rasterx stroking engine. Its Dasher expects
// a Scanner to scan-convert the outline it generates; outlineScanner
// implements that interface but captures the outline as a path instead,
// which the local scanline filler then turns into spans. rasterx works in
// 26.6 fixed point, hence the conversions at the boundary.

// outlineScanner records the stroke outline emitted by the rasterx
// stroker. The stroker emits the boundary as fences of directed edges:
// open chains of Start/Line calls whose union winds around the stroked
// region, with no per-chain closure. The chains are recorded verbatim as
// open subpaths; StrokeSpans scan-converts their edges directly, so the
// chains must never be closed (a closing edge would cancel its chain).
// The remaining Scanner methods are scan-conversion concerns and are
// no-ops here.
type outlineScanner struct {
	out *kinema.Path
}

func (s *outlineScanner) Start(a fixed.Point26_6) {
	s.out.MoveTo(fromFixed(a.X), fromFixed(a.Y))
}

func (s *outlineScanner) Line(b fixed.Point26_6) {
	s.out.LineTo(fromFixed(b.X), fromFixed(b.Y))
}

func (s *outlineScanner) Draw()                              {}
func (s *outlineScanner) GetPathExtent() fixed.Rectangle26_6 { return fixed.Rectangle26_6{} }
func (s *outlineScanner) SetBounds(w, h int)                 {}
func (s *outlineScanner) SetColor(clr interface{})           {}
func (s *outlineScanner) SetWinding(useNonZeroWinding bool)  {}
func (s *outlineScanner) Clear()                             {}
func (s *outlineScanner) SetClip(rect image.Rectangle)       {}

func fromFixed(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

func toFixed(p kinema.Point) fixed.Point26_6 {
	return rasterx.ToFixedP(float64(p.X), float64(p.Y))
}

var capFuncs = [...]rasterx.CapFunc{
	kinema.CapButt:   rasterx.ButtCap,
	kinema.CapRound:  rasterx.RoundCap,
	kinema.CapSquare: rasterx.SquareCap,
}

var joinModes = [...]rasterx.JoinMode{
	kinema.JoinMiter: rasterx.Miter,
	kinema.JoinRound: rasterx.Round,
	kinema.JoinBevel: rasterx.Bevel,
}

// StrokeOutline expands a path into its stroked outline per the stroke
// style, including dashing. The result is a set of open edge chains, not
// closed contours: feed it to StrokeSpans, which scan-converts the edges
// under the winding rule without implicit subpath closure. Returns nil
// for a zero-width stroke or an empty path.
func StrokeOutline(p *kinema.Path, style kinema.StrokeStyle) *kinema.Path {
	if style.Width <= 0 || p.Empty() {
		return nil
	}

	sc := &outlineScanner{out: kinema.NewPath()}
	dasher := rasterx.NewDasher(1, 1, sc)

	gap := rasterx.FlatGap
	if style.Cap == kinema.CapRound {
		gap = rasterx.RoundGap
	}
	var dashes []float64
	for _, d := range style.Dash {
		dashes = append(dashes, float64(d))
	}
	dasher.SetStroke(
		fixed.Int26_6(style.Width*64),
		fixed.Int26_6(style.MiterLimit*64),
		capFuncs[style.Cap], capFuncs[style.Cap], gap, joinModes[style.Join],
		dashes, float64(style.DashOffset),
	)

	inContour := false
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case kinema.MoveTo:
			if inContour {
				dasher.Stop(false)
			}
			dasher.Start(toFixed(e.Point))
			inContour = true
		case kinema.LineTo:
			dasher.Line(toFixed(e.Point))
		case kinema.CubicTo:
			dasher.CubeBezier(toFixed(e.Control1), toFixed(e.Control2), toFixed(e.Point))
		case kinema.Close:
			dasher.Stop(true)
			inContour = false
		}
	}
	if inContour {
		dasher.Stop(false)
	}

	if sc.out.Empty() {
		return nil
	}
	return sc.out
}

// StrokeSpans rasterizes a stroke outline produced by StrokeOutline into
// coverage spans clipped to clip. The outline's subpaths are open edge
// chains, so they scan-convert without the implicit closure regular fills
// apply.
func StrokeSpans(outline *kinema.Path, clip image.Rectangle) kinema.SpanList {
	if outline == nil {
		return nil
	}
	return fillPolys(flattenChains(outline), kinema.FillRuleWinding, clip)
}

// Stroke rasterizes a stroked path into coverage spans clipped to clip.
func Stroke(p *kinema.Path, style kinema.StrokeStyle, clip image.Rectangle) kinema.SpanList {
	return StrokeSpans(StrokeOutline(p, style), clip)
}
