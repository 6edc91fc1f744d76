package raster

import (
	"image"
	"testing"

	"github.com/gokinema/kinema"
)

func rectPath(x, y, w, h float32) *kinema.Path {
	var p kinema.Path
	p.Rectangle(x, y, w, h, 0, true)
	return &p
}

// coverageAt sums the coverage the span list assigns to one pixel.
func coverageAt(spans kinema.SpanList, x, y int) int {
	for _, sp := range spans {
		if int(sp.Y) == y && x >= int(sp.X) && x < int(sp.X)+int(sp.Len) {
			return int(sp.Coverage)
		}
	}
	return 0
}

func TestFill_Rect(t *testing.T) {
	clip := image.Rect(0, 0, 20, 20)
	spans := Fill(rectPath(2, 3, 10, 5), kinema.FillRuleWinding, clip)
	if spans.Empty() {
		t.Fatal("no spans produced")
	}

	// Interior pixels fully covered.
	for _, px := range [][2]int{{2, 3}, {6, 5}, {11, 7}} {
		if got := coverageAt(spans, px[0], px[1]); got != 255 {
			t.Errorf("coverage at %v = %d, want 255", px, got)
		}
	}
	// Outside pixels untouched.
	for _, px := range [][2]int{{1, 3}, {12, 5}, {6, 2}, {6, 8}} {
		if got := coverageAt(spans, px[0], px[1]); got != 0 {
			t.Errorf("coverage at %v = %d, want 0", px, got)
		}
	}

	minX, minY, maxX, maxY := spans.Bounds()
	if minX != 2 || minY != 3 || maxX != 12 || maxY != 8 {
		t.Errorf("Bounds = (%d,%d)-(%d,%d), want (2,3)-(12,8)", minX, minY, maxX, maxY)
	}
}

func TestFill_FractionalCoverage(t *testing.T) {
	// A rect covering half of each boundary pixel column.
	clip := image.Rect(0, 0, 10, 10)
	spans := Fill(rectPath(0.5, 0, 2, 2), kinema.FillRuleWinding, clip)

	left := coverageAt(spans, 0, 0)
	mid := coverageAt(spans, 1, 0)
	right := coverageAt(spans, 2, 0)
	if mid != 255 {
		t.Errorf("full interior column coverage = %d, want 255", mid)
	}
	if left < 100 || left > 155 {
		t.Errorf("half-covered left column = %d, want ~128", left)
	}
	if right < 100 || right > 155 {
		t.Errorf("half-covered right column = %d, want ~128", right)
	}
}

func TestFill_Clip(t *testing.T) {
	clip := image.Rect(0, 0, 5, 5)
	spans := Fill(rectPath(-10, -10, 100, 100), kinema.FillRuleWinding, clip)
	minX, minY, maxX, maxY := spans.Bounds()
	if minX < 0 || minY < 0 || maxX > 5 || maxY > 5 {
		t.Errorf("spans escape clip: (%d,%d)-(%d,%d)", minX, minY, maxX, maxY)
	}
	if got := coverageAt(spans, 2, 2); got != 255 {
		t.Errorf("coverage inside clip = %d, want 255", got)
	}
}

func TestFill_EvenOddVsWinding(t *testing.T) {
	// Two nested same-direction rects: winding fills the hole, even-odd
	// leaves it empty.
	var p kinema.Path
	p.Rectangle(0, 0, 20, 20, 0, true)
	p.Rectangle(5, 5, 10, 10, 0, true)
	clip := image.Rect(0, 0, 30, 30)

	winding := Fill(&p, kinema.FillRuleWinding, clip)
	evenOdd := Fill(&p, kinema.FillRuleEvenOdd, clip)

	if got := coverageAt(winding, 10, 10); got != 255 {
		t.Errorf("winding center coverage = %d, want 255", got)
	}
	if got := coverageAt(evenOdd, 10, 10); got != 0 {
		t.Errorf("even-odd center coverage = %d, want 0", got)
	}
	// The ring is filled under both rules.
	if got := coverageAt(evenOdd, 2, 2); got != 255 {
		t.Errorf("even-odd ring coverage = %d, want 255", got)
	}
}

func TestFill_EmptyInputs(t *testing.T) {
	clip := image.Rect(0, 0, 10, 10)
	if spans := Fill(&kinema.Path{}, kinema.FillRuleWinding, clip); !spans.Empty() {
		t.Error("empty path produced spans")
	}
	if spans := Fill(rectPath(0, 0, 5, 5), kinema.FillRuleWinding, image.Rectangle{}); !spans.Empty() {
		t.Error("empty clip produced spans")
	}
}

func TestStrokeOutline(t *testing.T) {
	line := &kinema.Path{}
	line.MoveTo(10, 10)
	line.LineTo(50, 10)

	style := kinema.DefaultStrokeStyle()
	style.Width = 4

	outline := StrokeOutline(line, style)
	if outline == nil || outline.Empty() {
		t.Fatal("stroke produced no outline")
	}
	b := outline.Bounds()
	// A 4-wide butt-capped stroke of a horizontal line spans y in [8,12].
	if b.Min.Y < 7 || b.Max.Y > 13 {
		t.Errorf("outline y extent [%v, %v], want about [8, 12]", b.Min.Y, b.Max.Y)
	}
	if b.Min.X < 9 || b.Max.X > 51 {
		t.Errorf("outline x extent [%v, %v], want about [10, 50]", b.Min.X, b.Max.X)
	}
}

func TestStrokeOutline_ZeroWidth(t *testing.T) {
	line := &kinema.Path{}
	line.MoveTo(0, 0)
	line.LineTo(10, 0)

	style := kinema.DefaultStrokeStyle()
	style.Width = 0
	if outline := StrokeOutline(line, style); outline != nil {
		t.Error("zero-width stroke should produce nil outline")
	}
	if outline := StrokeOutline(&kinema.Path{}, kinema.DefaultStrokeStyle()); outline != nil {
		t.Error("empty path should produce nil outline")
	}
}

func TestStroke_SolidLineCoverage(t *testing.T) {
	line := &kinema.Path{}
	line.MoveTo(5, 10)
	line.LineTo(45, 10)

	style := kinema.DefaultStrokeStyle()
	style.Width = 3

	clip := image.Rect(0, 0, 50, 20)
	spans := Stroke(line, style, clip)
	if spans.Empty() {
		t.Fatal("solid stroke produced no spans")
	}

	// A 3-wide stroke of y=10 fully covers the y=9 and y=10 pixel rows
	// along the line's interior.
	for _, px := range [][2]int{{10, 9}, {25, 10}, {40, 9}} {
		if got := coverageAt(spans, px[0], px[1]); got != 255 {
			t.Errorf("coverage at %v = %d, want 255", px, got)
		}
	}
	// Beyond the half width the stroke ends.
	for _, px := range [][2]int{{25, 6}, {25, 13}, {2, 10}, {48, 10}} {
		if got := coverageAt(spans, px[0], px[1]); got != 0 {
			t.Errorf("coverage at %v = %d, want 0", px, got)
		}
	}
}

func TestStroke_DashedProducesGaps(t *testing.T) {
	line := &kinema.Path{}
	line.MoveTo(0, 5)
	line.LineTo(100, 5)

	style := kinema.DefaultStrokeStyle()
	style.Width = 2
	style.Dash = []float32{10, 10}

	clip := image.Rect(0, 0, 100, 10)
	solid := Stroke(line, kinema.StrokeStyle{Width: 2, MiterLimit: 4}, clip)
	dashed := Stroke(line, style, clip)

	if dashed.Empty() {
		t.Fatal("dashed stroke produced no spans")
	}

	covered := func(spans kinema.SpanList) int {
		total := 0
		for _, sp := range spans {
			total += int(sp.Len) * int(sp.Coverage)
		}
		return total
	}
	if covered(dashed) >= covered(solid) {
		t.Errorf("dashed stroke covers %d, solid %d; dashes should reduce coverage",
			covered(dashed), covered(solid))
	}
}

func TestFlattenPath(t *testing.T) {
	polys := FlattenPath(rectPath(0, 0, 10, 10))
	if len(polys) != 1 {
		t.Fatalf("got %d polygons, want 1", len(polys))
	}
	if len(polys[0]) < 4 {
		t.Errorf("polygon has %d points, want >= 4", len(polys[0]))
	}

	// A curve flattens into many short segments.
	var circle kinema.Path
	circle.Ellipse(0, 0, 10, 10, true)
	polys = FlattenPath(&circle)
	if len(polys) != 1 || len(polys[0]) < 12 {
		t.Errorf("circle flattening too coarse: %d polys", len(polys))
	}
}
