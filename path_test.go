package kinema

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestPath_Build(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.CubicTo(15, 0, 20, 5, 20, 10)
	p.Close()

	els := p.Elements()
	if len(els) != 4 {
		t.Fatalf("got %d elements, want 4", len(els))
	}
	if _, ok := els[0].(MoveTo); !ok {
		t.Errorf("element 0 is %T, want MoveTo", els[0])
	}
	if _, ok := els[1].(LineTo); !ok {
		t.Errorf("element 1 is %T, want LineTo", els[1])
	}
	if _, ok := els[2].(CubicTo); !ok {
		t.Errorf("element 2 is %T, want CubicTo", els[2])
	}
	if _, ok := els[3].(Close); !ok {
		t.Errorf("element 3 is %T, want Close", els[3])
	}

	// Close returns the current point to the subpath start.
	if got := p.CurrentPoint(); got != Pt(0, 0) {
		t.Errorf("CurrentPoint after Close = %v, want (0,0)", got)
	}
}

func TestPath_Reset(t *testing.T) {
	var p Path
	p.MoveTo(1, 1)
	p.LineTo(2, 2)
	p.Reset()
	if !p.Empty() {
		t.Error("path not empty after Reset")
	}
}

func TestPath_Transform(t *testing.T) {
	var src Path
	src.MoveTo(0, 0)
	src.LineTo(10, 0)

	var dst Path
	dst.Transform(&src, Translate(5, 5))

	els := dst.Elements()
	if len(els) != 2 {
		t.Fatalf("got %d elements, want 2", len(els))
	}
	if mv := els[0].(MoveTo); mv.Point != Pt(5, 5) {
		t.Errorf("MoveTo at %v, want (5,5)", mv.Point)
	}
	if ln := els[1].(LineTo); ln.Point != Pt(15, 5) {
		t.Errorf("LineTo at %v, want (15,5)", ln.Point)
	}

	// Transforming again replaces, not appends.
	dst.Transform(&src, Scale(2, 2))
	if len(dst.Elements()) != 2 {
		t.Errorf("Transform should replace dst contents")
	}
}

func TestPath_Append(t *testing.T) {
	var a, b Path
	a.MoveTo(0, 0)
	a.LineTo(1, 0)
	b.MoveTo(5, 5)
	b.LineTo(6, 5)

	a.Append(&b)
	if got := len(a.Elements()); got != 4 {
		t.Fatalf("got %d elements, want 4", got)
	}
}

func TestPath_Bounds(t *testing.T) {
	var p Path
	p.MoveTo(1, 2)
	p.LineTo(11, 2)
	p.LineTo(11, 22)
	p.Close()

	b := p.Bounds()
	if b.Min != Pt(1, 2) || b.Max != Pt(11, 22) {
		t.Errorf("Bounds = %+v", b)
	}
}

func TestPath_Rectangle(t *testing.T) {
	tests := []struct {
		name      string
		roundness float32
	}{
		{name: "sharp corners", roundness: 0},
		{name: "rounded corners", roundness: 5},
		{name: "roundness clamps to half extent", roundness: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Path
			p.Rectangle(10, 20, 30, 40, tt.roundness, true)
			if p.Empty() {
				t.Fatal("rectangle produced empty path")
			}
			b := p.Bounds()
			if math32.Abs(b.Min.X-10) > geomTolerance || math32.Abs(b.Min.Y-20) > geomTolerance {
				t.Errorf("Bounds.Min = %v", b.Min)
			}
			if math32.Abs(b.Max.X-40) > geomTolerance || math32.Abs(b.Max.Y-60) > geomTolerance {
				t.Errorf("Bounds.Max = %v", b.Max)
			}
		})
	}
}

func TestPath_Ellipse(t *testing.T) {
	var p Path
	p.Ellipse(50, 50, 20, 10, true)
	b := p.Bounds()
	if math32.Abs(b.Min.X-30) > geomTolerance || math32.Abs(b.Max.X-70) > geomTolerance {
		t.Errorf("x extent [%v, %v], want [30, 70]", b.Min.X, b.Max.X)
	}
	if math32.Abs(b.Min.Y-40) > geomTolerance || math32.Abs(b.Max.Y-60) > geomTolerance {
		t.Errorf("y extent [%v, %v], want [40, 60]", b.Min.Y, b.Max.Y)
	}
}

func TestPath_EllipseWindingDirection(t *testing.T) {
	var cw, ccw Path
	cw.Ellipse(0, 0, 10, 10, true)
	ccw.Ellipse(0, 0, 10, 10, false)

	area := func(p *Path) float32 {
		// Signed area of the control polygon gives the orientation.
		var sum float32
		var prev, start Point
		for _, e := range p.Elements() {
			switch e := e.(type) {
			case MoveTo:
				prev, start = e.Point, e.Point
			case LineTo:
				sum += prev.Cross(e.Point)
				prev = e.Point
			case CubicTo:
				sum += prev.Cross(e.Control1) + e.Control1.Cross(e.Control2) + e.Control2.Cross(e.Point)
				prev = e.Point
			case Close:
				sum += prev.Cross(start)
				prev = start
			}
		}
		return sum
	}

	if a, b := area(&cw), area(&ccw); (a > 0) == (b > 0) {
		t.Errorf("clockwise and counterclockwise ellipses have same orientation: %v, %v", a, b)
	}
}

func TestPath_Clone(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	p.LineTo(5, 5)

	c := p.Clone()
	c.LineTo(10, 10)
	if len(p.Elements()) != 2 {
		t.Error("mutating the clone changed the original")
	}
}
