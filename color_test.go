package kinema

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestRGBA_Premultiply(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want uint32
	}{
		{
			name: "opaque white",
			c:    RGBA{R: 1, G: 1, B: 1, A: 1},
			want: 0xffffffff,
		},
		{
			name: "opaque red",
			c:    RGBA{R: 1, A: 1},
			want: 0xffff0000,
		},
		{
			name: "transparent",
			c:    RGBA{},
			want: 0,
		},
		{
			name: "half alpha white premultiplies channels",
			c:    RGBA{R: 1, G: 1, B: 1, A: 0.5},
			want: 0x80808080,
		},
		{
			name: "out of range clamps",
			c:    RGBA{R: 2, G: -1, B: 0, A: 1},
			want: 0xffff0000,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Premultiply(); got != tt.want {
				t.Errorf("Premultiply() = %#08x, want %#08x", got, tt.want)
			}
		})
	}
}

func TestRGBA_ApplyOpacity(t *testing.T) {
	c := RGBA{R: 0.5, G: 0.25, B: 1, A: 0.8}
	got := c.ApplyOpacity(0.5)
	if got.R != 0.5 || got.G != 0.25 || got.B != 1 {
		t.Errorf("ApplyOpacity changed color channels: %+v", got)
	}
	if math32.Abs(got.A-0.4) > geomTolerance {
		t.Errorf("A = %v, want 0.4", got.A)
	}
}

func TestRGBA_Lerp(t *testing.T) {
	a := RGB(0, 0, 0)
	b := RGB(1, 1, 1)
	mid := a.Lerp(b, 0.5)
	for _, ch := range []float32{mid.R, mid.G, mid.B} {
		if math32.Abs(ch-0.5) > geomTolerance {
			t.Errorf("Lerp midpoint channel = %v, want 0.5", ch)
		}
	}
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %+v, want start", got)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %+v, want end", got)
	}
}
