package kinema

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1], not premultiplied.
type RGBA struct {
	R, G, B, A float32
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float32) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// ApplyOpacity returns the color with its alpha scaled by opacity.
func (c RGBA) ApplyOpacity(opacity float32) RGBA {
	c.A *= opacity
	return c
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float32) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Premultiply packs the color into ARGB32-premultiplied form, the surface
// pixel format.
func (c RGBA) Premultiply() uint32 {
	a := clamp01(c.A)
	r := uint32(clamp01(c.R)*a*255 + 0.5)
	g := uint32(clamp01(c.G)*a*255 + 0.5)
	b := uint32(clamp01(c.B)*a*255 + 0.5)
	ai := uint32(a*255 + 0.5)
	return ai<<24 | r<<16 | g<<8 | b
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
