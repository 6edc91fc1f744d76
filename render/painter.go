package render

import "github.com/gokinema/kinema"

// The default compositor: source-over blending of coverage spans onto an
// ARGB32 premultiplied surface. Blend modes, masks and mattes stay with
// the caller's compositor; this covers the plain case.

func clearSurface(s kinema.Surface) {
	for y := 0; y < s.Height(); y++ {
		row := s.Row(y)
		for x := range row {
			row[x] = 0
		}
	}
}

func paintSpans(s kinema.Surface, spans kinema.SpanList, brush kinema.Brush, alpha float32) {
	if len(spans) == 0 || brush == nil || alpha <= 0 {
		return
	}
	if alpha > 1 {
		alpha = 1
	}
	solid, isSolid := brush.(kinema.SolidBrush)

	for _, sp := range spans {
		y := int(sp.Y)
		if y < 0 || y >= s.Height() {
			continue
		}
		row := s.Row(y)
		factor := alpha * float32(sp.Coverage) / 255

		if isSolid {
			src := solid.ColorAt(0, 0)
			for x := int(sp.X); x < int(sp.X)+int(sp.Len); x++ {
				if x >= 0 && x < len(row) {
					row[x] = blend(row[x], src, factor)
				}
			}
			continue
		}
		for x := int(sp.X); x < int(sp.X)+int(sp.Len); x++ {
			if x >= 0 && x < len(row) {
				row[x] = blend(row[x], brush.ColorAt(float32(x)+0.5, float32(y)+0.5), factor)
			}
		}
	}
}

// blend composites a premultiplied source color over a premultiplied
// ARGB32 pixel at the given coverage factor.
func blend(dst uint32, src kinema.RGBA, factor float32) uint32 {
	sa := src.A * factor
	sr := src.R * factor
	sg := src.G * factor
	sb := src.B * factor

	inv := 1 - sa
	da := float32((dst>>24)&0xff) / 255
	dr := float32((dst>>16)&0xff) / 255
	dg := float32((dst>>8)&0xff) / 255
	db := float32(dst&0xff) / 255

	oa := sa + da*inv
	or := sr + dr*inv
	og := sg + dg*inv
	ob := sb + db*inv

	return channel(oa)<<24 | channel(or)<<16 | channel(og)<<8 | channel(ob)
}

func channel(v float32) uint32 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint32(v*255 + 0.5)
}
