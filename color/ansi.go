package color

import "math"

// ToAnsi16 quantizes the color to one of the 16 standard ANSI terminal
// codes (30-37, 90-97), following the spec's reimplementation-reference
// formula: v = round(max(r,g,b)*2); v=0 is black (30); otherwise
// code = 30 + (b<<2 | g<<1 | r) on rounded channels, +60 when v=2 (bright).
func (c Color[T]) ToAnsi16() int {
	rgb := c.ToRGB()
	r, g, b := float64(rgb.R)/255, float64(rgb.G)/255, float64(rgb.B)/255
	maxc := math.Max(r, math.Max(g, b))
	v := int(math.Round(maxc * 2))
	if v == 0 {
		return 30
	}
	ri := int(math.Round(r))
	gi := int(math.Round(g))
	bi := int(math.Round(b))
	code := 30 + (bi<<2 | gi<<1 | ri)
	if v == 2 {
		code += 60
	}
	return code
}

// ToAnsi256 quantizes the color to one of the 256 xterm palette indices:
// grayscale ramp (232-255, plus 16/231 endpoints) when r=g=b, otherwise the
// 6x6x6 color cube (16-231).
func (c Color[T]) ToAnsi256() int {
	rgb := c.ToRGB()
	r, g, b := rgb.R, rgb.G, rgb.B
	if r == g && g == b {
		if r < 8 {
			return 16
		}
		if r > 248 {
			return 231
		}
		return 232 + int(math.Round(float64(r-8)/247*24))
	}
	qr := int(math.Round(float64(r) / 51))
	qg := int(math.Round(float64(g) / 51))
	qb := int(math.Round(float64(b) / 51))
	return 16 + 36*qr + 6*qg + qb
}
