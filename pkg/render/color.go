// pkg/render/color.go
package render

import "image/color"

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor adds amount to every channel, saturating at 255.
func LightenColor(c color.RGBA, amount int) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, int(c.R)+amount)),
		G: uint8(min(255, int(c.G)+amount)),
		B: uint8(min(255, int(c.B)+amount)),
		A: c.A,
	}
}

// MixColor blends a towards b; t = 0 gives a, t = 1 gives b.
func MixColor(a, b color.RGBA, t float64) color.RGBA {
	t = max(0, min(1, t))
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
