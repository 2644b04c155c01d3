// Package interp provides pixel sampling kernels for image scaling.
package interp

import "math"

// Mode selects how source pixels are sampled.
type Mode uint8

const (
	// Nearest selects the closest pixel (no interpolation). Fast but
	// blocky when scaling.
	Nearest Mode = iota

	// Bilinear interpolates between 4 neighboring pixels.
	Bilinear

	// Bicubic interpolates a 4x4 neighborhood with Catmull-Rom
	// weights. Highest quality, slowest.
	Bicubic
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Nearest:
		return "nearest"
	case Bilinear:
		return "bilinear"
	case Bicubic:
		return "bicubic"
	default:
		return "unknown"
	}
}

// Sample samples an RGBA buffer (4 bytes per pixel, w*h pixels) at
// continuous pixel coordinates (fx, fy) using the given mode.
// Out-of-bounds coordinates are clamped to the edge.
func Sample(data []uint8, w, h int, fx, fy float64, mode Mode) (r, g, b, a uint8) {
	switch mode {
	case Bilinear:
		return sampleBilinear(data, w, h, fx, fy)
	case Bicubic:
		return sampleBicubic(data, w, h, fx, fy)
	default:
		return sampleNearest(data, w, h, fx, fy)
	}
}

func pixel(data []uint8, w, h, x, y int) (r, g, b, a float64) {
	x = clamp(x, 0, w-1)
	y = clamp(y, 0, h-1)
	i := (y*w + x) * 4
	return float64(data[i]), float64(data[i+1]), float64(data[i+2]), float64(data[i+3])
}

func sampleNearest(data []uint8, w, h int, fx, fy float64) (r, g, b, a uint8) {
	x := clamp(int(math.Floor(fx)), 0, w-1)
	y := clamp(int(math.Floor(fy)), 0, h-1)
	i := (y*w + x) * 4
	return data[i], data[i+1], data[i+2], data[i+3]
}

func sampleBilinear(data []uint8, w, h int, fx, fy float64) (r, g, b, a uint8) {
	fx -= 0.5
	fy -= 0.5

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	r00, g00, b00, a00 := pixel(data, w, h, x0, y0)
	r10, g10, b10, a10 := pixel(data, w, h, x0+1, y0)
	r01, g01, b01, a01 := pixel(data, w, h, x0, y0+1)
	r11, g11, b11, a11 := pixel(data, w, h, x0+1, y0+1)

	r = uint8(lerp2D(r00, r10, r01, r11, tx, ty))
	g = uint8(lerp2D(g00, g10, g01, g11, tx, ty))
	b = uint8(lerp2D(b00, b10, b01, b11, tx, ty))
	a = uint8(lerp2D(a00, a10, a01, a11, tx, ty))
	return r, g, b, a
}

func sampleBicubic(data []uint8, w, h int, fx, fy float64) (r, g, b, a uint8) {
	fx -= 0.5
	fy -= 0.5

	x := int(math.Floor(fx))
	y := int(math.Floor(fy))
	tx := fx - float64(x)
	ty := fy - float64(y)

	var rv, gv, bv, av [4][4]float64
	for dy := -1; dy <= 2; dy++ {
		for dx := -1; dx <= 2; dx++ {
			pr, pg, pb, pa := pixel(data, w, h, x+dx, y+dy)
			rv[dy+1][dx+1] = pr
			gv[dy+1][dx+1] = pg
			bv[dy+1][dx+1] = pb
			av[dy+1][dx+1] = pa
		}
	}

	r = uint8(clampFloat(bicubic(rv, tx, ty), 0, 255))
	g = uint8(clampFloat(bicubic(gv, tx, ty), 0, 255))
	b = uint8(clampFloat(bicubic(bv, tx, ty), 0, 255))
	a = uint8(clampFloat(bicubic(av, tx, ty), 0, 255))
	return r, g, b, a
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

func lerp2D(v00, v10, v01, v11, tx, ty float64) float64 {
	v0 := lerp(v00, v10, tx)
	v1 := lerp(v01, v11, tx)
	return lerp(v0, v1, ty)
}

// cubicWeight computes the Catmull-Rom cubic weight for distance t.
// Mitchell-Netravali with B=0, C=0.5.
func cubicWeight(t float64) float64 {
	absT := math.Abs(t)
	if absT < 1 {
		return 1.5*absT*absT*absT - 2.5*absT*absT + 1.0
	}
	if absT < 2 {
		return -0.5*absT*absT*absT + 2.5*absT*absT - 4.0*absT + 2.0
	}
	return 0
}

// bicubic interpolates a 4x4 sample grid at fractional offsets (tx, ty).
func bicubic(v [4][4]float64, tx, ty float64) float64 {
	var col [4]float64
	for i := 0; i < 4; i++ {
		col[i] = v[i][0]*cubicWeight(tx+1) +
			v[i][1]*cubicWeight(tx) +
			v[i][2]*cubicWeight(tx-1) +
			v[i][3]*cubicWeight(tx-2)
	}
	return col[0]*cubicWeight(ty+1) +
		col[1]*cubicWeight(ty) +
		col[2]*cubicWeight(ty-1) +
		col[3]*cubicWeight(ty-2)
}
