package galaxia

import (
	"image/color"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGB color with channels in [0, 1]. Galaxy point clouds
// carry no per-point alpha; transparency is applied per cloud at render time.
type Color struct {
	R, G, B float64
}

// ColorWhite is the default point tint (no color modification).
var ColorWhite = Color{1, 1, 1}

// WhitePixel is a 1x1 white image used to rasterize point quads.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.toRGBA())
}

// Lerp linearly interpolates between c and other by t in RGB space.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: lerp(c.R, other.R, t),
		G: lerp(c.G, other.G, t),
		B: lerp(c.B, other.B, t),
	}
}

// Scale multiplies all three channels by f and clamps the result to [0, 1].
func (c Color) Scale(f float64) Color {
	return Color{c.R * f, c.G * f, c.B * f}.Clamped()
}

// Clamped returns the color with every channel clamped to [0, 1].
func (c Color) Clamped() Color {
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

// JitterHSL perturbs the color's hue by up to ±hue degrees and its lightness
// by up to ±light, drawing from rng. The result is clamped to valid RGB.
func (c Color) JitterHSL(rng *rand.Rand, hue, light float64) Color {
	h, s, l := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsl()
	h += (rng.Float64()*2 - 1) * hue
	if h < 0 {
		h += 360
	} else if h >= 360 {
		h -= 360
	}
	l = clamp01(l + (rng.Float64()*2-1)*light)
	out := colorful.Hsl(h, s, l).Clamped()
	return Color{out.R, out.G, out.B}
}

// Range is a general-purpose min/max range sampled by the generation pipeline.
type Range struct {
	Min, Max float64
}

// Random returns a value drawn uniformly from [Min, Max] using rng.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// BlendMode selects a compositing operation for a cloud primitive.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                     // additive / lighter (overlapping stars brighten)
)

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendAdd:
		return ebiten.BlendLighter
	default:
		return ebiten.BlendSourceOver
	}
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// clamp01 clamps v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// clamp clamps v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: 255,
	}
}
