// Package texture generates the film-grain overlay used behind every page.
package texture

import (
	"image"
	"image/color"
	"math"
	"math/rand/v2"
)

// GrainOptions controls the noise. The defaults give a subtle grain on the cream background.
type GrainOptions struct {
	Width   int
	Height  int
	Mean    float64 // Grey level the noise is centred on
	StdDev  float64 // Spread of the grey levels
	Opacity float64 // 0..1, applied uniformly as the alpha channel
}

// DefaultGrain is the texture shipped as public/grain.png.
var DefaultGrain = GrainOptions{Width: 1024, Height: 1024, Mean: 127, StdDev: 20, Opacity: 0.25}

// Grain returns a grey RGBA noise image drawn from a normal distribution.
// The same rng seed always produces the same image.
func Grain(opts GrainOptions, rng *rand.Rand) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	alpha := uint8(math.Round(255 * clamp(opts.Opacity, 0, 1)))
	for y := 0; y < opts.Height; y++ {
		for x := 0; x < opts.Width; x++ {
			v := uint8(clamp(math.Round(opts.Mean+rng.NormFloat64()*opts.StdDev), 0, 255))
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: alpha})
		}
	}
	return img
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
