package output

import (
	"image"
	"image/color"
	"math"

	"github.com/achilleasa/lumen/renderer"
	"github.com/achilleasa/lumen/types"
)

// Compression knee for the highlight roll-off.
const toneKnee = 1.0

// Map a linear radiance value to an 8-bit sRGB-ish color. Negative channels
// are clamped, each channel is compressed with 3c/(2k+c), energy that
// overflows one channel is pushed into the others and the result is gamma
// corrected with a square root.
func ToneMap(c types.Vec3) color.RGBA {
	for i := range c {
		switch {
		case !(c[i] > 0):
			c[i] = 0
		case math.IsInf(c[i], 1):
			c[i] = 3
		default:
			c[i] = 3 * c[i] / (2*toneKnee + c[i])
		}
	}

	// Channels are updated in order; later channels see the clamped
	// values of earlier ones.
	for i := 0; i < 3; i++ {
		j, k := (i+1)%3, (i+2)%3
		away := math.Max(c[j]-1, 0) + math.Max(c[k]-1, 0)
		room := math.Max(1-c[i], 0)
		c[i] = math.Min(c[i], 1) + math.Min(away, room)
	}

	return color.RGBA{
		R: toByte(c[0]),
		G: toByte(c[1]),
		B: toByte(c[2]),
		A: 255,
	}
}

func toByte(v float64) uint8 {
	v = math.Sqrt(math.Min(math.Max(v, 0), 1)) * 255.9
	return uint8(v)
}

// Convert a rendered frame into an RGBA image.
func ToImage(frame *renderer.Frame) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(frame.Width), int(frame.Height)))
	for y := uint32(0); y < frame.Height; y++ {
		for x := uint32(0); x < frame.Width; x++ {
			img.SetRGBA(int(x), int(y), ToneMap(frame.At(x, y)))
		}
	}
	return img
}
