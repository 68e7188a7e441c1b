package renderer

import "github.com/achilleasa/lumen/types"

// A rendered frame of linear radiance values stored in row-major order,
// top row first.
type Frame struct {
	Width  uint32
	Height uint32
	Pixels []types.Vec3
}

// Get the radiance at pixel (x, y).
func (f *Frame) At(x, y uint32) types.Vec3 {
	return f.Pixels[y*f.Width+x]
}
