package scene

import (
	"math"

	"github.com/achilleasa/lumen/types"
)

// A resolved ray/surface intersection.
type Hit struct {
	Hit      bool
	Distance float64

	// Unit length, pointing away from the surface.
	Normal types.Vec3

	Material Material
}

// Get the sentinel record for a ray that escapes the scene.
func NoHit(bg Material) Hit {
	return Hit{
		Distance: math.Inf(1),
		Material: bg,
	}
}
