package scene

import (
	"fmt"
	"math"

	"github.com/achilleasa/lumen/types"
)

// Default sampling parameters used by NewCamera.
const (
	DefaultAA      = 16
	DefaultBranch  = 4
	DefaultBounces = 3
)

// The camera type converts pixel coordinates into world space rays and
// carries the sampling parameters for a render. It must not be modified
// while a render is in progress.
type Camera struct {
	// Eye position and normalized look direction.
	Eye types.Ray

	// World up vector.
	Up types.Vec3

	// Field of view in degrees, used to derive the focal distance.
	FOV float64

	// Frame dims.
	Width  uint32
	Height uint32

	// Samples per pixel.
	AA uint32

	// Per-bounce sample fan-out.
	Branch uint32

	// Max recursion depth.
	Bounces uint32
}

// Create a camera at from looking towards to.
func NewCamera(from, to, up types.Vec3, fov float64, width, height uint32) *Camera {
	return &Camera{
		Eye:     types.NewRay(from, to.Sub(from)),
		Up:      up,
		FOV:     fov,
		Width:   width,
		Height:  height,
		AA:      DefaultAA,
		Branch:  DefaultBranch,
		Bounces: DefaultBounces,
	}
}

// Get the frame aspect ratio.
func (c *Camera) Ratio() float64 {
	return float64(c.Width) / float64(c.Height)
}

// Generate the world space ray through pixel coordinates (x, y). Pixel rows
// grow downwards so y = 0 maps to the top of the frame.
func (c *Camera) MakeRay(x, y float64) types.Ray {
	ratio := c.Ratio()
	u := x/float64(c.Width)*ratio - ratio*0.5
	v := 0.5 - y/float64(c.Height)

	z := 1.0 / math.Tan(c.FOV*math.Pi/180.0/2.0)
	dir := types.XYZ(u, v, -z).Normalize()

	f := c.Eye.Direction
	right := f.Cross(c.Up).Normalize()
	trueUp := right.Cross(f)

	return types.Ray{
		Origin: c.Eye.Origin,
		Direction: right.Mul(dir[0]).
			Add(trueUp.Mul(dir[1])).
			Add(f.Neg().Mul(dir[2])),
	}
}

func (c *Camera) String() string {
	return fmt.Sprintf(
		"Camera eye: (%3.3f, %3.3f, %3.3f) dir: (%3.3f, %3.3f, %3.3f) fov: %3.1f frame: %dx%d aa: %d branch: %d bounces: %d",
		c.Eye.Origin[0], c.Eye.Origin[1], c.Eye.Origin[2],
		c.Eye.Direction[0], c.Eye.Direction[1], c.Eye.Direction[2],
		c.FOV, c.Width, c.Height, c.AA, c.Branch, c.Bounces,
	)
}
