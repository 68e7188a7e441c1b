package tracer

import (
	"time"

	"github.com/achilleasa/lumen/scene"
	"github.com/achilleasa/lumen/types"
)

// A unit of work that is processed by a tracer.
type BlockRequest struct {
	// Block start row and height.
	BlockY uint32
	BlockH uint32

	// The scene and camera to render. Both are shared between tracers and
	// must not be modified while the request is in flight.
	Scene  *scene.Scene
	Camera *scene.Camera

	// A random seed value for the tracer's random number generator.
	Seed int64

	// A channel to signal on block completion.
	DoneChan chan<- BlockResult

	// A channel to signal if an error occurs.
	ErrChan chan<- error

	// An optional channel receiving the number of rows completed since the
	// last report. Sends never block rendering.
	ProgressChan chan<- uint32
}

// The rendered output of a block request.
type BlockResult struct {
	// The tracer that rendered the block.
	TracerId string

	// Block start row and height.
	BlockY uint32
	BlockH uint32

	// Linear radiance values for the block rows, top to bottom.
	Pixels []types.Vec3
}

// Tracer statistics.
type Stats struct {
	// The rendered block start row and height
	BlockY uint32
	BlockH uint32

	// The time for rendering this block.
	RenderTime time.Duration
}

type Tracer interface {
	// Get tracer id.
	Id() string

	// Start the tracer worker.
	Init() error

	// Shutdown and cleanup tracer.
	Close()

	// Enqueue block request.
	Enqueue(BlockRequest)

	// Retrieve last frame statistics.
	Stats() *Stats
}
