package renderer

import (
	"fmt"
	"runtime"
	"time"

	"github.com/achilleasa/lumen/log"
	"github.com/achilleasa/lumen/scene"
	"github.com/achilleasa/lumen/tracer"
	"github.com/achilleasa/lumen/tracer/cpu"
	"github.com/achilleasa/lumen/types"
)

type Renderer interface {
	// Render frame.
	Render() (*Frame, error)

	// Shutdown renderer and any attached tracer.
	Close()

	// Get render statistics.
	Stats() FrameStats
}

// The default renderer splits the frame into row bands, renders each band
// on its own tracer and joins the bands in row order.
type defaultRenderer struct {
	logger log.Logger

	scene  *scene.Scene
	camera *scene.Camera

	scheduler tracer.BlockScheduler
	tracers   []tracer.Tracer

	options Options
	stats   FrameStats
}

// Create a new renderer backed by cpu tracers.
func NewDefault(sc *scene.Scene, camera *scene.Camera, scheduler tracer.BlockScheduler, opts Options) (Renderer, error) {
	if camera == nil {
		return nil, ErrCameraNotDefined
	}

	numTracers := opts.Workers
	if numTracers <= 0 {
		numTracers = runtime.NumCPU()
	}
	if camera.Height > 0 && uint32(numTracers) > camera.Height {
		numTracers = int(camera.Height)
	}

	tracers := make([]tracer.Tracer, numTracers)
	for i := range tracers {
		tracers[i] = cpu.NewTracer(fmt.Sprintf("cpu-%02d", i), opts.Sampler)
	}

	return NewWithTracers(sc, camera, scheduler, tracers, opts)
}

// Create a new renderer using the supplied tracers. The renderer takes
// ownership of the tracers and initializes them.
func NewWithTracers(sc *scene.Scene, camera *scene.Camera, scheduler tracer.BlockScheduler, tracers []tracer.Tracer, opts Options) (Renderer, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if camera == nil {
		return nil, ErrCameraNotDefined
	}
	if camera.Width == 0 || camera.Height == 0 {
		return nil, ErrEmptyFrame
	}
	if len(tracers) == 0 {
		return nil, ErrNoTracers
	}

	// Block results are matched to bands by tracer id.
	seen := make(map[string]struct{}, len(tracers))
	for _, tr := range tracers {
		if _, dup := seen[tr.Id()]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTracer, tr.Id())
		}
		seen[tr.Id()] = struct{}{}
	}

	r := &defaultRenderer{
		logger:    log.New("renderer"),
		scene:     sc,
		camera:    camera,
		scheduler: scheduler,
		tracers:   tracers,
		options:   opts,
	}

	for _, tr := range tracers {
		if err := tr.Init(); err != nil {
			r.Close()
			return nil, err
		}
	}
	r.logger.Infof("attached %d tracers", len(tracers))

	return r, nil
}

// Shutdown renderer and any attached tracer.
func (r *defaultRenderer) Close() {
	for _, tr := range r.tracers {
		tr.Close()
	}
}

// Get render statistics.
func (r *defaultRenderer) Stats() FrameStats {
	return r.stats
}

// Render frame. Blocks until every tracer has finished its band. If any
// tracer fails the whole frame is discarded.
func (r *defaultRenderer) Render() (*Frame, error) {
	start := time.Now()
	frameW, frameH := r.camera.Width, r.camera.Height

	bands := r.scheduler.Schedule(len(r.tracers), frameH)
	if len(bands) != len(r.tracers) {
		return nil, fmt.Errorf("renderer: scheduler returned %d bands for %d tracers", len(bands), len(r.tracers))
	}

	doneChan := make(chan tracer.BlockResult, len(r.tracers))
	errChan := make(chan error, len(r.tracers))

	var progressChan chan uint32
	progressDone := make(chan struct{})
	if r.options.ProgressStep > 0 {
		progressChan = make(chan uint32, frameH)
		go r.reportProgress(progressChan, progressDone)
	} else {
		close(progressDone)
	}

	bandIndex := make(map[string]int, len(r.tracers))
	for i, tr := range r.tracers {
		bandIndex[tr.Id()] = i
		tr.Enqueue(tracer.BlockRequest{
			BlockY:       bands[i].Y,
			BlockH:       bands[i].H,
			Scene:        r.scene,
			Camera:       r.camera,
			Seed:         r.options.Seed + int64(i),
			DoneChan:     doneChan,
			ErrChan:      errChan,
			ProgressChan: progressChan,
		})
	}

	// Wait for all tracers; completion order is irrelevant.
	results := make([]*tracer.BlockResult, len(r.tracers))
	var renderErr error
	for pending := len(r.tracers); pending > 0; pending-- {
		select {
		case res := <-doneChan:
			index, ok := bandIndex[res.TracerId]
			if !ok || bands[index].Y != res.BlockY || bands[index].H != res.BlockH {
				if renderErr == nil {
					renderErr = fmt.Errorf("renderer: unexpected block [%d, %d) from tracer %q", res.BlockY, res.BlockY+res.BlockH, res.TracerId)
				}
				continue
			}
			results[index] = &res
		case err := <-errChan:
			if renderErr == nil {
				renderErr = err
			}
		}
	}

	if progressChan != nil {
		close(progressChan)
	}
	<-progressDone

	if renderErr != nil {
		r.logger.Errorf("render failed: %v", renderErr)
		return nil, renderErr
	}

	frame := &Frame{
		Width:  frameW,
		Height: frameH,
		Pixels: make([]types.Vec3, 0, int(frameW)*int(frameH)),
	}
	r.stats = FrameStats{Tracers: make([]TracerStat, len(r.tracers))}
	for i, res := range results {
		if res == nil || len(res.Pixels) != int(res.BlockH)*int(frameW) {
			return nil, ErrIncompleteFrame
		}
		frame.Pixels = append(frame.Pixels, res.Pixels...)

		trStats := r.tracers[i].Stats()
		r.stats.Tracers[i] = TracerStat{
			Id:           r.tracers[i].Id(),
			BlockY:       res.BlockY,
			BlockH:       res.BlockH,
			FramePercent: 100.0 * float32(res.BlockH) / float32(frameH),
			RenderTime:   trStats.RenderTime,
		}
	}
	r.stats.RenderTime = time.Since(start)
	r.logger.Infof("rendered %dx%d frame in %s", frameW, frameH, r.stats.RenderTime)

	return frame, nil
}

// Drain row completion reports and log progress every ProgressStep percent.
func (r *defaultRenderer) reportProgress(progressChan <-chan uint32, done chan<- struct{}) {
	defer close(done)

	var rows uint32
	nextReport := r.options.ProgressStep
	for n := range progressChan {
		rows += n
		percent := 100.0 * float64(rows) / float64(r.camera.Height)
		if percent >= nextReport {
			r.logger.Infof("progress: %5.1f%%", percent)
			for nextReport <= percent {
				nextReport += r.options.ProgressStep
			}
		}
	}
}
