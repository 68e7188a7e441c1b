package cpu

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/achilleasa/lumen/log"
	"github.com/achilleasa/lumen/tracer"
	"github.com/achilleasa/lumen/types"
)

type cpuTracer struct {
	logger log.Logger

	sync.Mutex
	wg sync.WaitGroup

	// The tracer id.
	id string

	// A channel for receiving block requests from the renderer.
	blockReqChan chan tracer.BlockRequest

	// A channel for signaling the worker to exit.
	closeChan chan struct{}

	// Statistics for last rendered block.
	stats *tracer.Stats

	opts SamplerOptions
}

// Create a new cpu tracer.
func NewTracer(id string, opts SamplerOptions) tracer.Tracer {
	return &cpuTracer{
		logger: log.New(fmt.Sprintf("cpu tracer (%s)", id)),
		id:     id,
		stats:  &tracer.Stats{},
		opts:   opts,
	}
}

// Get tracer id.
func (tr *cpuTracer) Id() string {
	return tr.id
}

// Initialize tracer and start its worker.
func (tr *cpuTracer) Init() error {
	tr.Lock()
	defer tr.Unlock()

	if tr.closeChan == nil {
		tr.startWorker()
	}
	return nil
}

// Shutdown tracer worker.
func (tr *cpuTracer) Close() {
	tr.Lock()
	defer tr.Unlock()

	if tr.closeChan != nil {
		tr.closeChan <- struct{}{}

		// wait for worker to ack close
		<-tr.closeChan
		tr.wg.Wait()
		close(tr.closeChan)
		tr.closeChan = nil
	}
}

// Enqueue block request. If the worker is not running or already has a
// pending request the request fails immediately.
func (tr *cpuTracer) Enqueue(blockReq tracer.BlockRequest) {
	tr.Lock()
	defer tr.Unlock()

	if tr.closeChan == nil {
		blockReq.ErrChan <- ErrNotInitialized
		return
	}

	select {
	case tr.blockReqChan <- blockReq:
	default:
		blockReq.ErrChan <- ErrTracerBusy
	}
}

// Retrieve last block statistics.
func (tr *cpuTracer) Stats() *tracer.Stats {
	return tr.stats
}

// Spawn a go-routine to process block render requests.
func (tr *cpuTracer) startWorker() {
	tr.blockReqChan = make(chan tracer.BlockRequest, 1)
	tr.closeChan = make(chan struct{})

	readyChan := make(chan struct{})
	tr.wg.Add(1)
	go func() {
		defer tr.wg.Done()
		close(readyChan)
		for {
			select {
			case blockReq := <-tr.blockReqChan:
				startTime := time.Now()
				pixels, err := tr.renderBlock(&blockReq)
				if err != nil {
					blockReq.ErrChan <- err
					continue
				}

				tr.stats.BlockY = blockReq.BlockY
				tr.stats.BlockH = blockReq.BlockH
				tr.stats.RenderTime = time.Since(startTime)
				tr.logger.Debugf("rendered rows [%d, %d) in %s", blockReq.BlockY, blockReq.BlockY+blockReq.BlockH, tr.stats.RenderTime)

				blockReq.DoneChan <- tracer.BlockResult{
					TracerId: tr.id,
					BlockY:   blockReq.BlockY,
					BlockH:   blockReq.BlockH,
					Pixels:   pixels,
				}
			case <-tr.closeChan:
				// Ack close
				tr.closeChan <- struct{}{}
				return
			}
		}
	}()

	// Wait for go-routine to start
	<-readyChan
}

// Render block rows left-to-right, top-to-bottom into a local buffer. A
// panic while rendering is converted into an error.
func (tr *cpuTracer) renderBlock(blockReq *tracer.BlockRequest) (pixels []types.Vec3, err error) {
	defer func() {
		if r := recover(); r != nil {
			pixels = nil
			err = fmt.Errorf("%w: %s: %v", ErrWorkerPanic, tr.id, r)
		}
	}()

	sc, cam := blockReq.Scene, blockReq.Camera
	if sc == nil || cam == nil {
		return nil, ErrNoScene
	}
	if uint64(blockReq.BlockY)+uint64(blockReq.BlockH) > uint64(cam.Height) {
		return nil, ErrInvalidBlock
	}

	rng := rand.New(rand.NewSource(blockReq.Seed))
	pixels = make([]types.Vec3, 0, int(blockReq.BlockH)*int(cam.Width))
	for y := blockReq.BlockY; y < blockReq.BlockY+blockReq.BlockH; y++ {
		for x := uint32(0); x < cam.Width; x++ {
			pixels = append(pixels, SamplePixel(sc, cam, rng, x, y, tr.opts))
		}

		if blockReq.ProgressChan != nil {
			select {
			case blockReq.ProgressChan <- 1:
			default:
			}
		}
	}

	return pixels, nil
}
