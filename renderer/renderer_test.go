package renderer

import (
	"errors"
	"testing"
	"time"

	"github.com/achilleasa/lumen/scene"
	"github.com/achilleasa/lumen/tracer"
	"github.com/achilleasa/lumen/types"
)

func TestRenderEmissiveSphere(t *testing.T) {
	bg := scene.Emissive(types.XYZ(0.2, 0.4, 0.6), 0.5)
	sc := scene.NewScene(bg)
	sc.AddTraceable(scene.NewSphere(types.Vec3{}, 1, scene.Emissive(types.XYZ(1, 1, 1), 3)))

	cam := scene.NewCamera(types.XYZ(0, 0, 5), types.Vec3{}, types.XYZ(0, 1, 0), 45, 24, 16)
	cam.AA = 4
	cam.Bounces = 0

	for _, workers := range []int{1, 3, 7, 64} {
		r, err := NewDefault(sc, cam, tracer.NewEvenScheduler(), Options{Workers: workers, Seed: 1, ProgressStep: 10})
		if err != nil {
			t.Fatal(err)
		}

		frame, err := r.Render()
		r.Close()
		if err != nil {
			t.Fatal(err)
		}

		if frame.Width != cam.Width || frame.Height != cam.Height || len(frame.Pixels) != int(cam.Width*cam.Height) {
			t.Fatalf("[workers %d] expected %dx%d frame; got %dx%d with %d pixels", workers, cam.Width, cam.Height, frame.Width, frame.Height, len(frame.Pixels))
		}

		// Only check pixels whose jittered footprint is entirely inside the
		// projected disc or clear of it by at least a pixel.
		hits := func(x, y uint32, lo, hi float64) int {
			count := 0
			for _, c := range [][2]float64{{lo, lo}, {hi, lo}, {lo, hi}, {hi, hi}} {
				ray := cam.MakeRay(float64(x)+c[0], float64(y)+c[1])
				if _, _, ok := sc.Traceable(0).Trace(ray); ok {
					count++
				}
			}
			return count
		}

		var inside, outside int
		for y := uint32(0); y < cam.Height; y++ {
			for x := uint32(0); x < cam.Width; x++ {
				got := frame.At(x, y)
				switch {
				case hits(x, y, 0, 1) == 4:
					inside++
					if got.Sub(types.XYZ(3, 3, 3)).Len() > 1e-9 {
						t.Fatalf("[workers %d] expected pixel (%d, %d) inside the disc to be (3, 3, 3); got %v", workers, x, y, got)
					}
				case hits(x, y, -1, 2) == 0:
					outside++
					if got.Sub(bg.Radiance()).Len() > 1e-9 {
						t.Fatalf("[workers %d] expected pixel (%d, %d) outside the disc to be %v; got %v", workers, x, y, bg.Radiance(), got)
					}
				}
			}
		}
		if inside == 0 || outside == 0 {
			t.Fatalf("[workers %d] expected pixels both inside and outside the disc; got %d and %d", workers, inside, outside)
		}

		stats := r.Stats()
		expTracers := workers
		if expTracers > int(cam.Height) {
			expTracers = int(cam.Height)
		}
		if len(stats.Tracers) != expTracers {
			t.Fatalf("[workers %d] expected stats for %d tracers; got %d", workers, expTracers, len(stats.Tracers))
		}
		var percent float32
		for _, st := range stats.Tracers {
			percent += st.FramePercent
		}
		if percent < 99.9 || percent > 100.1 {
			t.Fatalf("[workers %d] expected tracer frame share to add up to 100%%; got %f", workers, percent)
		}
	}
}

func TestRenderJoinsBandsInRowOrder(t *testing.T) {
	sc := scene.NewScene(scene.Sky())
	cam := scene.NewCamera(types.XYZ(0, 0, 5), types.Vec3{}, types.XYZ(0, 1, 0), 45, 3, 11)

	// Later bands complete first.
	numTracers := 4
	tracers := make([]tracer.Tracer, numTracers)
	for i := range tracers {
		tracers[i] = &mockTracer{
			id:    string(rune('a' + i)),
			delay: time.Duration(numTracers-i) * 10 * time.Millisecond,
			stats: &tracer.Stats{},
		}
	}

	r, err := NewWithTracers(sc, cam, tracer.NewEvenScheduler(), tracers, Options{})
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	frame, err := r.Render()
	if err != nil {
		t.Fatal(err)
	}

	for y := uint32(0); y < cam.Height; y++ {
		for x := uint32(0); x < cam.Width; x++ {
			if got := frame.At(x, y); got[0] != float64(y) {
				t.Fatalf("expected pixel (%d, %d) to come from row %d; got row %f", x, y, y, got[0])
			}
		}
	}
}

func TestRenderFailsOnTracerError(t *testing.T) {
	sc := scene.NewScene(scene.Sky())
	cam := scene.NewCamera(types.XYZ(0, 0, 5), types.Vec3{}, types.XYZ(0, 1, 0), 45, 4, 4)

	expErr := errors.New("boom")
	tracers := []tracer.Tracer{
		&mockTracer{id: "ok", stats: &tracer.Stats{}},
		&mockTracer{id: "failing", err: expErr, stats: &tracer.Stats{}},
	}

	r, err := NewWithTracers(sc, cam, tracer.NewEvenScheduler(), tracers, Options{})
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	frame, err := r.Render()
	if err != expErr {
		t.Fatalf("expected error %v; got %v", expErr, err)
	}
	if frame != nil {
		t.Fatal("expected no frame when a tracer fails")
	}
}

func TestRendererSetupErrors(t *testing.T) {
	sc := scene.NewScene(scene.Sky())
	cam := scene.NewCamera(types.XYZ(0, 0, 5), types.Vec3{}, types.XYZ(0, 1, 0), 45, 4, 4)
	emptyCam := scene.NewCamera(types.XYZ(0, 0, 5), types.Vec3{}, types.XYZ(0, 1, 0), 45, 0, 4)
	tracers := []tracer.Tracer{&mockTracer{id: "a", stats: &tracer.Stats{}}}
	dupTracers := []tracer.Tracer{
		&mockTracer{id: "a", stats: &tracer.Stats{}},
		&mockTracer{id: "b", stats: &tracer.Stats{}},
		&mockTracer{id: "a", stats: &tracer.Stats{}},
	}

	type spec struct {
		sc      *scene.Scene
		cam     *scene.Camera
		tracers []tracer.Tracer
		expErr  error
	}
	specs := []spec{
		{nil, cam, tracers, ErrSceneNotDefined},
		{sc, nil, tracers, ErrCameraNotDefined},
		{sc, emptyCam, tracers, ErrEmptyFrame},
		{sc, cam, nil, ErrNoTracers},
		{sc, cam, dupTracers, ErrDuplicateTracer},
	}

	for index, s := range specs {
		_, err := NewWithTracers(s.sc, s.cam, tracer.NewEvenScheduler(), s.tracers, Options{})
		if !errors.Is(err, s.expErr) {
			t.Fatalf("[spec %d] expected error %v; got %v", index, s.expErr, err)
		}
	}
}

// A tracer that fills each pixel with its row index after a delay.
type mockTracer struct {
	id    string
	delay time.Duration
	err   error
	stats *tracer.Stats
}

func (mt *mockTracer) Id() string {
	return mt.id
}

func (mt *mockTracer) Init() error {
	return nil
}

func (mt *mockTracer) Close() {
}

func (mt *mockTracer) Enqueue(req tracer.BlockRequest) {
	go func() {
		time.Sleep(mt.delay)
		if mt.err != nil {
			req.ErrChan <- mt.err
			return
		}

		pixels := make([]types.Vec3, 0, int(req.BlockH*req.Camera.Width))
		for y := req.BlockY; y < req.BlockY+req.BlockH; y++ {
			for x := uint32(0); x < req.Camera.Width; x++ {
				pixels = append(pixels, types.XYZ(float64(y), float64(x), 0))
			}
		}
		mt.stats.BlockY, mt.stats.BlockH = req.BlockY, req.BlockH
		req.DoneChan <- tracer.BlockResult{TracerId: mt.id, BlockY: req.BlockY, BlockH: req.BlockH, Pixels: pixels}
	}()
}

func (mt *mockTracer) Stats() *tracer.Stats {
	return mt.stats
}
