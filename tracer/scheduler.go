package tracer

// A contiguous range of frame rows [Y, Y+H).
type Band struct {
	Y uint32
	H uint32
}

// The BlockScheduler interface is implemented by all block scheduling algorithms.
type BlockScheduler interface {
	// Split frame into row bands and assign one to each tracer.
	//
	// This function returns the band assignment for each tracer index.
	Schedule(numTracers int, frameH uint32) []Band
}

// The even scheduler splits the frame into numTracers contiguous bands of
// (almost) equal height. Band i covers rows [frameH*i/n, frameH*(i+1)/n).
type evenScheduler struct{}

// Create a new even block scheduler.
func NewEvenScheduler() BlockScheduler {
	return evenScheduler{}
}

// Split frame into row bands.
func (evenScheduler) Schedule(numTracers int, frameH uint32) []Band {
	if numTracers <= 0 {
		return nil
	}

	n := uint64(numTracers)
	h := uint64(frameH)
	bands := make([]Band, numTracers)
	for i := uint64(0); i < n; i++ {
		start := h * i / n
		stop := h * (i + 1) / n
		bands[i] = Band{Y: uint32(start), H: uint32(stop - start)}
	}

	return bands
}
