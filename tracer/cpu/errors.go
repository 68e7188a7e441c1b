package cpu

import "errors"

var (
	ErrNotInitialized = errors.New("cpu tracer: tracer not initialized")
	ErrTracerBusy     = errors.New("cpu tracer: tracer already has a pending block request")
	ErrNoScene        = errors.New("cpu tracer: no scene or camera in block request")
	ErrInvalidBlock   = errors.New("cpu tracer: block exceeds frame bounds")
	ErrWorkerPanic    = errors.New("cpu tracer: worker panicked")
)
