package renderer

import "errors"

var (
	ErrNoTracers        = errors.New("renderer: no tracers attached")
	ErrSceneNotDefined  = errors.New("renderer: no scene defined")
	ErrCameraNotDefined = errors.New("renderer: no camera defined")
	ErrEmptyFrame       = errors.New("renderer: camera frame has zero width or height")
	ErrIncompleteFrame  = errors.New("renderer: tracer returned a block with missing pixels")
	ErrDuplicateTracer  = errors.New("renderer: duplicate tracer id")
)
