package output

import "errors"

var (
	ErrUnsupportedFormat = errors.New("output: unsupported image format")
	ErrNoBucket          = errors.New("output: no upload bucket specified")
	ErrNoKey             = errors.New("output: no upload key specified")
)
