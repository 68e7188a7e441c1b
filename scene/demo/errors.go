package demo

import "errors"

var ErrUnknownScene = errors.New("demo: unknown scene")
