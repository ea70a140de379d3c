package encode

import (
	"errors"
)

var (
	// ErrFormat reports a value canonical JSON cannot represent, such as a
	// non-finite number or object keys which collide after normalization.
	ErrFormat = errors.New("format error")

	// ErrUnsupportedType reports an IR node the encoder does not recognize,
	// such as a number node carrying neither an integer nor a float.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrDepthExceeded reports container nesting beyond the configured
	// maximum depth.
	ErrDepthExceeded = errors.New("depth exceeded")
)
