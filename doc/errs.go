package doc

import "errors"

var (
	// ErrValue reports a Go value FromValue cannot represent.
	ErrValue = errors.New("unsupported value")
)
