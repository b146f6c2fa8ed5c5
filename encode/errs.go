package encode

import "errors"

var (
	// ErrStructure reports a node arrangement the renderer cannot lay
	// out, such as a second value inside a sequence fragment.
	ErrStructure = errors.New("unexpected document structure")

	// ErrKeyType reports a mapping key which is not a scalar.
	ErrKeyType = errors.New("illegal mapping key type")
)
