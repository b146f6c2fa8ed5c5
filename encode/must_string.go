package encode

import (
	"github.com/signadot/annotate-format/go-annotate/doc"
)

// MustString renders node, panicking on error.  For tests and trees
// known to be well formed.
func MustString(node *doc.Node, opts ...Option) string {
	s, err := String(node, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
