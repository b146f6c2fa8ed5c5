// Package encode renders doc trees as JSON, JSON5 or Hjson text.
//
// # Usage
//
//	// Render strict JSON
//	node := doc.Mapping(
//	    doc.Entry("name", doc.FromString("alice")),
//	    doc.Entry("age", doc.FromInt64(30)),
//	)
//	output, err := encode.String(node)
//
//	// Render a dialect preset
//	output, err := encode.String(node, encode.As(dialect.JSON5))
//
//	// Refine a preset with further options
//	err := encode.Encode(node, w,
//	    encode.As(dialect.Hjson),
//	    encode.Indent(4),
//	    encode.Literals(num.Hex))
//
// Options apply in order.  The zero configuration is strict JSON: two
// space indent, no comments, decimal integers, magnitudes above 2^53
// quoted.
//
// Rendering is one synchronous pass over the tree.  Each call owns a
// private copy of the configuration, so a single option list may be
// shared while renders run concurrently.
//
// # Related Packages
//
//   - github.com/signadot/annotate-format/go-annotate/doc - document trees
//   - github.com/signadot/annotate-format/go-annotate/dialect - output dialects
//   - github.com/signadot/annotate-format/go-annotate/paint - output coloring
package encode
