// Package doc defines the document tree rendered by package encode.
//
// # Nodes
//
// A document is a tree of [Node] values.  Node is a tagged union: the
// [Kind] field says which of the remaining fields carry the value.
// Scalar kinds hold booleans, integers (with their written base, see
// package num), floats, strings, and byte slices.  Aggregate kinds hold
// children in Values.
//
// # Comments
//
// A [CommentKind] node carries text which renderers may print or drop
// depending on the output dialect.  Comments have no value: they do not
// count toward comma placement inside aggregates, and a mapping entry
// made only of comments renders without a trailing separator.
//
// # Fragments
//
// A [FragmentKind] node is a flat run of nodes with no brackets of its
// own.  Fragments have three uses:
//
//   - as mapping entries, where the fragment holds an optional run of
//     comments, then the key, then the value
//   - as sequence elements, where the fragment holds a value and the
//     comments around it
//   - as a trailing-comment pair [value, comment], which renders the
//     value followed by the comment on the same line
//
// The [Entry], [EntryNode] and [CommentedEntry] constructors build the
// mapping forms.
//
// # Compact
//
// A [CompactKind] node wraps a subtree which renders on a single line
// regardless of the dialect's layout, so small leaf aggregates can stay
// dense inside an otherwise indented document.
package doc
