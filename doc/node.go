package doc

import (
	"github.com/signadot/annotate-format/go-annotate/num"
)

// Node is one node of a document tree.  Kind says which fields are
// meaningful.  Aggregate kinds (Mapping, Sequence, Compact, Fragment)
// use Values; the scalar kinds use the field matching their name.
// Comment nodes keep their text in String and their leader class in
// Format.
type Node struct {
	Kind Kind `json:"kind"`

	Values []*Node `json:"values,omitempty"`

	String string        `json:"string,omitempty"`
	Style  StrStyle      `json:"style,omitempty"`
	Format CommentFormat `json:"format,omitempty"`
	Bool   bool          `json:"bool,omitempty"`
	Int    num.Int       `json:"int"`
	Float  float64       `json:"float,omitempty"`
	Bytes  []byte        `json:"bytes,omitempty"`
}

func Null() *Node {
	return &Node{Kind: NullKind}
}

func FromBool(v bool) *Node {
	return &Node{Kind: BoolKind, Bool: v}
}

func FromInt(v num.Int) *Node {
	return &Node{Kind: IntKind, Int: v}
}

// FromInt64 is FromInt for plain decimal integers.
func FromInt64(v int64) *Node {
	return FromInt(num.New(v, num.Dec))
}

func FromFloat(v float64) *Node {
	return &Node{Kind: FloatKind, Float: v}
}

func FromString(v string) *Node {
	return &Node{Kind: StringKind, String: v}
}

// FromMultiline returns a string node which asks for the dialect's
// multiline layout.
func FromMultiline(v string) *Node {
	return &Node{Kind: StringKind, String: v, Style: StrMultiline}
}

func FromBytes(d []byte) *Node {
	return &Node{Kind: BytesKind, Bytes: d}
}

// Comment returns a comment node in the dialect's standard format.
func Comment(text string) *Node {
	return CommentAs(text, CommentStandard)
}

func CommentAs(text string, f CommentFormat) *Node {
	return &Node{Kind: CommentKind, String: text, Format: f}
}

// Mapping returns a mapping over the given entries.  Each entry is
// normally a Fragment built by Entry, EntryNode or CommentedEntry, or a
// bare Comment node.
func Mapping(entries ...*Node) *Node {
	return &Node{Kind: MappingKind, Values: entries}
}

func Sequence(values ...*Node) *Node {
	return &Node{Kind: SequenceKind, Values: values}
}

// Compact wraps n so that it renders on a single line.
func Compact(n *Node) *Node {
	return &Node{Kind: CompactKind, Values: []*Node{n}}
}

func Fragment(nodes ...*Node) *Node {
	return &Node{Kind: FragmentKind, Values: nodes}
}

// Entry returns a mapping entry with a string key.
func Entry(key string, value *Node) *Node {
	return Fragment(FromString(key), value)
}

// EntryNode returns a mapping entry whose key is itself a node, for
// boolean, integer or float keys.
func EntryNode(key, value *Node) *Node {
	return Fragment(key, value)
}

// CommentedEntry returns a mapping entry with a comment line above the
// key.
func CommentedEntry(comment, key string, value *Node) *Node {
	return Fragment(Comment(comment), FromString(key), value)
}

// HasValue reports whether the node renders a value.  Comments do not;
// a fragment has a value when any of its nodes does.
func (n *Node) HasValue() bool {
	switch n.Kind {
	case CommentKind:
		return false
	case FragmentKind:
		for _, d := range n.Values {
			if d.HasValue() {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// CommentParts returns the text and format of a comment node.  The
// bool is false for every other kind.
func (n *Node) CommentParts() (string, CommentFormat, bool) {
	if n.Kind != CommentKind {
		return "", CommentStandard, false
	}
	return n.String, n.Format, true
}

// Fragments returns the node's flat run: the children of a fragment,
// or the node itself as a run of one.
func (n *Node) Fragments() []*Node {
	if n.Kind == FragmentKind {
		return n.Values
	}
	return []*Node{n}
}

// LastValueIndex returns the index of the last node in nodes which
// renders a value, or 0 when none does.  Inside aggregates, nodes at or
// past this index take no trailing comma.
func LastValueIndex(nodes []*Node) int {
	for i := len(nodes) - 1; i >= 0; i-- {
		if nodes[i].HasValue() {
			return i
		}
	}
	return 0
}
