package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/annotate-format/go-annotate/doc"
	"github.com/signadot/annotate-format/go-annotate/num"
	"github.com/signadot/annotate-format/go-annotate/paint"
)

// encState holds the dialect configuration and the nesting level of
// one render.  Encode builds a fresh encState per call, so renders
// never share mutable state.
type encState struct {
	level int

	indent    int
	comments  commentSet
	standard  doc.CommentFormat
	bases     num.BaseSet
	literals  num.BaseSet
	strict    bool
	multiline Multiline
	bareKeys  bool
	compact   bool
	color     *paint.Profile
}

// Encode renders node to w.  Without options the output is strict
// JSON; see As for dialect presets.
func Encode(node *doc.Node, w io.Writer, opts ...Option) error {
	es := &encState{
		indent:   2,
		standard: doc.CommentSlashSlash,
		bases:    num.Bases(num.Dec),
		literals: num.Bases(num.Dec),
		strict:   true,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.color == nil {
		es.color = paint.Plain()
	}
	return encodeNode(node, w, es)
}

// String renders node to a string.
func String(node *doc.Node, opts ...Option) (string, error) {
	var sb strings.Builder
	if err := Encode(node, &sb, opts...); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func encodeNode(node *doc.Node, w io.Writer, es *encState) error {
	switch node.Kind {
	case doc.NullKind:
		return writeString(w, es.color.Null.Paint("null"))
	case doc.BoolKind:
		return writeString(w, es.color.Boolean.Paint(strconv.FormatBool(node.Bool)))
	case doc.IntKind:
		return encodeInt(node.Int, w, es)
	case doc.FloatKind:
		return writeString(w, es.color.Float.Paint(formatFloat(node.Float)))
	case doc.StringKind:
		return encodeString(node.String, node.Style, w, es)
	case doc.BytesKind:
		return encodeBytes(node.Bytes, w, es)
	case doc.MappingKind:
		return encodeMapping(node.Values, w, es)
	case doc.SequenceKind:
		return encodeSequence(node.Values, w, es)
	case doc.CommentKind:
		return encodeCommentNode(node, w, es)
	case doc.CompactKind:
		return encodeCompact(node, w, es)
	case doc.FragmentKind:
		return encodeFragment(node, w, es)
	default:
		return fmt.Errorf("%w: %s", ErrStructure, node.Kind)
	}
}

// encodeInt writes v in its own base when the configuration displays
// that base, in decimal otherwise.  The token is quoted when its base
// has no literal form in the dialect, and under strict numeric limits
// when the magnitude would not survive an IEEE-754 reader.
func encodeInt(v num.Int, w io.Writer, es *encState) error {
	text := v.Text(num.Dec)
	if es.bases.Has(v.Base()) {
		text = v.Text(v.Base())
	}
	quoted := es.strict && !v.SafeJSON() ||
		es.bases.Has(v.Base()) && !es.literals.Has(v.Base())
	if !quoted {
		return writeString(w, es.color.Integer.Paint(text))
	}
	if err := writeString(w, es.color.Punctuation.Paint(`"`)); err != nil {
		return err
	}
	if err := writeString(w, es.color.Integer.Paint(text)); err != nil {
		return err
	}
	return writeString(w, es.color.Punctuation.Paint(`"`))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func encodeBytes(d []byte, w io.Writer, es *encState) error {
	es.level++
	if err := writeEOL(w, es, es.color.Aggregate.Paint("[")); err != nil {
		return err
	}
	if err := writeIndent(w, es); err != nil {
		return err
	}
	for i, b := range d {
		if i > 0 {
			if err := writeEOL(w, es, ","); err != nil {
				return err
			}
			if err := writeIndent(w, es); err != nil {
				return err
			}
		}
		if err := writeString(w, strconv.FormatUint(uint64(b), 10)); err != nil {
			return err
		}
	}
	if err := writeEOL(w, es, ""); err != nil {
		return err
	}
	es.level--
	if err := writeIndent(w, es); err != nil {
		return err
	}
	return writeString(w, es.color.Aggregate.Paint("]"))
}

func encodeCompact(node *doc.Node, w io.Writer, es *encState) error {
	compact := es.compact
	es.compact = true
	defer func() { es.compact = compact }()
	for _, d := range node.Values {
		if err := encodeNode(d, w, es); err != nil {
			return err
		}
	}
	return nil
}

// encodeFragment lays out a bracketless run of nodes.  The pair
// [value, comment] renders the comment on the value's line; any other
// run renders its nodes with a line break after each value-bearing one.
func encodeFragment(node *doc.Node, w io.Writer, es *encState) error {
	nodes := node.Values
	if len(nodes) == 2 && nodes[1].Kind == doc.CommentKind {
		if err := encodeNode(nodes[0], w, es); err != nil {
			return err
		}
		if es.compact || es.comments.isEmpty() {
			return nil
		}
		if err := writeString(w, " "); err != nil {
			return err
		}
		_, err := encodeComment(nodes[1].String, nodes[1].Format, w, es)
		return err
	}
	priorValue := false
	for _, d := range nodes {
		if priorValue {
			if err := writeEOL(w, es, ""); err != nil {
				return err
			}
			if err := writeIndent(w, es); err != nil {
				return err
			}
		}
		if err := encodeNode(d, w, es); err != nil {
			return err
		}
		priorValue = d.HasValue()
	}
	return nil
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

// writeEOL ends a line holding s.  Compact mode drops the line break,
// and a bare "," gains a trailing space there so tokens stay apart.
func writeEOL(w io.Writer, es *encState, s string) error {
	if s == "," {
		s = es.color.Punctuation.Paint(",")
		if es.compact {
			return writeString(w, s+" ")
		}
		return writeString(w, s+"\n")
	}
	if es.compact {
		return writeString(w, s)
	}
	return writeString(w, s+"\n")
}

const spaces = "                                                                "

func writeIndent(w io.Writer, es *encState) error {
	if es.compact {
		return nil
	}
	n := es.level * es.indent
	for n > 0 {
		c := min(n, len(spaces))
		if err := writeString(w, spaces[:c]); err != nil {
			return err
		}
		n -= c
	}
	return nil
}
