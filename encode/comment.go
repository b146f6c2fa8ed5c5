package encode

import (
	"io"
	"strings"

	"github.com/signadot/annotate-format/go-annotate/doc"
)

// encodeComment writes one comment and reports whether anything was
// written.  Comments drop entirely in compact mode and in dialects
// whose comment set is empty.  A format outside the set falls back to
// the dialect's standard leader.
func encodeComment(text string, format doc.CommentFormat, w io.Writer, es *encState) (bool, error) {
	if es.compact || es.comments.isEmpty() {
		return false, nil
	}
	if !es.comments.has(format) {
		format = es.standard
	}
	var leader string
	switch format {
	case doc.CommentHash:
		leader = "#"
	case doc.CommentBlock:
		leader = " *"
	default:
		leader = "//"
	}
	if format == doc.CommentBlock {
		if err := writeString(w, "/*\n"); err != nil {
			return false, err
		}
		if err := writeIndent(w, es); err != nil {
			return false, err
		}
	}
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			if err := writeString(w, "\n"); err != nil {
				return false, err
			}
			if err := writeIndent(w, es); err != nil {
				return false, err
			}
		}
		painted := leader
		if line != "" {
			painted = leader + " " + line
		}
		if err := writeString(w, es.color.Comment.Paint(painted)); err != nil {
			return false, err
		}
	}
	if format == doc.CommentBlock {
		if err := writeString(w, "*/\n"); err != nil {
			return false, err
		}
		if err := writeIndent(w, es); err != nil {
			return false, err
		}
	}
	return true, nil
}

// encodeCommentNode handles a comment met outside an aggregate, which
// takes a line of its own when the dialect renders it.
func encodeCommentNode(node *doc.Node, w io.Writer, es *encState) error {
	rendered, err := encodeComment(node.String, node.Format, w, es)
	if err != nil || !rendered {
		return err
	}
	if err := writeString(w, "\n"); err != nil {
		return err
	}
	return writeIndent(w, es)
}
