package encode

import (
	"fmt"
	"io"
	"strconv"

	"github.com/signadot/annotate-format/go-annotate/doc"
	"github.com/signadot/annotate-format/go-annotate/num"
)

// eolState says whether the current output line still owes its
// terminator.  A freshly written value owes one; starting the next
// entry's line settles it.  Threading the state through the entry loop
// lets comments land on the right side of commas and line breaks.
type eolState int

const (
	eolClean eolState = iota
	eolSeparatorOwed
)

// encodeMapping renders entries inside braces.  Each entry is a flat
// run of nodes: leading comments, then the key, then the value, then
// trailing comments.  Entries past the last value-bearing one take no
// comma.
func encodeMapping(entries []*doc.Node, w io.Writer, es *encState) error {
	es.level++
	if err := writeEOL(w, es, es.color.Aggregate.Paint("{")); err != nil {
		return err
	}
	if len(entries) != 0 {
		if err := writeIndent(w, es); err != nil {
			return err
		}
	}
	last := doc.LastValueIndex(entries)
	eol := eolClean
	for i, entry := range entries {
		if i > 0 && eol == eolSeparatorOwed {
			sep := "\n"
			if es.compact {
				sep = " "
			}
			if err := writeString(w, sep); err != nil {
				return err
			}
			if i <= last || !es.comments.isEmpty() {
				if err := writeIndent(w, es); err != nil {
					return err
				}
			}
			eol = eolClean
		}
		keyDone := i > last
		valDone := i > last
		for _, node := range entry.Fragments() {
			if text, format, ok := node.CommentParts(); ok {
				if valDone && eol == eolSeparatorOwed {
					if err := writeString(w, " "); err != nil {
						return err
					}
				}
				rendered, err := encodeComment(text, format, w, es)
				if err != nil {
					return err
				}
				eol = eolClean
				if rendered {
					eol = eolSeparatorOwed
					if !keyDone {
						if err := writeString(w, "\n"); err != nil {
							return err
						}
						if err := writeIndent(w, es); err != nil {
							return err
						}
					}
				}
				if i < last {
					eol = eolSeparatorOwed
				}
				continue
			}
			switch {
			case !keyDone:
				if err := encodeAnyKey(node, w, es); err != nil {
					return err
				}
				keyDone = true
			case !valDone:
				if err := encodeNode(node, w, es); err != nil {
					return err
				}
				if i != last {
					if err := writeString(w, es.color.Punctuation.Paint(",")); err != nil {
						return err
					}
				}
				valDone = true
				eol = eolSeparatorOwed
			default:
				return fmt.Errorf("%w: %s after mapping entry value", ErrStructure, node.Kind)
			}
		}
	}
	if eol == eolSeparatorOwed {
		if err := writeEOL(w, es, ""); err != nil {
			return err
		}
	}
	es.level--
	if err := writeIndent(w, es); err != nil {
		return err
	}
	return writeString(w, es.color.Aggregate.Paint("}"))
}

// encodeSequence renders values inside square brackets.  A fragment
// element holds one value plus the comments around it.
func encodeSequence(values []*doc.Node, w io.Writer, es *encState) error {
	es.level++
	if err := writeEOL(w, es, es.color.Aggregate.Paint("[")); err != nil {
		return err
	}
	if len(values) != 0 {
		if err := writeIndent(w, es); err != nil {
			return err
		}
	}
	last := doc.LastValueIndex(values)
	eol := eolClean
	for i, value := range values {
		if i > 0 && eol == eolSeparatorOwed {
			sep := "\n"
			if es.compact {
				sep = " "
			}
			if err := writeString(w, sep); err != nil {
				return err
			}
			if i <= last || !es.comments.isEmpty() {
				if err := writeIndent(w, es); err != nil {
					return err
				}
			}
			eol = eolClean
		}
		if value.Kind != doc.FragmentKind {
			if err := encodeNode(value, w, es); err != nil {
				return err
			}
			if i != last {
				if err := writeString(w, es.color.Punctuation.Paint(",")); err != nil {
					return err
				}
			}
			eol = eolSeparatorOwed
			continue
		}
		valDone := false
		for _, node := range value.Values {
			if text, format, ok := node.CommentParts(); ok {
				if valDone && eol == eolSeparatorOwed {
					if err := writeString(w, " "); err != nil {
						return err
					}
				}
				rendered, err := encodeComment(text, format, w, es)
				if err != nil {
					return err
				}
				eol = eolClean
				if rendered {
					eol = eolSeparatorOwed
					if !valDone {
						if err := writeString(w, "\n"); err != nil {
							return err
						}
						if err := writeIndent(w, es); err != nil {
							return err
						}
					}
				}
				if i < last {
					eol = eolSeparatorOwed
				}
				continue
			}
			if valDone {
				return fmt.Errorf("%w: %s after sequence value", ErrStructure, node.Kind)
			}
			if err := encodeNode(node, w, es); err != nil {
				return err
			}
			if i != last {
				if err := writeString(w, es.color.Punctuation.Paint(",")); err != nil {
					return err
				}
			}
			valDone = true
			eol = eolSeparatorOwed
		}
	}
	if eol == eolSeparatorOwed {
		if err := writeEOL(w, es, ""); err != nil {
			return err
		}
	}
	es.level--
	if err := writeIndent(w, es); err != nil {
		return err
	}
	return writeString(w, es.color.Aggregate.Paint("]"))
}

// encodeAnyKey writes a mapping key and its colon.  String keys may
// drop their quotes under bare key rules; other scalar keys are always
// quoted.
func encodeAnyKey(node *doc.Node, w io.Writer, es *encState) error {
	var err error
	switch node.Kind {
	case doc.StringKind:
		err = encodeKey(node.String, w, es)
	case doc.BoolKind:
		err = encodeQuotedKey(strconv.FormatBool(node.Bool), w, es)
	case doc.IntKind:
		err = encodeQuotedKey(node.Int.Text(num.Dec), w, es)
	case doc.FloatKind:
		err = encodeQuotedKey(formatFloat(node.Float), w, es)
	default:
		return fmt.Errorf("%w: %s", ErrKeyType, node.Kind)
	}
	if err != nil {
		return err
	}
	return writeString(w, es.color.Punctuation.Paint(": "))
}

func encodeQuotedKey(text string, w io.Writer, es *encState) error {
	if err := writeString(w, es.color.Punctuation.Paint(`"`)); err != nil {
		return err
	}
	if err := writeString(w, es.color.Key.Paint(text)); err != nil {
		return err
	}
	return writeString(w, es.color.Punctuation.Paint(`"`))
}
