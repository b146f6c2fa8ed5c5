package encode

import (
	"fmt"
	"io"

	"github.com/signadot/annotate-format/go-annotate/doc"
)

const (
	bb = 'b'  // \x08
	tt = 't'  // \x09
	nn = 'n'  // \x0A
	ff = 'f'  // \x0C
	rr = 'r'  // \x0D
	qu = '"'  // \x22
	bs = '\\' // \x5C
	uu = 'u'  // \x00..\x1F less the named escapes
	__ = 0
)

// escapeTable classifies every byte for string emission: __ passes
// through, uu takes a \u00XX escape, anything else is the second
// character of a two-character escape.
var escapeTable = [256]byte{
	//  1   2   3   4   5   6   7   8   9   A   B   C   D   E   F
	uu, uu, uu, uu, uu, uu, uu, uu, bb, tt, nn, uu, ff, rr, uu, uu, // 0
	uu, uu, uu, uu, uu, uu, uu, uu, uu, uu, uu, uu, uu, uu, uu, uu, // 1
	__, __, qu, __, __, __, __, __, __, __, __, __, __, __, __, __, // 2
	__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, // 3
	__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, // 4
	__, __, __, __, __, __, __, __, __, __, __, __, bs, __, __, __, // 5
	__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, // 6
	__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, // 7
	__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, // 8
	__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, // 9
	__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, // A
	__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, // B
	__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, // C
	__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, // D
	__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, // E
	__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, // F
}

func encodeString(v string, style doc.StrStyle, w io.Writer, es *encState) error {
	if es.multiline != MultilineNone && style == doc.StrMultiline {
		return encodeStringMultiline(v, w, es)
	}
	return encodeStringStrict(v, w, es)
}

// encodeStringStrict writes v quoted on one line, copying unescaped
// runs through whole and painting each escape separately.
func encodeStringStrict(v string, w io.Writer, es *encState) error {
	if err := writeString(w, es.color.Punctuation.Paint(`"`)); err != nil {
		return err
	}
	start := 0
	for i := 0; i < len(v); i++ {
		escape := escapeTable[v[i]]
		if escape == __ {
			continue
		}
		if start < i {
			if err := writeString(w, es.color.String.Paint(v[start:i])); err != nil {
				return err
			}
		}
		esc := `\` + string(rune(escape))
		if escape == uu {
			esc = fmt.Sprintf(`\u%04x`, v[i])
		}
		if err := writeString(w, es.color.Escape.Paint(esc)); err != nil {
			return err
		}
		start = i + 1
	}
	if start != len(v) {
		if err := writeString(w, es.color.String.Paint(v[start:])); err != nil {
			return err
		}
	}
	return writeString(w, es.color.Punctuation.Paint(`"`))
}

// encodeStringMultiline writes v in the dialect's multiline form: a
// backslash continuation before each line break for JSON5, a triple
// quoted block with real line breaks for Hjson.  Escapes other than
// the line break render as in the strict form.
func encodeStringMultiline(v string, w io.Writer, es *encState) error {
	if es.multiline == MultilineHjson {
		if err := writeString(w, "\n"); err != nil {
			return err
		}
		es.level++
		if err := writeIndent(w, es); err != nil {
			return err
		}
		if err := writeEOL(w, es, es.color.Punctuation.Paint("'''")); err != nil {
			return err
		}
		if err := writeIndent(w, es); err != nil {
			return err
		}
	} else {
		if err := writeString(w, es.color.Punctuation.Paint(`"`)); err != nil {
			return err
		}
	}
	start := 0
	for i := 0; i < len(v); i++ {
		escape := escapeTable[v[i]]
		if escape == __ {
			continue
		}
		if start < i {
			if err := writeString(w, es.color.String.Paint(v[start:i])); err != nil {
				return err
			}
		}
		var err error
		switch {
		case escape == nn && es.multiline == MultilineJSON5:
			err = writeString(w, es.color.Escape.Paint(`\`)+"\n")
		case escape == nn && es.multiline == MultilineHjson:
			if err = writeString(w, "\n"); err == nil {
				err = writeIndent(w, es)
			}
		case escape == uu:
			err = writeString(w, es.color.Escape.Paint(fmt.Sprintf(`\u%04x`, v[i])))
		default:
			err = writeString(w, es.color.Escape.Paint(`\`+string(rune(escape))))
		}
		if err != nil {
			return err
		}
		start = i + 1
	}
	if start != len(v) {
		if err := writeString(w, es.color.String.Paint(v[start:])); err != nil {
			return err
		}
	}
	if es.multiline == MultilineHjson {
		if err := writeString(w, "\n"); err != nil {
			return err
		}
		if err := writeIndent(w, es); err != nil {
			return err
		}
		if err := writeString(w, es.color.Punctuation.Paint("'''")); err != nil {
			return err
		}
		es.level--
		return nil
	}
	return writeString(w, es.color.Punctuation.Paint(`"`))
}
