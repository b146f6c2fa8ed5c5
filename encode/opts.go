package encode

import (
	"github.com/signadot/annotate-format/go-annotate/dialect"
	"github.com/signadot/annotate-format/go-annotate/doc"
	"github.com/signadot/annotate-format/go-annotate/num"
	"github.com/signadot/annotate-format/go-annotate/paint"
)

type Option func(*encState)

// Multiline selects a dialect's multiline string form, applied to
// string nodes with the multiline style.
type Multiline int

const (
	// MultilineNone renders every string on one line.
	MultilineNone Multiline = iota
	// MultilineJSON5 breaks lines with a backslash continuation.
	MultilineJSON5
	// MultilineHjson uses a triple quoted block.
	MultilineHjson
)

// As applies a dialect's preset on top of the current options.  Later
// options refine it further.
func As(d dialect.Dialect) Option {
	return func(es *encState) {
		switch d {
		case dialect.JSON5:
			Comments(doc.CommentBlock, doc.CommentSlashSlash)(es)
			Literals(num.Hex)(es)
			MultilineStrings(MultilineJSON5)(es)
			BareKeys(true)(es)
		case dialect.Hjson:
			Comments(doc.CommentBlock, doc.CommentHash, doc.CommentSlashSlash)(es)
			StandardComment(doc.CommentHash)(es)
			MultilineStrings(MultilineHjson)(es)
			BareKeys(true)(es)
		default:
			// strict JSON is the zero configuration
		}
	}
}

// Indent sets the spaces per nesting level.
func Indent(n int) Option {
	return func(es *encState) { es.indent = n }
}

// Comments adds formats to the set the dialect renders.  Comments in
// other formats take the standard leader; with an empty set comments
// drop entirely.
func Comments(formats ...doc.CommentFormat) Option {
	return func(es *encState) { es.comments = es.comments.with(formats...) }
}

// StandardComment sets the leader substituted for comment formats the
// dialect does not render.
func StandardComment(f doc.CommentFormat) Option {
	return func(es *encState) { es.standard = f }
}

// Bases adds display bases: integers written in one of them keep their
// base's notation, quoted as strings.  See Literals to drop the quotes.
func Bases(bases ...num.Base) Option {
	return func(es *encState) { es.bases = es.bases.With(bases...) }
}

// Literals adds bases whose notation is legal unquoted in the dialect.
// A literal base is implicitly also a display base.
func Literals(bases ...num.Base) Option {
	return func(es *encState) {
		es.bases = es.bases.With(bases...)
		es.literals = es.literals.With(bases...)
	}
}

// StrictNumericLimits controls quoting of integers whose magnitude
// cannot survive an IEEE-754 reader.  On by default.
func StrictNumericLimits(on bool) Option {
	return func(es *encState) { es.strict = on }
}

// MultilineStrings sets the layout for multiline style strings.
func MultilineStrings(m Multiline) Option {
	return func(es *encState) { es.multiline = m }
}

// BareKeys permits unquoted mapping keys which are legal identifiers.
func BareKeys(on bool) Option {
	return func(es *encState) { es.bareKeys = on }
}

// Compact renders the whole document on a single line and drops all
// comments.
func Compact(on bool) Option {
	return func(es *encState) { es.compact = on }
}

// Colors sets the output color profile.  nil means plain output.
func Colors(p *paint.Profile) Option {
	return func(es *encState) { es.color = p }
}

// commentSet is the set of comment formats a dialect renders.
type commentSet uint8

func commentBit(f doc.CommentFormat) commentSet {
	switch f {
	case doc.CommentStandard:
		return 1
	case doc.CommentSlashSlash:
		return 2
	case doc.CommentHash:
		return 4
	case doc.CommentBlock:
		return 8
	default:
		return 0
	}
}

func (s commentSet) has(f doc.CommentFormat) bool {
	return s&commentBit(f) != 0
}

func (s commentSet) with(formats ...doc.CommentFormat) commentSet {
	for _, f := range formats {
		s |= commentBit(f)
	}
	return s
}

func (s commentSet) isEmpty() bool {
	return s == 0
}
