package doc

import "fmt"

// Kind discriminates the variants of Node.
type Kind int

const (
	NullKind Kind = iota
	BoolKind
	IntKind
	FloatKind
	StringKind
	BytesKind
	MappingKind
	SequenceKind
	CommentKind
	CompactKind
	FragmentKind
)

var kindStrings = map[Kind]string{
	NullKind:     "Null",
	BoolKind:     "Bool",
	IntKind:      "Int",
	FloatKind:    "Float",
	StringKind:   "String",
	BytesKind:    "Bytes",
	MappingKind:  "Mapping",
	SequenceKind: "Sequence",
	CommentKind:  "Comment",
	CompactKind:  "Compact",
	FragmentKind: "Fragment",
}

func (k Kind) String() string {
	s, ok := kindStrings[k]
	if !ok {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return s
}

func (k Kind) MarshalText() ([]byte, error) {
	s, ok := kindStrings[k]
	if !ok {
		return nil, fmt.Errorf("bad kind %d", int(k))
	}
	return []byte(s), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	for kk, s := range kindStrings {
		if s == string(d) {
			*k = kk
			return nil
		}
	}
	return fmt.Errorf("bad kind %q", string(d))
}

// StrStyle selects how a string node prefers to be laid out.
type StrStyle int

const (
	// StrStandard renders on one line with escapes.
	StrStandard StrStyle = iota
	// StrMultiline renders across lines when the dialect has a
	// multiline form, and falls back to StrStandard when it does not.
	StrMultiline
)

func (s StrStyle) String() string {
	switch s {
	case StrStandard:
		return "Standard"
	case StrMultiline:
		return "Multiline"
	default:
		return fmt.Sprintf("StrStyle(%d)", int(s))
	}
}

// CommentFormat classifies the leader a comment asks for.  Renderers
// honor the format when the dialect supports it and substitute the
// dialect's standard leader when it does not.
type CommentFormat int

const (
	// CommentStandard defers to the dialect's standard leader.
	CommentStandard CommentFormat = iota
	// CommentSlashSlash is a "//" line comment.
	CommentSlashSlash
	// CommentHash is a "#" line comment.
	CommentHash
	// CommentBlock is a "/* */" block comment.
	CommentBlock
)

func (f CommentFormat) String() string {
	switch f {
	case CommentStandard:
		return "Standard"
	case CommentSlashSlash:
		return "SlashSlash"
	case CommentHash:
		return "Hash"
	case CommentBlock:
		return "Block"
	default:
		return fmt.Sprintf("CommentFormat(%d)", int(f))
	}
}
