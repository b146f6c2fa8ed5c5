package encode

import (
	"io"
	"strings"
)

// reservedWords may never appear as bare keys.  The list covers the
// JavaScript keywords, the JSON literals, and the empty string.
var reservedWords = map[string]bool{
	"":           true,
	"break":      true,
	"case":       true,
	"catch":      true,
	"class":      true,
	"const":      true,
	"continue":   true,
	"debugger":   true,
	"default":    true,
	"delete":     true,
	"do":         true,
	"else":       true,
	"enum":       true,
	"export":     true,
	"extends":    true,
	"false":      true,
	"finally":    true,
	"for":        true,
	"function":   true,
	"if":         true,
	"implements": true,
	"import":     true,
	"in":         true,
	"instanceof": true,
	"interface":  true,
	"let":        true,
	"new":        true,
	"null":       true,
	"package":    true,
	"private":    true,
	"protected":  true,
	"public":     true,
	"return":     true,
	"static":     true,
	"super":      true,
	"switch":     true,
	"this":       true,
	"throw":      true,
	"true":       true,
	"try":        true,
	"typeof":     true,
	"var":        true,
	"void":       true,
	"while":      true,
	"with":       true,
	"yield":      true,
}

func badIdentifierChar(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return false
	case r >= 'A' && r <= 'Z':
		return false
	case r >= 'a' && r <= 'z':
		return false
	case r == '_' || r == '$':
		return false
	}
	return true
}

// isLegalBareword reports whether word may appear unquoted as a key: a
// nonempty run of identifier characters not starting with a digit and
// not reserved.
func isLegalBareword(word string) bool {
	if word == "" {
		return false
	}
	if word[0] >= '0' && word[0] <= '9' {
		return false
	}
	if strings.ContainsFunc(word, badIdentifierChar) {
		return false
	}
	return !reservedWords[word]
}

// encodeKey writes a string key, bare when the dialect and the word
// both permit it.
func encodeKey(key string, w io.Writer, es *encState) error {
	if es.bareKeys && isLegalBareword(key) {
		return writeString(w, es.color.Key.Paint(key))
	}
	return encodeQuotedKey(key, w, es)
}
