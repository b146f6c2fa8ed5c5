// Package paint colors rendered output.  A [Profile] assigns a [Style]
// to each syntactic role the renderer distinguishes.  The zero Profile,
// and every nil Style, leaves text unchanged, so plain output needs no
// configuration at all.
package paint

import (
	"strings"

	"github.com/fatih/color"
)

// Style renders a fragment of output for display.  Styles follow the
// Sprintf shape of github.com/fatih/color so its SprintfFunc values can
// be used directly, but see [Sprintf] for the safe wrapping.
type Style func(format string, a ...any) string

// Paint applies the style to v.  v is taken literally, never as a
// format string.  A nil Style returns v unchanged.
func (s Style) Paint(v string) string {
	if s == nil {
		return v
	}
	return s(v)
}

// Sprintf adapts a Sprintf-shaped coloring function into a Style which
// treats its input literally.
func Sprintf(f func(format string, a ...any) string) Style {
	return func(v string, _ ...any) string {
		return f(strings.Replace(v, "%", "%%", -1))
	}
}

// Profile assigns a style per syntactic role.
type Profile struct {
	// Punctuation covers quotes, colons and commas.
	Punctuation Style
	// Key colors mapping key text.
	Key Style
	// String colors string values, Escape the escapes inside them.
	String Style
	Escape Style
	// Integer, Float, Boolean and Null color the scalar values.
	Integer Style
	Float   Style
	Boolean Style
	Null    Style
	// Comment colors comment leaders and text.
	Comment Style
	// Aggregate colors brackets and braces.
	Aggregate Style
}

// Plain returns a profile which leaves all output unchanged.
func Plain() *Profile {
	return &Profile{}
}

// Colored returns the default terminal color profile.
func Colored() *Profile {
	return &Profile{
		Punctuation: Sprintf(color.RGB(196, 128, 128).SprintfFunc()),
		Key:         Sprintf(color.RGB(128, 168, 196).SprintfFunc()),
		String:      Sprintf(color.RGB(8, 196, 16).SprintfFunc()),
		Escape:      Sprintf(color.RGB(198, 198, 46).SprintfFunc()),
		Integer:     Sprintf(color.RGB(128, 216, 236).SprintfFunc()),
		Float:       Sprintf(color.RGB(128, 216, 236).SprintfFunc()),
		Boolean:     Sprintf(color.CyanString),
		Null:        Sprintf(color.RGB(168, 0, 196).SprintfFunc()),
		Comment:     Sprintf(color.BlueString),
		Aggregate:   Sprintf(color.RGB(74, 92, 138).SprintfFunc()),
	}
}
