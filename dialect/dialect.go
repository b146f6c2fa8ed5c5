// Package dialect names the output dialects the renderer can target.
package dialect

import (
	"errors"
	"fmt"
)

type Dialect int

const (
	JSON Dialect = iota
	JSON5
	Hjson
)

var ErrBadDialect = errors.New("bad dialect")

func Parse(v string) (Dialect, error) {
	d, ok := map[string]Dialect{
		"j":     JSON,
		"json":  JSON,
		"5":     JSON5,
		"json5": JSON5,
		"h":     Hjson,
		"hjson": Hjson,
	}[v]
	if ok {
		return d, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadDialect, v)
}

func (d Dialect) String() string {
	t, err := d.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(t)
}

func (d Dialect) MarshalText() ([]byte, error) {
	switch d {
	case JSON:
		return []byte("json"), nil
	case JSON5:
		return []byte("json5"), nil
	case Hjson:
		return []byte("hjson"), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadDialect, int(d))
	}
}

func (d *Dialect) UnmarshalText(t []byte) error {
	pd, err := Parse(string(t))
	if err != nil {
		return err
	}
	*d = pd
	return nil
}

func (d Dialect) IsJSON() bool  { return d == JSON }
func (d Dialect) IsJSON5() bool { return d == JSON5 }
func (d Dialect) IsHjson() bool { return d == Hjson }

// Suffix returns the file extension for this dialect (including the dot).
func (d Dialect) Suffix() string {
	switch d {
	case JSON:
		return ".json"
	case JSON5:
		return ".json5"
	case Hjson:
		return ".hjson"
	default:
		return ""
	}
}

// All returns all dialects in preference order.
func All() []Dialect {
	return []Dialect{JSON, JSON5, Hjson}
}
