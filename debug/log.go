package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/annotate-format/go-annotate/doc"
	"github.com/signadot/annotate-format/go-annotate/encode"
)

// Doc wraps a node so logging formats it as rendered JSON.
type Doc struct{ *doc.Node }

func (y Doc) String() string {
	s, err := encode.String(y.Node)
	if err != nil {
		return fmt.Sprintf("[raw doc] %v", y.Node)
	}
	return s
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *doc.Node:
			s, err := encode.String(x)
			if err != nil {
				args[i] = fmt.Sprintf("[raw doc] %v", x)
				continue
			}
			args[i] = s
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
