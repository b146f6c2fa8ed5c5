package doc

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/signadot/annotate-format/go-annotate/num"
)

// FromValue builds a document tree from decoded Go data such as the
// result of json or yaml unmarshaling into any.  Map keys are emitted
// in sorted order.  json.Number values keep integer form when they have
// one.
func FromValue(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x, nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case json.Number:
		return fromNumber(x)
	case int:
		return FromInt64(int64(x)), nil
	case int8:
		return FromInt64(int64(x)), nil
	case int16:
		return FromInt64(int64(x)), nil
	case int32:
		return FromInt64(int64(x)), nil
	case int64:
		return FromInt64(x), nil
	case uint:
		return FromInt(num.NewUint(uint64(x), num.Dec)), nil
	case uint8:
		return FromInt64(int64(x)), nil
	case uint16:
		return FromInt64(int64(x)), nil
	case uint32:
		return FromInt64(int64(x)), nil
	case uint64:
		return FromInt(num.NewUint(x, num.Dec)), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return fromFloat64(x), nil
	case []byte:
		return FromBytes(x), nil
	case []any:
		values := make([]*Node, 0, len(x))
		for _, e := range x {
			n, err := FromValue(e)
			if err != nil {
				return nil, err
			}
			values = append(values, n)
		}
		return Sequence(values...), nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		entries := make([]*Node, 0, len(keys))
		for _, k := range keys {
			n, err := FromValue(x[k])
			if err != nil {
				return nil, err
			}
			entries = append(entries, Entry(k, n))
		}
		return Mapping(entries...), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrValue, v)
	}
}

func fromNumber(v json.Number) (*Node, error) {
	if i, err := strconv.ParseInt(v.String(), 10, 64); err == nil {
		return FromInt64(i), nil
	}
	if u, err := strconv.ParseUint(v.String(), 10, 64); err == nil {
		return FromInt(num.NewUint(u, num.Dec)), nil
	}
	f, err := v.Float64()
	if err != nil {
		return nil, fmt.Errorf("%w: number %q", ErrValue, v.String())
	}
	return FromFloat(f), nil
}

// fromFloat64 keeps integral doubles in integer form, which matches how
// json decoders hand back whole numbers when not configured to use
// json.Number.
func fromFloat64(v float64) *Node {
	if v == math.Trunc(v) && math.Abs(v) < 1<<53 {
		return FromInt64(int64(v))
	}
	return FromFloat(v)
}
