package doc

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/annotate-format/go-annotate/num"
)

func TestFromValue(t *testing.T) {
	tests := []struct {
		name     string
		in       any
		expected *Node
	}{
		{name: "nil", in: nil, expected: Null()},
		{name: "bool", in: true, expected: FromBool(true)},
		{name: "string", in: "hi", expected: FromString("hi")},
		{name: "int", in: 42, expected: FromInt64(42)},
		{name: "uint64-large", in: uint64(1 << 63), expected: FromInt(num.NewUint(1<<63, num.Dec))},
		{name: "float", in: 3.5, expected: FromFloat(3.5)},
		{name: "whole-float", in: 5.0, expected: FromInt64(5)},
		{name: "bytes", in: []byte{1, 2}, expected: FromBytes([]byte{1, 2})},
		{
			name:     "slice",
			in:       []any{1, "a"},
			expected: Sequence(FromInt64(1), FromString("a")),
		},
		{
			name: "map-sorted",
			in:   map[string]any{"b": 2, "a": 1},
			expected: Mapping(
				Entry("a", FromInt64(1)),
				Entry("b", FromInt64(2)),
			),
		},
		{
			name: "nested",
			in:   map[string]any{"xs": []any{nil, false}},
			expected: Mapping(
				Entry("xs", Sequence(Null(), FromBool(false))),
			),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FromValue(tc.in)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(tc.expected, got, cmp.AllowUnexported(num.Int{})); d != "" {
				t.Errorf("tree mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestFromValueNumbers(t *testing.T) {
	dec := json.NewDecoder(strings.NewReader(`[5, 9007199254740993, 3.25, 18446744073709551615]`))
	dec.UseNumber()
	var vs []any
	if err := dec.Decode(&vs); err != nil {
		t.Fatal(err)
	}
	got, err := FromValue(vs)
	if err != nil {
		t.Fatal(err)
	}
	expected := Sequence(
		FromInt64(5),
		FromInt64(9007199254740993),
		FromFloat(3.25),
		FromInt(num.NewUint(18446744073709551615, num.Dec)),
	)
	if d := cmp.Diff(expected, got, cmp.AllowUnexported(num.Int{})); d != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", d)
	}
}

func TestFromValueUnsupported(t *testing.T) {
	_, err := FromValue(struct{}{})
	if !errors.Is(err, ErrValue) {
		t.Errorf("got %v, want ErrValue", err)
	}
	_, err = FromValue(map[string]any{"k": make(chan int)})
	if !errors.Is(err, ErrValue) {
		t.Errorf("nested: got %v, want ErrValue", err)
	}
}
