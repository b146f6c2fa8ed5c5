package encode

import (
	"strings"
	"testing"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/signadot/annotate-format/go-annotate/dialect"
	"github.com/signadot/annotate-format/go-annotate/doc"
	"github.com/signadot/annotate-format/go-annotate/num"
)

func dint(v int64) *doc.Node {
	return doc.FromInt(num.New(v, num.Dec))
}

func dhex(v int64) *doc.Node {
	return doc.FromInt(num.New(v, num.Hex))
}

func kv(k string, v *doc.Node) *doc.Node {
	return doc.Entry(k, v)
}

func kvcomment(k string, v *doc.Node, c string) *doc.Node {
	return doc.CommentedEntry(c, k, v)
}

func nesAddress(seg string, bank int64, addr int64) *doc.Node {
	return doc.Compact(doc.Mapping(
		kv(seg, doc.Sequence(dint(bank), dhex(addr))),
	))
}

func diffText(from, to string) string {
	dmp := diffpatch.New()
	return dmp.DiffPrettyText(dmp.DiffMain(from, to, true))
}

func check(t *testing.T, node *doc.Node, expected string, opts ...Option) {
	t.Helper()
	got, err := String(node, opts...)
	if err != nil {
		t.Fatal(err)
	}
	if got != expected {
		t.Errorf("render mismatch (want vs got):\n%s", diffText(expected, got))
	}
}

func TestBasicDocument(t *testing.T) {
	check(t, doc.Comment("woohoo!"), "")
	check(t, doc.Comment("woohoo!"), "// woohoo!\n", As(dialect.JSON5))
	check(t, doc.Comment("woohoo!"), "# woohoo!\n", As(dialect.Hjson))
	check(t, doc.Null(), "null")
	check(t, doc.FromBool(true), "true")
	// Plain integer.
	check(t, dint(5), "5")
	// Integer wants to be hex, but hex isn't allowed.
	check(t, dhex(15), "15")
	// Integer wants to be hex, hex is allowed, but not as a literal.
	check(t, dhex(16), `"0x10"`, Bases(num.Hex))
	// Integer wants to be hex, hex literals allowed.
	check(t, dhex(16), "0x10", As(dialect.JSON5))
	check(t, doc.FromString("hello"), `"hello"`)
	check(t, doc.FromFloat(3.14159), "3.14159")
}

func TestBasicList(t *testing.T) {
	expect := `[
  5,
  10,
  15,
  "foo"
]`
	list := doc.Sequence(dint(5), dint(10), dint(15), doc.FromString("foo"))
	check(t, list, expect)
	check(t, list, `[5, 10, 15, "foo"]`, Compact(true))
}

func TestBasicMap(t *testing.T) {
	expect := `{
  "a": 5,
  "b": 10,
  "c": 15,
  "true": "foo"
}`
	m := doc.Mapping(
		kv("a", dint(5)),
		kv("b", dint(10)),
		kv("c", dint(15)),
		kv("true", doc.FromString("foo")),
	)
	check(t, m, expect)
}

func TestBasicMap5(t *testing.T) {
	expect := `{
  a: 5,
  b: 10,
  c: 0xF,
  "true": "foo"
}`
	m := doc.Mapping(
		kv("a", dint(5)),
		kv("b", dint(10)),
		kv("c", dhex(15)),
		kv("true", doc.FromString("foo")),
	)
	check(t, m, expect, As(dialect.JSON5))
}

func TestCompactMap5(t *testing.T) {
	m := doc.Mapping(
		kv("a", dint(5)),
		kv("b", dint(10)),
		kv("c", dhex(15)),
		kv("true", doc.FromString("foo")),
	)
	check(t, m, `{a: 5, b: 10, c: 0xF, "true": "foo"}`, As(dialect.JSON5), Compact(true))
}

func TestMixedMap5(t *testing.T) {
	expect := `{
  gameplay: {prg: [0, 0x8000]},
  overworld: {prg: [1, 0x8000]},
  palaces: {prg: [4, 0x8000]},
  title: {prg: [5, 0x8000]},
  music: {prg: [6, 0x8000]},
  reset: {prg: [-1, 0xFFFA]}
}`
	m := doc.Mapping(
		kv("gameplay", nesAddress("prg", 0, 0x8000)),
		kv("overworld", nesAddress("prg", 1, 0x8000)),
		kv("palaces", nesAddress("prg", 4, 0x8000)),
		kv("title", nesAddress("prg", 5, 0x8000)),
		kv("music", nesAddress("prg", 6, 0x8000)),
		kv("reset", nesAddress("prg", -1, 0xFFFA)),
	)
	check(t, m, expect, As(dialect.JSON5))
}

func demoMap(lineBreaks string) *doc.Node {
	return doc.Mapping(
		kvcomment("unquoted", doc.FromString("and you can quote me on that"), "comments"),
		kv("singleQuotes", doc.FromString("not really, though")),
		kv("lineBreaks", doc.FromMultiline(lineBreaks)),
		kv("hexadecimal", dhex(0xdecaf)),
		kv("leadingDecimal(not)", doc.FromFloat(0.8675309)),
		kv("andTrailing(not)", doc.FromFloat(8675309.0)),
		kv("positiveSign(not)", dint(1)),
		kv("trailingComma(not)", doc.Sequence(
			doc.FromString("in objects"), doc.FromString("or arrays"))),
		kv("backwardsCompatible", doc.FromString("with JSON")),
	)
}

func TestDemoMap5(t *testing.T) {
	expect := `{
  // comments
  unquoted: "and you can quote me on that",
  singleQuotes: "not really, though",
  lineBreaks: "Look, Mom! \
No \\n's!",
  hexadecimal: 0xDECAF,
  "leadingDecimal(not)": 0.8675309,
  "andTrailing(not)": 8675309,
  "positiveSign(not)": 1,
  "trailingComma(not)": [
    "in objects",
    "or arrays"
  ],
  backwardsCompatible: "with JSON"
}`
	check(t, demoMap("Look, Mom! \nNo \\n's!"), expect, As(dialect.JSON5))
}

func TestDemoMapH(t *testing.T) {
	expect := "{\n" +
		"  # comments\n" +
		"  unquoted: \"and you can quote me on that\",\n" +
		"  singleQuotes: \"not really, though\",\n" +
		"  lineBreaks: \n" +
		"    '''\n" +
		"    Look, Mom!\n" +
		"    No \\\\n's!\n" +
		"    ''',\n" +
		"  hexadecimal: 912559,\n" +
		"  \"leadingDecimal(not)\": 0.8675309,\n" +
		"  \"andTrailing(not)\": 8675309,\n" +
		"  \"positiveSign(not)\": 1,\n" +
		"  \"trailingComma(not)\": [\n" +
		"    \"in objects\",\n" +
		"    \"or arrays\"\n" +
		"  ],\n" +
		"  backwardsCompatible: \"with JSON\"\n" +
		"}"
	check(t, demoMap("Look, Mom!\nNo \\n's!"), expect, As(dialect.Hjson))
}

func TestRepeatedRendersAgree(t *testing.T) {
	node := demoMap("a\nb")
	opts := []Option{As(dialect.JSON5), Indent(4)}
	first := MustString(node, opts...)
	for i := 0; i < 3; i++ {
		if got := MustString(node, opts...); got != first {
			t.Fatalf("render %d diverged:\n%s", i, diffText(first, got))
		}
	}
}

// flattened strips layout from a comment-free multi-line rendering the
// way compact mode lays the same content out.
func flattened(s string) string {
	s = strings.ReplaceAll(s, ",\n", ", ")
	var b strings.Builder
	for _, line := range strings.Split(s, "\n") {
		b.WriteString(strings.TrimLeft(line, " "))
	}
	return b.String()
}

func TestCompactEquivalence(t *testing.T) {
	trees := []*doc.Node{
		doc.Sequence(dint(5), dint(10), dint(15), doc.FromString("foo")),
		doc.Mapping(
			kv("a", doc.Sequence(dint(1), dint(2))),
			kv("b", doc.Mapping(kv("c", doc.FromBool(true)))),
		),
	}
	for i, n := range trees {
		full := MustString(n)
		compact := MustString(n, Compact(true))
		if got := flattened(full); got != compact {
			t.Errorf("tree %d: flattened %q, compact %q", i, got, compact)
		}
	}
}

func TestSeparatorCounts(t *testing.T) {
	seq := doc.Sequence(dint(1), dint(2), dint(3), dint(4))
	if got := strings.Count(MustString(seq), ","); got != 3 {
		t.Errorf("sequence: got %d separators, want 3", got)
	}
	m := doc.Mapping(kv("a", dint(1)), kv("b", dint(2)), kv("c", dint(3)))
	if got := strings.Count(MustString(m), ","); got != 2 {
		t.Errorf("mapping: got %d separators, want 2", got)
	}
}
