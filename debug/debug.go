package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Tree  bool
	Opts  bool
	Patch bool
	Eval  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tree = boolEnv("AJ_DEBUG_TREE")
	d.Opts = boolEnv("AJ_DEBUG_OPTS")
	d.Patch = boolEnv("AJ_DEBUG_PATCH")
	d.Eval = boolEnv("AJ_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tree() bool {
	return d.Tree
}
func Opts() bool {
	return d.Opts
}
func Patch() bool {
	return d.Patch
}
func Eval() bool {
	return d.Eval
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
