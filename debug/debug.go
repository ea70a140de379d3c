package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Eval  bool
	Patch bool
	Diff  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("CANONJSON_DEBUG_PARSE")
	d.Eval = boolEnv("CANONJSON_DEBUG_EVAL")
	d.Patch = boolEnv("CANONJSON_DEBUG_PATCH")
	d.Diff = boolEnv("CANONJSON_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Eval() bool {
	return d.Eval
}
func Patch() bool {
	return d.Patch
}
func Diff() bool {
	return d.Diff
}
