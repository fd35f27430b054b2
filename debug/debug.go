package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse     bool
	Normalize bool
	Diff      bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("FORMAT_JSON_DEBUG_PARSE")
	d.Normalize = boolEnv("FORMAT_JSON_DEBUG_NORMALIZE")
	d.Diff = boolEnv("FORMAT_JSON_DEBUG_DIFF")
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
func Normalize() bool {
	return d.Normalize
}
func Diff() bool {
	return d.Diff
}
