package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Compose bool
	Encode  bool
	RPC     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Compose = boolEnv("MKJSON_DEBUG_COMPOSE")
	d.Encode = boolEnv("MKJSON_DEBUG_ENCODE")
	d.RPC = boolEnv("MKJSON_DEBUG_RPC")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Compose() bool {
	return d.Compose
}
func Encode() bool {
	return d.Encode
}
func RPC() bool {
	return d.RPC
}
