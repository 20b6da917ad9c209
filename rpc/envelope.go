package rpc

import (
	"github.com/mattias-p/mkjson/debug"
	"github.com/mattias-p/mkjson/ir"
)

// Version is the protocol version stamped into every envelope.
const Version = "2.0"

// Envelope builds a JSON-RPC 2.0 call document. A nil id omits the id
// member, making the call a notification. A nil params defaults to an
// empty object so the envelope always carries a params member.
func Envelope(method string, id, params *ir.Node) *ir.Node {
	if params == nil {
		params = ir.FromMap(nil)
	}
	m := map[string]*ir.Node{
		"jsonrpc": ir.FromString(Version),
		"method":  ir.FromString(method),
		"params":  params,
	}
	if id != nil {
		m["id"] = id
	}
	res := ir.FromMap(m)
	if debug.RPC() {
		debug.Logf("rpc: method %q: %v\n", method, res)
	}
	return res
}
