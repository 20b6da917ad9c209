// Package mkjson composes path assignment directives into a single
// canonical JSON document.
//
// Each directive assigns one value at one path, as in "a.b:1" or
// "greeting=hello".  Compose merges any number of them, creating the
// interior objects and arrays their paths imply, and rejects
// directives that contradict each other.  The cmd/mkjson and
// cmd/mkjsonrpc commands are thin wrappers around this package.
package mkjson

import (
	"github.com/mattias-p/mkjson/compose"
	"github.com/mattias-p/mkjson/encode"
	"github.com/mattias-p/mkjson/ir"
	"github.com/mattias-p/mkjson/rpc"
)

// Compose merges directives into one document.  It returns a nil
// node and a nil error when directives is empty.
func Compose(directives []string) (*ir.Node, error) {
	return compose.Compose(directives)
}

// ComposeString is Compose rendered to canonical JSON.  The bool
// reports whether there was a document to render.
func ComposeString(directives []string) (string, bool, error) {
	doc, err := compose.Compose(directives)
	if err != nil || doc == nil {
		return "", false, err
	}
	return encode.MustString(doc), true, nil
}

// Call composes directives into the params of a JSON-RPC 2.0 call
// envelope.  The method and id arguments take the same forms as the
// -m and -i options of mkjsonrpc; pass rpc.IDOmit for a
// notification.
func Call(method, id string, directives []string) (*ir.Node, error) {
	m, err := rpc.ParseMethod(method)
	if err != nil {
		return nil, err
	}
	idNode, err := rpc.ParseID(id)
	if err != nil {
		return nil, err
	}
	params, err := compose.Compose(directives)
	if err != nil {
		return nil, err
	}
	return rpc.Envelope(m, idNode, params), nil
}
