// Package rpc shapes composed documents into JSON-RPC 2.0 call
// envelopes.
package rpc
