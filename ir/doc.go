// Package ir provides the intermediate representation (IR) for JSON documents.
//
// # Overview
//
// The IR package defines the tree of nodes the rest of the module builds,
// inspects, and encodes. Directives are composed into an ir.Node tree and the
// tree is then serialized to canonical JSON text.
//
// The IR contains no position information from the input, making it purely
// semantic.
//
// # Node Structure
//
// A Node represents a single JSON value:
//
//   - Atomic types: null, boolean, number, string
//   - Composite types: object (key-value pairs), array (ordered list)
//
// The IR works as a recursive tagged union structure, where values are placed
// in fields depending on the node type.
//
// Each node maintains parent-child relationships (Parent, ParentIndex,
// ParentField), allowing navigation back up the tree.
//
// # IR Structure Constraints
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i], so
// there will always be the same number of fields as values. Fields are string
// typed, hold decoded key text, and are kept in byte-sorted order by the
// constructors, so an encoder can emit canonical key order by walking Fields
// as stored. A key appears at most once.
//
// String values are stored decoded under the String field. Escaping is an
// encoding concern.
//
// Number values are stored under the Number field as the verbatim source
// text. Numbers are never reparsed or normalized.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromNumber("42")
//	flag := ir.FromBool(true)
//	obj := ir.FromMap(map[string]*ir.Node{
//	    "key": ir.FromString("value"),
//	})
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromNumber("1"),
//	    ir.FromNumber("2"),
//	})
//
// Incremental object construction goes through Put, which keeps the
// byte-sorted field order intact.
//
// # Thread Safety
//
// Node structures are not thread-safe. If you need to access nodes from
// multiple goroutines, you must synchronize access yourself.
//
// # Related Packages
//
//   - github.com/mattias-p/mkjson/compose - Builds IR trees from directives
//   - github.com/mattias-p/mkjson/encode - Encodes IR nodes to JSON text
package ir
