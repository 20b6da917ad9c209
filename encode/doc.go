// Package encode renders IR nodes as canonical JSON.
//
// # Usage
//
//	node := ir.FromMap(map[string]*ir.Node{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromNumber("30"),
//	})
//	err := encode.Encode(node, os.Stdout)
//
// The output is deterministic: object fields keep their stored order,
// which compose maintains byte-sorted, and no insignificant whitespace
// is produced. Strings use the shortest escape for each character and
// numbers are written exactly as they were given.
//
// # Related Packages
//
//   - github.com/mattias-p/mkjson/ir - IR representation
//   - github.com/mattias-p/mkjson/compose - Build IR from directives
package encode
