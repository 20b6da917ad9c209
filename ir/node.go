package ir

import (
	"maps"
	"slices"
	"strings"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String string
	Bool   bool
	Number string
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

// FromNumber wraps a JSON number. The text is kept verbatim and is
// never reparsed, so the caller's spelling survives to the output.
func FromNumber(text string) *Node {
	return &Node{
		Type:   NumberType,
		Number: text,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromMap(m map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]*Node, len(m))
	res.Values = make([]*Node, len(m))
	keys := slices.Sorted(maps.Keys(m))
	for i, key := range keys {
		v := m[key]
		v.Parent = res
		v.ParentIndex = i
		v.ParentField = key
		res.Fields[i] = &Node{
			Parent:      res,
			ParentIndex: i,
			ParentField: key,
			Type:        StringType,
			String:      key,
		}
		res.Values[i] = v
	}
	return res
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = make([]*Node, len(vs))
	for i, v := range vs {
		res.Values[i] = v
		v.Parent = res
		v.ParentIndex = i
	}
	return res
}

func Get(n *Node, field string) *Node {
	m := len(n.Fields)
	for i := range m {
		if n.Fields[i].String == field {
			return n.Values[i]
		}
	}
	return nil
}

// Put inserts val under field, keeping Fields in byte-sorted key order.
// The caller must ensure field is not already present.
func Put(n *Node, field string, val *Node) {
	pos, _ := slices.BinarySearchFunc(n.Fields, field, func(f *Node, key string) int {
		return strings.Compare(f.String, key)
	})
	key := &Node{
		Parent:      n,
		ParentField: field,
		Type:        StringType,
		String:      field,
	}
	n.Fields = slices.Insert(n.Fields, pos, key)
	n.Values = slices.Insert(n.Values, pos, val)
	val.Parent = n
	val.ParentField = field
	for i := pos; i < len(n.Fields); i++ {
		n.Fields[i].ParentIndex = i
		n.Values[i].ParentIndex = i
	}
}

func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, v := range n.Values {
			if v == nil {
				continue
			}
			if err := v.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

func (n *Node) Root() *Node {
	res := n
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
