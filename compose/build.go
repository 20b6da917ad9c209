package compose

import (
	"slices"

	"github.com/mattias-p/mkjson/directive"
	"github.com/mattias-p/mkjson/ir"
)

// builder grows the document one directive at a time. Nodes reached by
// walking a path into existence are implied containers; nodes placed by
// a directive are assigned values and may not be entered or replaced.
type builder struct {
	root     *ir.Node
	assigned map[*ir.Node]struct{}
}

func newBuilder() *builder {
	return &builder{assigned: map[*ir.Node]struct{}{}}
}

func (b *builder) add(d directive.Directive) error {
	if len(d.Path) == 0 {
		return b.addRoot(d)
	}
	if b.root == nil {
		b.root = containerFor(d.Path[0])
	}
	cur := b.root
	for i, seg := range d.Path {
		if err := b.checkContainer(cur, d.Path[:i], seg); err != nil {
			return err
		}
		child := childAt(cur, seg)
		if child == nil {
			b.graft(cur, d, i)
			return nil
		}
		if i == len(d.Path)-1 {
			if _, ok := b.assigned[child]; ok {
				return &PathError{Path: d.Path, Err: ErrDuplicateAssignment}
			}
			return &PathError{Path: d.Path, Err: &StructuralConflict{First: b.kindOf(child), Second: KindValue}}
		}
		cur = child
	}
	return nil
}

func (b *builder) addRoot(d directive.Directive) error {
	if b.root == nil {
		b.root = d.Value
		b.assigned[d.Value] = struct{}{}
		return nil
	}
	if _, ok := b.assigned[b.root]; ok {
		return &PathError{Path: d.Path, Err: ErrDuplicateAssignment}
	}
	return &PathError{Path: d.Path, Err: &StructuralConflict{First: b.kindOf(b.root), Second: KindValue}}
}

// checkContainer requires cur, sitting at prefix, to be the kind of
// container seg wants to step into. An object-vs-array mismatch at the
// root is its own error kind.
func (b *builder) checkContainer(cur *ir.Node, prefix directive.Path, seg directive.Segment) error {
	want := KindObject
	if !seg.IsKey {
		want = KindArray
	}
	got := b.kindOf(cur)
	if got == want {
		return nil
	}
	if len(prefix) == 0 && got != KindValue {
		return &PathError{Path: prefix, Err: &RootConflict{First: got, Second: want}}
	}
	return &PathError{Path: prefix, Err: &StructuralConflict{First: got, Second: want}}
}

// graft creates the unclaimed tail of d.Path under parent: implied
// containers for the intermediate segments, the directive's value at
// the end.
func (b *builder) graft(parent *ir.Node, d directive.Directive, i int) {
	for ; i < len(d.Path)-1; i++ {
		c := containerFor(d.Path[i+1])
		put(parent, d.Path[i], c)
		parent = c
	}
	put(parent, d.Path[i], d.Value)
	b.assigned[d.Value] = struct{}{}
}

func (b *builder) kindOf(n *ir.Node) Kind {
	if _, ok := b.assigned[n]; ok {
		return KindValue
	}
	if n.Type == ir.ArrayType {
		return KindArray
	}
	return KindObject
}

// complete rejects arrays with index gaps. Holes are nil entries left
// by growing an array past an index that no directive filled in.
func (b *builder) complete() error {
	return b.root.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost || n.Type != ir.ArrayType {
			return true, nil
		}
		for i, v := range n.Values {
			if v != nil {
				continue
			}
			seen := i + 1
			for n.Values[seen] == nil {
				seen++
			}
			return false, &PathError{
				Path: pathOf(n),
				Err:  &IncompleteArray{Seen: uint32(seen), Missing: uint32(i)},
			}
		}
		return true, nil
	})
}

func childAt(parent *ir.Node, seg directive.Segment) *ir.Node {
	if seg.IsKey {
		return ir.Get(parent, seg.Key)
	}
	if int(seg.Index) < len(parent.Values) {
		return parent.Values[seg.Index]
	}
	return nil
}

func containerFor(seg directive.Segment) *ir.Node {
	if seg.IsKey {
		return &ir.Node{Type: ir.ObjectType}
	}
	return &ir.Node{Type: ir.ArrayType}
}

func put(parent *ir.Node, seg directive.Segment, v *ir.Node) {
	if seg.IsKey {
		ir.Put(parent, seg.Key, v)
		return
	}
	for len(parent.Values) <= int(seg.Index) {
		parent.Values = append(parent.Values, nil)
	}
	parent.Values[seg.Index] = v
	v.Parent = parent
	v.ParentIndex = int(seg.Index)
}

func pathOf(n *ir.Node) directive.Path {
	var segs []directive.Segment
	for n.Parent != nil {
		if n.Parent.Type == ir.ObjectType {
			segs = append(segs, directive.KeySegment(n.ParentField))
		} else {
			segs = append(segs, directive.IndexSegment(uint32(n.ParentIndex)))
		}
		n = n.Parent
	}
	slices.Reverse(segs)
	return directive.Path(segs)
}
