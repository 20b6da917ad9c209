package directive

import (
	"strconv"
	"strings"

	"github.com/mattias-p/mkjson/token"
)

// Segment is one step of a path, either an object key or an array
// index. Keys hold the decoded text; quoting is a rendering concern.
type Segment struct {
	Key   string
	Index uint32
	IsKey bool
}

// KeySegment returns a Segment addressing the object field k.
func KeySegment(k string) Segment {
	return Segment{Key: k, IsKey: true}
}

// IndexSegment returns a Segment addressing the array element i.
func IndexSegment(i uint32) Segment {
	return Segment{Index: i}
}

// String renders the segment in directive syntax. Keys that qualify as
// bare identifiers stay bare, all others are quoted.
func (s Segment) String() string {
	if !s.IsKey {
		return strconv.FormatUint(uint64(s.Index), 10)
	}
	if IsBareKey(s.Key) {
		return s.Key
	}
	return token.Quote(s.Key)
}

// Path addresses one node in the composed document. The empty path is
// the document root.
type Path []Segment

// String renders the path in directive syntax. The root renders as ".".
func (p Path) String() string {
	if len(p) == 0 {
		return "."
	}
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = s.String()
	}
	return strings.Join(parts, ".")
}
