package compose

import (
	"fmt"
	"unicode/utf8"

	"github.com/mattias-p/mkjson/debug"
	"github.com/mattias-p/mkjson/directive"
	"github.com/mattias-p/mkjson/ir"
)

// Compose parses each directive and merges them all into one document.
// Directives are processed in order and the first problem encountered
// is reported. An empty directive list yields a nil document.
func Compose(directives []string) (*ir.Node, error) {
	b := newBuilder()
	for _, text := range directives {
		if !utf8.ValidString(text) {
			return nil, fmt.Errorf("directive %q: %w", text, ErrInvalidEncoding)
		}
		d, err := directive.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("directive %q: %w", text, err)
		}
		if err := b.add(d); err != nil {
			return nil, fmt.Errorf("validating: %w", err)
		}
	}
	if b.root == nil {
		return nil, nil
	}
	if err := b.complete(); err != nil {
		return nil, fmt.Errorf("validating: %w", err)
	}
	if debug.Compose() {
		n := 0
		_ = b.root.Visit(func(_ *ir.Node, isPost bool) (bool, error) {
			if !isPost {
				n++
			}
			return true, nil
		})
		debug.Logf("compose: %d directives, %d nodes: %v\n", len(directives), n, b.root)
	}
	return b.root, nil
}
