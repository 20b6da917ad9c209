package directive

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mattias-p/mkjson/ir"
	"github.com/mattias-p/mkjson/token"
)

// Directive is one parsed assignment: the path of the node it sets and
// the value to put there.
type Directive struct {
	Path  Path
	Value *ir.Node
}

// Parse reads one directive of the form path:value or path=value. The
// colon form takes a JSON scalar or an empty container; the equals form
// takes the rest of the string verbatim. Error positions are 1-based
// character positions within text.
func Parse(text string) (Directive, error) {
	path, b, pos, err := parsePath(text)
	if err != nil {
		return Directive{}, err
	}
	if b >= len(text) {
		return Directive{}, unexpectedEnd()
	}
	op, sz := utf8.DecodeRuneInString(text[b:])
	switch op {
	case ':':
		v, err := parseValue(text[b+sz:], pos+1)
		if err != nil {
			return Directive{}, err
		}
		return Directive{Path: path, Value: v}, nil
	case '=':
		return Directive{Path: path, Value: ir.FromString(text[b+sz:])}, nil
	default:
		return Directive{}, unexpectedChar(pos, op)
	}
}

// parsePath consumes segments up to but not including the operator. It
// returns the byte offset and character position where the operator
// must appear. A leading dot is the root path and admits no segments.
func parsePath(text string) (Path, int, int, error) {
	if text == "" {
		return nil, 0, 0, unexpectedEnd()
	}
	if text[0] == '.' {
		return Path{}, 1, 2, nil
	}
	var path Path
	b, pos := 0, 1
	for {
		seg, nb, npos, err := parseSegment(text, b, pos)
		if err != nil {
			return nil, 0, 0, err
		}
		path = append(path, seg)
		b, pos = nb, npos
		if b < len(text) && text[b] == '.' {
			b++
			pos++
			continue
		}
		return path, b, pos, nil
	}
}

func parseSegment(text string, b, pos int) (Segment, int, int, error) {
	if b >= len(text) {
		return Segment{}, 0, 0, unexpectedEnd()
	}
	c, sz := utf8.DecodeRuneInString(text[b:])
	switch {
	case c == '"':
		runeIdx, byteIdx, term, ok := token.ScanQuoted(text[b:])
		if !ok {
			return Segment{}, 0, 0, unexpectedEnd()
		}
		if term != '"' {
			return Segment{}, 0, 0, unexpectedChar(pos+runeIdx, term)
		}
		key, err := token.Unquote(text[b : b+byteIdx+1])
		if err != nil {
			return Segment{}, 0, 0, invalidKey(pos + runeIdx)
		}
		return KeySegment(key), b + byteIdx + 1, pos + runeIdx + 1, nil
	case c >= '0' && c <= '9':
		n := 1
		for b+n < len(text) && text[b+n] >= '0' && text[b+n] <= '9' {
			n++
		}
		digits := text[b : b+n]
		if digits[0] == '0' && n > 1 {
			return Segment{}, 0, 0, unexpectedChar(pos+1, rune(digits[1]))
		}
		v, err := strconv.ParseUint(digits, 10, 32)
		if err != nil {
			return Segment{}, 0, 0, invalidIndex(pos + n)
		}
		return IndexSegment(uint32(v)), b + n, pos + n, nil
	case isXIDStart(c):
		nb, npos := b+sz, pos+1
		for nb < len(text) {
			r, rsz := utf8.DecodeRuneInString(text[nb:])
			if !isXIDContinue(r) {
				break
			}
			nb += rsz
			npos++
		}
		return KeySegment(text[b:nb]), nb, npos, nil
	default:
		return Segment{}, 0, 0, unexpectedChar(pos, c)
	}
}

// ParseValue parses s as a single directive value: a JSON scalar or an
// empty container with nothing around it. Error positions are 1-based
// within s.
func ParseValue(s string) (*ir.Node, error) {
	return parseValue(s, 1)
}

func parseValue(s string, pos int) (*ir.Node, error) {
	if s == "" {
		return nil, unexpectedEnd()
	}
	c, _ := utf8.DecodeRuneInString(s)
	switch {
	case c == 'n':
		return parseLiteral(s, pos, "null", ir.Null())
	case c == 't':
		return parseLiteral(s, pos, "true", ir.FromBool(true))
	case c == 'f':
		return parseLiteral(s, pos, "false", ir.FromBool(false))
	case c == '-' || c >= '0' && c <= '9':
		return parseNumber(s, pos)
	case c == '"':
		return parseString(s, pos)
	case c == '{':
		return parseContainer(s, pos, '}', ir.FromMap(nil))
	case c == '[':
		return parseContainer(s, pos, ']', ir.FromSlice(nil))
	case c == ' ' || c == '\t' || c == '\n' || c == '\r':
		return nil, unexpectedChar(pos, c)
	default:
		return nil, invalidValue(pos)
	}
}

func parseLiteral(s string, pos int, lit string, n *ir.Node) (*ir.Node, error) {
	if !strings.HasPrefix(s, lit) {
		return nil, invalidValue(pos)
	}
	if len(s) == len(lit) {
		return n, nil
	}
	c, _ := utf8.DecodeRuneInString(s[len(lit):])
	if boundary(c) {
		return nil, unexpectedChar(pos+len(lit), c)
	}
	return nil, invalidValue(pos)
}

func parseNumber(s string, pos int) (*ir.Node, error) {
	n := token.Number(s)
	if n == 0 {
		return nil, invalidValue(pos)
	}
	if n == len(s) {
		return ir.FromNumber(s), nil
	}
	c, _ := utf8.DecodeRuneInString(s[n:])
	if boundary(c) {
		return nil, unexpectedChar(pos+n, c)
	}
	return nil, invalidValue(pos)
}

func parseString(s string, pos int) (*ir.Node, error) {
	runeIdx, byteIdx, term, ok := token.ScanQuoted(s)
	if !ok || term != '"' {
		return nil, invalidValue(pos)
	}
	dec, err := token.Unquote(s[:byteIdx+1])
	if err != nil {
		return nil, invalidValue(pos)
	}
	if byteIdx+1 < len(s) {
		c, _ := utf8.DecodeRuneInString(s[byteIdx+1:])
		return nil, unexpectedChar(pos+runeIdx+1, c)
	}
	return ir.FromString(dec), nil
}

func parseContainer(s string, pos int, close byte, n *ir.Node) (*ir.Node, error) {
	if len(s) == 1 {
		return nil, unexpectedEnd()
	}
	if s[1] != close {
		c, _ := utf8.DecodeRuneInString(s[1:])
		return nil, unexpectedChar(pos+1, c)
	}
	if len(s) > 2 {
		c, _ := utf8.DecodeRuneInString(s[2:])
		return nil, unexpectedChar(pos+2, c)
	}
	return n, nil
}

// boundary matches the characters that may legitimately follow a JSON
// number or literal inside a larger document. Anything else fuses with
// the token and makes the whole value malformed rather than leaving a
// trailing character.
func boundary(c rune) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '"', '[', ']', '{', '}', ',', ':':
		return true
	}
	return false
}
