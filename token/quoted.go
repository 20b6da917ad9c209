package token

import (
	"encoding/hex"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Quote renders v as a JSON string with minimal escaping: the two-character
// escapes for quote, backslash and the named C0 controls, \u00xx (lowercase
// hex) for the remaining C0 controls and for DEL, and raw UTF-8 for
// everything else.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if r < 0x20 || r == 0x7f {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

// ScanQuoted locates the terminator of a quoted string. s must begin with
// the opening quote. The terminator is the first unescaped closing quote
// or raw C0 control; its rune and byte indexes within s are returned,
// along with the terminating rune itself. ok is false when s runs out
// before a terminator appears.
func ScanQuoted(s string) (runeIdx, byteIdx int, term rune, ok bool) {
	escaped := false
	ri := -1
	for bi, r := range s {
		ri++
		if ri == 0 {
			continue
		}
		if escaped {
			escaped = false
			continue
		}
		switch {
		case r == '\\':
			escaped = true
		case r == '"' || r < 0x20:
			return ri, bi, r, true
		}
	}
	return 0, 0, 0, false
}

// Unquote decodes the JSON string literal q, including its surrounding
// quotes. The full escape grammar is processed; surrogate pairs combine
// into their supplementary code point, unpaired surrogates are rejected.
func Unquote(q string) (string, error) {
	if len(q) < 2 || q[0] != '"' {
		return "", ErrUnterminated
	}
	b := &strings.Builder{}
	i := 1
	for i < len(q) {
		switch c := q[i]; {
		case c == '"':
			if i != len(q)-1 {
				return "", ErrUnterminated
			}
			return b.String(), nil
		case c == '\\':
			i++
			if i >= len(q) {
				return "", ErrUnterminated
			}
			switch q[i] {
			case '"', '\\', '/':
				b.WriteByte(q[i])
				i++
			case 'b':
				b.WriteByte('\b')
				i++
			case 'f':
				b.WriteByte('\f')
				i++
			case 'n':
				b.WriteByte('\n')
				i++
			case 'r':
				b.WriteByte('\r')
				i++
			case 't':
				b.WriteByte('\t')
				i++
			case 'u':
				r, err := hex4(q[i+1:])
				if err != nil {
					return "", err
				}
				i += 5
				if utf16.IsSurrogate(r) {
					if r >= 0xdc00 {
						return "", ErrLoneSurrogate
					}
					if i+6 > len(q) || q[i] != '\\' || q[i+1] != 'u' {
						return "", ErrLoneSurrogate
					}
					r2, err := hex4(q[i+2:])
					if err != nil {
						return "", err
					}
					if r2 < 0xdc00 || r2 >= 0xe000 {
						return "", ErrLoneSurrogate
					}
					r = utf16.DecodeRune(r, r2)
					i += 6
				}
				b.WriteRune(r)
			default:
				return "", ErrBadEscape
			}
		case c < 0x20:
			return "", ErrUnicodeControl
		default:
			r, sz := utf8.DecodeRuneInString(q[i:])
			if r == utf8.RuneError && sz == 1 {
				return "", ErrBadUTF8
			}
			b.WriteRune(r)
			i += sz
		}
	}
	return "", ErrUnterminated
}

func hex4(s string) (rune, error) {
	if len(s) < 4 {
		return 0, ErrBadUnicode
	}
	var r rune
	for _, c := range []byte(s[:4]) {
		r <<= 4
		switch {
		case c >= '0' && c <= '9':
			r |= rune(c - '0')
		case c >= 'a' && c <= 'f':
			r |= rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			r |= rune(c-'A') + 10
		default:
			return 0, ErrBadUnicode
		}
	}
	return r, nil
}
