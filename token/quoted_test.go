package token

import (
	"errors"
	"testing"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", `""`},
		{"plain", "abc", `"abc"`},
		{"quote", `a"b`, `"a\"b"`},
		{"backslash", `a\b`, `"a\\b"`},
		{"named-controls", "\b\f\n\r\t", `"\b\f\n\r\t"`},
		{"other-control", "\x00\x1f", `"\u0000\u001f"`},
		{"del", "\x7f", `"\u007f"`},
		{"solidus-raw", "a/b", `"a/b"`},
		{"non-ascii-raw", "héllo", `"héllo"`},
		{"astral-raw", "a\U0001f600b", "\"a\U0001f600b\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quote(tt.in); got != tt.want {
				t.Errorf("Quote(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestScanQuoted(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		runeIdx int
		byteIdx int
		term    rune
		ok      bool
	}{
		{"empty-literal", `""`, 1, 1, '"', true},
		{"plain", `"abc"`, 4, 4, '"', true},
		{"trailing-kept", `"abc":rest`, 4, 4, '"', true},
		{"escaped-quote", `"a\"b"`, 5, 5, '"', true},
		{"escaped-backslash", `"a\\"`, 4, 4, '"', true},
		{"raw-control", "\"a\nb\"", 2, 2, '\n', true},
		{"escaped-control-passed", "\"a\\\nb\"", 5, 5, '"', true},
		{"multibyte-before-close", `"héllo"`, 6, 7, '"', true},
		{"unterminated", `"abc`, 0, 0, 0, false},
		{"trailing-backslash", `"abc\`, 0, 0, 0, false},
		{"lone-quote", `"`, 0, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runeIdx, byteIdx, term, ok := ScanQuoted(tt.in)
			if runeIdx != tt.runeIdx || byteIdx != tt.byteIdx || term != tt.term || ok != tt.ok {
				t.Errorf("ScanQuoted(%q) = (%d, %d, %q, %v), want (%d, %d, %q, %v)",
					tt.in, runeIdx, byteIdx, term, ok, tt.runeIdx, tt.byteIdx, tt.term, tt.ok)
			}
		})
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		err  error
	}{
		{"empty", `""`, "", nil},
		{"plain", `"abc"`, "abc", nil},
		{"two-char-escapes", `"\"\\\/\b\f\n\r\t"`, "\"\\/\b\f\n\r\t", nil},
		{"unicode-escape", `"\u0041"`, "A", nil},
		{"unicode-uppercase-hex", `"\u00E9"`, "é", nil},
		{"unicode-control", `"\u0000"`, "\x00", nil},
		{"surrogate-pair", `"\ud83d\ude00"`, "\U0001f600", nil},
		{"raw-multibyte", `"héllo"`, "héllo", nil},
		{"missing-open", `abc"`, "", ErrUnterminated},
		{"missing-close", `"abc`, "", ErrUnterminated},
		{"inner-quote", `"a"b"`, "", ErrUnterminated},
		{"trailing-backslash", `"abc\`, "", ErrUnterminated},
		{"bad-escape", `"\x"`, "", ErrBadEscape},
		{"short-unicode", `"\u00"`, "", ErrBadUnicode},
		{"bad-hex", `"\u00zz"`, "", ErrBadUnicode},
		{"lone-high-surrogate", `"\ud83d"`, "", ErrLoneSurrogate},
		{"low-surrogate-first", `"\ude00\ud83d"`, "", ErrLoneSurrogate},
		{"high-then-non-low", `"\ud83dA"`, "", ErrLoneSurrogate},
		{"high-then-plain-text", `"\ud83dxx"`, "", ErrLoneSurrogate},
		{"raw-control", "\"a\nb\"", "", ErrUnicodeControl},
		{"bad-utf8", "\"a\xffb\"", "", ErrBadUTF8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Unquote(tt.in)
			if !errors.Is(err, tt.err) {
				t.Fatalf("Unquote(%q) error = %v, want %v", tt.in, err, tt.err)
			}
			if got != tt.want {
				t.Errorf("Unquote(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestQuoteUnquoteRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"with \"quotes\" and \\slashes\\",
		"\x00\x01\x1f\x7f",
		"mixed\ttabs\nand\rnewlines",
		"héllo wörld \U0001f600",
	}
	for _, in := range inputs {
		got, err := Unquote(Quote(in))
		if err != nil {
			t.Errorf("Unquote(Quote(%q)) error = %v", in, err)
			continue
		}
		if got != in {
			t.Errorf("Unquote(Quote(%q)) = %q", in, got)
		}
	}
}
