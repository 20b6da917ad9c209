package encode

import (
	"bytes"
	"testing"

	"github.com/fatih/color"

	"github.com/mattias-p/mkjson/ir"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
		want string
	}{
		{"null", ir.Null(), "null"},
		{"true", ir.FromBool(true), "true"},
		{"false", ir.FromBool(false), "false"},
		{"number-verbatim", ir.FromNumber("1e5"), "1e5"},
		{"number-negative-zero", ir.FromNumber("-0"), "-0"},
		{"string", ir.FromString("hi"), `"hi"`},
		{"string-escaped", ir.FromString("a\"b\\c"), `"a\"b\\c"`},
		{"string-control", ir.FromString("a\nb\x01c"), `"a\nb\u0001c"`},
		{"string-del", ir.FromString("a\x7fb"), `"a\u007fb"`},
		{"string-unicode-raw", ir.FromString("héllo"), `"héllo"`},
		{"empty-object", ir.FromMap(nil), "{}"},
		{"empty-array", ir.FromSlice(nil), "[]"},
		{"object", ir.FromMap(map[string]*ir.Node{
			"b": ir.FromNumber("2"),
			"a": ir.FromNumber("1"),
		}), `{"a":1,"b":2}`},
		{"object-key-escaped", ir.FromMap(map[string]*ir.Node{
			"a b": ir.Null(),
		}), `{"a b":null}`},
		{"array", ir.FromSlice([]*ir.Node{
			ir.FromNumber("1"),
			ir.FromString("x"),
			ir.Null(),
		}), `[1,"x",null]`},
		{"nested", ir.FromMap(map[string]*ir.Node{
			"list": ir.FromSlice([]*ir.Node{
				ir.FromMap(map[string]*ir.Node{"k": ir.FromBool(false)}),
			}),
			"empty": ir.FromMap(nil),
		}), `{"empty":{},"list":[{"k":false}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := bytes.NewBuffer(nil)
			if err := Encode(tt.node, buf); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("Encode() = %s, want %s", got, tt.want)
			}
			if got := MustString(tt.node); got != tt.want {
				t.Errorf("MustString() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEncodeColorsDisabled(t *testing.T) {
	// With colors force-disabled the color path must be byte-identical
	// to the plain path.
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	node := ir.FromMap(map[string]*ir.Node{
		"a": ir.FromNumber("1"),
		"b": ir.FromSlice([]*ir.Node{ir.FromString("x"), ir.FromBool(true), ir.Null()}),
	})
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, EncodeColors(NewColors())); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	want := MustString(node)
	if got := buf.String(); got != want {
		t.Errorf("colored Encode() = %q, want %q", got, want)
	}
}
