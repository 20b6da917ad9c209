package encode

import (
	"io"
	"strconv"

	"github.com/mattias-p/mkjson/ir"
	"github.com/mattias-p/mkjson/token"
)

type EncState struct {
	colorType ir.Type
	Color     func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w as canonical JSON: object fields in stored
// order, no insignificant whitespace, strings minimally escaped and
// numbers verbatim.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	es.colorType = node.Type
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.StringType:
		return encodeString(node, w, es)
	case ir.NumberType:
		return encodeNumber(node, w, es)
	case ir.BoolType:
		return encodeBool(node, w, es)
	case ir.NullType:
		return encodeNull(node, w, es)
	default:
		panic("type")
	}
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, ir.ObjectType, "{"); err != nil {
		return err
	}
	for i, field := range node.Fields {
		if i > 0 {
			if err := writeSep(w, es, ir.ObjectType, ","); err != nil {
				return err
			}
		}
		if err := writeField(w, field.String, es); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
	}
	return writeSep(w, es, ir.ObjectType, "}")
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, ir.ArrayType, "["); err != nil {
		return err
	}
	for i, v := range node.Values {
		if i > 0 {
			if err := writeSep(w, es, ir.ArrayType, ","); err != nil {
				return err
			}
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	return writeSep(w, es, ir.ArrayType, "]")
}

func encodeString(node *ir.Node, w io.Writer, es *EncState) error {
	v := token.Quote(node.String)
	if es.Color != nil {
		v = es.Color(ir.StringType, ValueColor, v)
	}
	return writeString(w, v)
}

func encodeNumber(node *ir.Node, w io.Writer, es *EncState) error {
	v := node.Number
	if es.Color != nil {
		v = es.Color(ir.NumberType, ValueColor, v)
	}
	return writeString(w, v)
}

func encodeBool(node *ir.Node, w io.Writer, es *EncState) error {
	v := strconv.FormatBool(node.Bool)
	if es.Color != nil {
		v = es.Color(ir.BoolType, ValueColor, v)
	}
	return writeString(w, v)
}

func encodeNull(node *ir.Node, w io.Writer, es *EncState) error {
	v := "null"
	if es.Color != nil {
		v = es.Color(ir.NullType, ValueColor, v)
	}
	return writeString(w, v)
}

func writeField(w io.Writer, field string, es *EncState) error {
	v := token.Quote(field)
	sep := ":"
	if es.Color != nil {
		v = es.Color(ir.ObjectType, FieldColor, v)
		sep = es.Color(ir.ObjectType, SepColor, sep)
	}
	return writeString(w, v+sep)
}

func writeSep(w io.Writer, es *EncState, t ir.Type, sep string) error {
	if es.Color != nil {
		sep = es.Color(t, SepColor, sep)
	}
	return writeString(w, sep)
}
