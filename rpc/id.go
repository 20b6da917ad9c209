package rpc

import (
	"errors"

	"github.com/google/uuid"

	"github.com/mattias-p/mkjson/directive"
	"github.com/mattias-p/mkjson/ir"
)

const (
	IDNull = ":null"
	IDOmit = ":omit"
	IDUUID = ":uuid"
)

var (
	ErrBadMethod = errors.New("must be a string")
	ErrBadID     = errors.New("must be a string, number, ':null', ':omit' or ':uuid'")
)

// ParseMethod accepts a bare identifier or a JSON string literal.
func ParseMethod(s string) (string, error) {
	if directive.IsBareKey(s) {
		return s, nil
	}
	n, err := directive.ParseValue(s)
	if err != nil || n.Type != ir.StringType {
		return "", ErrBadMethod
	}
	return n.String, nil
}

// ParseID maps a command line id spelling to the id node for the
// envelope. Bare identifiers become string ids. A nil node with nil
// error means the id member is omitted.
func ParseID(s string) (*ir.Node, error) {
	switch s {
	case IDNull:
		return ir.Null(), nil
	case IDOmit:
		return nil, nil
	case IDUUID:
		return ir.FromString(uuid.New().String()), nil
	}
	if directive.IsBareKey(s) {
		return ir.FromString(s), nil
	}
	n, err := directive.ParseValue(s)
	if err != nil {
		return nil, ErrBadID
	}
	switch n.Type {
	case ir.StringType, ir.NumberType:
		return n, nil
	default:
		return nil, ErrBadID
	}
}
