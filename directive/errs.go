package directive

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedChar = errors.New("unexpected character")
	ErrUnexpectedEnd  = errors.New("unexpected end of string")
	ErrInvalidIndex   = errors.New("invalid index")
	ErrInvalidKey     = errors.New("invalid key")
	ErrInvalidValue   = errors.New("invalid json value")
)

// SyntaxError reports where parsing a directive failed. Pos is the
// 1-based character position within the directive; Ch is set only when
// Err is ErrUnexpectedChar.
type SyntaxError struct {
	Pos int
	Ch  rune
	Err error
}

func (e *SyntaxError) Error() string {
	switch e.Err {
	case ErrUnexpectedChar:
		return fmt.Sprintf("position %d: unexpected character '%c'", e.Pos, e.Ch)
	case ErrUnexpectedEnd:
		return e.Err.Error()
	default:
		return fmt.Sprintf("position %d: %s", e.Pos, e.Err)
	}
}

func (e *SyntaxError) Unwrap() error { return e.Err }

func unexpectedChar(pos int, ch rune) error {
	return &SyntaxError{Pos: pos, Ch: ch, Err: ErrUnexpectedChar}
}

func unexpectedEnd() error {
	return &SyntaxError{Err: ErrUnexpectedEnd}
}

func invalidIndex(pos int) error {
	return &SyntaxError{Pos: pos, Err: ErrInvalidIndex}
}

func invalidKey(pos int) error {
	return &SyntaxError{Pos: pos, Err: ErrInvalidKey}
}

func invalidValue(pos int) error {
	return &SyntaxError{Pos: pos, Err: ErrInvalidValue}
}
