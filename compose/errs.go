package compose

import (
	"errors"
	"fmt"

	"github.com/mattias-p/mkjson/directive"
)

var (
	ErrInvalidEncoding     = errors.New("invalid UTF-8")
	ErrDuplicateAssignment = errors.New("colliding assignments to path")
)

// Kind is how the directive set uses a path: assigned a value directly,
// or implied as a container by some longer path.
type Kind int

const (
	KindValue Kind = iota
	KindObject
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "value"
	}
}

// PathError ties a build error to the path it happened at.
type PathError struct {
	Path directive.Path
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("path %s: %v", e.Path, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }

// StructuralConflict is raised when two directives need the same path
// to be two different things. First is the established use, Second the
// new claim.
type StructuralConflict struct {
	First  Kind
	Second Kind
}

func (e *StructuralConflict) Error() string {
	return fmt.Sprintf("path referred to as both %s and %s", e.First, e.Second)
}

// RootConflict is the top-level shape mismatch: one directive implies
// an object document and another an array document.
type RootConflict struct {
	First  Kind
	Second Kind
}

func (e *RootConflict) Error() string {
	return fmt.Sprintf("path referred to as both %s and %s", e.First, e.Second)
}

// IncompleteArray is raised when an array has an element at index Seen
// but none at index Missing below it.
type IncompleteArray struct {
	Seen    uint32
	Missing uint32
}

func (e *IncompleteArray) Error() string {
	return fmt.Sprintf("array at path has index %d but lacks index %d", e.Seen, e.Missing)
}
