package serial

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TypeMismatchError is returned when a raw value does not have the shape a
// field expects, or when a required field is absent.
type TypeMismatchError struct {
	Path string
	Want string
	Got  string
}

func (e *TypeMismatchError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("type mismatch: want %s, got %s", e.Want, e.Got)
	}
	return fmt.Sprintf("type mismatch at %s: want %s, got %s", e.Path, e.Want, e.Got)
}

func (e *TypeMismatchError) prependPath(segment string) {
	e.Path = joinPath(segment, e.Path)
}

// UnknownEnumValueError is returned when an enum field holds a value outside
// its enum's value set.
type UnknownEnumValueError struct {
	Path  string
	Enum  string
	Value any
}

func (e *UnknownEnumValueError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("unknown %s value %#v", e.Enum, e.Value)
	}
	return fmt.Sprintf("unknown %s value %#v at %s", e.Enum, e.Value, e.Path)
}

func (e *UnknownEnumValueError) prependPath(segment string) {
	e.Path = joinPath(segment, e.Path)
}

type pathError interface {
	error
	prependPath(segment string)
}

// atPath records that err happened below segment. Errors that do not track
// a path are returned untouched.
func atPath(err error, segment string) error {
	if pe, ok := err.(pathError); ok {
		pe.prependPath(segment)
	}
	return err
}

func joinPath(segment, rest string) string {
	switch {
	case rest == "":
		return segment
	case strings.HasPrefix(rest, "["):
		return segment + rest
	default:
		return segment + "." + rest
	}
}

// describe names the JSON shape of a raw value for error messages.
func describe(raw any) string {
	switch raw.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, float32, int, int32, int64, json.Number:
		return "number"
	case []any:
		return "list"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", raw)
	}
}
