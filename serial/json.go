// Package serial maps JSON trees onto entity graphs and back.
//
// A JSON tree is what encoding/json produces when decoding into an any:
// map[string]any, []any, string, float64 or json.Number, bool and nil. Every
// entity lists its members through Fields, and nested entities are marked
// with One and Many so the engine knows to recurse instead of copying.
package serial

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// Unmarshal parses data and decodes it into dst.
func Unmarshal(data []byte, dst Entity) error {
	tree, err := ParseTree(data)
	if err != nil {
		return err
	}
	return DecodeInto(tree, dst)
}

// Marshal encodes src and renders the tree as JSON.
func Marshal(src Entity) ([]byte, error) {
	tree, err := Encode(src)
	if err != nil {
		return nil, err
	}
	return json.Marshal(tree)
}

// ErrTrailingData is returned when more than one JSON value is given.
var ErrTrailingData = errors.New("serial: unexpected data after top-level value")

// ParseTree parses data, which must hold exactly one JSON value, into a JSON
// tree. Numbers are kept as json.Number so large integers survive intact.
func ParseTree(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, ErrTrailingData
	}
	return tree, nil
}
