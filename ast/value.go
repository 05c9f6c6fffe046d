package ast

import (
	"errors"
	"strconv"
	"strings"
)

// ErrNoValue is returned by the typed accessors when the node has no value
// to convert.
var ErrNoValue = errors.New("no value present")

// Int parses the node's value as a base-10 integer.
func (n *Node) Int() (int64, error) {
	if !n.HasValue {
		return 0, ErrNoValue
	}
	return strconv.ParseInt(n.Value, 10, 64)
}

// Uint parses the node's value as a base-10 unsigned integer.
func (n *Node) Uint() (uint64, error) {
	if !n.HasValue {
		return 0, ErrNoValue
	}
	return strconv.ParseUint(n.Value, 10, 64)
}

// Float parses the node's value as a 64-bit float.
func (n *Node) Float() (float64, error) {
	if !n.HasValue {
		return 0, ErrNoValue
	}
	return strconv.ParseFloat(n.Value, 64)
}

// Bool parses the node's value with strconv.ParseBool.
func (n *Node) Bool() (bool, error) {
	if !n.HasValue {
		return false, ErrNoValue
	}
	return strconv.ParseBool(n.Value)
}

// Fields splits the node's value around runs of whitespace. It returns nil
// when the node has no value.
func (n *Node) Fields() []string {
	if !n.HasValue {
		return nil
	}
	return strings.Fields(n.Value)
}
