package ir

import (
	"strconv"
)

// Path returns the JSONPath-style string representation of this node's
// position in the tree.
//
// Examples:
//   - Root node → "$"
//   - Object field "a" → "$.a"
//   - Array element at index 0 → "$[0]"
//   - Nested object "a.b" → "$.a.b"
//   - Mixed "a[0].b" → "$.a[0].b"
//
// Fields which are not simple identifiers are bracketed and quoted, as in
// `$["a b"]`.
func (node *Node) Path() string {
	if node.Parent == nil {
		return "$"
	}
	prefix := node.Parent.Path()
	switch node.Parent.Type {
	case ObjectType:
		f := node.ParentField
		if pathIdent(f) {
			return prefix + "." + f
		}
		return prefix + "[" + strconv.Quote(f) + "]"

	case ArrayType:
		return prefix + "[" + strconv.Itoa(node.ParentIndex) + "]"

	default:
		panic("parent but not in container")
	}
}

// pathIdent reports whether f can appear after a '.' in a path without
// quoting.
func pathIdent(f string) bool {
	if f == "" {
		return false
	}
	for i, r := range f {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
