// Package ir provides the intermediate representation (IR) for JSON documents.
//
// # Overview
//
// The IR package defines the core data structures for representing JSON
// documents as a tree of nodes. All documents (whether parsed from JSON or
// YAML text, created programmatically, or mapped from Go values) are
// represented as ir.Node trees before they are canonicalized.
//
// The IR is a simple recursive structure carrying only semantic content. It
// contains no position information from input documents and no trace of the
// input's key order beyond the order fields were inserted, which makes it a
// neutral meeting point between parsers, the encoder, and Go value mapping.
//
// # Node Structure
//
// A Node represents a single JSON value. Nodes can be:
//
//   - Atomic types: null, boolean, number, string
//   - Composite types: object (key-value pairs), array (ordered list)
//
// The IR works as a recursive tagged union structure, where values are placed
// in fields depending on the node type.
//
// # Node Types
//
// The Type field indicates the node's type:
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - NumberType: numeric value (int64 or float64)
//   - StringType: string value
//   - ArrayType: ordered list of nodes
//   - ObjectType: key-value pairs (fields and values)
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	flag := ir.FromBool(true)
//	obj := ir.FromMap(map[string]*ir.Node{
//	    "key": ir.FromString("value"),
//	})
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromInt(1),
//	    ir.FromInt(2),
//	})
//
// # IR Structure Constraints
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i], so
// there will always be the same number of fields as values. Fields are always
// string typed. Field order is insertion order; the encoder sorts keys itself
// and never depends on the order stored here.
//
// Number values are placed under:
//
//   - Int64: if it is an integer (64-bit signed)
//   - Float64: if it is a floating point number (64-bit IEEE float)
//
// Exactly one of the two is set on a well-formed number node. Non-finite
// Float64 values (NaN, ±Inf) can be represented in the IR but are rejected
// when encoded, as JSON has no literal for them.
//
// String values hold Unicode text under the String field. Strings are stored
// as-is; Unicode normalization happens during encoding, not here.
//
// # Navigating Nodes
//
// Nodes maintain parent-child relationships:
//
//   - Parent: parent node (nil for root)
//   - ParentIndex: index in parent's array/object
//   - ParentField: field name if parent is object
//   - Fields: field names (for ObjectType)
//   - Values: child values (for ObjectType and ArrayType)
//
// Use Path() to get a JSONPath-style path string:
//
//	path := node.Path() // e.g., "$.foo.bar[0]"
//
// # Comparison
//
// Nodes can be compared for equality and ordering:
//
//	equal := ir.Equal(a, b)
//	less := ir.Compare(a, b) < 0
//
// Compare defines a total order over IR trees which is useful for tests and
// for deduplication; it is unrelated to the key order of canonical output.
//
// # Thread Safety
//
// Node structures are not thread-safe. If you need to access nodes from
// multiple goroutines, you must synchronize access yourself or clone nodes
// for each goroutine.
//
// # Related Packages
//
//   - github.com/keon-runtime/canonjson/parse - Parses JSON and YAML into IR nodes
//   - github.com/keon-runtime/canonjson/encode - Encodes IR nodes to canonical JSON
//   - github.com/keon-runtime/canonjson/gomap - Maps Go values to and from IR nodes
package ir
