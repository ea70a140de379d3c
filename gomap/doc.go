// Package gomap converts between Go values and IR nodes.
//
// # Usage
//
//	// Go value to IR
//	node, err := gomap.ToIR(map[string]any{"name": "alice"})
//
//	// IR to Go value
//	var person Person
//	err = gomap.FromIR(node, &person)
//
// Conversion follows encoding/json conventions: `json` struct tags control
// naming, "-" and omitempty; []byte maps to a base64 string; json.Marshaler,
// json.Unmarshaler, encoding.TextMarshaler and encoding.TextUnmarshaler are
// respected; json.Number keeps its numeric typing. Map keys must be strings.
//
// Unlike encoding/json, integers stay integers: an int field becomes an
// exact int64 number node, and decoding into an empty interface yields
// int64 for integer nodes rather than float64.
//
// # Related Packages
//
//   - github.com/keon-runtime/canonjson/ir - IR representation
//   - github.com/keon-runtime/canonjson/encode - Encode IR to canonical JSON
package gomap
