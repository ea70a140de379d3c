// Package encode encodes IR nodes to canonical JSON text.
//
// Canonical form follows RFC 8785 (JCS): UTF-8 output with no insignificant
// whitespace, object keys normalized to NFC and sorted by UTF-16 code units,
// minimal string escaping, and ECMAScript number literals. Two documents
// with equal content always encode to equal bytes, which makes the output
// safe to hash, sign, and compare.
//
// # Usage
//
//	node := ir.FromMap(map[string]*ir.Node{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromInt(30),
//	})
//	var buf bytes.Buffer
//	err := encode.Encode(node, &buf)
//	// buf: {"age":30,"name":"alice"}
//
//	// Encode with options
//	err = encode.Encode(node, &buf, encode.EncodeMaxDepth(64))
//
// # Errors
//
// Encode returns an error wrapping one of the package sentinels:
//
//   - ErrFormat: a non-finite number, or object keys which collide after
//     NFC normalization
//   - ErrUnsupportedType: an IR node the encoder does not recognize
//   - ErrDepthExceeded: container nesting beyond the configured maximum
//
// # Related Packages
//
//   - github.com/keon-runtime/canonjson/ir - IR representation
//   - github.com/keon-runtime/canonjson/parse - Parse JSON and YAML to IR
package encode
