// Package canonjson produces RFC 8785 canonical JSON: one byte sequence per
// logical value, identical across platforms and implementations, suitable
// for hashing and signing.
package canonjson

import (
	"bytes"

	"github.com/keon-runtime/canonjson/encode"
	"github.com/keon-runtime/canonjson/gomap"
	"github.com/keon-runtime/canonjson/ir"
	"github.com/keon-runtime/canonjson/parse"
)

// Canonicalize renders a node in canonical form.
func Canonicalize(v *ir.Node, opts ...encode.EncodeOption) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(v, buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CanonicalizeToString is Canonicalize returning a string.
func CanonicalizeToString(v *ir.Node, opts ...encode.EncodeOption) (string, error) {
	d, err := Canonicalize(v, opts...)
	if err != nil {
		return "", err
	}
	return string(d), nil
}

// CanonicalizeBytes parses a JSON document and renders it in canonical form.
func CanonicalizeBytes(raw []byte, opts ...encode.EncodeOption) ([]byte, error) {
	node, err := parse.Parse(raw)
	if err != nil {
		return nil, err
	}
	return Canonicalize(node, opts...)
}

// ValidateIntegrity reports whether raw already is the canonical form of the
// value it encodes. Inputs that do not parse, cannot be canonicalized, or
// differ from their re-encoded form in any byte are not canonical.
func ValidateIntegrity(raw []byte) bool {
	node, err := parse.Parse(raw)
	if err != nil {
		return false
	}
	canon, err := Canonicalize(node)
	if err != nil {
		return false
	}
	return bytes.Equal(raw, canon)
}

// Marshal renders a Go value in canonical form. It accepts what
// encoding/json's Marshal accepts; see gomap.ToIR for the conversion rules.
func Marshal(v any, opts ...encode.EncodeOption) ([]byte, error) {
	node, err := gomap.ToIR(v)
	if err != nil {
		return nil, err
	}
	return Canonicalize(node, opts...)
}

// Unmarshal parses a JSON document into a Go value; see gomap.FromIR for the
// conversion rules.
func Unmarshal(raw []byte, v any) error {
	node, err := parse.Parse(raw)
	if err != nil {
		return err
	}
	return gomap.FromIR(node, v)
}
