package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/keon-runtime/canonjson/format"
	"github.com/keon-runtime/canonjson/ir"
)

// Parse decodes a single document from d into an IR tree. The input format
// defaults to JSON; pass ParseYAML to read YAML instead. The input must be
// valid UTF-8 and must contain exactly one top-level value.
//
// Lexical detail of the input does not survive: duplicate JSON keys resolve
// last-wins, escape sequences are resolved, and number literals are re-typed
// (integer when the text fits an int64, float64 otherwise).
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.JSONFormat}
	for _, f := range opts {
		f(pOpts)
	}
	if !utf8.Valid(d) {
		return nil, fmt.Errorf("%w: input is not valid UTF-8", ErrParse)
	}
	switch pOpts.format {
	case format.YAMLFormat:
		return parseYAML(d)
	default:
		return parseJSON(d)
	}
}

// ParseString is Parse for string input.
func ParseString(v string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(v), opts...)
}

func parseJSON(d []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	// A second decode separates "one document" from "document plus junk".
	if err := dec.Decode(new(any)); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after top-level value", ErrParse)
	}
	return fromAny(v)
}

// fromAny converts decoder output to IR. Only the types the JSON and YAML
// decoders produce appear here; mapping arbitrary Go values is the job of
// package gomap.
func fromAny(v any) (*ir.Node, error) {
	switch t := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(t), nil
	case string:
		return ir.FromString(t), nil
	case json.Number:
		return ir.FromNumberText(t.String()), nil
	case int:
		return ir.FromInt(int64(t)), nil
	case int64:
		return ir.FromInt(t), nil
	case uint64:
		if t > math.MaxInt64 {
			return ir.FromNumberText(strconv.FormatUint(t, 10)), nil
		}
		return ir.FromInt(int64(t)), nil
	case float64:
		return ir.FromFloat(t), nil
	case []any:
		vals := make([]*ir.Node, len(t))
		for i, e := range t {
			node, err := fromAny(e)
			if err != nil {
				return nil, err
			}
			vals[i] = node
		}
		return ir.FromSlice(vals), nil
	case map[string]any:
		yMap := make(map[string]*ir.Node, len(t))
		for k, e := range t {
			node, err := fromAny(e)
			if err != nil {
				return nil, err
			}
			yMap[k] = node
		}
		return ir.FromMap(yMap), nil
	default:
		return nil, fmt.Errorf("%w: unsupported decoded value of type %T", ErrParse, v)
	}
}
