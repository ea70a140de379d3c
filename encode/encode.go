package encode

import (
	"fmt"
	"io"
	"strconv"

	"golang.org/x/text/unicode/norm"

	"github.com/keon-runtime/canonjson/ir"
)

type EncState struct {
	depth    int
	maxDepth int

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w in canonical form: UTF-8, no insignificant
// whitespace, object keys NFC-normalized and sorted by UTF-16 code units,
// minimal string escaping, and ECMAScript number literals. Equal documents
// encode to equal bytes. A nil node encodes as null.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

// Helper functions for writing

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeSep(w io.Writer, es *EncState, cType ir.Type, sep string) error {
	if es.Color != nil {
		sep = es.Color(cType, SepColor, sep)
	}
	return writeString(w, sep)
}

// Color application helpers

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

func applyValueColor(es *EncState, nodeType ir.Type, v string) string {
	return applyColor(es, nodeType, ValueColor, v)
}

// Depth tracking

func (es *EncState) enter(node *ir.Node) error {
	es.depth++
	if es.depth > es.maxDepth {
		return fmt.Errorf("%w: nesting deeper than %d at %s", ErrDepthExceeded, es.maxDepth, node.Path())
	}
	return nil
}

func (es *EncState) leave() {
	es.depth--
}

// Main encode function

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	if node == nil {
		return encodeNull(node, w, es)
	}
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.StringType:
		return encodeString(node, w, es)
	case ir.NumberType:
		return encodeNumber(node, w, es)
	case ir.BoolType:
		return encodeBool(node, w, es)
	case ir.NullType:
		return encodeNull(node, w, es)
	default:
		return fmt.Errorf("%w: node type %s", ErrUnsupportedType, node.Type)
	}
}

// Object encoding

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if err := es.enter(node); err != nil {
		return err
	}
	defer es.leave()

	fvs, err := canonicalFields(node)
	if err != nil {
		return err
	}
	if err := writeSep(w, es, ir.ObjectType, "{"); err != nil {
		return err
	}
	for i := range fvs {
		if i > 0 {
			if err := writeSep(w, es, ir.ObjectType, ","); err != nil {
				return err
			}
		}
		if err := writeField(w, fvs[i].key, es); err != nil {
			return err
		}
		if err := encode(fvs[i].val, w, es); err != nil {
			return err
		}
	}
	return writeSep(w, es, ir.ObjectType, "}")
}

func writeField(w io.Writer, f string, es *EncState) error {
	v := Quote(f)
	sep := ":"
	if es.Color != nil {
		v = applyColor(es, ir.ObjectType, FieldColor, v)
		sep = applyColor(es, ir.ObjectType, SepColor, sep)
	}
	return writeString(w, v+sep)
}

// Array encoding

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if err := es.enter(node); err != nil {
		return err
	}
	defer es.leave()

	if err := writeSep(w, es, ir.ArrayType, "["); err != nil {
		return err
	}
	for i, v := range node.Values {
		if i > 0 {
			if err := writeSep(w, es, ir.ArrayType, ","); err != nil {
				return err
			}
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	return writeSep(w, es, ir.ArrayType, "]")
}

// String encoding

func encodeString(node *ir.Node, w io.Writer, es *EncState) error {
	v := Quote(norm.NFC.String(node.String))
	v = applyValueColor(es, ir.StringType, v)
	return writeString(w, v)
}

// Number encoding

func encodeNumber(node *ir.Node, w io.Writer, es *EncState) error {
	var v string
	switch {
	case node.Int64 != nil:
		v = strconv.FormatInt(*node.Int64, 10)
	case node.Float64 != nil:
		var err error
		v, err = formatFloat(*node.Float64)
		if err != nil {
			return fmt.Errorf("%w at %s", err, node.Path())
		}
	default:
		return fmt.Errorf("%w: number node with no value at %s", ErrUnsupportedType, node.Path())
	}
	v = applyValueColor(es, ir.NumberType, v)
	return writeString(w, v)
}

// Bool encoding

func encodeBool(node *ir.Node, w io.Writer, es *EncState) error {
	v := strconv.FormatBool(node.Bool)
	v = applyValueColor(es, ir.BoolType, v)
	return writeString(w, v)
}

// Null encoding

func encodeNull(node *ir.Node, w io.Writer, es *EncState) error {
	v := applyValueColor(es, ir.NullType, "null")
	return writeString(w, v)
}
