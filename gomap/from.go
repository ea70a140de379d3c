package gomap

import (
	"bytes"
	"encoding"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"reflect"

	"github.com/keon-runtime/canonjson/encode"
	"github.com/keon-runtime/canonjson/ir"
)

// FromIR converts an IR node to a Go value. v must be a non-nil pointer to
// the target. Decoding follows encoding/json conventions: struct fields
// honor `json` tags, unknown object keys are ignored, []byte decodes from
// base64, and json.Unmarshaler and encoding.TextUnmarshaler are respected.
// Into an empty interface, objects become map[string]any, arrays []any,
// numbers int64 or float64.
func FromIR(node *ir.Node, v interface{}) error {
	if v == nil {
		return &UnmarshalError{Message: "destination value cannot be nil"}
	}
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr {
		return &UnmarshalError{Message: "destination value must be a pointer"}
	}
	if val.IsNil() {
		return &UnmarshalError{Message: "destination pointer cannot be nil"}
	}
	return fromIRValue(node, val.Elem(), "")
}

func fromIRValue(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node == nil {
		return &UnmarshalError{FieldPath: fieldPath, Message: "IR node is nil"}
	}

	if val.CanAddr() {
		if done, err := unmarshalerFromIR(node, val.Addr(), fieldPath); done {
			return err
		}
	}

	// Null zeroes nil-able destinations and leaves the rest untouched, the
	// way encoding/json treats a JSON null.
	if node.Type == ir.NullType {
		switch val.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
			val.Set(reflect.Zero(val.Type()))
		}
		return nil
	}

	switch val.Kind() {
	case reflect.Ptr:
		if val.IsNil() {
			val.Set(reflect.New(val.Type().Elem()))
		}
		return fromIRValue(node, val.Elem(), fieldPath)

	case reflect.Interface:
		return fromIRToInterface(node, val, fieldPath)

	case reflect.String:
		if val.Type() == jsonNumberType {
			return fromIRToNumber(node, val, fieldPath)
		}
		return fromIRToString(node, val, fieldPath)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fromIRToInt(node, val, fieldPath)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return fromIRToUint(node, val, fieldPath)

	case reflect.Float32, reflect.Float64:
		return fromIRToFloat(node, val, fieldPath)

	case reflect.Bool:
		return fromIRToBool(node, val, fieldPath)

	case reflect.Slice:
		return fromIRToSlice(node, val, fieldPath)

	case reflect.Array:
		return fromIRToArray(node, val, fieldPath)

	case reflect.Map:
		return fromIRToMap(node, val, fieldPath)

	case reflect.Struct:
		return fromIRToStruct(node, val, fieldPath)

	default:
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("unsupported destination type: %s", val.Type()),
		}
	}
}

// unmarshalerFromIR handles destinations implementing json.Unmarshaler or
// encoding.TextUnmarshaler. The bool result reports whether one applied.
func unmarshalerFromIR(node *ir.Node, ptr reflect.Value, fieldPath string) (bool, error) {
	if !ptr.CanInterface() {
		return false, nil
	}
	switch u := ptr.Interface().(type) {
	case json.Unmarshaler:
		buf := bytes.NewBuffer(nil)
		if err := encode.Encode(node, buf); err != nil {
			return true, &UnmarshalError{FieldPath: fieldPath, Message: "cannot encode node for UnmarshalJSON", Err: err}
		}
		if err := u.UnmarshalJSON(buf.Bytes()); err != nil {
			return true, &UnmarshalError{FieldPath: fieldPath, Message: "UnmarshalJSON failed", Err: err}
		}
		return true, nil
	case encoding.TextUnmarshaler:
		if node.Type != ir.StringType {
			return false, nil
		}
		if err := u.UnmarshalText([]byte(node.String)); err != nil {
			return true, &UnmarshalError{FieldPath: fieldPath, Message: "UnmarshalText failed", Err: err}
		}
		return true, nil
	}
	return false, nil
}

func fromIRToInterface(node *ir.Node, val reflect.Value, fieldPath string) error {
	if val.NumMethod() != 0 {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("cannot unmarshal into non-empty interface %s", val.Type()),
		}
	}
	a, err := irToAny(node, fieldPath)
	if err != nil {
		return err
	}
	if a == nil {
		val.Set(reflect.Zero(val.Type()))
		return nil
	}
	val.Set(reflect.ValueOf(a))
	return nil
}

func irToAny(node *ir.Node, fieldPath string) (interface{}, error) {
	switch node.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.StringType:
		return node.String, nil
	case ir.NumberType:
		switch {
		case node.Int64 != nil:
			return *node.Int64, nil
		case node.Float64 != nil:
			return *node.Float64, nil
		default:
			return nil, &UnmarshalError{FieldPath: fieldPath, Message: "number node with no value"}
		}
	case ir.ArrayType:
		res := make([]interface{}, len(node.Values))
		for i, v := range node.Values {
			a, err := irToAny(v, fmt.Sprintf("%s[%d]", fieldPath, i))
			if err != nil {
				return nil, err
			}
			res[i] = a
		}
		return res, nil
	case ir.ObjectType:
		res := make(map[string]interface{}, len(node.Fields))
		for i, f := range node.Fields {
			a, err := irToAny(node.Values[i], joinPath(fieldPath, f.String))
			if err != nil {
				return nil, err
			}
			res[f.String] = a
		}
		return res, nil
	default:
		return nil, &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("unknown node type %s", node.Type),
		}
	}
}

func fromIRToString(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.StringType {
		return &TypeError{FieldPath: fieldPath, Expected: "String", Actual: node.Type.String()}
	}
	val.SetString(node.String)
	return nil
}

// nodeInt extracts an integer from a number node. Integral floats are
// accepted so YAML and exponent literals round-trip into int fields.
func nodeInt(node *ir.Node, fieldPath string) (int64, error) {
	switch {
	case node.Type != ir.NumberType:
		return 0, &TypeError{FieldPath: fieldPath, Expected: "Number", Actual: node.Type.String()}
	case node.Int64 != nil:
		return *node.Int64, nil
	case node.Float64 != nil:
		f := *node.Float64
		if f != math.Trunc(f) || math.Abs(f) > 1<<53 {
			return 0, &TypeError{
				FieldPath: fieldPath,
				Expected:  "integer",
				Actual:    fmt.Sprintf("float %v", f),
			}
		}
		return int64(f), nil
	default:
		return 0, &UnmarshalError{FieldPath: fieldPath, Message: "number node with no value"}
	}
}

func fromIRToInt(node *ir.Node, val reflect.Value, fieldPath string) error {
	i, err := nodeInt(node, fieldPath)
	if err != nil {
		return err
	}
	if val.OverflowInt(i) {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("value %d overflows %s", i, val.Type()),
		}
	}
	val.SetInt(i)
	return nil
}

func fromIRToUint(node *ir.Node, val reflect.Value, fieldPath string) error {
	i, err := nodeInt(node, fieldPath)
	if err != nil {
		return err
	}
	if i < 0 {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("negative value %d for %s", i, val.Type()),
		}
	}
	if val.OverflowUint(uint64(i)) {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("value %d overflows %s", i, val.Type()),
		}
	}
	val.SetUint(uint64(i))
	return nil
}

func fromIRToFloat(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.NumberType {
		return &TypeError{FieldPath: fieldPath, Expected: "Number", Actual: node.Type.String()}
	}
	var f float64
	switch {
	case node.Float64 != nil:
		f = *node.Float64
	case node.Int64 != nil:
		f = float64(*node.Int64)
	default:
		return &UnmarshalError{FieldPath: fieldPath, Message: "number node with no value"}
	}
	if val.OverflowFloat(f) {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("value %v overflows %s", f, val.Type()),
		}
	}
	val.SetFloat(f)
	return nil
}

func fromIRToBool(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.BoolType {
		return &TypeError{FieldPath: fieldPath, Expected: "Bool", Actual: node.Type.String()}
	}
	val.SetBool(node.Bool)
	return nil
}

// fromIRToNumber sets a json.Number destination from a number node.
func fromIRToNumber(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.NumberType {
		return &TypeError{FieldPath: fieldPath, Expected: "Number", Actual: node.Type.String()}
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf); err != nil {
		return &UnmarshalError{FieldPath: fieldPath, Message: "cannot render number", Err: err}
	}
	val.SetString(buf.String())
	return nil
}

func fromIRToSlice(node *ir.Node, val reflect.Value, fieldPath string) error {
	// []byte decodes from a base64 string, mirroring ToIR.
	if val.Type().Elem().Kind() == reflect.Uint8 && node.Type == ir.StringType {
		d, err := base64.StdEncoding.DecodeString(node.String)
		if err != nil {
			return &UnmarshalError{FieldPath: fieldPath, Message: "invalid base64 string", Err: err}
		}
		val.SetBytes(d)
		return nil
	}
	if node.Type != ir.ArrayType {
		return &TypeError{FieldPath: fieldPath, Expected: "Array", Actual: node.Type.String()}
	}
	res := reflect.MakeSlice(val.Type(), len(node.Values), len(node.Values))
	for i, v := range node.Values {
		if err := fromIRValue(v, res.Index(i), fmt.Sprintf("%s[%d]", fieldPath, i)); err != nil {
			return err
		}
	}
	val.Set(res)
	return nil
}

func fromIRToArray(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.ArrayType {
		return &TypeError{FieldPath: fieldPath, Expected: "Array", Actual: node.Type.String()}
	}
	n := min(len(node.Values), val.Len())
	for i := 0; i < n; i++ {
		if err := fromIRValue(node.Values[i], val.Index(i), fmt.Sprintf("%s[%d]", fieldPath, i)); err != nil {
			return err
		}
	}
	for i := n; i < val.Len(); i++ {
		val.Index(i).Set(reflect.Zero(val.Type().Elem()))
	}
	return nil
}

func fromIRToMap(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.ObjectType {
		return &TypeError{FieldPath: fieldPath, Expected: "Object", Actual: node.Type.String()}
	}
	if val.Type().Key().Kind() != reflect.String {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("map keys must be strings, got %s", val.Type().Key()),
		}
	}
	res := reflect.MakeMapWithSize(val.Type(), len(node.Fields))
	for i, f := range node.Fields {
		elem := reflect.New(val.Type().Elem()).Elem()
		if err := fromIRValue(node.Values[i], elem, joinPath(fieldPath, f.String)); err != nil {
			return err
		}
		res.SetMapIndex(reflect.ValueOf(f.String).Convert(val.Type().Key()), elem)
	}
	val.Set(res)
	return nil
}

func fromIRToStruct(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.ObjectType {
		return &TypeError{FieldPath: fieldPath, Expected: "Object", Actual: node.Type.String()}
	}
	index := fieldIndex(val.Type())
	for i, f := range node.Fields {
		idx, ok := index[f.String]
		if !ok {
			// unknown keys are ignored
			continue
		}
		dst, err := fieldByIndexAlloc(val, idx)
		if err != nil {
			return &UnmarshalError{FieldPath: joinPath(fieldPath, f.String), Err: err, Message: "cannot address field"}
		}
		if err := fromIRValue(node.Values[i], dst, joinPath(fieldPath, f.String)); err != nil {
			return err
		}
	}
	return nil
}

// fieldIndex maps the JSON name of each addressable struct field to its
// index path, flattening embedded structs the way encoding/json does.
func fieldIndex(typ reflect.Type) map[string][]int {
	res := map[string][]int{}
	collectFields(typ, nil, res)
	return res
}

func collectFields(typ reflect.Type, prefix []int, res map[string][]int) {
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _ := parseJSONTag(f.Tag.Get("json"))
		if name == "-" {
			continue
		}
		idx := append(append([]int{}, prefix...), i)
		if f.Anonymous && name == "" && isStructLike(f.Type) {
			ft := f.Type
			if ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			collectFields(ft, idx, res)
			continue
		}
		if name == "" {
			name = f.Name
		}
		if _, exists := res[name]; !exists {
			res[name] = idx
		}
	}
}

// fieldByIndexAlloc walks an index path, allocating nil embedded pointers
// along the way.
func fieldByIndexAlloc(v reflect.Value, index []int) (reflect.Value, error) {
	for _, i := range index {
		if v.Kind() == reflect.Ptr {
			if v.IsNil() {
				if !v.CanSet() {
					return reflect.Value{}, fmt.Errorf("nil embedded pointer %s is not settable", v.Type())
				}
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		}
		v = v.Field(i)
	}
	return v, nil
}
