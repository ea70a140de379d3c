package gomap

import (
	"encoding"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"reflect"

	"github.com/keon-runtime/canonjson/ir"
	"github.com/keon-runtime/canonjson/parse"
)

var jsonNumberType = reflect.TypeOf(json.Number(""))

// ToIR converts a Go value to an IR node, following the conventions of
// encoding/json: struct fields honor `json` tags (renaming, "-", omitempty),
// []byte becomes a base64 string, json.Marshaler and encoding.TextMarshaler
// are respected, and json.Number keeps its numeric typing. Map keys must be
// strings. Circular references are an error, not a hang.
func ToIR(v interface{}) (*ir.Node, error) {
	if v == nil {
		return ir.Null(), nil
	}
	visited := make(map[uintptr]string) // Track visited pointers by address and field path
	return toIRValue(reflect.ValueOf(v), "", visited)
}

// toIRValue converts a reflect.Value to an IR node.
// fieldPath is used for error reporting (e.g., "person.address.street").
// visited tracks pointer addresses to detect circular references.
func toIRValue(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	if !val.IsValid() {
		return ir.Null(), nil
	}
	typ := val.Type()
	kind := typ.Kind()

	// json.Number is string-kinded but carries a number.
	if typ == jsonNumberType {
		return ir.FromNumberText(val.String()), nil
	}

	if kind == reflect.Ptr {
		if val.IsNil() {
			return ir.Null(), nil
		}
		if node, ok, err := marshalerToIR(val, fieldPath); ok {
			return node, err
		}
		ptrAddr := val.Pointer()
		if prevPath, seen := visited[ptrAddr]; seen {
			return nil, &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("circular reference detected: %s -> %s", prevPath, fieldPath),
			}
		}
		visited[ptrAddr] = fieldPath
		node, err := toIRValue(val.Elem(), fieldPath, visited)
		delete(visited, ptrAddr)
		return node, err
	}

	if node, ok, err := marshalerToIR(val, fieldPath); ok {
		return node, err
	}
	if val.CanAddr() {
		if node, ok, err := marshalerToIR(val.Addr(), fieldPath); ok {
			return node, err
		}
	}

	switch kind {
	case reflect.String:
		return ir.FromString(val.String()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(val.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := val.Uint()
		if u > math.MaxInt64 {
			return nil, &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("uint value %d overflows int64", u),
			}
		}
		return ir.FromInt(int64(u)), nil

	case reflect.Float32, reflect.Float64:
		return ir.FromFloat(val.Float()), nil

	case reflect.Bool:
		return ir.FromBool(val.Bool()), nil

	case reflect.Slice:
		if typ.Elem().Kind() == reflect.Uint8 {
			if val.IsNil() {
				return ir.Null(), nil
			}
			return ir.FromString(base64.StdEncoding.EncodeToString(val.Bytes())), nil
		}
		return toIRSlice(val, fieldPath, visited)

	case reflect.Array:
		return toIRSlice(val, fieldPath, visited)

	case reflect.Map:
		return toIRMap(val, fieldPath, visited)

	case reflect.Struct:
		return toIRStruct(val, fieldPath, visited)

	case reflect.Interface:
		if val.IsNil() {
			return ir.Null(), nil
		}
		return toIRValue(val.Elem(), fieldPath, visited)

	default:
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("unsupported type: %s", typ),
		}
	}
}

// marshalerToIR handles values implementing json.Marshaler or
// encoding.TextMarshaler. The bool result reports whether one applied.
func marshalerToIR(val reflect.Value, fieldPath string) (*ir.Node, bool, error) {
	if !val.CanInterface() {
		return nil, false, nil
	}
	switch m := val.Interface().(type) {
	case json.Marshaler:
		d, err := m.MarshalJSON()
		if err != nil {
			return nil, true, &MarshalError{FieldPath: fieldPath, Message: "MarshalJSON failed", Err: err}
		}
		node, err := parse.Parse(d)
		if err != nil {
			return nil, true, &MarshalError{FieldPath: fieldPath, Message: "MarshalJSON produced invalid JSON", Err: err}
		}
		return node, true, nil
	case encoding.TextMarshaler:
		text, err := m.MarshalText()
		if err != nil {
			return nil, true, &MarshalError{FieldPath: fieldPath, Message: "MarshalText failed", Err: err}
		}
		return ir.FromString(string(text)), true, nil
	}
	return nil, false, nil
}

// toIRSlice converts a slice or array to an IR array node.
func toIRSlice(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	if val.Kind() == reflect.Slice {
		if val.IsNil() {
			return ir.Null(), nil
		}
		slicePtr := val.Pointer()
		if prevPath, seen := visited[slicePtr]; seen {
			return nil, &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("circular reference detected: %s -> %s", prevPath, fieldPath),
			}
		}
		visited[slicePtr] = fieldPath
		defer delete(visited, slicePtr)
	}

	length := val.Len()
	elements := make([]*ir.Node, 0, length)
	for i := 0; i < length; i++ {
		elemNode, err := toIRValue(val.Index(i), fmt.Sprintf("%s[%d]", fieldPath, i), visited)
		if err != nil {
			return nil, err
		}
		elements = append(elements, elemNode)
	}
	return ir.FromSlice(elements), nil
}

// toIRMap converts a map to an IR object node. Keys must be strings: the
// canonical form has no way to preserve a non-string key's type.
func toIRMap(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	if val.IsNil() {
		return ir.Null(), nil
	}
	mapPtr := val.Pointer()
	if prevPath, seen := visited[mapPtr]; seen {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("circular reference detected: %s -> %s", prevPath, fieldPath),
		}
	}
	visited[mapPtr] = fieldPath
	defer delete(visited, mapPtr)

	if val.Type().Key().Kind() != reflect.String {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("map keys must be strings, got %s", val.Type().Key()),
		}
	}

	irMap := make(map[string]*ir.Node, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		key := iter.Key().String()
		valueNode, err := toIRValue(iter.Value(), joinPath(fieldPath, key), visited)
		if err != nil {
			return nil, err
		}
		irMap[key] = valueNode
	}
	return ir.FromMap(irMap), nil
}

// toIRStruct converts a struct to an IR object node. Embedded structs
// without a tag name are flattened; a name collision between an embedded
// field and a direct one is an error.
func toIRStruct(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	typ := val.Type()
	irMap := make(map[string]*ir.Node)

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name, opts := parseJSONTag(field.Tag.Get("json"))
		if name == "-" {
			continue
		}
		fieldVal := val.Field(i)

		if field.Anonymous && name == "" && isStructLike(field.Type) {
			if field.Type.Kind() == reflect.Ptr && fieldVal.IsNil() {
				continue
			}
			embeddedNode, err := toIRValue(fieldVal, fieldPath, visited)
			if err != nil {
				return nil, err
			}
			if embeddedNode.Type != ir.ObjectType {
				continue
			}
			for j, fieldNameNode := range embeddedNode.Fields {
				fieldName := fieldNameNode.String
				if _, exists := irMap[fieldName]; exists {
					return nil, &MarshalError{
						FieldPath: fieldPath,
						Message:   fmt.Sprintf("embedded struct field %q conflicts with existing field", fieldName),
					}
				}
				irMap[fieldName] = embeddedNode.Values[j]
			}
			continue
		}

		if opts.omitempty && isEmptyValue(fieldVal) {
			continue
		}
		if name == "" {
			name = field.Name
		}
		fieldNode, err := toIRValue(fieldVal, joinPath(fieldPath, name), visited)
		if err != nil {
			return nil, err
		}
		irMap[name] = fieldNode
	}
	return ir.FromMap(irMap), nil
}

func isStructLike(typ reflect.Type) bool {
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	return typ.Kind() == reflect.Struct
}

func joinPath(fieldPath, name string) string {
	if fieldPath == "" {
		return name
	}
	return fieldPath + "." + name
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Ptr:
		return v.IsNil()
	}
	return false
}
