package encode

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/keon-runtime/canonjson/ir"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
		want string
	}{
		{"null", ir.Null(), "null"},
		{"nil node", nil, "null"},
		{"true", ir.FromBool(true), "true"},
		{"false", ir.FromBool(false), "false"},
		{"int", ir.FromInt(42), "42"},
		{"float", ir.FromFloat(3.14159), "3.14159"},
		{"string", ir.FromString("hello"), `"hello"`},
		{"empty object", ir.FromKeyVals(nil), "{}"},
		{"empty array", ir.FromSlice(nil), "[]"},
		{"empty string key", ir.FromKeyVals([]ir.KeyVal{
			{Key: ir.FromString(""), Val: ir.FromInt(0)},
		}), `{"":0}`},

		{"array order kept", ir.FromSlice([]*ir.Node{
			ir.FromInt(3), ir.FromInt(1), ir.FromInt(2),
		}), "[3,1,2]"},
		{"mixed array", ir.FromSlice([]*ir.Node{
			ir.Null(), ir.FromBool(true), ir.FromString("x"), ir.FromFloat(1.5),
		}), `[null,true,"x",1.5]`},

		{"keys sorted", ir.FromKeyVals([]ir.KeyVal{
			{Key: ir.FromString("z_key"), Val: ir.FromInt(3)},
			{Key: ir.FromString("a_key"), Val: ir.FromInt(1)},
			{Key: ir.FromString("A_key"), Val: ir.FromInt(0)},
			{Key: ir.FromString("m_key"), Val: ir.FromInt(2)},
		}), `{"A_key":0,"a_key":1,"m_key":2,"z_key":3}`},
		{"nested object", ir.FromKeyVals([]ir.KeyVal{
			{Key: ir.FromString("b"), Val: ir.FromKeyVals([]ir.KeyVal{
				{Key: ir.FromString("c"), Val: ir.FromInt(2)},
			})},
			{Key: ir.FromString("a"), Val: ir.FromInt(1)},
		}), `{"a":1,"b":{"c":2}}`},
		{"object in array", ir.FromSlice([]*ir.Node{
			ir.FromKeyVals([]ir.KeyVal{
				{Key: ir.FromString("y"), Val: ir.FromInt(1)},
				{Key: ir.FromString("x"), Val: ir.FromInt(2)},
			}),
		}), `[{"x":2,"y":1}]`},

		// NFC normalization: e + combining acute composes to é.
		{"decomposed key normalized",
			ir.FromKeyVals([]ir.KeyVal{
				{Key: ir.FromString("é"), Val: ir.FromInt(1)},
			}),
			"{\"é\":1}"},
		{"decomposed value normalized", ir.FromString("é"), "\"é\""},
		{"composed value unchanged", ir.FromString("é"), "\"é\""},

		// UTF-16 order: the surrogate pair for U+10000 starts at 0xD800,
		// below U+E000, so it sorts first despite the higher code point.
		{"supplementary plane key order",
			ir.FromKeyVals([]ir.KeyVal{
				{Key: ir.FromString(""), Val: ir.FromInt(2)},
				{Key: ir.FromString("\U00010000"), Val: ir.FromInt(1)},
			}),
			"{\"\U00010000\":1,\"\":2}"},
		{"emoji key after euro",
			ir.FromKeyVals([]ir.KeyVal{
				{Key: ir.FromString("\U0001f600"), Val: ir.FromString("grin")},
				{Key: ir.FromString("€"), Val: ir.FromString("euro")},
				{Key: ir.FromString("~"), Val: ir.FromString("tilde")},
			}),
			"{\"~\":\"tilde\",\"€\":\"euro\",\"\U0001f600\":\"grin\"}"},
		{"control key escaped and first",
			ir.FromKeyVals([]ir.KeyVal{
				{Key: ir.FromString("1"), Val: ir.FromString("One")},
				{Key: ir.FromString("\r"), Val: ir.FromString("Carriage Return")},
			}),
			`{"\r":"Carriage Return","1":"One"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := bytes.NewBuffer(nil)
			if err := Encode(tt.node, buf); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("Encode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeErrors(t *testing.T) {
	tests := []struct {
		name     string
		node     *ir.Node
		sentinel error
	}{
		{"NaN", ir.FromFloat(math.NaN()), ErrFormat},
		{"positive infinity", ir.FromFloat(math.Inf(1)), ErrFormat},
		{"negative infinity", ir.FromFloat(math.Inf(-1)), ErrFormat},
		{"empty number node", &ir.Node{Type: ir.NumberType}, ErrUnsupportedType},
		{"unknown node type", &ir.Node{Type: ir.Type(99)}, ErrUnsupportedType},
		{"colliding keys after normalization", ir.FromKeyVals([]ir.KeyVal{
			{Key: ir.FromString("é"), Val: ir.FromInt(1)},
			{Key: ir.FromString("é"), Val: ir.FromInt(2)},
		}), ErrFormat},
		{"duplicate keys", ir.FromKeyVals([]ir.KeyVal{
			{Key: ir.FromString("a"), Val: ir.FromInt(1)},
			{Key: ir.FromString("a"), Val: ir.FromInt(2)},
		}), ErrFormat},
		{"non-string key", ir.FromKeyVals([]ir.KeyVal{
			{Key: ir.FromInt(1), Val: ir.FromInt(2)},
		}), ErrUnsupportedType},
		{"NaN inside object", ir.FromKeyVals([]ir.KeyVal{
			{Key: ir.FromString("x"), Val: ir.FromFloat(math.NaN())},
		}), ErrFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Encode(tt.node, bytes.NewBuffer(nil))
			if err == nil {
				t.Fatal("Encode() error = nil")
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("Encode() error = %v, want %v", err, tt.sentinel)
			}
		})
	}
}

func TestEncodeCollisionNamesKeys(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("é"), Val: ir.FromInt(1)},
		{Key: ir.FromString("é"), Val: ir.FromInt(2)},
	})
	err := Encode(node, bytes.NewBuffer(nil))
	if err == nil {
		t.Fatal("Encode() error = nil")
	}
	if !strings.Contains(err.Error(), "normalize to the same key") {
		t.Errorf("error %q does not describe the collision", err)
	}
}

func TestEncodeDepth(t *testing.T) {
	deep := func(n int) *ir.Node {
		node := ir.FromInt(1)
		for i := 0; i < n; i++ {
			node = ir.FromSlice([]*ir.Node{node})
		}
		return node
	}

	if err := Encode(deep(DefaultMaxDepth), bytes.NewBuffer(nil)); err != nil {
		t.Errorf("Encode() at max depth error = %v", err)
	}
	err := Encode(deep(DefaultMaxDepth+1), bytes.NewBuffer(nil))
	if !errors.Is(err, ErrDepthExceeded) {
		t.Errorf("Encode() past max depth error = %v, want %v", err, ErrDepthExceeded)
	}

	buf := bytes.NewBuffer(nil)
	if err := Encode(deep(4), buf, EncodeMaxDepth(4)); err != nil {
		t.Errorf("Encode() at custom depth error = %v", err)
	}
	err = Encode(deep(5), bytes.NewBuffer(nil), EncodeMaxDepth(4))
	if !errors.Is(err, ErrDepthExceeded) {
		t.Errorf("Encode() past custom depth error = %v, want %v", err, ErrDepthExceeded)
	}
}

func TestEncodeDeterministic(t *testing.T) {
	a := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("b"), Val: ir.FromInt(2)},
		{Key: ir.FromString("a"), Val: ir.FromInt(1)},
	})
	b := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("a"), Val: ir.FromInt(1)},
		{Key: ir.FromString("b"), Val: ir.FromInt(2)},
	})
	if MustString(a) != MustString(b) {
		t.Errorf("insertion order leaked into output: %q vs %q", MustString(a), MustString(b))
	}
}

func TestMustStringPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustString() did not panic on NaN")
		}
	}()
	MustString(ir.FromFloat(math.NaN()))
}
