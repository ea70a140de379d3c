package parse

import (
	"bytes"
	"testing"

	"github.com/keon-runtime/canonjson/encode"
)

func FuzzParse(f *testing.F) {
	// Seed with various valid inputs
	seeds := []string{
		// Primitives
		`null`,
		`true`,
		`false`,
		`42`,
		`-0`,
		`3.14`,
		`-1e10`,
		`1e-7`,
		`1e21`,
		`1e999`,
		`""`,
		`"hello"`,
		`"é"`,
		`"😀"`,
		`"with\nnewline"`,
		`"with \"quotes\""`,

		// Arrays
		`[]`,
		`[1, 2, 3]`,
		`[[nested], [arrays]]`,
		`[null, true, "x", 1.5]`,

		// Objects
		`{}`,
		`{"foo": "bar"}`,
		`{"a": 1, "b": 2}`,
		`{"a": 1, "a": 2}`,
		`{"nested": {"object": "value"}}`,
		`{"z_key": 3, "a_key": 1, "A_key": 0}`,

		// Mixed
		`{"users": [{"name": "alice"}, {"name": "bob"}]}`,

		// Near-miss inputs
		`{`,
		`[1,]`,
		`nul`,
		`"a" "b"`,
	}

	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		// Primary target: parse should not panic
		node, err := Parse(data)
		if err != nil {
			return // parse errors are expected for random input
		}

		// Secondary: if parse succeeds, encoding may reject the value
		// (non-finite numbers, key collisions) but must not panic
		var buf bytes.Buffer
		if err := encode.Encode(node, &buf); err != nil {
			return
		}

		// Canonical output must parse and re-encode to the same bytes.
		node2, err := Parse(buf.Bytes())
		if err != nil {
			t.Fatalf("canonical output does not reparse: %q: %v", buf.Bytes(), err)
		}
		var buf2 bytes.Buffer
		if err := encode.Encode(node2, &buf2); err != nil {
			t.Fatalf("canonical output does not re-encode: %q: %v", buf.Bytes(), err)
		}
		if !bytes.Equal(buf.Bytes(), buf2.Bytes()) {
			t.Fatalf("canonical form not a fixed point: %q then %q", buf.Bytes(), buf2.Bytes())
		}
	})
}
