package eval

import (
	"testing"

	"github.com/keon-runtime/canonjson/encode"
	"github.com/keon-runtime/canonjson/parse"
)

func TestQuery(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		expr string
		want string
	}{
		{
			name: "whole document",
			doc:  `{"b":2,"a":1}`,
			expr: "doc",
			want: `{"a":1,"b":2}`,
		},
		{
			name: "top-level field as variable",
			doc:  `{"name":"alice","age":30}`,
			expr: "name",
			want: `"alice"`,
		},
		{
			name: "field through doc",
			doc:  `{"name":"alice"}`,
			expr: "doc.name",
			want: `"alice"`,
		},
		{
			name: "arithmetic",
			doc:  `{"a":2,"b":3}`,
			expr: "a * b",
			want: "6",
		},
		{
			name: "array document index",
			doc:  `[5,6,7]`,
			expr: "doc[1]",
			want: "6",
		},
		{
			name: "filter",
			doc:  `{"xs":[1,2,3,4]}`,
			expr: "filter(xs, # > 2)",
			want: "[3,4]",
		},
		{
			name: "map",
			doc:  `{"xs":[1,2]}`,
			expr: "map(xs, # * 10)",
			want: "[10,20]",
		},
		{
			name: "ternary",
			doc:  `{"n":5}`,
			expr: `n > 3 ? "big" : "small"`,
			want: `"big"`,
		},
		{
			name: "object literal result",
			doc:  `{"a":1}`,
			expr: `{"k": a + 1}`,
			want: `{"k":2}`,
		},
		{
			name: "nil result",
			doc:  `{"a":1}`,
			expr: "nil",
			want: "null",
		},
		{
			name: "canonical helper",
			doc:  `{"z":1,"a":2}`,
			expr: "canonical(doc)",
			want: `"{\"a\":2,\"z\":1}"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := parse.ParseString(tt.doc)
			if err != nil {
				t.Fatalf("ParseString() error = %v", err)
			}
			res, err := Query(doc, tt.expr)
			if err != nil {
				t.Fatalf("Query() error = %v", err)
			}
			if got := encode.MustString(res); got != tt.want {
				t.Errorf("Query(%q) = %s, want %s", tt.expr, got, tt.want)
			}
		})
	}
}

func TestQueryGetenv(t *testing.T) {
	t.Setenv("CANONJSON_QUERY_TEST", "hello")
	doc, err := parse.ParseString(`{}`)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	res, err := Query(doc, `getenv("CANONJSON_QUERY_TEST")`)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if got := encode.MustString(res); got != `"hello"` {
		t.Errorf("Query(getenv) = %s, want %q", got, `"hello"`)
	}
}

func TestQueryCompileError(t *testing.T) {
	doc, err := parse.ParseString(`{"a":1}`)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	if _, err := Query(doc, "1 +"); err == nil {
		t.Error("expected compile error for malformed expression")
	}
}

func TestQueryDocVariableNotShadowed(t *testing.T) {
	// A top-level field named doc must not displace the document binding.
	doc, err := parse.ParseString(`{"doc":"field"}`)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	res, err := Query(doc, "doc")
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if got := encode.MustString(res); got != `{"doc":"field"}` {
		t.Errorf("Query(doc) = %s, want the whole document", got)
	}
}
