package eval

import (
	"bytes"
	"fmt"
	"os"

	"github.com/keon-runtime/canonjson/debug"
	"github.com/keon-runtime/canonjson/encode"
	"github.com/keon-runtime/canonjson/gomap"
	"github.com/keon-runtime/canonjson/ir"

	"github.com/expr-lang/expr"
)

// Query compiles and runs an expression against a document. The document is
// bound to the variable doc; when it is an object, its top-level fields are
// bound as variables as well. The result is converted back to a node, so
// expressions can only produce JSON-representable values.
func Query(doc *ir.Node, src string) (*ir.Node, error) {
	if debug.Eval() {
		debug.Logf("query %q on %v\n", src, doc)
	}
	env, err := queryEnv(doc)
	if err != nil {
		return nil, err
	}
	prg, err := expr.Compile(src, queryOpts()...)
	if err != nil {
		return nil, err
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return nil, err
	}
	node, err := gomap.ToIR(res)
	if err != nil {
		return nil, fmt.Errorf("expression result is not a JSON value: %w", err)
	}
	return node, nil
}

// queryEnv decodes the document into native form for the expression VM.
func queryEnv(doc *ir.Node) (map[string]any, error) {
	var a any
	if err := gomap.FromIR(doc, &a); err != nil {
		return nil, err
	}
	env := map[string]any{"doc": a}
	if m, ok := a.(map[string]any); ok {
		for k, v := range m {
			if _, exists := env[k]; !exists {
				env[k] = v
			}
		}
	}
	return env, nil
}

func queryOpts() []expr.Option {
	return []expr.Option{
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
		expr.Function("canonical", func(params ...any) (any, error) {
			node, err := gomap.ToIR(params[0])
			if err != nil {
				return nil, err
			}
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(node, buf); err != nil {
				return nil, err
			}
			return buf.String(), nil
		},
			new(func(any) string)),
	}
}
