package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/keon-runtime/canonjson/encode"
	"github.com/keon-runtime/canonjson/ir"
)

// Logf writes a formatted message to stderr. Args holding *ir.Node are
// rendered in canonical form; maps and slices are pretty-printed JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf); err != nil {
				args[i] = fmt.Sprintf("[raw node] %v", x)
				continue
			}
			args[i] = buf.String()
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
