package encode

import (
	"bytes"

	"github.com/keon-runtime/canonjson/ir"
)

// MustString encodes node to canonical form, panicking on error. For use in
// tests and debug output where the node is known to be encodable.
func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return buf.String()
}
