package parse

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/keon-runtime/canonjson/ir"
)

// parseYAML reads a YAML document through the generic decoder and re-types
// the result through fromAny, so YAML and JSON input produce identical IR
// for identical content. An empty document is null.
func parseYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return fromAny(v)
}
