// Package parse parses JSON and YAML text into IR nodes.
//
// # Usage
//
//	// Parse JSON text
//	node, err := parse.Parse([]byte(`{"name": "alice", "age": 30}`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse from string
//	node, err := parse.ParseString(`[1, 2, 3]`)
//
//	// Parse YAML
//	node, err := parse.Parse(data, parse.ParseYAML())
//
// Parsing is delegated to the standard library JSON decoder and the goccy
// YAML decoder; this package owns only the mapping of their output onto the
// IR. Numbers are re-typed from their literal text: integers that fit an
// int64 stay exact, everything else becomes a float64.
//
// # Related Packages
//
//   - github.com/keon-runtime/canonjson/ir - IR representation
//   - github.com/keon-runtime/canonjson/encode - Encode IR to canonical JSON
package parse
