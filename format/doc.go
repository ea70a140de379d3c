// Package format names the input formats the parser accepts.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	if err != nil {
//	    return err
//	}
//	if f.IsYAML() {
//	    // ...
//	}
//
// Output has a single canonical form; Format only selects how input is read.
//
// # Related Packages
//
//   - github.com/keon-runtime/canonjson/parse - Parse text to IR
//   - github.com/keon-runtime/canonjson/encode - Encode IR to canonical JSON
package format
