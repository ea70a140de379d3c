// Package eval runs read-only expressions against parsed documents.
//
// Expressions use the expr language (github.com/expr-lang/expr). The
// document is decoded to native Go values, the expression runs over them,
// and the result is converted back to a node so it can be canonicalized.
//
// # Related Packages
//
//   - github.com/keon-runtime/canonjson/gomap - native value boundary
//   - github.com/keon-runtime/canonjson/encode - canonical encoding
package eval
