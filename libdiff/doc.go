// Package libdiff renders character-level diffs between document texts.
//
// # Usage
//
//	diffs := libdiff.Texts(string(raw), string(canonical))
//	if libdiff.Changed(diffs) {
//		fmt.Println(libdiff.Render(diffs, false))
//	}
//
// The main consumer is the CLI's validate subcommand, which shows where an
// input deviates from its canonical form.
//
// # Related Packages
//
//   - github.com/keon-runtime/canonjson/encode - canonical encoding
package libdiff
