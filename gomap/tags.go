package gomap

import (
	"strings"
)

type tagOpts struct {
	omitempty bool
}

// parseJSONTag splits a `json` struct tag into its name and options. The
// returned name is "" when the tag leaves it to the field name, and "-"
// when the field is excluded.
func parseJSONTag(tag string) (string, tagOpts) {
	if tag == "" {
		return "", tagOpts{}
	}
	parts := strings.Split(tag, ",")
	name := parts[0]
	opts := tagOpts{}
	for _, p := range parts[1:] {
		if p == "omitempty" {
			opts.omitempty = true
		}
	}
	return name, opts
}
