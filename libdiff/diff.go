package libdiff

import (
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Texts computes a character-level diff from one text to another, cleaned
// up for human reading.
func Texts(from, to string) []diffpatch.Diff {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(from, to, false)
	return dmp.DiffCleanupSemantic(diffs)
}

// Render formats diffs for a terminal. With colored set, deletions are red
// and insertions green; otherwise deletions render as [-text-] and
// insertions as {+text+}.
func Render(diffs []diffpatch.Diff, colored bool) string {
	var buf strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			if colored {
				buf.WriteString(color.RedString("%s", d.Text))
			} else {
				buf.WriteString("[-" + d.Text + "-]")
			}
		case diffpatch.DiffInsert:
			if colored {
				buf.WriteString(color.GreenString("%s", d.Text))
			} else {
				buf.WriteString("{+" + d.Text + "+}")
			}
		default:
			buf.WriteString(d.Text)
		}
	}
	return buf.String()
}

// Changed reports whether diffs contain any insertion or deletion.
func Changed(diffs []diffpatch.Diff) bool {
	for _, d := range diffs {
		if d.Type != diffpatch.DiffEqual {
			return true
		}
	}
	return false
}
