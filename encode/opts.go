package encode

type EncodeOption func(*EncState)

// DefaultMaxDepth bounds container nesting when EncodeMaxDepth is not given.
const DefaultMaxDepth = 512

// EncodeMaxDepth overrides the maximum container nesting depth. Values
// below 1 keep the default.
func EncodeMaxDepth(n int) EncodeOption {
	return func(es *EncState) {
		if n > 0 {
			es.maxDepth = n
		}
	}
}

// EncodeColors turns on ANSI coloring for terminal display. Colored output
// is a viewing aid only; it is not canonical.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
