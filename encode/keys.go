package encode

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/keon-runtime/canonjson/ir"
)

// CompareUTF16 compares a and b by their UTF-16 code units, the key order
// canonical JSON objects are sorted in. It differs from a plain byte or rune
// comparison for supplementary-plane characters, whose surrogate pairs sort
// between U+D7FF and U+E000. The code units are produced on the fly; neither
// string is re-encoded.
func CompareUTF16(a, b string) int {
	ca := utf16Cursor{rest: a}
	cb := utf16Cursor{rest: b}
	for {
		ua, oka := ca.next()
		ub, okb := cb.next()
		switch {
		case !oka && !okb:
			return 0
		case !oka:
			return -1
		case !okb:
			return 1
		case ua < ub:
			return -1
		case ua > ub:
			return 1
		}
	}
}

// utf16Cursor steps through a string one UTF-16 code unit at a time,
// holding the low surrogate back when a rune decodes to a pair.
type utf16Cursor struct {
	rest    string
	pend    uint16
	hasPend bool
}

func (c *utf16Cursor) next() (uint16, bool) {
	if c.hasPend {
		c.hasPend = false
		return c.pend, true
	}
	if len(c.rest) == 0 {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(c.rest)
	c.rest = c.rest[size:]
	if r < 0x10000 {
		return uint16(r), true
	}
	r -= 0x10000
	c.pend = uint16(0xDC00 + (r & 0x3FF))
	c.hasPend = true
	return uint16(0xD800 + (r >> 10)), true
}

// fieldVal pairs an NFC-normalized key with its value node.
type fieldVal struct {
	key string
	val *ir.Node
}

// canonicalFields returns node's fields with keys normalized to NFC and
// sorted by CompareUTF16. Keys which collide after normalization are a hard
// error: picking either value silently would make output depend on input
// key order.
func canonicalFields(node *ir.Node) ([]fieldVal, error) {
	fvs := make([]fieldVal, len(node.Fields))
	for i, f := range node.Fields {
		if f.Type != ir.StringType {
			return nil, fmt.Errorf("%w: object key of type %s at %s", ErrUnsupportedType, f.Type, node.Path())
		}
		fvs[i] = fieldVal{key: norm.NFC.String(f.String), val: node.Values[i]}
	}
	sort.Slice(fvs, func(i, j int) bool {
		return CompareUTF16(fvs[i].key, fvs[j].key) < 0
	})
	for i := 1; i < len(fvs); i++ {
		if fvs[i].key == fvs[i-1].key {
			return nil, collisionError(node, fvs[i].key)
		}
	}
	return fvs, nil
}

func collisionError(node *ir.Node, key string) error {
	originals := []string{}
	for _, f := range node.Fields {
		if norm.NFC.String(f.String) == key {
			originals = append(originals, strconv.Quote(f.String))
		}
	}
	return fmt.Errorf("%w: object keys %s normalize to the same key %q at %s",
		ErrFormat, strings.Join(originals, " and "), key, node.Path())
}
