package encode

const hexDigits = "0123456789abcdef"

// Quote renders v as a JSON string literal using the minimal escape set:
// double quote, backslash, and the C0 control characters. Controls with a
// short form use it (\b, \t, \n, \f, \r); the rest become lowercase \u00xx.
// Everything else passes through verbatim as UTF-8.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch c {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if c < 0x20 {
				d = append(d, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
			} else {
				// Control characters are single bytes; multi-byte UTF-8
				// sequences always land here and pass through untouched.
				d = append(d, c)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}
