package parse

import (
	"errors"
)

// ErrParse reports input which is not a well-formed document: malformed
// text, trailing data after the top-level value, or bytes which are not
// valid UTF-8.
var ErrParse = errors.New("parse error")
