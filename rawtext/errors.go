package rawtext

import "errors"

var errInvalidHexDigit = errors.New("rawtext: invalid hex digit")
