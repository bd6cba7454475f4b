package bits

import "github.com/pkg/errors"

// Fault kinds. Errors returned by this package wrap exactly one of these,
// so callers classify them with errors.Is.
var (
	ErrMalformedInput = errors.New("bits: malformed input")
	ErrUnexpectedEnd  = errors.New("bits: unexpected end of transmission")
	ErrOverflow       = errors.New("bits: value overflows 64 bits")
)
