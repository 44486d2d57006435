package wireformat

import "errors"

// Common wire format errors
var (
	// ErrMalformed is returned when a byte sequence does not carry a valid
	// wire format header: wrong magic byte, or too short to hold the header
	// plus a payload.
	ErrMalformed = errors.New("wireformat: malformed message")
)

// IsMalformed checks if the error indicates a malformed wire format message.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformed)
}
