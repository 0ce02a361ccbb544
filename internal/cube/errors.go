package cube

import "errors"

// Sentinel errors for the cube package.
var (
	// ErrInvalidToken is returned when a notation string does not match
	// one of the eighteen valid turn tokens.
	ErrInvalidToken = errors.New("cube: invalid turn token")
)
