package board

import "errors"

// Input-boundary errors, per the error-handling design: these are reported
// as rejections that leave core state unchanged, never panics.
var (
	ErrIllegalMove     = errors.New("board: illegal move")
	ErrMalformedNotation = errors.New("board: malformed position string")
)
