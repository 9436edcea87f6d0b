package repository

import "errors"

// Store-level errors. Store failures are the one class of error that must
// surface to the top-level caller, so they are distinguishable here.
var (
	ErrEmptySessionKey = errors.New("session key is empty")
	ErrNilState        = errors.New("state is nil")
)
