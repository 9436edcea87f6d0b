package assistant

import "errors"

var (
	ErrEmptySessionKey = errors.New("session key is required")
)
