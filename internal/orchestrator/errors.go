package orchestrator

import "errors"

var (
	ErrNilState = errors.New("conversation state is nil")
)
