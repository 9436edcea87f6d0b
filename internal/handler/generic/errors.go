package generic

import "errors"

var (
	ErrEmptyCompletion = errors.New("llm returned an empty completion")
)
