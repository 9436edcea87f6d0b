package product

import "errors"

var (
	ErrEmptyCompletion = errors.New("llm returned an empty completion")
)
