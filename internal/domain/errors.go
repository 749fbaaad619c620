package domain

import "errors"

var (
	// ErrLLMFailure signals a failed request to the LLM provider.
	ErrLLMFailure = errors.New("llm request failed")
	// ErrMalformedRecord signals an order row with unparseable numeric fields.
	ErrMalformedRecord = errors.New("malformed order record")
	// ErrEmptyQuery signals a blank query string.
	ErrEmptyQuery = errors.New("query must not be empty")
)
