package llm

import (
	"context"
	"errors"
)

// ErrEmptyResponse is returned when the provider answers without any text.
var ErrEmptyResponse = errors.New("llm: empty response")

type Engine interface {
	Name() string
	GetModel() string
	Generate(ctx context.Context, req Request) (string, error)
}

// Request is a single-turn prompt. With Schema set the provider is asked
// for a JSON object of that shape; callers still validate the answer.
type Request struct {
	Prompt string
	Schema *ObjectSchema
}

// ObjectSchema describes a flat JSON object of string fields.
type ObjectSchema struct {
	Fields   []Field
	Required []string
}

type Field struct {
	Name        string
	Description string
	Enum        []string
}
