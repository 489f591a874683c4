package query

import (
	"context"
	"encoding/json"

	"github.com/polypuls3/polypulse/types"
)

// Envelope wraps the settled result of a read with its loading and error state and the backend that served it
type Envelope[T any] struct {
	Data         T
	IsLoading    bool
	IsError      bool
	Err          error
	ActiveSource types.ActiveSource
	// Partial is set when some of the data could not be read and was reported as zero
	Partial  bool
	Warnings []string

	refetch func(ctx context.Context) Envelope[T]
}

// Refetch re-runs the read that produced this envelope. It can be called any number of times.
func (e Envelope[T]) Refetch(ctx context.Context) Envelope[T] {
	if e.refetch == nil {
		return e
	}

	return e.refetch(ctx)
}

// WithRefetch returns a copy of the envelope that re-runs the given read on Refetch
func (e Envelope[T]) WithRefetch(refetch func(ctx context.Context) Envelope[T]) Envelope[T] {
	e.refetch = refetch
	return e
}

type envelopeJSON[T any] struct {
	Data         T                  `json:"data"`
	IsLoading    bool               `json:"isLoading"`
	IsError      bool               `json:"isError"`
	Error        *string            `json:"error"`
	ActiveSource types.ActiveSource `json:"activeSource"`
	Partial      bool               `json:"partial"`
	Warnings     []string           `json:"warnings,omitempty"`
}

// MarshalJSON implements json.Marshaler
func (e Envelope[T]) MarshalJSON() ([]byte, error) {
	out := envelopeJSON[T]{
		Data:         e.Data,
		IsLoading:    e.IsLoading,
		IsError:      e.IsError,
		ActiveSource: e.ActiveSource,
		Partial:      e.Partial,
		Warnings:     e.Warnings,
	}

	if e.Err != nil {
		msg := e.Err.Error()
		out.Error = &msg
	}

	return json.Marshal(out)
}
