// Package action is the callable boundary of the service. Every action
// validates its input, authorizes the caller, runs one use-case and converts
// any domain or validation failure into a Result. Only unexpected failures
// come back as a Go error.
package action

import (
	"encoding/json"

	"job-board/internal/domain/apperr"
)

// ActionError is the only error shape a caller ever sees.
type ActionError struct {
	ErrorCode    apperr.Code `json:"errorCode"`
	ErrorKey     string      `json:"errorKey"`
	ErrorMessage string      `json:"errorMessage,omitempty"`
}

// Empty is the data type of mutations that return nothing.
type Empty struct{}

type Result[T any] struct {
	Data T
	Err  *ActionError
}

func Ok[T any](data T) Result[T] {
	return Result[T]{Data: data}
}

func Fail[T any](e ActionError) Result[T] {
	return Result[T]{Err: &e}
}

func (r Result[T]) Success() bool { return r.Err == nil }

// MarshalJSON renders {success:true,data}, {success:true} for Empty, or the
// ActionError.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.Err != nil {
		return json.Marshal(r.Err)
	}
	if _, empty := any(r.Data).(Empty); empty {
		return json.Marshal(struct {
			Success bool `json:"success"`
		}{true})
	}
	return json.Marshal(struct {
		Success bool `json:"success"`
		Data    T    `json:"data"`
	}{true, r.Data})
}
