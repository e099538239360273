package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies failures so the handler layer can pick a status code
// without string matching.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindAuth
	KindConflict
	KindNotFound
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(fields ...FieldError) *Error {
	return &Error{Kind: KindValidation, Message: "validation failed", Fields: fields}
}

func ValidationMsg(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func Auth(msg string) *Error {
	return &Error{Kind: KindAuth, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// KindOf extracts the Kind from err, defaulting to KindInternal for
// untyped failures.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }
func IsAuth(err error) bool     { return KindOf(err) == KindAuth }
