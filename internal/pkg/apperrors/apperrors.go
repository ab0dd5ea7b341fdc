// FILE: internal/pkg/apperrors/apperrors.go
// Typed error kinds surfaced by the core services
package apperrors

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// KindUnknown is any error the core did not classify.
	KindUnknown Kind = iota
	// KindNotFound: the mutation target does not exist (404-equivalent).
	KindNotFound
	// KindInvalidReference: a foreign key to tenant/feature is missing.
	KindInvalidReference
	// KindInvalidArgument: the request itself is malformed (e.g. sourceEnv
	// equals targetEnv, missing required fields).
	KindInvalidArgument
	// KindConflictOrTransient: underlying transaction failure; callers may
	// retry, the core does not.
	KindConflictOrTransient
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func InvalidReference(message string, err error) *Error {
	return &Error{Kind: KindInvalidReference, Message: message, Err: err}
}

func InvalidArgument(message string) *Error {
	return &Error{Kind: KindInvalidArgument, Message: message}
}

func ConflictOrTransient(message string, err error) *Error {
	return &Error{Kind: KindConflictOrTransient, Message: message, Err: err}
}

// KindOf extracts the kind from anywhere in the error chain.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}
