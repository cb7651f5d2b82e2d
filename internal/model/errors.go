package model

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by stores when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrorKind classifies errors surfaced to callers.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	// KindValidation is a rejected input; nothing was written.
	KindValidation
	// KindDuplicateDeckName means the owner already has a deck with that name.
	KindDuplicateDeckName
	// KindCollaboratorUnavailable wraps storage, generation or payment failures.
	KindCollaboratorUnavailable
	KindUnauthenticated
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindDuplicateDeckName:
		return "duplicate_deck_name"
	case KindCollaboratorUnavailable:
		return "collaborator_unavailable"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Error is a classified error. Message is safe to show to the user; Err
// keeps the underlying cause for logs.
type Error struct {
	Kind    ErrorKind
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

// NewErrValidation creates a validation error with a user-facing message.
func NewErrValidation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewErrDuplicateDeckName creates an error for a deck name already in use.
func NewErrDuplicateDeckName(name string) *Error {
	return &Error{
		Kind:    KindDuplicateDeckName,
		Message: fmt.Sprintf("flashcard collection %q already exists", name),
	}
}

// NewErrCollaboratorUnavailable wraps a failure of an external system.
func NewErrCollaboratorUnavailable(collaborator string, err error) *Error {
	return &Error{
		Kind:    KindCollaboratorUnavailable,
		Message: fmt.Sprintf("%s is unavailable", collaborator),
		Err:     err,
	}
}

func NewErrUnauthenticated(message string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: message}
}

func NewErrNotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message, Err: ErrNotFound}
}

// KindOf returns the kind of the first *Error in err's chain. Bare
// ErrNotFound maps to KindNotFound.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	if errors.Is(err, ErrNotFound) {
		return KindNotFound
	}
	return KindUnknown
}
