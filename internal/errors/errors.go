// Package errors provides structured error types for manus.
// These errors carry the operation that failed and a coarse category so
// callers can decide whether to log, fall back, or report.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindIO
	KindConfig
	KindStorage
	KindTimeout
	KindCancelled
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindIO:
		return "I/O error"
	case KindConfig:
		return "configuration error"
	case KindStorage:
		return "storage error"
	case KindTimeout:
		return "timeout"
	case KindCancelled:
		return "cancelled"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for manus.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...any) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Preference store errors
func StoreReadFailed(key string, err error) error {
	return E(Op("prefs.Get"), KindStorage, fmt.Sprintf("failed to read %s", key), err)
}

func StoreWriteFailed(key string, err error) error {
	return E(Op("prefs.Set"), KindStorage, fmt.Sprintf("failed to write %s", key), err)
}

func StoreOpenFailed(path string, err error) error {
	return E(Op("prefs.Open"), KindIO, fmt.Sprintf("failed to open store at %s", path), err)
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}

// Task errors
func TaskNotFound(id string) error {
	return E(Op("tasks.Get"), KindNotFound, fmt.Sprintf("task %s not found", id))
}

func InvalidTransition(id, from, action string) error {
	return E(Op("tasks.Transition"), KindInvalid, fmt.Sprintf("cannot %s task %s while %s", action, id, from))
}

// Conversation errors
func ReplyCancelled(messageID string) error {
	return E(Op("conversation.Wait"), KindCancelled, fmt.Sprintf("reply to %s cancelled", messageID))
}
