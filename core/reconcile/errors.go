package reconcile

import (
	"errors"
	"fmt"
)

// FetchErrorKind classifies a content fetch failure.
type FetchErrorKind string

const (
	KindRemoteUnavailable FetchErrorKind = "remote_unavailable"
	KindNotAnImage        FetchErrorKind = "not_an_image"
	KindNotFound          FetchErrorKind = "not_found"
	KindReadError         FetchErrorKind = "read_error"
)

var (
	ErrRemoteUnavailable = errors.New("reconcile: remote unavailable")
	ErrNotAnImage        = errors.New("reconcile: not an image")
	ErrNotFound          = errors.New("reconcile: file not found")
	ErrReadError         = errors.New("reconcile: file unreadable")
	ErrMissingContent    = errors.New("reconcile: missing existing content")
)

// FetchError is returned when a reference cannot be turned into content.
type FetchError struct {
	// Kind is the failure category.
	Kind FetchErrorKind

	// Ref is the offending reference as supplied by the caller.
	Ref string

	// Detail adds context such as the HTTP status or media type.
	Detail string

	// Err is the underlying error, if any.
	Err error
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("could not fetch %q: %s", e.Ref, e.Kind)
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error kind.
func (e *FetchError) Is(target error) bool {
	switch e.Kind {
	case KindRemoteUnavailable:
		return target == ErrRemoteUnavailable
	case KindNotAnImage:
		return target == ErrNotAnImage
	case KindNotFound:
		return target == ErrNotFound
	case KindReadError:
		return target == ErrReadError
	}
	return false
}

// MissingContentError is returned when an existing entry has neither
// embedded content nor a readable backing file.
type MissingContentError struct {
	ID   int64
	File string
	Err  error
}

func (e *MissingContentError) Error() string {
	msg := fmt.Sprintf("could not load existing image content for id %d (%s)", e.ID, e.File)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MissingContentError) Unwrap() error {
	return e.Err
}

func (e *MissingContentError) Is(target error) bool {
	return target == ErrMissingContent
}

// IsResolutionError reports whether err is a fetch or existing-content failure,
// i.e. a problem with the submitted references rather than with the service.
func IsResolutionError(err error) bool {
	var fe *FetchError
	var me *MissingContentError
	return errors.As(err, &fe) || errors.As(err, &me)
}
