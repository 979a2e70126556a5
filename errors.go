package fsstat

import (
	"errors"
)

var (
	// ErrCallbackRequired is returned when the options-plus-callback form is
	// used without a callback. It is a usage error and is always returned
	// synchronously, before any I/O.
	ErrCallbackRequired = errors.New("callback is required but not given")

	// ErrInvalidArgument is returned by the positional forms when an argument
	// is neither a callback nor options.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidFileURL is returned when a URL path cannot be converted into
	// a plain path.
	ErrInvalidFileURL = errors.New("invalid file URL")
)

// NotImplementedError reports a feature this package deliberately does not
// provide. It matches errors.ErrUnsupported.
type NotImplementedError struct {
	// Feature names the unsupported operation or option.
	Feature string
}

func (e *NotImplementedError) Error() string {
	return "not implemented: " + e.Feature
}

// Is reports whether target is errors.ErrUnsupported.
func (e *NotImplementedError) Is(target error) bool {
	return target == errors.ErrUnsupported
}

func notImplemented(feature string) error {
	return &NotImplementedError{Feature: feature}
}
