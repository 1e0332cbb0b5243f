package common

import "fmt"

// ErrorType distinguishes the fatal error categories the core packages
// raise. Using a typed error with constructors, rather than ad-hoc
// fmt.Errorf strings, follows the shape of an APIError: a small struct
// satisfying error, plus package-level sentinels callers can compare
// against with errors.Is without string matching.
type ErrorType string

const (
	ErrorTypeInvalidConfig     ErrorType = "invalid_config"
	ErrorTypeInvalidParameters ErrorType = "invalid_parameters"
	ErrorTypeUnknownLevel      ErrorType = "unknown_level"
	ErrorTypeUnknownBook       ErrorType = "unknown_book"
	ErrorTypeEmptyCorpus       ErrorType = "empty_corpus"
)

// PathError is the error type returned by every fatal condition in the core.
// A partial result is never returned alongside a non-nil PathError: callers
// can assume a non-nil error means the accompanying value is a zero value,
// not a partially built one.
type PathError struct {
	Type    ErrorType
	Message string
}

func (e *PathError) Error() string {
	return e.Message
}

// Is lets errors.Is(err, common.ErrUnknownBook) match any *PathError with the
// same Type, regardless of the specific message attached.
func (e *PathError) Is(target error) bool {
	t, ok := target.(*PathError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// NewError builds a *PathError with a formatted message.
func NewError(t ErrorType, format string, args ...any) *PathError {
	return &PathError{Type: t, Message: fmt.Sprintf(format, args...)}
}

// Sentinel errors for errors.Is comparisons at call sites that don't need a
// specific message, just the category.
var (
	ErrInvalidConfig     = &PathError{Type: ErrorTypeInvalidConfig, Message: "invalid level configuration"}
	ErrInvalidParameters = &PathError{Type: ErrorTypeInvalidParameters, Message: "invalid path generation parameters"}
	ErrUnknownLevel      = &PathError{Type: ErrorTypeUnknownLevel, Message: "unknown level"}
	ErrUnknownBook       = &PathError{Type: ErrorTypeUnknownBook, Message: "unknown book"}
	ErrEmptyCorpus       = &PathError{Type: ErrorTypeEmptyCorpus, Message: "corpus has no books"}
)
