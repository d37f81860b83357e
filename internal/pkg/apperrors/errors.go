package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Course table errors
var (
	ErrInvalidTableSize = errors.New("table size must be greater than zero")
	ErrCourseNotFound   = errors.New("course not found")
	ErrUnsupported      = errors.New("operation not supported")
)

// Course source errors
var (
	ErrSourceUnavailable = errors.New("course source could not be opened")
	ErrMalformedSource   = errors.New("course source could not be parsed")
)

// NewCourseNotFoundError creates a not found error carrying the requested course ID
func NewCourseNotFoundError(courseID string) error {
	return &CustomError{
		Err:     ErrCourseNotFound,
		Message: "Course with ID " + courseID + " not found.",
		Details: map[string]interface{}{"courseId": courseID},
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}
