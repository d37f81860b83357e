package coursetable

import "github.com/yigit/courseplanner/internal/app/models"

// Status is the outcome of a lookup
type Status int

const (
	// Found means a course with the requested code is stored
	Found Status = iota
	// NotFound means no stored course has the requested code
	NotFound
)

// notFoundCode is the numeric status historically reported for a miss
const notFoundCode uint = 9

// Code returns the numeric form of the status: 0 when found, 9 otherwise.
func (s Status) Code() uint {
	if s == Found {
		return 0
	}
	return notFoundCode
}

func (s Status) String() string {
	switch s {
	case Found:
		return "found"
	case NotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Result is the outcome of a lookup. Course is only set when Status is Found.
type Result struct {
	Status Status
	Course models.Course
}

// OK reports whether the lookup found a course
func (r Result) OK() bool {
	return r.Status == Found
}
