package coursetable

import (
	"fmt"
	"io"

	"github.com/yigit/courseplanner/internal/app/models"
)

// Display receives the courses a table prints
type Display interface {
	ShowCourse(course models.Course)
	ShowNotFound(courseID string)
}

// ConsoleDisplay writes one "CODE, Name" line per course
type ConsoleDisplay struct {
	w io.Writer
}

// NewConsoleDisplay creates a display writing to w
func NewConsoleDisplay(w io.Writer) *ConsoleDisplay {
	return &ConsoleDisplay{w: w}
}

// ShowCourse implements Display
func (d *ConsoleDisplay) ShowCourse(course models.Course) {
	fmt.Fprintf(d.w, "%s, %s\n", course.Code, course.Name)
}

// ShowNotFound implements Display
func (d *ConsoleDisplay) ShowNotFound(courseID string) {
	fmt.Fprintf(d.w, "Course with ID %s not found.\n", courseID)
}
