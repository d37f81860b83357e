// Package loader reads course records from the comma-delimited course file.
//
// Each line holds a course code, a course name and any number of
// prerequisite codes. Only the code and name are kept. Fields are passed
// through exactly as written, so a blank line yields a course with an empty
// code and name.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/yigit/courseplanner/internal/app/models"
	"github.com/yigit/courseplanner/internal/pkg/apperrors"
)

const (
	fieldSeparator = ","
	utf8BOM        = "\ufeff"
	maxLineLength  = 1024 * 1024
)

// Inserter accepts parsed courses
type Inserter interface {
	Insert(course models.Course)
}

// Parse reads every course record from r in source order
func Parse(r io.Reader) ([]models.Course, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	var courses []models.Course
	lineNumber := 0
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if lineNumber == 0 {
			line = strings.TrimPrefix(line, utf8BOM)
		}
		lineNumber++

		courses = append(courses, parseLine(line))
	}

	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: line %d exceeds %d bytes", apperrors.ErrMalformedSource, lineNumber+1, maxLineLength)
		}
		return nil, fmt.Errorf("failed to read course source: %w", err)
	}

	return courses, nil
}

// parseLine splits a record into its code and name. A record without a
// separator is a code with an empty name.
func parseLine(line string) models.Course {
	fields := strings.SplitN(line, fieldSeparator, 3)

	course := models.Course{Code: fields[0]}
	if len(fields) > 1 {
		course.Name = fields[1]
	}
	return course
}

// LoadFile parses the course file at path
func LoadFile(path string) ([]models.Course, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrSourceUnavailable, path, err)
	}
	defer file.Close()

	courses, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return courses, nil
}

// LoadInto inserts courses into table in order and returns how many were inserted
func LoadInto(table Inserter, courses []models.Course) int {
	for _, course := range courses {
		table.Insert(course)
	}
	return len(courses)
}
