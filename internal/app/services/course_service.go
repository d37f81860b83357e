package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/yigit/courseplanner/internal/app/models"
	"github.com/yigit/courseplanner/internal/coursetable"
	"github.com/yigit/courseplanner/internal/loader"
	"github.com/yigit/courseplanner/internal/pkg/apperrors"
)

// CourseService handles course-related operations on top of a course table.
// Unlike the table it wraps, it may be used from multiple goroutines.
type CourseService struct {
	mu          sync.RWMutex
	table       *coursetable.Table
	coursesFile string
	logger      zerolog.Logger
}

// NewCourseService creates a course service with an empty table of tableSize buckets
func NewCourseService(tableSize uint, coursesFile string, logger zerolog.Logger) (*CourseService, error) {
	table, err := coursetable.New(tableSize)
	if err != nil {
		return nil, err
	}

	registerMetrics()

	return &CourseService{
		table:       table,
		coursesFile: coursesFile,
		logger:      logger.With().Str("component", "course_service").Logger(),
	}, nil
}

// LoadDataStructure reads the configured courses file and inserts every course.
// Courses already in the table are kept, so loading twice stores each course twice.
func (s *CourseService) LoadDataStructure(ctx context.Context) (int, error) {
	return s.LoadFrom(ctx, s.coursesFile)
}

// LoadFrom reads the courses file at path and inserts every course. Nothing is
// inserted when the file cannot be read.
func (s *CourseService) LoadFrom(ctx context.Context, path string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.logger.Info().Str("path", path).Msg("Loading data structure...")
	courses, err := loader.LoadFile(path)
	if err != nil {
		s.logger.Error().Err(err).Str("path", path).Msg("Could not load courses")
		return 0, fmt.Errorf("error loading courses: %w", err)
	}

	s.mu.Lock()
	count := loader.LoadInto(s.table, courses)
	stats := s.table.Stats()
	s.mu.Unlock()

	coursesLoaded.Add(float64(count))
	observeStats(stats)

	s.logger.Info().
		Int("loaded", count).
		Int("courses", stats.Courses).
		Int("occupiedBuckets", stats.OccupiedBuckets).
		Int("deepestBucket", stats.DeepestBucket).
		Msg("Data structure loaded successfully.")
	return count, nil
}

// InsertCourse stores a single course
func (s *CourseService) InsertCourse(course models.Course) {
	s.mu.Lock()
	s.table.Insert(course)
	stats := s.table.Stats()
	s.mu.Unlock()

	coursesLoaded.Inc()
	observeStats(stats)
}

// PrintCourseList hands every course to display in code order and returns how many were shown
func (s *CourseService) PrintCourseList(display coursetable.Display) int {
	s.mu.RLock()
	courses := s.table.List()
	s.mu.RUnlock()

	s.logger.Debug().Int("courses", len(courses)).Msg("Printing course list...")
	for _, course := range courses {
		display.ShowCourse(course)
	}
	return len(courses)
}

// PrintCourse looks up courseID and hands the outcome to display
func (s *CourseService) PrintCourse(courseID string, display coursetable.Display) coursetable.Status {
	s.mu.RLock()
	status := s.table.PrintCourse(courseID, display)
	s.mu.RUnlock()

	courseLookups.WithLabelValues(status.String()).Inc()
	s.logger.Debug().Str("courseId", courseID).Stringer("status", status).Msg("Course lookup")
	return status
}

// GetCourse retrieves a course by its code
func (s *CourseService) GetCourse(ctx context.Context, courseID string) (*models.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	result := s.table.Lookup(courseID)
	s.mu.RUnlock()

	courseLookups.WithLabelValues(result.Status.String()).Inc()
	if !result.OK() {
		return nil, apperrors.NewCourseNotFoundError(courseID)
	}

	course := result.Course
	return &course, nil
}

// ListCourses retrieves all courses sorted by code
func (s *CourseService) ListCourses(ctx context.Context) ([]models.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table.List(), nil
}

// Stats reports the bucket usage of the table
func (s *CourseService) Stats() coursetable.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table.Stats()
}
