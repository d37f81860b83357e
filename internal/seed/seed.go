package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/yigit/courseplanner/internal/pkg/apperrors"
)

// CourseLoader loads the configured courses file
type CourseLoader interface {
	LoadDataStructure(ctx context.Context) (int, error)
}

// LoadDefaultCourses fills the table from the configured courses file at
// startup. A missing file is logged and tolerated so the server can start
// empty and be loaded later.
func LoadDefaultCourses(ctx context.Context, courses CourseLoader, lgr zerolog.Logger) error {
	lgr.Info().Msg("Loading default course data...")

	count, err := courses.LoadDataStructure(ctx)
	if errors.Is(err, apperrors.ErrSourceUnavailable) {
		lgr.Warn().Err(err).Msg("Courses file not available, starting with an empty table")
		return nil
	}
	if err != nil {
		return err
	}

	lgr.Info().Int("courses", count).Msg("Default course data loaded")
	return nil
}
