package menu_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yigit/courseplanner/internal/app/models"
	"github.com/yigit/courseplanner/internal/coursetable"
	"github.com/yigit/courseplanner/internal/menu"
	"github.com/yigit/courseplanner/internal/pkg/apperrors"
)

// tablePlanner loads a fixed set of courses into a table
type tablePlanner struct {
	table   *coursetable.Table
	courses []models.Course
	loadErr error
	loads   int
}

func newTablePlanner(t *testing.T, courses ...models.Course) *tablePlanner {
	table, err := coursetable.New(5)
	require.NoError(t, err)
	return &tablePlanner{table: table, courses: courses}
}

func (p *tablePlanner) LoadDataStructure(ctx context.Context) (int, error) {
	p.loads++
	if p.loadErr != nil {
		return 0, p.loadErr
	}
	for _, c := range p.courses {
		p.table.Insert(c)
	}
	return len(p.courses), nil
}

func (p *tablePlanner) PrintCourseList(display coursetable.Display) int {
	p.table.PrintCourseList(display)
	return p.table.Len()
}

func (p *tablePlanner) PrintCourse(courseID string, display coursetable.Display) coursetable.Status {
	return p.table.PrintCourse(courseID, display)
}

func run(t *testing.T, planner menu.Planner, input string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, menu.New(planner, strings.NewReader(input), &out).Run(context.Background()))
	return out.String()
}

func TestMenuScenario(t *testing.T) {
	planner := newTablePlanner(t,
		models.Course{Code: "CS101", Name: "Intro"},
		models.Course{Code: "MA201", Name: "Calc"},
		models.Course{Code: "CS2", Name: "DS"},
	)

	out := run(t, planner, "1\n2\n3 MA201\n3\nCS999\n9\n")

	require.True(t, strings.HasPrefix(out, "Welcome to the course planner\n"))
	require.Contains(t, out, "Loading data structure...\nData structure loaded successfully.\n")
	require.Contains(t, out, "Printing course list...\nCS101, Intro\nCS2, DS\nMA201, Calc\n")
	require.Contains(t, out, "Enter course ID: MA201, Calc\n")
	require.Contains(t, out, "Enter course ID: Course with ID CS999 not found.\n")
	require.True(t, strings.HasSuffix(out, "Thank you for using the course planner!\n"))
	require.Equal(t, 1, planner.loads)
}

func TestMenuInvalidOptions(t *testing.T) {
	out := run(t, newTablePlanner(t), "4 abc 9")

	require.Contains(t, out, "4 is not a valid option.\n")
	require.Contains(t, out, "abc is not a valid option.\n")
	require.Equal(t, 3, strings.Count(out, "What would you like to do? "))
}

func TestMenuLoadErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		err  error
		want string
	}{
		{
			name: "MissingFile",
			err:  fmt.Errorf("error loading courses: %w", apperrors.ErrSourceUnavailable),
			want: "Error: Could not open the file.\n",
		},
		{
			name: "Other",
			err:  apperrors.ErrMalformedSource,
			want: "Error: course source could not be parsed\n",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			planner := newTablePlanner(t)
			planner.loadErr = tc.err
			require.Contains(t, run(t, planner, "1 9"), tc.want)
		})
	}
}

func TestMenuEndOfInput(t *testing.T) {
	t.Run("AtChoice", func(t *testing.T) {
		out := run(t, newTablePlanner(t), "2")
		require.NotContains(t, out, "Thank you")
	})

	t.Run("AtCourseID", func(t *testing.T) {
		out := run(t, newTablePlanner(t), "3")
		require.True(t, strings.HasSuffix(out, "Enter course ID: "))
	})
}

func TestMenuCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := menu.New(newTablePlanner(t), strings.NewReader("9"), &out).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
