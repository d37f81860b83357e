// Package menu runs the interactive course planner menu.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/yigit/courseplanner/internal/coursetable"
	"github.com/yigit/courseplanner/internal/pkg/apperrors"
)

// Menu options
const (
	OptionLoad        = 1
	OptionPrintList   = 2
	OptionPrintCourse = 3
	OptionExit        = 9
)

// Planner is the course store driven by the menu
type Planner interface {
	LoadDataStructure(ctx context.Context) (int, error)
	PrintCourseList(display coursetable.Display) int
	PrintCourse(courseID string, display coursetable.Display) coursetable.Status
}

// Menu reads choices from an input stream and writes results to an output stream
type Menu struct {
	planner Planner
	in      *bufio.Scanner
	out     io.Writer
	display coursetable.Display
}

// New creates a menu over planner reading from in and writing to out
func New(planner Planner, in io.Reader, out io.Writer) *Menu {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	return &Menu{
		planner: planner,
		in:      scanner,
		out:     out,
		display: coursetable.NewConsoleDisplay(out),
	}
}

// Run shows the menu until the user exits, the input ends or ctx is cancelled
func (m *Menu) Run(ctx context.Context) error {
	fmt.Fprintln(m.out, "Welcome to the course planner")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.printOptions()

		token, ok := m.next()
		if !ok {
			return m.in.Err()
		}

		choice, err := strconv.Atoi(token)
		if err != nil {
			fmt.Fprintf(m.out, "%s is not a valid option.\n", token)
			continue
		}

		switch choice {
		case OptionLoad:
			m.load(ctx)
		case OptionPrintList:
			fmt.Fprintln(m.out, "Printing course list...")
			m.planner.PrintCourseList(m.display)
		case OptionPrintCourse:
			fmt.Fprint(m.out, "Enter course ID: ")
			courseID, ok := m.next()
			if !ok {
				return m.in.Err()
			}
			m.planner.PrintCourse(courseID, m.display)
		case OptionExit:
			fmt.Fprintln(m.out, "Thank you for using the course planner!")
			return nil
		default:
			fmt.Fprintf(m.out, "%d is not a valid option.\n", choice)
		}
	}
}

func (m *Menu) printOptions() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "  1. Load Data Structure.")
	fmt.Fprintln(m.out, "  2. Print Course List.")
	fmt.Fprintln(m.out, "  3. Print Course.")
	fmt.Fprintln(m.out, "  9. Exit")
	fmt.Fprintln(m.out)
	fmt.Fprint(m.out, "What would you like to do? ")
}

func (m *Menu) load(ctx context.Context) {
	fmt.Fprintln(m.out, "Loading data structure...")

	_, err := m.planner.LoadDataStructure(ctx)
	switch {
	case err == nil:
		fmt.Fprintln(m.out, "Data structure loaded successfully.")
	case errors.Is(err, apperrors.ErrSourceUnavailable):
		fmt.Fprintln(m.out, "Error: Could not open the file.")
	default:
		fmt.Fprintf(m.out, "Error: %v\n", err)
	}
}

// next returns the next whitespace separated token from the input
func (m *Menu) next() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}
