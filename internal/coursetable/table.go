// Package coursetable implements a fixed bucket count hash table of courses
// with separate chaining. A course is bucketed by the length of its code,
// so courses with equal length codes always share a bucket and are told
// apart by exact code comparison.
package coursetable

import (
	"fmt"
	"sort"

	"github.com/yigit/courseplanner/internal/app/models"
	"github.com/yigit/courseplanner/internal/pkg/apperrors"
)

// DefaultSize is the bucket count used when no size is configured
const DefaultSize uint = 179

// entry is a stored course together with the key it was hashed with
type entry struct {
	course models.Course
	key    uint
}

// slot is a single bucket. An occupied slot holds its first course inline and
// any later collisions in chain, in insertion order.
type slot struct {
	occupied bool
	primary  entry
	chain    []entry
}

// depth returns the number of courses stored in the slot
func (s *slot) depth() int {
	if !s.occupied {
		return 0
	}
	return 1 + len(s.chain)
}

// each calls fn for the primary entry and then every chained entry, stopping
// early when fn returns false.
func (s *slot) each(fn func(e *entry) bool) {
	if !s.occupied {
		return
	}
	if !fn(&s.primary) {
		return
	}
	for i := range s.chain {
		if !fn(&s.chain[i]) {
			return
		}
	}
}

// Table is a hash table of courses keyed by code length. It is not safe for
// concurrent use.
type Table struct {
	size  uint
	slots []slot
}

// New creates a table with size empty buckets
func New(size uint) (*Table, error) {
	if size == 0 {
		return nil, fmt.Errorf("cannot create course table: %w", apperrors.ErrInvalidTableSize)
	}

	return &Table{
		size:  size,
		slots: make([]slot, size),
	}, nil
}

// NewDefault creates a table with DefaultSize buckets
func NewDefault() *Table {
	t, _ := New(DefaultSize)
	return t
}

// Hash maps a key to its bucket index
func (t *Table) Hash(key uint) uint {
	return key % t.size
}

// keyFor derives the hash key of a course code, which is its length in bytes
func keyFor(code string) uint {
	return uint(len(code))
}

// Insert stores a course. The first course in a bucket becomes its primary
// entry; later ones are appended to the tail of the bucket's chain. Duplicate
// codes are kept.
func (t *Table) Insert(course models.Course) {
	key := keyFor(course.Code)
	s := &t.slots[t.Hash(key)]

	if !s.occupied {
		s.occupied = true
		s.primary = entry{course: course, key: key}
		return
	}

	s.chain = append(s.chain, entry{course: course, key: key})
}

// Lookup finds the first course, in insertion order, whose code equals id
func (t *Table) Lookup(id string) Result {
	s := &t.slots[t.Hash(keyFor(id))]

	result := Result{Status: NotFound}
	s.each(func(e *entry) bool {
		if e.course.Code == id {
			result = Result{Status: Found, Course: e.course}
			return false
		}
		return true
	})

	return result
}

// PrintCourse looks up id and hands the outcome to display
func (t *Table) PrintCourse(id string, display Display) Status {
	result := t.Lookup(id)
	if result.OK() {
		display.ShowCourse(result.Course)
	} else {
		display.ShowNotFound(id)
	}
	return result.Status
}

// List returns every stored course sorted ascending by code. The returned
// slice is newly allocated on each call.
func (t *Table) List() []models.Course {
	courses := make([]models.Course, 0, t.Len())
	for i := range t.slots {
		t.slots[i].each(func(e *entry) bool {
			courses = append(courses, e.course)
			return true
		})
	}

	sort.Stable(models.ByCode(courses))
	return courses
}

// PrintCourseList hands every course to display in code order
func (t *Table) PrintCourseList(display Display) {
	for _, course := range t.List() {
		display.ShowCourse(course)
	}
}

// Size returns the number of buckets, not the number of stored courses
func (t *Table) Size() uint {
	return t.size
}

// Len returns the number of stored courses
func (t *Table) Len() int {
	n := 0
	for i := range t.slots {
		n += t.slots[i].depth()
	}
	return n
}

// Remove is not supported; courses live for the lifetime of the table.
func (t *Table) Remove(course models.Course) error {
	return fmt.Errorf("remove course %q: %w", course.Code, apperrors.ErrUnsupported)
}

// Reset drops every stored course and chain, keeping the bucket count
func (t *Table) Reset() {
	for i := range t.slots {
		t.slots[i] = slot{}
	}
}

// Stats summarises bucket usage
type Stats struct {
	Buckets         uint `json:"buckets"`
	OccupiedBuckets int  `json:"occupiedBuckets"`
	Courses         int  `json:"courses"`
	DeepestBucket   int  `json:"deepestBucket"`
}

// Stats reports the current bucket usage of the table
func (t *Table) Stats() Stats {
	stats := Stats{Buckets: t.size}
	for i := range t.slots {
		depth := t.slots[i].depth()
		if depth == 0 {
			continue
		}
		stats.OccupiedBuckets++
		stats.Courses += depth
		if depth > stats.DeepestBucket {
			stats.DeepestBucket = depth
		}
	}
	return stats
}
