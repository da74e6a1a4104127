// Package catalog holds the read-only course and major tables the planner
// and the retrieval layer work from.
package catalog

import (
	"errors"

	"github.com/rs/zerolog"
)

// Lookup errors
var (
	ErrMajorNotFound    = errors.New("major not found")
	ErrCategoryNotFound = errors.New("requirement type not found")
	ErrGroupNotFound    = errors.New("requirement not found")
)

// Catalog bundles the course and major tables. It is built once at startup
// and shared by pointer; nothing mutates it afterwards.
type Catalog struct {
	Courses *CourseTable
	Majors  *MajorTable
}

// New wraps already built tables
func New(courses *CourseTable, majors *MajorTable) *Catalog {
	return &Catalog{Courses: courses, Majors: majors}
}

// Load builds both tables from the configured course source
func Load(src CourseSource, log zerolog.Logger) *Catalog {
	courses := LoadCourses(src, log)
	majors := LoadMajors()
	log.Info().Int("majors", majors.Len()).Msg("Loaded major catalog")
	return New(courses, majors)
}

// GroupCourses resolves the courses of one requirement group. Identifiers
// missing from the course table are skipped.
func (c *Catalog) GroupCourses(major, category, group string) ([]Course, error) {
	m, ok := c.Majors.Get(major)
	if !ok {
		return nil, ErrMajorNotFound
	}
	cat, ok := ParseCategory(category)
	if !ok {
		return nil, ErrCategoryNotFound
	}
	g, ok := m.Requirements.Group(cat, group)
	if !ok {
		return nil, ErrGroupNotFound
	}

	courses := make([]Course, 0, len(g.Courses))
	for _, id := range g.Courses {
		if course, found := c.Courses.FindByID(id); found {
			courses = append(courses, course)
		}
	}
	return courses, nil
}
