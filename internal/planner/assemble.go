package planner

import (
	"errors"
	"fmt"

	"github.com/yigit/gradplan/internal/catalog"
)

// SemesterUnitCap is the running total at which a semester stops taking courses
const SemesterUnitCap = 16

// DefaultPlanYears is how far before graduation a plan starts by default
const DefaultPlanYears = 4

// MaxPlanYears bounds the semester horizon of a request
const MaxPlanYears = 10

// DeterministicAdvice is the advisory attached to assembled plans
const DeterministicAdvice = "Basic plan generated from the major's listed requirements. AI recommendations are not included."

var (
	// ErrMajorNotFound is returned when the requested major is not in the catalog
	ErrMajorNotFound = catalog.ErrMajorNotFound
	// ErrInvalidRequest is returned by Request.Validate
	ErrInvalidRequest = errors.New("invalid plan request")
)

// Request describes the plan a student asks for
type Request struct {
	Major              string
	GraduationYear     int
	GraduationSemester catalog.Term
	CurrentYear        int
	CompletedCourses   []string
	Preferences        map[string]string
}

// Normalize fills in the default graduation term and start year
func (r Request) Normalize() Request {
	if r.GraduationSemester == "" {
		r.GraduationSemester = catalog.TermSpring
	}
	if r.CurrentYear == 0 {
		r.CurrentYear = r.GraduationYear - DefaultPlanYears
	}
	return r
}

// Validate checks a normalized request
func (r Request) Validate() error {
	if r.Major == "" {
		return fmt.Errorf("%w: major is required", ErrInvalidRequest)
	}
	if r.GraduationYear <= 0 {
		return fmt.Errorf("%w: graduation year is required", ErrInvalidRequest)
	}
	if r.GraduationSemester != catalog.TermFall && r.GraduationSemester != catalog.TermSpring {
		return fmt.Errorf("%w: graduation semester must be Fall or Spring", ErrInvalidRequest)
	}
	if r.CurrentYear <= 0 {
		return fmt.Errorf("%w: current year must be positive", ErrInvalidRequest)
	}
	if r.GraduationYear-r.CurrentYear > MaxPlanYears {
		return fmt.Errorf("%w: plans may span at most %d years", ErrInvalidRequest, MaxPlanYears)
	}
	return nil
}

// CompletedSet returns the completed identifiers as a set
func (r Request) CompletedSet() map[string]bool {
	set := make(map[string]bool, len(r.CompletedCourses))
	for _, id := range r.CompletedCourses {
		set[id] = true
	}
	return set
}

// Assemble walks the major's requirement groups in category order and places
// each catalog course that is not completed into the current semester. A
// semester takes no more courses once its total reaches SemesterUnitCap.
// Courses left over when the semesters run out are listed as unplaced.
func Assemble(cat *catalog.Catalog, req Request) (*Plan, error) {
	req = req.Normalize()

	major, ok := cat.Majors.Get(req.Major)
	if !ok {
		return nil, ErrMajorNotFound
	}

	semesters := Semesters(req.CurrentYear, req.GraduationYear, req.GraduationSemester)
	completed := req.CompletedSet()
	seen := make(map[string]bool)
	unplaced := []UnplacedCourse{}
	current := 0

	for _, category := range catalog.Categories {
		for _, group := range major.Requirements.Groups(category) {
			for _, id := range group.Courses {
				if completed[id] || seen[id] {
					continue
				}
				course, found := cat.Courses.FindByID(id)
				if !found {
					continue
				}
				seen[id] = true

				if current >= len(semesters) {
					unplaced = append(unplaced, UnplacedCourse{
						Course:          id,
						RequirementType: category,
						RequirementName: group.Name,
					})
					continue
				}

				semester := &semesters[current]
				semester.Courses = append(semester.Courses, PlacedCourse{
					Subject:         course.Subject,
					Number:          course.Number,
					Title:           course.Title,
					Units:           course.Units,
					RequirementType: category,
					RequirementName: group.Name,
				})
				semester.Units += course.Units
				if semester.Units >= SemesterUnitCap {
					current++
				}
			}
		}
	}

	return &Plan{
		Major:              major.Name,
		College:            major.College,
		GraduationYear:     req.GraduationYear,
		GraduationSemester: req.GraduationSemester,
		TotalUnits:         major.TotalUnits,
		Semesters:          semesters,
		Requirements:       major.Requirements,
		AIRecommendations:  DeterministicAdvice,
		UnplacedCourses:    unplaced,
		Source:             SourceDeterministic,
	}, nil
}
