// Package planner assembles semester-by-semester course plans from the
// requirement groups of a major.
package planner

import (
	"github.com/yigit/gradplan/internal/catalog"
)

// Source tells which generator produced a plan
type Source string

const (
	SourceDeterministic Source = "deterministic"
	SourceRAG           Source = "rag"
)

// PlacedCourse is a course assigned to a semester
type PlacedCourse struct {
	Subject         string           `json:"subject"`
	Number          string           `json:"number"`
	Title           string           `json:"title"`
	Units           int              `json:"units"`
	RequirementType catalog.Category `json:"requirement_type"`
	RequirementName string           `json:"requirement_name"`
}

// Code returns the "SUBJECT NUMBER" identifier
func (c PlacedCourse) Code() string {
	return c.Subject + " " + c.Number
}

// Semester is one term of a plan
type Semester struct {
	Year    int            `json:"year"`
	Term    catalog.Term   `json:"term"`
	Courses []PlacedCourse `json:"courses"`
	Units   int            `json:"units"`
}

// UnplacedCourse is a requirement course that did not fit the semester horizon
type UnplacedCourse struct {
	Course          string           `json:"course"`
	RequirementType catalog.Category `json:"requirement_type"`
	RequirementName string           `json:"requirement_name"`
}

// Plan is the generated course plan
type Plan struct {
	Major              string               `json:"major"`
	College            string               `json:"college"`
	GraduationYear     int                  `json:"graduation_year"`
	GraduationSemester catalog.Term         `json:"graduation_semester"`
	TotalUnits         int                  `json:"total_units"`
	Semesters          []Semester           `json:"semesters"`
	Requirements       catalog.Requirements `json:"requirements"`
	AIRecommendations  string               `json:"ai_recommendations"`
	UnplacedCourses    []UnplacedCourse     `json:"unplaced_courses"`
	Source             Source               `json:"source"`
}

// PlacedUnits sums the units of every placed course
func (p *Plan) PlacedUnits() int {
	total := 0
	for _, s := range p.Semesters {
		total += s.Units
	}
	return total
}

// CourseCodes lists placed course identifiers in plan order
func (p *Plan) CourseCodes() []string {
	var codes []string
	for _, s := range p.Semesters {
		for _, c := range s.Courses {
			codes = append(codes, c.Code())
		}
	}
	return codes
}

// Semesters builds the empty semester sequence from Fall of currentYear to
// the graduation term, alternating Fall and Spring over calendar years.
// It is empty when the start lies after graduation.
func Semesters(currentYear, graduationYear int, graduationTerm catalog.Term) []Semester {
	start := termOrdinal(currentYear, catalog.TermFall)
	end := termOrdinal(graduationYear, graduationTerm)
	if start > end {
		return []Semester{}
	}

	semesters := make([]Semester, 0, end-start+1)
	for o := start; o <= end; o++ {
		year, term := o/2, catalog.TermSpring
		if o%2 == 1 {
			term = catalog.TermFall
		}
		semesters = append(semesters, Semester{
			Year:    year,
			Term:    term,
			Courses: []PlacedCourse{},
		})
	}
	return semesters
}

// termOrdinal orders Spring before Fall within a calendar year
func termOrdinal(year int, term catalog.Term) int {
	if term == catalog.TermFall {
		return 2*year + 1
	}
	return 2 * year
}
