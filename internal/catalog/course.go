package catalog

import (
	"strings"
)

// Term is an academic term in which a course can be offered
type Term string

const (
	TermFall   Term = "Fall"
	TermSpring Term = "Spring"
	TermSummer Term = "Summer"
)

// termOrder is the canonical ordering used when listing terms
var termOrder = []Term{TermFall, TermSpring, TermSummer}

// ParseTerm returns the canonical term for a case-insensitive name
func ParseTerm(s string) (Term, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fall":
		return TermFall, true
	case "spring":
		return TermSpring, true
	case "summer":
		return TermSummer, true
	}
	return "", false
}

// Course is a single catalog entry, unique by (Subject, Number)
type Course struct {
	Subject    string `json:"subject"`
	Number     string `json:"number"`
	Title      string `json:"title"`
	Units      int    `json:"units"`
	Terms      []Term `json:"terms_offered"`
	Department string `json:"department"`
}

// Code returns the "SUBJECT NUMBER" identifier used by requirement groups
func (c Course) Code() string {
	return c.Subject + " " + c.Number
}

// OfferedIn reports whether the course runs in the given term
func (c Course) OfferedIn(t Term) bool {
	for _, offered := range c.Terms {
		if offered == t {
			return true
		}
	}
	return false
}

// TermsString joins the offered terms as "Fall, Spring"
func (c Course) TermsString() string {
	parts := make([]string, len(c.Terms))
	for i, t := range c.Terms {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}

// ParseCourseID splits a "SUBJECT NUMBER" identifier. The number is the last
// space-separated token so multi-word subjects stay intact.
func ParseCourseID(id string) (subject, number string, ok bool) {
	trimmed := strings.TrimSpace(id)
	idx := strings.LastIndex(trimmed, " ")
	if idx <= 0 {
		return "", "", false
	}
	subject = strings.TrimSpace(trimmed[:idx])
	number = strings.TrimSpace(trimmed[idx+1:])
	if subject == "" || number == "" {
		return "", "", false
	}
	return subject, number, true
}

type courseKey struct {
	subject string
	number  string
}

// CourseTable is the read-only course catalog built once at startup
type CourseTable struct {
	courses []Course
	index   map[courseKey]int
	source  string
}

// NewCourseTable builds a table from courses in order. Later duplicates of
// an already seen (subject, number) pair are ignored.
func NewCourseTable(courses []Course, source string) *CourseTable {
	t := &CourseTable{
		courses: make([]Course, 0, len(courses)),
		index:   make(map[courseKey]int, len(courses)),
		source:  source,
	}
	for _, c := range courses {
		key := courseKey{subject: c.Subject, number: c.Number}
		if _, dup := t.index[key]; dup {
			continue
		}
		t.index[key] = len(t.courses)
		t.courses = append(t.courses, c)
	}
	return t
}

// Find looks a course up by exact, case-sensitive subject and number
func (t *CourseTable) Find(subject, number string) (Course, bool) {
	i, ok := t.index[courseKey{subject: subject, number: number}]
	if !ok {
		return Course{}, false
	}
	return t.courses[i], true
}

// FindByID looks a course up by its "SUBJECT NUMBER" identifier
func (t *CourseTable) FindByID(id string) (Course, bool) {
	subject, number, ok := ParseCourseID(id)
	if !ok {
		return Course{}, false
	}
	return t.Find(subject, number)
}

// All returns the courses in load order
func (t *CourseTable) All() []Course {
	out := make([]Course, len(t.courses))
	copy(out, t.courses)
	return out
}

// Len returns the number of courses
func (t *CourseTable) Len() int {
	return len(t.courses)
}

// Source names where the table was loaded from
func (t *CourseTable) Source() string {
	return t.source
}

// MinSearchLength is the shortest query Search accepts
const MinSearchLength = 2

// DefaultSearchLimit caps Search results when no limit is given
const DefaultSearchLimit = 10

// Search returns up to limit courses whose code or title contains the
// upper-cased query, in load order.
func (t *CourseTable) Search(query string, limit int) []Course {
	q := strings.ToUpper(strings.TrimSpace(query))
	if len(q) < MinSearchLength {
		return nil
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	var out []Course
	for _, c := range t.courses {
		if strings.Contains(strings.ToUpper(c.Code()), q) ||
			strings.Contains(strings.ToUpper(c.Title), q) ||
			strings.HasPrefix(c.Subject+c.Number, strings.ReplaceAll(q, " ", "")) {
			out = append(out, c)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}
