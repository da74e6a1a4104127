package dto

import (
	"github.com/yigit/gradplan/internal/catalog"
	"github.com/yigit/gradplan/internal/planner"
	"github.com/yigit/gradplan/internal/rag"
)

// GeneratePlanRequest asks for a four-year plan
type GeneratePlanRequest struct {
	Major              string            `json:"major" binding:"required" example:"Computer Science"`
	GraduationYear     int               `json:"graduation_year" binding:"required,min=1900,max=2200" example:"2028"`
	GraduationSemester string            `json:"graduation_semester" binding:"omitempty,oneof=Fall Spring" example:"Spring"`
	CurrentYear        int               `json:"current_year" binding:"omitempty,min=1900,max=2200" example:"2024"`
	CompletedCourses   []string          `json:"completed_courses" binding:"omitempty,max=200"`
	Preferences        map[string]string `json:"preferences"`
}

// ToRequest converts the body into a planner request with defaults applied
func (r GeneratePlanRequest) ToRequest() planner.Request {
	return planner.Request{
		Major:              r.Major,
		GraduationYear:     r.GraduationYear,
		GraduationSemester: catalog.Term(r.GraduationSemester),
		CurrentYear:        r.CurrentYear,
		CompletedCourses:   r.CompletedCourses,
		Preferences:        r.Preferences,
	}.Normalize()
}

// CourseOptionsRequest names one requirement group of a major
type CourseOptionsRequest struct {
	Major           string `json:"major" binding:"required" example:"Computer Science"`
	RequirementType string `json:"requirement_type" binding:"required" example:"lower_division"`
	RequirementName string `json:"requirement_name" binding:"required" example:"Programming Fundamentals"`
}

// CourseOption is a catalog course that satisfies a requirement group
type CourseOption struct {
	Subject      string `json:"subject" example:"COMPSCI"`
	Number       string `json:"number" example:"61A"`
	Title        string `json:"title" example:"The Structure and Interpretation of Computer Programs"`
	Units        int    `json:"units" example:"4"`
	TermsOffered string `json:"terms_offered" example:"Fall, Spring"`
	Department   string `json:"department" example:"Computer Science"`
}

// CourseOptionsResponse lists the catalog courses of one requirement group
type CourseOptionsResponse struct {
	RequirementName string         `json:"requirement_name"`
	RequirementType string         `json:"requirement_type"`
	Options         []CourseOption `json:"options"`
}

// NewCourseOption maps a catalog course
func NewCourseOption(c catalog.Course) CourseOption {
	return CourseOption{
		Subject:      c.Subject,
		Number:       c.Number,
		Title:        c.Title,
		Units:        c.Units,
		TermsOffered: c.TermsString(),
		Department:   c.Department,
	}
}

// SemesterRef names one term of a plan
type SemesterRef struct {
	Term string `json:"term" binding:"required,oneof=Fall Spring Summer" example:"Fall"`
	Year int    `json:"year" binding:"required,min=1900,max=2200" example:"2025"`
}

// SuggestionsRequest asks for courses to add to a semester
type SuggestionsRequest struct {
	Major          string       `json:"major" binding:"required" example:"Computer Science"`
	Semester       *SemesterRef `json:"semester" binding:"required"`
	CurrentCourses []string     `json:"current_courses" binding:"omitempty,max=20"`
}

// ToRequest converts the body into a suggestion request
func (r SuggestionsRequest) ToRequest() rag.SuggestionRequest {
	return rag.SuggestionRequest{
		Major:          r.Major,
		Term:           catalog.Term(r.Semester.Term),
		Year:           r.Semester.Year,
		CurrentCourses: r.CurrentCourses,
	}
}

// SearchCoursesRequest searches the course catalog
type SearchCoursesRequest struct {
	Query    string `json:"query" example:"61A"`
	Limit    int    `json:"limit" binding:"omitempty,min=1,max=50" example:"10"`
	Semantic bool   `json:"semantic" example:"false"`
}

// CourseSearchResult is one matching course
type CourseSearchResult struct {
	Code       string   `json:"code" example:"COMPSCI 61A"`
	Title      string   `json:"title,omitempty"`
	Units      int      `json:"units" example:"4"`
	Terms      string   `json:"terms" example:"Fall, Spring"`
	Department string   `json:"department,omitempty"`
	Score      *float64 `json:"score,omitempty"`
}

// SearchCoursesResponse wraps search results
type SearchCoursesResponse struct {
	Courses []CourseSearchResult `json:"courses"`
}
