package rag

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"google.golang.org/genai"

	"github.com/yigit/gradplan/internal/catalog"
	"github.com/yigit/gradplan/internal/planner"
)

// ErrInvalidOutput is returned when model output fails strict parsing
var ErrInvalidOutput = errors.New("invalid model output")

var validate = validator.New(validator.WithRequiredStructEnabled())

type courseOutput struct {
	Subject         string `json:"subject" validate:"required"`
	Number          string `json:"number" validate:"required"`
	Title           string `json:"title"`
	Units           int    `json:"units" validate:"gte=0"`
	RequirementType string `json:"requirement_type" validate:"omitempty,oneof=lower_division upper_division breadth"`
	RequirementName string `json:"requirement_name"`
}

type semesterOutput struct {
	Year    int            `json:"year" validate:"gt=0"`
	Term    string         `json:"term" validate:"required,oneof=Fall Spring Summer"`
	Courses []courseOutput `json:"courses" validate:"dive"`
	Units   int            `json:"units" validate:"gte=0"`
}

type scheduleOutput struct {
	Major              string           `json:"major" validate:"required"`
	College            string           `json:"college"`
	GraduationYear     int              `json:"graduation_year" validate:"gt=0"`
	GraduationSemester string           `json:"graduation_semester" validate:"required,oneof=Fall Spring"`
	TotalUnits         int              `json:"total_units" validate:"gte=0"`
	Semesters          []semesterOutput `json:"semesters" validate:"required,min=1,dive"`
	AIRecommendations  string           `json:"ai_recommendations"`
}

// Suggestion is one recommended additional course
type Suggestion struct {
	Subject string `json:"subject" validate:"required"`
	Number  string `json:"number" validate:"required"`
	Title   string `json:"title"`
	Units   int    `json:"units" validate:"gte=0"`
	Reason  string `json:"reason"`
}

// Suggestions is the answer to a suggestion request
type Suggestions struct {
	Suggestions []Suggestion `json:"suggestions" validate:"required,min=1,max=5,dive"`
	Advice      string       `json:"advice"`
}

// decodeStrict decodes exactly one JSON value with no unknown fields and
// validates the result
func decodeStrict(raw string, out interface{}) error {
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.DisallowUnknownFields()

	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: trailing data after JSON value", ErrInvalidOutput)
	}
	if err := validate.Struct(out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	return nil
}

// parseSchedule turns model output into a plan for req. Semester unit totals
// are recomputed from the listed courses.
func parseSchedule(raw string, req planner.Request, major catalog.Major) (*planner.Plan, error) {
	var out scheduleOutput
	if err := decodeStrict(raw, &out); err != nil {
		return nil, err
	}

	if out.Major != req.Major {
		return nil, fmt.Errorf("%w: major %q does not match request %q", ErrInvalidOutput, out.Major, req.Major)
	}
	if out.GraduationYear != req.GraduationYear || catalog.Term(out.GraduationSemester) != req.GraduationSemester {
		return nil, fmt.Errorf("%w: graduation %s %d does not match request", ErrInvalidOutput, out.GraduationSemester, out.GraduationYear)
	}

	completed := req.CompletedSet()
	semesters := make([]planner.Semester, 0, len(out.Semesters))
	for _, s := range out.Semesters {
		semester := planner.Semester{
			Year:    s.Year,
			Term:    catalog.Term(s.Term),
			Courses: make([]planner.PlacedCourse, 0, len(s.Courses)),
		}
		for _, c := range s.Courses {
			placed := planner.PlacedCourse{
				Subject:         c.Subject,
				Number:          c.Number,
				Title:           c.Title,
				Units:           c.Units,
				RequirementType: catalog.Category(c.RequirementType),
				RequirementName: c.RequirementName,
			}
			if completed[placed.Code()] {
				return nil, fmt.Errorf("%w: completed course %s was scheduled", ErrInvalidOutput, placed.Code())
			}
			semester.Courses = append(semester.Courses, placed)
			semester.Units += c.Units
		}
		semesters = append(semesters, semester)
	}

	college := out.College
	if college == "" {
		college = major.College
	}
	totalUnits := out.TotalUnits
	if totalUnits == 0 {
		totalUnits = major.TotalUnits
	}

	return &planner.Plan{
		Major:              major.Name,
		College:            college,
		GraduationYear:     req.GraduationYear,
		GraduationSemester: req.GraduationSemester,
		TotalUnits:         totalUnits,
		Semesters:          semesters,
		Requirements:       major.Requirements,
		AIRecommendations:  out.AIRecommendations,
		UnplacedCourses:    []planner.UnplacedCourse{},
		Source:             planner.SourceRAG,
	}, nil
}

func parseSuggestions(raw string) (Suggestions, error) {
	var out Suggestions
	if err := decodeStrict(raw, &out); err != nil {
		return Suggestions{}, err
	}
	return out, nil
}

func stringSchema(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Description: description}
}

func unitsSchema() *genai.Schema {
	return &genai.Schema{Type: genai.TypeInteger, Minimum: genai.Ptr(0.0)}
}

// scheduleSchema mirrors scheduleOutput for the model's response schema
func scheduleSchema() *genai.Schema {
	course := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"subject":          stringSchema("Subject code, e.g. COMPSCI"),
			"number":           stringSchema("Course number, e.g. 61A"),
			"title":            stringSchema(""),
			"units":            unitsSchema(),
			"requirement_type": {Type: genai.TypeString, Enum: []string{"lower_division", "upper_division", "breadth"}},
			"requirement_name": stringSchema(""),
		},
		Required:         []string{"subject", "number", "units"},
		PropertyOrdering: []string{"subject", "number", "title", "units", "requirement_type", "requirement_name"},
	}
	semester := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"year":    {Type: genai.TypeInteger},
			"term":    {Type: genai.TypeString, Enum: []string{"Fall", "Spring", "Summer"}},
			"courses": {Type: genai.TypeArray, Items: course},
			"units":   unitsSchema(),
		},
		Required:         []string{"year", "term", "courses", "units"},
		PropertyOrdering: []string{"year", "term", "courses", "units"},
	}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"major":               stringSchema(""),
			"college":             stringSchema(""),
			"graduation_year":     {Type: genai.TypeInteger},
			"graduation_semester": {Type: genai.TypeString, Enum: []string{"Fall", "Spring"}},
			"total_units":         unitsSchema(),
			"semesters":           {Type: genai.TypeArray, Items: semester},
			"ai_recommendations":  stringSchema("Personalized advice for academic success"),
		},
		Required: []string{"major", "graduation_year", "graduation_semester", "semesters"},
		PropertyOrdering: []string{
			"major", "college", "graduation_year", "graduation_semester", "total_units", "semesters", "ai_recommendations",
		},
	}
}

// suggestionsSchema mirrors Suggestions for the model's response schema
func suggestionsSchema() *genai.Schema {
	item := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"subject": stringSchema(""),
			"number":  stringSchema(""),
			"title":   stringSchema(""),
			"units":   unitsSchema(),
			"reason":  stringSchema("Why this course is recommended"),
		},
		Required:         []string{"subject", "number", "units", "reason"},
		PropertyOrdering: []string{"subject", "number", "title", "units", "reason"},
	}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"suggestions": {Type: genai.TypeArray, Items: item},
			"advice":      stringSchema("General academic advice for this semester"),
		},
		Required:         []string{"suggestions", "advice"},
		PropertyOrdering: []string{"suggestions", "advice"},
	}
}
