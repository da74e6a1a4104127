package scraper

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yigit/gradplan/internal/catalog"
)

// Requirement types assigned from the text around a course mention
const (
	TypeRequired     = "required"
	TypeElective     = "elective"
	TypePrerequisite = "prerequisite"
	TypeBreadth      = "breadth"
	TypeCore         = "core"
)

const (
	DegreeBachelor  = "Bachelor's"
	DegreeMaster    = "Master's"
	DegreeDoctorate = "Doctorate"

	generalSection = "General Requirements"

	// contextRadius is how many bytes around a course mention are inspected
	contextRadius = 100
	// maxCourseNumber filters out years and other large numbers
	maxCourseNumber = 300
)

var collegeIndicators = []string{
	"College of Engineering",
	"College of Letters and Science",
	"College of Chemistry",
	"College of Environmental Design",
	"College of Computing, Data Science, and Society",
	"Rausser College of Natural Resources",
	"Haas School of Business",
	"School of Public Health",
	"School of Social Welfare",
	"School of Education",
	"School of Information",
	"School of Optometry",
	"School of Public Policy",
}

var programCodes = []struct {
	name string
	code string
}{
	{"Computer Science", "CS"},
	{"Data Science", "DATA"},
	{"Mathematics", "MATH"},
	{"Physics", "PHYSICS"},
	{"Chemistry", "CHEM"},
	{"Biology", "BIO"},
	{"English", "ENGLISH"},
	{"History", "HISTORY"},
	{"Economics", "ECON"},
	{"Psychology", "PSYCH"},
	{"Political Science", "POLSCI"},
	{"Sociology", "SOCIOL"},
	{"Anthropology", "ANTHRO"},
}

// samplePrograms are expanded into sample requirement rows
var samplePrograms = []string{"Computer Science", "Data Science", "Mathematics", "Physics", "Chemistry", "English"}

// Requirement is one course listed by a program
type Requirement struct {
	ProgramName string
	ProgramCode string
	ProgramURL  string
	College     string
	DegreeType  string
	Section     string
	Subject     string
	Number      string
	Title       string
	Type        string
	Units       string
	Notes       string
}

// CourseID returns "SUBJECT NUMBER"
func (r Requirement) CourseID() string {
	return r.Subject + " " + r.Number
}

// RequirementColumns is the header written by WriteRequirements
var RequirementColumns = []string{
	"program_name", "program_code", "program_url", "college", "degree_type",
	"requirement_section", "course_subject", "course_number", "course_title",
	"full_course_id", "requirement_type", "units", "notes",
}

// DetectCollege returns the first known college named in text
func DetectCollege(text string) string {
	for _, college := range collegeIndicators {
		if strings.Contains(text, college) {
			return college
		}
	}
	return catalog.DefaultCollege
}

// DetectDegreeType classifies the degree a program page describes
func DetectDegreeType(text string) string {
	switch {
	case strings.Contains(text, "Bachelor"), strings.Contains(text, "B.A."), strings.Contains(text, "B.S."):
		return DegreeBachelor
	case strings.Contains(text, "Master"), strings.Contains(text, "M.A."), strings.Contains(text, "M.S."):
		return DegreeMaster
	case strings.Contains(text, "Doctor"), strings.Contains(text, "Ph.D."):
		return DegreeDoctorate
	}
	return DegreeBachelor
}

// ProgramCode maps a program name to a short code: a known code when the name
// contains a known program, else the initials of the first two words, else
// the first four characters upper-cased
func ProgramCode(name string) string {
	for _, p := range programCodes {
		if strings.Contains(name, p.name) {
			return p.code
		}
	}
	words := strings.Fields(name)
	if len(words) >= 2 {
		return strings.ToUpper(string([]rune(words[0])[:1]) + string([]rune(words[1])[:1]))
	}
	runes := []rune(name)
	if len(runes) > 4 {
		runes = runes[:4]
	}
	return strings.ToUpper(string(runes))
}

// RequirementType classifies a course mention by the words around its first
// occurrence in text
func RequirementType(text, courseID string) string {
	pos := strings.Index(text, courseID)
	if pos < 0 {
		return TypeRequired
	}
	start := max(0, pos-contextRadius)
	end := min(len(text), pos+contextRadius)
	window := strings.ToLower(text[start:end])

	switch {
	case strings.Contains(window, "elective"):
		return TypeElective
	case strings.Contains(window, "prerequisite"):
		return TypePrerequisite
	case strings.Contains(window, "breadth"):
		return TypeBreadth
	case strings.Contains(window, "core"):
		return TypeCore
	}
	return TypeRequired
}

// ParseProgramPage lists every course mentioned on a program page
func ParseProgramPage(text, programName, programURL string) []Requirement {
	college := DetectCollege(text)
	degree := DetectDegreeType(text)
	code := ProgramCode(programName)

	var reqs []Requirement
	for _, m := range courseCodePattern.FindAllStringSubmatch(text, -1) {
		subject, number := m[1], m[2]
		if n, err := strconv.Atoi(number); err == nil && n > maxCourseNumber {
			continue
		}
		id := subject + " " + number
		reqs = append(reqs, Requirement{
			ProgramName: programName,
			ProgramCode: code,
			ProgramURL:  programURL,
			College:     college,
			DegreeType:  degree,
			Section:     generalSection,
			Subject:     subject,
			Number:      number,
			Type:        RequirementType(text, id),
		})
	}
	return reqs
}

// SampleRequirements expands a few built-in majors into requirement rows.
// Courses outside the built-in course set are left out.
func SampleRequirements() []Requirement {
	majors := catalog.LoadMajors()
	courses := catalog.NewCourseTable(catalog.SampleCourses(), catalog.SampleSource)

	var out []Requirement
	for _, name := range samplePrograms {
		major, ok := majors.Get(name)
		if !ok {
			continue
		}
		for _, category := range catalog.Categories {
			reqType := TypeRequired
			if category == catalog.Breadth {
				reqType = TypeBreadth
			}
			for _, group := range major.Requirements.Groups(category) {
				for _, id := range group.Courses {
					course, ok := courses.FindByID(id)
					if !ok {
						continue
					}
					out = append(out, Requirement{
						ProgramName: major.Name,
						ProgramCode: ProgramCode(major.Name),
						ProgramURL:  SampleSourceURL,
						College:     major.College,
						DegreeType:  DegreeBachelor,
						Section:     category.Title() + " Requirements",
						Subject:     course.Subject,
						Number:      course.Number,
						Title:       course.Title,
						Type:        reqType,
						Units:       strconv.Itoa(course.Units),
						Notes:       group.Description,
					})
				}
			}
		}
	}
	return out
}

// ScrapeMajors walks the catalog program index and always appends the sample
// requirements. Page failures are logged and skipped.
func (s *Scraper) ScrapeMajors(ctx context.Context) ([]Requirement, error) {
	var reqs []Requirement

	index := s.cfg.BaseURL + "/programs/"
	page, err := s.fetch(ctx, index)
	switch {
	case err != nil && ctx.Err() != nil:
		return nil, ctx.Err()
	case err != nil:
		s.log.Error().Err(err).Str("url", index).Msg("Failed to fetch program index")
	default:
		links := s.links(page, "/programs/")
		s.log.Info().Int("links", len(links)).Msg("Found program links in catalog")
		if len(links) > s.cfg.MaxPages {
			links = links[:s.cfg.MaxPages]
		}

		for _, link := range links {
			if err := s.pause(ctx); err != nil {
				return nil, err
			}
			p, err := s.fetch(ctx, link.Href)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				s.log.Warn().Err(err).Str("url", link.Href).Msg("Failed to fetch program page")
				continue
			}
			found := ParseProgramPage(p.Text, link.Text, link.Href)
			if len(found) > 0 {
				s.log.Info().Str("program", link.Text).Int("requirements", len(found)).Msg("Found course requirements")
			}
			reqs = append(reqs, found...)
		}
	}

	samples := SampleRequirements()
	reqs = append(reqs, samples...)
	s.log.Info().Int("requirements", len(reqs)).Int("sample", len(samples)).Msg("Major scraping finished")
	return reqs, nil
}

// WriteRequirements writes requirements as CSV with RequirementColumns as the header
func WriteRequirements(w io.Writer, reqs []Requirement) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(RequirementColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range reqs {
		record := []string{
			r.ProgramName, r.ProgramCode, r.ProgramURL, r.College, r.DegreeType,
			r.Section, r.Subject, r.Number, r.Title,
			r.CourseID(), r.Type, r.Units, r.Notes,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write %s: %w", r.CourseID(), err)
		}
	}
	cw.Flush()
	return cw.Error()
}
