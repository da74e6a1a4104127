package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

// Column headers of the course listing export
const (
	ColumnSubject     = "Subject"
	ColumnNumber      = "Course Number"
	ColumnDepartment  = "Department(s)"
	ColumnUnits       = "Credits - Units - Minimum Units"
	ColumnTerms       = "Terms Offered"
	ColumnDescription = "Course Description"
	ColumnTitle       = "Course Title"
)

// DefaultUnits is used when a row has no usable unit count
const DefaultUnits = 4

// SampleSource is reported as the source of the built-in course set
const SampleSource = "sample"

var errNoCourses = errors.New("no usable course rows")

// CourseSource lists candidate course files, tried in order
type CourseSource struct {
	Paths []string
}

// LoadCourses reads the first existing candidate file. Missing files, parse
// errors and empty files all fall back to the built-in sample set.
func LoadCourses(src CourseSource, log zerolog.Logger) *CourseTable {
	for _, path := range src.Paths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}

		table, err := loadCourseFile(path)
		if err != nil {
			log.Error().Err(err).Str("path", path).Msg("Failed to load course data, using sample courses")
			return sampleTable(log)
		}

		log.Info().Int("courses", table.Len()).Str("source", path).Msg("Loaded course catalog")
		return table
	}

	log.Info().Strs("candidates", src.Paths).Msg("No course file found, using sample courses")
	return sampleTable(log)
}

func sampleTable(log zerolog.Logger) *CourseTable {
	table := NewCourseTable(SampleCourses(), SampleSource)
	log.Info().Int("courses", table.Len()).Str("source", SampleSource).Msg("Loaded course catalog")
	return table
}

func loadCourseFile(path string) (*CourseTable, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		rows, err = readXLSXRows(path)
	default:
		var f *os.File
		f, err = os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open course file: %w", err)
		}
		defer f.Close()
		rows, err = readCSVRows(f)
	}
	if err != nil {
		return nil, err
	}

	courses, err := ParseCourseRows(rows)
	if err != nil {
		return nil, err
	}
	return NewCourseTable(courses, path), nil
}

func readCSVRows(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse course csv: %w", err)
	}
	return rows, nil
}

func readXLSXRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open course workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("course workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read course sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

// ParseCourseRows converts a header row plus data rows into courses
func ParseCourseRows(rows [][]string) ([]Course, error) {
	if len(rows) == 0 {
		return nil, errNoCourses
	}

	header := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		name = strings.TrimPrefix(name, "\ufeff")
		header[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{ColumnSubject, ColumnNumber} {
		if _, ok := header[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	cell := func(row []string, column string) string {
		i, ok := header[column]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	courses := make([]Course, 0, len(rows)-1)
	for _, row := range rows[1:] {
		subject := cell(row, ColumnSubject)
		number := cell(row, ColumnNumber)
		if subject == "" || number == "" {
			continue
		}

		title := cell(row, ColumnTitle)
		if title == "" {
			title = cell(row, ColumnDescription)
		}

		courses = append(courses, Course{
			Subject:    subject,
			Number:     number,
			Title:      title,
			Units:      ParseUnits(cell(row, ColumnUnits)),
			Terms:      ParseTerms(cell(row, ColumnTerms)),
			Department: cell(row, ColumnDepartment),
		})
	}

	if len(courses) == 0 {
		return nil, errNoCourses
	}
	return courses, nil
}

// ParseUnits reads a unit count such as "4", "4.0" or "2-4" (minimum wins).
// Anything unusable yields DefaultUnits.
func ParseUnits(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultUnits
	}
	if i := strings.IndexAny(s, "-–"); i > 0 {
		s = strings.TrimSpace(s[:i])
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || f <= 0 {
		return DefaultUnits
	}
	units := int(math.Round(f))
	if units <= 0 {
		return DefaultUnits
	}
	return units
}

var termPlaceholders = map[string]bool{
	"":      true,
	"-":     true,
	"n/a":   true,
	"na":    true,
	"nan":   true,
	"none":  true,
	"tbd":   true,
	"tba":   true,
	"null":  true,
	"other": true,
}

// DefaultTerms is used when a row lists no recognizable term
func DefaultTerms() []Term {
	return []Term{TermFall, TermSpring}
}

// ParseTerms reads a term list such as "Fall, Spring" in canonical order.
// Blank or placeholder values yield DefaultTerms.
func ParseTerms(s string) []Term {
	if termPlaceholders[strings.ToLower(strings.TrimSpace(s))] {
		return DefaultTerms()
	}

	seen := make(map[Term]bool, len(termOrder))
	for _, token := range strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == '/' || r == ' ' || r == '|'
	}) {
		if t, ok := ParseTerm(token); ok {
			seen[t] = true
		}
	}

	terms := make([]Term, 0, len(seen))
	for _, t := range termOrder {
		if seen[t] {
			terms = append(terms, t)
		}
	}
	if len(terms) == 0 {
		return DefaultTerms()
	}
	return terms
}
