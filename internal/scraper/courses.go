package scraper

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/yigit/gradplan/internal/catalog"
)

// MinScrapedCourses is the count below which sample courses are appended
const MinScrapedCourses = 10

// SampleSourceURL marks rows that come from built-in data
const SampleSourceURL = "sample"

var (
	courseCodePattern  = regexp.MustCompile(`([A-Z]{2,})\s+(\d+[A-Z]?)`)
	courseTitlePattern = regexp.MustCompile(`[A-Z]{2,}\s+\d+[A-Z]?[ \t]*[-–][ \t]*([^\n]+)`)
	unitsPattern       = regexp.MustCompile(`(?i)(\d+(?:-\d+)?)\s*units?`)
	termsPattern       = regexp.MustCompile(`(?i)terms?\s+offered:?[ \t]*([^\n]+)`)
	prereqPattern      = regexp.MustCompile(`(?is)prerequisites?:\s*(.+?)(?:\n\n|\n[A-Z]|$)`)
	whitespacePattern  = regexp.MustCompile(`\s+`)
)

// Course is one scraped course row
type Course struct {
	Subject       string
	Number        string
	Title         string
	Units         string
	Terms         string
	Department    string
	Description   string
	Prerequisites string
	SourceURL     string
}

// Code returns "SUBJECT NUMBER"
func (c Course) Code() string {
	return c.Subject + " " + c.Number
}

// CourseColumns is the header written by WriteCourses. The first columns use
// the names the service's course loader reads.
var CourseColumns = []string{
	catalog.ColumnSubject,
	catalog.ColumnNumber,
	catalog.ColumnTitle,
	catalog.ColumnDepartment,
	catalog.ColumnUnits,
	catalog.ColumnTerms,
	catalog.ColumnDescription,
	"Prerequisites",
	"Source URL",
}

// ParseCoursePage extracts the first course described on a course page.
// fallbackTitle is used when the page has no "CODE - Title" line.
func ParseCoursePage(text, fallbackTitle, sourceURL string) (Course, bool) {
	m := courseCodePattern.FindStringSubmatch(text)
	if m == nil {
		return Course{}, false
	}

	c := Course{
		Subject:    m[1],
		Number:     m[2],
		Title:      strings.TrimSpace(fallbackTitle),
		Department: m[1],
		SourceURL:  sourceURL,
	}
	if t := courseTitlePattern.FindStringSubmatch(text); t != nil {
		c.Title = strings.TrimSpace(t[1])
	}
	if u := unitsPattern.FindStringSubmatch(text); u != nil {
		c.Units = u[1]
	}
	if t := termsPattern.FindStringSubmatch(text); t != nil {
		c.Terms = strings.TrimSpace(t[1])
	}

	start := 0
	if c.Title != "" {
		if i := strings.Index(text, c.Title); i >= 0 {
			start = i + len(c.Title)
		}
	}
	end := len(text)
	if i := strings.Index(text[start:], "Prerequisites:"); i >= 0 {
		end = start + i
	}
	c.Description = strings.TrimSpace(whitespacePattern.ReplaceAllString(text[start:end], " "))

	if p := prereqPattern.FindStringSubmatch(text); p != nil {
		c.Prerequisites = strings.TrimSpace(whitespacePattern.ReplaceAllString(p[1], " "))
	}
	return c, true
}

// DepartmentCourseNumbers finds every "DEPT NUMBER" mention of one department
func DepartmentCourseNumbers(text, dept string) []string {
	pattern, err := regexp.Compile(regexp.QuoteMeta(dept) + `\s+(\d+[A-Z]?)`)
	if err != nil {
		return nil
	}
	var numbers []string
	for _, m := range pattern.FindAllStringSubmatch(text, -1) {
		numbers = append(numbers, m[1])
	}
	return numbers
}

// SampleCourses converts the service's built-in course set to scraped rows
func SampleCourses() []Course {
	builtin := catalog.SampleCourses()
	out := make([]Course, len(builtin))
	for i, c := range builtin {
		out[i] = Course{
			Subject:    c.Subject,
			Number:     c.Number,
			Title:      c.Title,
			Units:      strconv.Itoa(c.Units),
			Terms:      c.TermsString(),
			Department: c.Department,
			SourceURL:  SampleSourceURL,
		}
	}
	return out
}

// courseSet keeps the first row seen per course code in insertion order
type courseSet struct {
	seen    map[string]bool
	courses []Course
}

func newCourseSet() *courseSet {
	return &courseSet{seen: make(map[string]bool)}
}

func (s *courseSet) add(c Course) bool {
	if s.seen[c.Code()] {
		return false
	}
	s.seen[c.Code()] = true
	s.courses = append(s.courses, c)
	return true
}

// ScrapeCourses walks the catalog course index and the department listings.
// Page failures are logged and skipped; only cancellation aborts the run.
func (s *Scraper) ScrapeCourses(ctx context.Context) ([]Course, error) {
	set := newCourseSet()

	if err := s.scrapeCourseIndex(ctx, set); err != nil {
		return nil, err
	}
	if err := s.scrapeDepartments(ctx, set); err != nil {
		return nil, err
	}

	if len(set.courses) < MinScrapedCourses {
		s.log.Info().Int("scraped", len(set.courses)).Msg("Too few courses scraped, adding sample courses")
		for _, c := range SampleCourses() {
			set.add(c)
		}
	}

	s.log.Info().Int("courses", len(set.courses)).Msg("Course scraping finished")
	return set.courses, nil
}

func (s *Scraper) scrapeCourseIndex(ctx context.Context, set *courseSet) error {
	index := s.cfg.BaseURL + "/courses/"
	page, err := s.fetch(ctx, index)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.log.Error().Err(err).Str("url", index).Msg("Failed to fetch course index")
		return nil
	}

	links := s.links(page, "/courses/")
	s.log.Info().Int("links", len(links)).Msg("Found course links in catalog")
	if len(links) > s.cfg.MaxPages {
		links = links[:s.cfg.MaxPages]
	}

	for _, link := range links {
		if err := s.pause(ctx); err != nil {
			return err
		}
		p, err := s.fetch(ctx, link.Href)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.log.Warn().Err(err).Str("url", link.Href).Msg("Failed to fetch course page")
			continue
		}
		if c, ok := ParseCoursePage(p.Text, link.Text, link.Href); ok && set.add(c) {
			s.log.Debug().Str("course", c.Code()).Str("title", c.Title).Msg("Scraped course")
		}
	}
	return nil
}

func (s *Scraper) scrapeDepartments(ctx context.Context, set *courseSet) error {
	for _, dept := range s.cfg.Departments {
		lower := strings.ToLower(dept)
		for _, target := range []string{
			s.cfg.BaseURL + "/courses/" + lower + "/",
			s.cfg.BaseURL + "/programs/" + lower + "/",
		} {
			if err := s.pause(ctx); err != nil {
				return err
			}
			p, err := s.fetch(ctx, target)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				s.log.Debug().Err(err).Str("url", target).Msg("Department page unavailable")
				continue
			}

			numbers := DepartmentCourseNumbers(p.Text, dept)
			for _, n := range numbers {
				set.add(Course{Subject: dept, Number: n, Department: dept, SourceURL: target})
			}
			if len(numbers) > 0 {
				s.log.Info().Str("department", dept).Int("courses", len(numbers)).Msg("Found department courses")
				break
			}
		}
	}
	return nil
}

// WriteCourses writes courses as CSV with CourseColumns as the header
func WriteCourses(w io.Writer, courses []Course) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CourseColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, c := range courses {
		record := []string{c.Subject, c.Number, c.Title, c.Department, c.Units, c.Terms, c.Description, c.Prerequisites, c.SourceURL}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write %s: %w", c.Code(), err)
		}
	}
	cw.Flush()
	return cw.Error()
}
