package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/gradplan/internal/catalog"
)

const courseIndexHTML = `<html><body><nav><a href="/about/">About the catalog</a></nav>
<ul>
<li><a href="/courses/compsci-61a/">COMPSCI 61A</a></li>
<li><a href="/courses/stat-20/">Stat 20 Intro</a></li>
<li><a href="/courses/x/">CS</a></li>
<li><a href="/courses/compsci-61a/">COMPSCI 61A again</a></li>
</ul></body></html>`

const compsci61aHTML = `<html><head><title>x</title><script>var code = "MATH 99";</script></head><body>
<h1>COMPSCI 61A - The Structure and Interpretation of Computer Programs</h1>
<p>4 Units</p>
<p>Terms offered: Fall, Spring</p>
<p>An introduction to programming.</p>
<p>Prerequisites: MATH 1A or equivalent</p>
</body></html>`

const stat20HTML = `<html><body><h2>STAT 20: Introduction to Probability</h2><p>Units: 4</p></body></html>`

const programIndexHTML = `<html><body>
<a href="/programs/computer-science/">Computer Science BA</a>
<a href="/programs/">All</a>
</body></html>`

const programHTML = `<html><body>
<h1>Computer Science</h1>
<p>College of Engineering. Bachelor of Science.</p>
<h2>Lower division</h2>
<p>Students complete COMPSCI 61A and COMPSCI 61B.</p>
<p>Students should plan their schedule carefully with an advisor and check the department website for updates each year before enrolling in classes.</p>
<h2>Electives</h2>
<p>Choose one elective such as COMPSCI 189 or COMPSCI 2024.</p>
</body></html>`

// catalogSite serves a fixed set of pages and records the User-Agent of every request
type catalogSite struct {
	pages map[string]string

	mu     sync.Mutex
	agents []string
	paths  []string
}

func (s *catalogSite) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.agents = append(s.agents, r.Header.Get("User-Agent"))
	s.paths = append(s.paths, r.URL.Path)
	s.mu.Unlock()

	body, ok := s.pages[r.URL.Path]
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(body))
}

func (s *catalogSite) requested() ([]string, []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.paths...), append([]string(nil), s.agents...)
}

func newSite(t *testing.T, pages map[string]string) (*catalogSite, *httptest.Server) {
	t.Helper()
	site := &catalogSite{pages: pages}
	srv := httptest.NewServer(site)
	t.Cleanup(srv.Close)
	return site, srv
}

func coursePages() map[string]string {
	return map[string]string{
		"/courses/":             courseIndexHTML,
		"/courses/compsci-61a/": compsci61aHTML,
		"/courses/stat-20/":     stat20HTML,
	}
}

func TestParsePage(t *testing.T) {
	p, err := ParsePage(strings.NewReader(compsci61aHTML))
	require.NoError(t, err)

	assert.NotContains(t, p.Text, "MATH 99")
	assert.Contains(t, p.Text, "COMPSCI 61A - The Structure and Interpretation of Computer Programs\n")
	assert.Contains(t, p.Text, "\nPrerequisites: MATH 1A or equivalent")

	idx, err := ParsePage(strings.NewReader(courseIndexHTML))
	require.NoError(t, err)
	require.Len(t, idx.Links, 5)
	assert.Equal(t, Link{Href: "/courses/compsci-61a/", Text: "COMPSCI 61A"}, idx.Links[1])
}

func TestParseCoursePage(t *testing.T) {
	p, err := ParsePage(strings.NewReader(compsci61aHTML))
	require.NoError(t, err)

	c, ok := ParseCoursePage(p.Text, "link text", "http://example/c")
	require.True(t, ok)
	assert.Equal(t, "COMPSCI", c.Subject)
	assert.Equal(t, "61A", c.Number)
	assert.Equal(t, "The Structure and Interpretation of Computer Programs", c.Title)
	assert.Equal(t, "4", c.Units)
	assert.Equal(t, "Fall, Spring", c.Terms)
	assert.Equal(t, "COMPSCI", c.Department)
	assert.Equal(t, "MATH 1A or equivalent", c.Prerequisites)
	assert.Contains(t, c.Description, "An introduction to programming.")
	assert.NotContains(t, c.Description, "Prerequisites")

	c, ok = ParseCoursePage("STAT 20: Introduction\nUnits: 4", "Stat 20 Intro", "")
	require.True(t, ok)
	assert.Equal(t, "Stat 20 Intro", c.Title)
	assert.Empty(t, c.Units)

	_, ok = ParseCoursePage("no course codes here", "x", "")
	assert.False(t, ok)
}

func TestDepartmentCourseNumbers(t *testing.T) {
	text := "COMPSCI 10, COMPSCI 61A and MATH 1A; COMPSCI  70"
	assert.Equal(t, []string{"10", "61A", "70"}, DepartmentCourseNumbers(text, "COMPSCI"))
	assert.Empty(t, DepartmentCourseNumbers(text, "PHYSICS"))
}

func TestScrapeCoursesAddsSamplesWhenFewFound(t *testing.T) {
	site, srv := newSite(t, coursePages())
	s := New(Config{BaseURL: srv.URL + "/", Departments: []string{}}, zerolog.Nop())

	courses, err := s.ScrapeCourses(context.Background())
	require.NoError(t, err)

	require.Len(t, courses, 2+len(catalog.SampleCourses())-1)
	assert.Equal(t, "COMPSCI 61A", courses[0].Code())
	assert.Equal(t, srv.URL+"/courses/compsci-61a/", courses[0].SourceURL)
	assert.Equal(t, "STAT 20", courses[1].Code())
	assert.Equal(t, "Stat 20 Intro", courses[1].Title)
	for _, c := range courses[2:] {
		assert.Equal(t, SampleSourceURL, c.SourceURL)
		assert.NotEqual(t, "COMPSCI 61A", c.Code())
	}

	paths, agents := site.requested()
	assert.Equal(t, []string{"/courses/", "/courses/compsci-61a/", "/courses/stat-20/"}, paths)
	for _, ua := range agents {
		assert.Equal(t, DefaultUserAgent, ua)
	}
}

func TestScrapeCoursesFromDepartmentPage(t *testing.T) {
	numbers := []string{"10", "61A", "61B", "61C", "70", "161", "162", "164", "170", "188"}
	var sb strings.Builder
	sb.WriteString("<html><body><ul>")
	for _, n := range numbers {
		sb.WriteString("<li>COMPSCI " + n + "</li>")
	}
	sb.WriteString("</ul></body></html>")

	site, srv := newSite(t, map[string]string{"/programs/compsci/": sb.String()})
	s := New(Config{BaseURL: srv.URL, Departments: []string{"COMPSCI", "MATH"}}, zerolog.Nop())

	courses, err := s.ScrapeCourses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, len(numbers))
	for i, c := range courses {
		assert.Equal(t, "COMPSCI "+numbers[i], c.Code())
		assert.Equal(t, srv.URL+"/programs/compsci/", c.SourceURL)
	}

	paths, _ := site.requested()
	assert.Equal(t, []string{"/courses/", "/courses/compsci/", "/programs/compsci/", "/courses/math/", "/programs/math/"}, paths)
}

func TestScrapeCoursesStopsOnCancel(t *testing.T) {
	_, srv := newSite(t, coursePages())
	s := New(Config{BaseURL: srv.URL, Delay: DefaultDelay}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.ScrapeCourses(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWrittenCoursesLoadIntoCatalog(t *testing.T) {
	_, srv := newSite(t, coursePages())
	s := New(Config{BaseURL: srv.URL, Departments: []string{}}, zerolog.Nop())

	courses, err := s.ScrapeCourses(context.Background())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "courses.csv")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, WriteCourses(f, courses))
	require.NoError(t, f.Close())

	table := catalog.LoadCourses(catalog.CourseSource{Paths: []string{path}}, zerolog.Nop())
	assert.Equal(t, path, table.Source())
	assert.Equal(t, len(courses), table.Len())

	cs, ok := table.Find("COMPSCI", "61A")
	require.True(t, ok)
	assert.Equal(t, "The Structure and Interpretation of Computer Programs", cs.Title)
	assert.Equal(t, 4, cs.Units)
	assert.Equal(t, []catalog.Term{catalog.TermFall, catalog.TermSpring}, cs.Terms)

	stat, ok := table.Find("STAT", "20")
	require.True(t, ok)
	assert.Equal(t, catalog.DefaultUnits, stat.Units)
	assert.Equal(t, catalog.DefaultTerms(), stat.Terms)
}

func TestProgramHeuristics(t *testing.T) {
	assert.Equal(t, "College of Chemistry", DetectCollege("Offered by the College of Chemistry"))
	assert.Equal(t, catalog.DefaultCollege, DetectCollege("no college named"))

	assert.Equal(t, DegreeBachelor, DetectDegreeType("B.S. in Physics"))
	assert.Equal(t, DegreeMaster, DetectDegreeType("Master of Engineering"))
	assert.Equal(t, DegreeDoctorate, DetectDegreeType("Ph.D. program"))
	assert.Equal(t, DegreeBachelor, DetectDegreeType("unknown"))

	tests := map[string]string{
		"Computer Science BA":    "CS",
		"Applied Mathematics":    "MATH",
		"Landscape Architecture": "LA",
		"Music":                  "MUSI",
		"Art":                    "ART",
	}
	for name, want := range tests {
		assert.Equal(t, want, ProgramCode(name), name)
	}

	text := "Students must take COMPSCI 61A. " + strings.Repeat("x", 120) + " Upper division electives include COMPSCI 189."
	assert.Equal(t, TypeRequired, RequirementType(text, "COMPSCI 61A"))
	assert.Equal(t, TypeElective, RequirementType(text, "COMPSCI 189"))
	assert.Equal(t, TypeBreadth, RequirementType("Breadth: HISTORY 1A", "HISTORY 1A"))
	assert.Equal(t, TypeCore, RequirementType("Core course MATH 54", "MATH 54"))
	assert.Equal(t, TypePrerequisite, RequirementType("Prerequisite MATH 1A", "MATH 1A"))
	assert.Equal(t, TypeRequired, RequirementType("nothing", "MATH 1A"))
}

func TestSampleRequirements(t *testing.T) {
	reqs := SampleRequirements()
	require.NotEmpty(t, reqs)

	courses := catalog.NewCourseTable(catalog.SampleCourses(), catalog.SampleSource)
	for _, r := range reqs {
		_, ok := courses.FindByID(r.CourseID())
		assert.True(t, ok, r.CourseID())
		assert.Equal(t, SampleSourceURL, r.ProgramURL)
	}

	first := reqs[0]
	assert.Equal(t, "Computer Science", first.ProgramName)
	assert.Equal(t, "CS", first.ProgramCode)
	assert.Equal(t, "College of Engineering", first.College)
	assert.Equal(t, "Lower Division Requirements", first.Section)
	assert.Equal(t, "COMPSCI 61A", first.CourseID())
	assert.Equal(t, TypeRequired, first.Type)
	assert.Equal(t, "4", first.Units)
}

func TestScrapeMajorsAlwaysAppendsSamples(t *testing.T) {
	_, srv := newSite(t, map[string]string{
		"/programs/":                  programIndexHTML,
		"/programs/computer-science/": programHTML,
	})
	s := New(Config{BaseURL: srv.URL}, zerolog.Nop())

	reqs, err := s.ScrapeMajors(context.Background())
	require.NoError(t, err)

	samples := SampleRequirements()
	require.Len(t, reqs, 3+len(samples))

	scraped := reqs[:3]
	ids := []string{scraped[0].CourseID(), scraped[1].CourseID(), scraped[2].CourseID()}
	assert.Equal(t, []string{"COMPSCI 61A", "COMPSCI 61B", "COMPSCI 189"}, ids)
	assert.Equal(t, []string{TypeRequired, TypeRequired, TypeElective}, []string{scraped[0].Type, scraped[1].Type, scraped[2].Type})
	for _, r := range scraped {
		assert.Equal(t, "Computer Science BA", r.ProgramName)
		assert.Equal(t, "CS", r.ProgramCode)
		assert.Equal(t, "College of Engineering", r.College)
		assert.Equal(t, DegreeBachelor, r.DegreeType)
		assert.Equal(t, srv.URL+"/programs/computer-science/", r.ProgramURL)
	}
	assert.Equal(t, samples, reqs[3:])
}

func TestScrapeMajorsWithoutIndexReturnsSamples(t *testing.T) {
	_, srv := newSite(t, nil)
	s := New(Config{BaseURL: srv.URL}, zerolog.Nop())

	reqs, err := s.ScrapeMajors(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SampleRequirements(), reqs)
}
