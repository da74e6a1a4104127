package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const courseCSV = `Subject,Course Number,Department(s),Credits - Units - Minimum Units,Terms Offered,Course Description
COMPSCI,61A,Computer Science,4,"Fall, Spring",Structure and Interpretation
MATH,1A,Mathematics,4.0,"Fall, Spring, Summer",Calculus
MATH,1a,Mathematics,3,Spring,Lowercase duplicate is a distinct course
STAT,20,Statistics,,-,Introduction to Probability
MATH,1A,Mathematics,2,Summer,Duplicate row
PHYSICS,7A,Physics,2-4,nan,Physics for Scientists
,99,Nowhere,4,Fall,Row without subject
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSampleCoursesFindMath1A(t *testing.T) {
	table := LoadCourses(CourseSource{}, zerolog.Nop())
	assert.Equal(t, SampleSource, table.Source())

	course, ok := table.Find("MATH", "1A")
	require.True(t, ok)
	assert.Equal(t, 4, course.Units)
	assert.True(t, course.OfferedIn(TermFall))
	assert.True(t, course.OfferedIn(TermSpring))
}

func TestFindIsCaseSensitive(t *testing.T) {
	table := LoadCourses(CourseSource{}, zerolog.Nop())

	_, ok := table.Find("COMPSCI", "61a")
	assert.False(t, ok)
	_, ok = table.Find("compsci", "61A")
	assert.False(t, ok)
	_, ok = table.Find("COMPSCI", "61A")
	assert.True(t, ok)
}

func TestLoadCoursesFromCSV(t *testing.T) {
	path := writeFile(t, "courses.csv", courseCSV)
	table := LoadCourses(CourseSource{Paths: []string{"/does/not/exist.csv", path}}, zerolog.Nop())

	assert.Equal(t, path, table.Source())
	assert.Equal(t, 5, table.Len())

	math1A, ok := table.Find("MATH", "1A")
	require.True(t, ok)
	assert.Equal(t, "Calculus", math1A.Title, "first duplicate row wins")
	assert.Equal(t, []Term{TermFall, TermSpring, TermSummer}, math1A.Terms)

	lower, ok := table.Find("MATH", "1a")
	require.True(t, ok)
	assert.Equal(t, 3, lower.Units)

	stat, ok := table.Find("STAT", "20")
	require.True(t, ok)
	assert.Equal(t, DefaultUnits, stat.Units)
	assert.Equal(t, DefaultTerms(), stat.Terms)

	physics, ok := table.Find("PHYSICS", "7A")
	require.True(t, ok)
	assert.Equal(t, 2, physics.Units)
	assert.Equal(t, DefaultTerms(), physics.Terms)
}

func TestLoadCoursesFallsBackOnBadFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "missing columns", content: "Foo,Bar\n1,2\n"},
		{name: "header only", content: "Subject,Course Number\n"},
		{name: "empty", content: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "courses.csv", tt.content)
			table := LoadCourses(CourseSource{Paths: []string{path}}, zerolog.Nop())
			assert.Equal(t, SampleSource, table.Source())
			assert.Equal(t, len(SampleCourses()), table.Len())
		})
	}
}

func TestLoadCoursesFromWorkbook(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{ColumnSubject, ColumnNumber, ColumnDepartment, ColumnUnits, ColumnTerms, ColumnDescription},
		{"DATA", "100", "Data Science", "4", "Fall, Spring", "Principles and Techniques of Data Science"},
		{"ECON", "1", "Economics", "4", "Summer", "Introduction to Economics"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	path := filepath.Join(t.TempDir(), "courses.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	table := LoadCourses(CourseSource{Paths: []string{path}}, zerolog.Nop())
	require.Equal(t, 2, table.Len())

	econ, ok := table.Find("ECON", "1")
	require.True(t, ok)
	assert.Equal(t, []Term{TermSummer}, econ.Terms)
}

func TestParseUnits(t *testing.T) {
	tests := map[string]int{
		"4":    4,
		"4.0":  4,
		" 3 ":  3,
		"2-4":  2,
		"":     DefaultUnits,
		"abc":  DefaultUnits,
		"0":    DefaultUnits,
		"-2":   DefaultUnits,
		"NaN":  DefaultUnits,
		"1.5":  2,
		"12.0": 12,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseUnits(in), "ParseUnits(%q)", in)
	}
}

func TestParseTerms(t *testing.T) {
	assert.Equal(t, []Term{TermFall, TermSpring}, ParseTerms("Spring, Fall"))
	assert.Equal(t, []Term{TermSummer}, ParseTerms("summer"))
	assert.Equal(t, []Term{TermFall, TermSpring, TermSummer}, ParseTerms("Fall; Spring / Summer"))
	assert.Equal(t, DefaultTerms(), ParseTerms(""))
	assert.Equal(t, DefaultTerms(), ParseTerms("TBD"))
	assert.Equal(t, DefaultTerms(), ParseTerms("Winter"))
}

func TestParseCourseID(t *testing.T) {
	subject, number, ok := ParseCourseID("COMPSCI 61A")
	require.True(t, ok)
	assert.Equal(t, "COMPSCI", subject)
	assert.Equal(t, "61A", number)

	subject, number, ok = ParseCourseID("L & S 25")
	require.True(t, ok)
	assert.Equal(t, "L & S", subject)
	assert.Equal(t, "25", number)

	_, _, ok = ParseCourseID("COMPSCI")
	assert.False(t, ok)
	_, _, ok = ParseCourseID("  ")
	assert.False(t, ok)
}

func TestSearch(t *testing.T) {
	table := LoadCourses(CourseSource{}, zerolog.Nop())

	assert.Nil(t, table.Search("m", 10))

	hits := table.Search("compsci 61", 10)
	require.Len(t, hits, 3)
	assert.Equal(t, "COMPSCI 61A", hits[0].Code())
	assert.Equal(t, "COMPSCI 61B", hits[1].Code())
	assert.Equal(t, "COMPSCI 61C", hits[2].Code())

	hits = table.Search("calculus", 0)
	require.Len(t, hits, 2)

	hits = table.Search("COMPSCI", 3)
	assert.Len(t, hits, 3)
}

func TestLoadMajors(t *testing.T) {
	majors := LoadMajors()

	names := majors.Names()
	assert.Equal(t, len(majorNames), majors.Len())
	assert.Equal(t, "Ancient Greek and Roman Studies", names[0])
	assert.Equal(t, "Business Administration", names[len(names)-1])

	cs, ok := majors.Get("Computer Science")
	require.True(t, ok)
	assert.Equal(t, "College of Engineering", cs.College)
	assert.Equal(t, DefaultTotalUnits, cs.TotalUnits)
	require.Len(t, cs.Requirements.LowerDivision, 2)
	assert.Equal(t, []string{"COMPSCI 61A", "COMPSCI 61B"}, cs.Requirements.LowerDivision[0].Courses)
	assert.Equal(t, []string{"COMPSCI 170", "COMPSCI 188"}, cs.Requirements.UpperDivision[0].Courses)

	stats, ok := majors.Get("Statistics")
	require.True(t, ok)
	assert.Equal(t, "College of Computing, Data Science, and Society", stats.College)

	arch, ok := majors.Get("Landscape Architecture")
	require.True(t, ok)
	assert.Equal(t, "College of Environmental Design", arch.College)
	assert.Equal(t, []string{"LANDSCAP 100", "LANDSCAP 101"}, arch.Requirements.UpperDivision[0].Courses)
	assert.Equal(t, "Upper division Landscape Architecture courses", arch.Requirements.UpperDivision[0].Description)

	english, ok := majors.Get("English")
	require.True(t, ok)
	assert.Equal(t, DefaultCollege, english.College)
	assert.Equal(t, []string{"ENGLISH 100", "ENGLISH 101"}, english.Requirements.UpperDivision[0].Courses)
	assert.Equal(t, []string{"HISTORY 1A", "PHYSICS 7A"}, english.Requirements.Breadth[0].Courses)

	_, ok = majors.Get("computer science")
	assert.False(t, ok)
}

func TestMajorTableGetReturnsCopy(t *testing.T) {
	majors := LoadMajors()

	cs, _ := majors.Get("Computer Science")
	cs.Requirements.LowerDivision[0].Courses[0] = "MUTATED 1"

	again, _ := majors.Get("Computer Science")
	assert.Equal(t, "COMPSCI 61A", again.Requirements.LowerDivision[0].Courses[0])
}

func TestColleges(t *testing.T) {
	colleges := LoadMajors().Colleges()
	require.Len(t, colleges, 7)
	assert.Equal(t, DefaultCollege, colleges[0].Name)

	byName := make(map[string][]string)
	for _, c := range colleges {
		byName[c.Name] = c.Majors
	}
	assert.Equal(t, []string{"Business Administration"}, byName["Haas School of Business"])
	assert.Contains(t, byName["College of Engineering"], "Computer Science")
}

func TestGroupCourses(t *testing.T) {
	cat := Load(CourseSource{}, zerolog.Nop())

	courses, err := cat.GroupCourses("Data Science", "upper_division", "Data Science Core")
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "DATA 100", courses[0].Code())

	courses, err = cat.GroupCourses("English", "upper_division", "Major Requirements")
	require.NoError(t, err)
	assert.Empty(t, courses, "placeholder identifiers are not in the course table")

	_, err = cat.GroupCourses("Nope", "breadth", "Humanities")
	assert.ErrorIs(t, err, ErrMajorNotFound)
	_, err = cat.GroupCourses("Computer Science", "electives", "Humanities")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
	_, err = cat.GroupCourses("Computer Science", "breadth", "Nope")
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestCollegeMembership(t *testing.T) {
	assert.Equal(t, "College of Engineering", CollegeFor("Electrical and Computer Engineering"))
	assert.Equal(t, "College of Engineering", CollegeFor("Industrial Engineering and Operations Research"))
	assert.Equal(t, "Rausser College of Natural Resources", CollegeFor("Nutrition & Metabolic Biology"))
	assert.Equal(t, DefaultCollege, CollegeFor("Philosophy"))
}
