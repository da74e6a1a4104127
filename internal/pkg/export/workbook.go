// Package export renders plans as xlsx workbooks.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/yigit/gradplan/internal/catalog"
	"github.com/yigit/gradplan/internal/planner"
)

const (
	PlanSheet         = "Plan"
	RequirementsSheet = "Requirements"
	UnplacedSheet     = "Unplaced"

	// ContentType is the MIME type of the written workbook
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var planHeader = []interface{}{"Year", "Term", "Subject", "Number", "Title", "Units", "Requirement Type", "Requirement"}

// WritePlan writes plan as a workbook with one row per placed course, a
// total row per semester, and the requirement groups on a second sheet
func WritePlan(w io.Writer, title string, plan *planner.Plan) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), PlanSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}

	sw := sheetWriter{f: f, sheet: PlanSheet, bold: bold}
	sw.row(title)
	sw.boldRow(fmt.Sprintf("%s, %s. Graduating %s %d, %d units required",
		plan.Major, plan.College, plan.GraduationSemester, plan.GraduationYear, plan.TotalUnits))
	sw.skip()
	sw.boldRow(planHeader...)

	for _, s := range plan.Semesters {
		for _, c := range s.Courses {
			sw.row(s.Year, string(s.Term), c.Subject, c.Number, c.Title, c.Units, string(c.RequirementType), c.RequirementName)
		}
		sw.boldRow(s.Year, string(s.Term), "", "", "Semester total", s.Units)
	}
	sw.skip()
	sw.boldRow("", "", "", "", "Planned units", plan.PlacedUnits())
	if plan.AIRecommendations != "" {
		sw.skip()
		sw.row("Recommendations", plan.AIRecommendations)
	}
	if sw.err != nil {
		return sw.err
	}
	if err := f.SetColWidth(PlanSheet, "E", "E", 40); err != nil {
		return err
	}

	if err := writeRequirements(f, bold, plan.Requirements); err != nil {
		return err
	}
	if len(plan.UnplacedCourses) > 0 {
		if err := writeUnplaced(f, bold, plan.UnplacedCourses); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRequirements(f *excelize.File, bold int, reqs catalog.Requirements) error {
	if _, err := f.NewSheet(RequirementsSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	sw := sheetWriter{f: f, sheet: RequirementsSheet, bold: bold}
	sw.boldRow("Category", "Requirement", "Courses", "Units", "Description")
	for _, category := range catalog.Categories {
		for _, g := range reqs.Groups(category) {
			sw.row(category.Title(), g.Name, strings.Join(g.Courses, ", "), g.Units, g.Description)
		}
	}
	return sw.err
}

func writeUnplaced(f *excelize.File, bold int, unplaced []planner.UnplacedCourse) error {
	if _, err := f.NewSheet(UnplacedSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	sw := sheetWriter{f: f, sheet: UnplacedSheet, bold: bold}
	sw.boldRow("Course", "Requirement Type", "Requirement")
	for _, u := range unplaced {
		sw.row(u.Course, string(u.RequirementType), u.RequirementName)
	}
	return sw.err
}

// sheetWriter appends rows to one sheet and keeps the first error
type sheetWriter struct {
	f     *excelize.File
	sheet string
	bold  int
	next  int
	err   error
}

func (s *sheetWriter) skip() {
	s.next++
}

func (s *sheetWriter) row(values ...interface{}) {
	s.write(false, values)
}

func (s *sheetWriter) boldRow(values ...interface{}) {
	s.write(true, values)
}

func (s *sheetWriter) write(bold bool, values []interface{}) {
	if s.err != nil {
		return
	}
	s.next++
	cell, err := excelize.CoordinatesToCellName(1, s.next)
	if err != nil {
		s.err = err
		return
	}
	if err := s.f.SetSheetRow(s.sheet, cell, &values); err != nil {
		s.err = fmt.Errorf("write row %d of %s: %w", s.next, s.sheet, err)
		return
	}
	if bold {
		last, err := excelize.CoordinatesToCellName(len(values), s.next)
		if err != nil {
			s.err = err
			return
		}
		if err := s.f.SetCellStyle(s.sheet, cell, last, s.bold); err != nil {
			s.err = err
		}
	}
}
