package rag

import (
	"fmt"
	"strings"

	"github.com/yigit/gradplan/internal/catalog"
)

// DocumentKind separates course documents from major documents
type DocumentKind string

const (
	KindCourse DocumentKind = "course"
	KindMajor  DocumentKind = "major"
)

// Document is one retrievable unit of catalog text
type Document struct {
	ID       string
	Kind     DocumentKind
	Text     string
	Metadata map[string]string
}

// BuildDocuments renders one document per course followed by one per major
func BuildDocuments(cat *catalog.Catalog) []Document {
	courses := cat.Courses.All()
	names := cat.Majors.Names()
	docs := make([]Document, 0, len(courses)+len(names))

	for _, c := range courses {
		docs = append(docs, CourseDocument(c))
	}
	for _, name := range names {
		if m, ok := cat.Majors.Get(name); ok {
			docs = append(docs, MajorDocument(m))
		}
	}
	return docs
}

// CourseDocument renders a course for embedding
func CourseDocument(c catalog.Course) Document {
	var b strings.Builder
	fmt.Fprintf(&b, "Course: %s\n", c.Code())
	fmt.Fprintf(&b, "Title: %s\n", c.Title)
	fmt.Fprintf(&b, "Department: %s\n", c.Department)
	fmt.Fprintf(&b, "Units: %d\n", c.Units)
	fmt.Fprintf(&b, "Terms Offered: %s\n", c.TermsString())
	fmt.Fprintf(&b, "Description: %s", c.Title)

	return Document{
		ID:   "course:" + c.Code(),
		Kind: KindCourse,
		Text: b.String(),
		Metadata: map[string]string{
			"course_code": c.Code(),
			"subject":     c.Subject,
			"number":      c.Number,
			"department":  c.Department,
			"units":       fmt.Sprint(c.Units),
			"terms":       c.TermsString(),
		},
	}
}

// MajorDocument renders a major and its requirement groups for embedding
func MajorDocument(m catalog.Major) Document {
	var b strings.Builder
	fmt.Fprintf(&b, "Major: %s\n", m.Name)
	fmt.Fprintf(&b, "College: %s\n", m.College)
	fmt.Fprintf(&b, "Total Units Required: %d\n\nRequirements:\n", m.TotalUnits)

	for _, category := range catalog.Categories {
		groups := m.Requirements.Groups(category)
		if len(groups) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s:\n", category.Title())
		for _, g := range groups {
			fmt.Fprintf(&b, "  - %s: %s (%d units) - %s\n", g.Name, strings.Join(g.Courses, ", "), g.Units, g.Description)
		}
	}

	return Document{
		ID:   "major:" + m.Name,
		Kind: KindMajor,
		Text: b.String(),
		Metadata: map[string]string{
			"major":       m.Name,
			"college":     m.College,
			"total_units": fmt.Sprint(m.TotalUnits),
		},
	}
}

// formatContext joins retrieved documents into one prompt block
func formatContext(docs []Document) string {
	texts := make([]string, len(docs))
	for i, d := range docs {
		texts[i] = d.Text
	}
	return strings.Join(texts, "\n\n---\n\n")
}
