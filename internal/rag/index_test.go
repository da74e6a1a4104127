package rag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/gradplan/internal/catalog"
)

func docs(ids ...string) []Document {
	out := make([]Document, len(ids))
	for i, id := range ids {
		kind := KindCourse
		if strings.HasPrefix(id, "major:") {
			kind = KindMajor
		}
		out[i] = Document{ID: id, Kind: kind}
	}
	return out
}

func hitIDs(hits []Hit) []string {
	ids := make([]string, len(hits))
	for i, h := range hits {
		ids[i] = h.Document.ID
	}
	return ids
}

func TestIndexSearchRanksByCosine(t *testing.T) {
	x := NewIndex()
	require.NoError(t, x.Add(docs("a", "b", "c", "major:d"), [][]float32{
		{1, 0, 0},
		{0, 1, 0},
		{10, 1, 0},
		{1, 1, 0},
	}))

	hits, err := x.Search([]float32{1, 0, 0}, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "major:d"}, hitIDs(hits))
	assert.InDelta(t, 1.0, hits[0].Score, 1e-6)

	hits, err = x.Search([]float32{1, 0, 0}, 10, func(d Document) bool { return d.Kind == KindCourse })
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "b"}, hitIDs(hits))
}

func TestIndexTiesKeepInsertionOrder(t *testing.T) {
	x := NewIndex()
	require.NoError(t, x.Add(docs("first", "second", "third"), [][]float32{{0, 2}, {0, 5}, {1, 0}}))

	hits, err := x.Search([]float32{0, 1}, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, hitIDs(hits))
}

func TestIndexRejectsMismatchedVectors(t *testing.T) {
	x := NewIndex()
	require.NoError(t, x.Add(docs("a"), [][]float32{{1, 2, 3}}))

	assert.ErrorIs(t, x.Add(docs("b"), [][]float32{{1, 2}}), ErrDimensionMismatch)
	assert.Error(t, x.Add(docs("b", "c"), [][]float32{{1, 2, 3}}))

	_, err := x.Search([]float32{1}, 1, nil)
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	hits, err := NewIndex().Search([]float32{1}, 5, nil)
	assert.NoError(t, err)
	assert.Empty(t, hits)
}

func TestIndexRejectedBatchAddsNothing(t *testing.T) {
	x := NewIndex()
	require.NoError(t, x.Add(docs("a"), [][]float32{{1, 0}}))

	err := x.Add(docs("b", "c", "d"), [][]float32{{0, 1}, {1, 1}, {1, 2, 3}})
	require.ErrorIs(t, err, ErrDimensionMismatch)
	assert.Equal(t, 1, x.Len())

	hits, err := x.Search([]float32{0, 1}, 5, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, hitIDs(hits))

	empty := NewIndex()
	require.ErrorIs(t, empty.Add(docs("e", "f"), [][]float32{{1, 0}, {1}}), ErrDimensionMismatch)
	assert.Zero(t, empty.Len())
	require.NoError(t, empty.Add(docs("g"), [][]float32{{1, 2, 3}}))
	assert.Equal(t, 1, empty.Len())
}

func TestCourseDocument(t *testing.T) {
	d := CourseDocument(catalog.Course{
		Subject:    "MATH",
		Number:     "1A",
		Title:      "Calculus",
		Units:      4,
		Terms:      []catalog.Term{catalog.TermFall, catalog.TermSpring},
		Department: "Mathematics",
	})

	assert.Equal(t, "course:MATH 1A", d.ID)
	assert.Equal(t, KindCourse, d.Kind)
	assert.Contains(t, d.Text, "Course: MATH 1A\nTitle: Calculus\nDepartment: Mathematics\nUnits: 4\n")
	assert.Equal(t, "MATH 1A", d.Metadata["course_code"])
	assert.Equal(t, "4", d.Metadata["units"])
}

func TestMajorDocumentListsGroupsByCategory(t *testing.T) {
	m, ok := catalog.LoadMajors().Get("Computer Science")
	require.True(t, ok)

	d := MajorDocument(m)
	assert.Equal(t, KindMajor, d.Kind)
	assert.Contains(t, d.Text, "Major: Computer Science\nCollege: College of Engineering\n")
	assert.Contains(t, d.Text, "Lower Division:\n  - Programming Fundamentals: COMPSCI 61A, COMPSCI 61B")
	assert.Less(t, strings.Index(d.Text, "Lower Division"), strings.Index(d.Text, "Upper Division"))
}

func TestBuildDocumentsCoursesThenMajors(t *testing.T) {
	cat := testCatalog()
	all := BuildDocuments(cat)

	require.Len(t, all, cat.Courses.Len()+cat.Majors.Len())
	assert.Equal(t, KindCourse, all[0].Kind)
	assert.Equal(t, KindMajor, all[len(all)-1].Kind)
}
