package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/gradplan/internal/catalog"
	"github.com/yigit/gradplan/internal/pkg/apperrors"
	"github.com/yigit/gradplan/internal/planner"
	"github.com/yigit/gradplan/internal/rag"
)

func newTestPlanService(observer PlanObserver) PlanService {
	cat := sampleCatalog()
	pipeline := rag.NewPipeline(cat, nil, nil, rag.Options{}, zerolog.Nop())
	return NewPlanService(cat, pipeline, observer, zerolog.Nop())
}

func TestGenerateFallsBackToAssembledPlan(t *testing.T) {
	observer := &countingObserver{}
	svc := newTestPlanService(observer)

	plan, err := svc.Generate(context.Background(), planner.Request{
		Major:            "Computer Science",
		GraduationYear:   2028,
		CurrentYear:      2024,
		CompletedCourses: []string{"COMPSCI 61A"},
	})
	require.NoError(t, err)
	assert.Equal(t, planner.SourceDeterministic, plan.Source)
	assert.Equal(t, catalog.TermSpring, plan.GraduationSemester)
	assert.NotContains(t, plan.CourseCodes(), "COMPSCI 61A")
	assert.Contains(t, plan.CourseCodes(), "COMPSCI 61B")
	assert.Equal(t, []string{"deterministic"}, observer.sources)
}

func TestGenerateMapsErrors(t *testing.T) {
	observer := &countingObserver{}
	svc := newTestPlanService(observer)
	ctx := context.Background()

	_, err := svc.Generate(ctx, planner.Request{Major: "Astrology", GraduationYear: 2028})
	assert.ErrorIs(t, err, apperrors.ErrMajorNotFound)

	_, err = svc.Generate(ctx, planner.Request{Major: "Computer Science"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.Generate(ctx, planner.Request{Major: "Computer Science", GraduationYear: 2028, GraduationSemester: catalog.TermSummer})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	assert.Empty(t, observer.sources)
}

func TestSuggestWhileRAGUnavailable(t *testing.T) {
	svc := newTestPlanService(nil)
	ctx := context.Background()

	out, err := svc.Suggest(ctx, rag.SuggestionRequest{Major: "Data Science", Term: catalog.TermFall, Year: 2025})
	require.NoError(t, err)
	assert.Empty(t, out.Suggestions)
	assert.Equal(t, rag.AdviceUnavailable, out.Advice)

	_, err = svc.Suggest(ctx, rag.SuggestionRequest{Major: "Astrology"})
	assert.ErrorIs(t, err, apperrors.ErrMajorNotFound)
}
