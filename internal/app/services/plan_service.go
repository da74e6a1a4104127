package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/yigit/gradplan/internal/catalog"
	"github.com/yigit/gradplan/internal/pkg/apperrors"
	"github.com/yigit/gradplan/internal/planner"
	"github.com/yigit/gradplan/internal/rag"
)

// PlanEngine produces plans and suggestions, preferring the model and
// falling back to the deterministic assembler
type PlanEngine interface {
	GenerateSchedule(ctx context.Context, req planner.Request) (*planner.Plan, error)
	SuggestCourses(ctx context.Context, req rag.SuggestionRequest) rag.Suggestions
}

// PlanObserver counts generated plans
type PlanObserver interface {
	PlanGenerated(source string)
}

// PlanService generates plans and semester suggestions
type PlanService interface {
	Generate(ctx context.Context, req planner.Request) (*planner.Plan, error)
	Suggest(ctx context.Context, req rag.SuggestionRequest) (rag.Suggestions, error)
}

type planService struct {
	cat      *catalog.Catalog
	engine   PlanEngine
	observer PlanObserver
	logger   zerolog.Logger
}

// NewPlanService creates a new PlanService. observer may be nil.
func NewPlanService(cat *catalog.Catalog, engine PlanEngine, observer PlanObserver, logger zerolog.Logger) PlanService {
	return &planService{cat: cat, engine: engine, observer: observer, logger: logger}
}

// Generate returns a plan for req. Unknown majors are not found; malformed
// requests fail validation.
func (s *planService) Generate(ctx context.Context, req planner.Request) (*planner.Plan, error) {
	plan, err := s.engine.GenerateSchedule(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, planner.ErrMajorNotFound):
			return nil, apperrors.ErrMajorNotFound
		case errors.Is(err, planner.ErrInvalidRequest):
			return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, err.Error())
		}
		return nil, err
	}

	s.logger.Info().
		Str("major", plan.Major).
		Str("source", string(plan.Source)).
		Int("semesters", len(plan.Semesters)).
		Int("unplaced", len(plan.UnplacedCourses)).
		Msg("Plan generated")
	if s.observer != nil {
		s.observer.PlanGenerated(string(plan.Source))
	}
	return plan, nil
}

// Suggest returns extra courses for one semester of a known major
func (s *planService) Suggest(ctx context.Context, req rag.SuggestionRequest) (rag.Suggestions, error) {
	if !s.cat.Majors.Has(req.Major) {
		return rag.Suggestions{}, apperrors.ErrMajorNotFound
	}
	return s.engine.SuggestCourses(ctx, req), nil
}
