package services

import (
	"context"
	"errors"
	"strings"

	"github.com/yigit/gradplan/internal/app/models/dto"
	"github.com/yigit/gradplan/internal/catalog"
	"github.com/yigit/gradplan/internal/pkg/apperrors"
	"github.com/yigit/gradplan/internal/rag"
)

const healthyMessage = "Berkeley Four Year Plan Generator is running"

// CourseSearcher ranks catalog courses by meaning rather than substring
type CourseSearcher interface {
	SearchCourses(ctx context.Context, query string, limit int) []rag.CourseHit
	State() (rag.State, string)
}

// CatalogService exposes the read-only catalogs
type CatalogService interface {
	Health() dto.HealthResponse
	MajorNames() []string
	GetMajor(name string) (*catalog.Major, error)
	Colleges() []catalog.College
	CourseOptions(req *dto.CourseOptionsRequest) (*dto.CourseOptionsResponse, error)
	SearchCourses(ctx context.Context, req *dto.SearchCoursesRequest) *dto.SearchCoursesResponse
}

type catalogService struct {
	cat      *catalog.Catalog
	searcher CourseSearcher
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(cat *catalog.Catalog, searcher CourseSearcher) CatalogService {
	return &catalogService{cat: cat, searcher: searcher}
}

func (s *catalogService) Health() dto.HealthResponse {
	state, reason := s.searcher.State()
	return dto.HealthResponse{
		Status:       "healthy",
		Message:      healthyMessage,
		RAGState:     string(state),
		RAGReason:    reason,
		Courses:      s.cat.Courses.Len(),
		CourseSource: s.cat.Courses.Source(),
		Majors:       s.cat.Majors.Len(),
	}
}

func (s *catalogService) MajorNames() []string {
	return s.cat.Majors.Names()
}

func (s *catalogService) GetMajor(name string) (*catalog.Major, error) {
	m, ok := s.cat.Majors.Get(name)
	if !ok {
		return nil, apperrors.ErrMajorNotFound
	}
	return &m, nil
}

func (s *catalogService) Colleges() []catalog.College {
	return s.cat.Majors.Colleges()
}

// CourseOptions lists the catalog courses of one requirement group
func (s *catalogService) CourseOptions(req *dto.CourseOptionsRequest) (*dto.CourseOptionsResponse, error) {
	courses, err := s.cat.GroupCourses(req.Major, req.RequirementType, req.RequirementName)
	if err != nil {
		return nil, mapCatalogError(err)
	}

	options := make([]dto.CourseOption, len(courses))
	for i, c := range courses {
		options[i] = dto.NewCourseOption(c)
	}
	return &dto.CourseOptionsResponse{
		RequirementName: req.RequirementName,
		RequirementType: req.RequirementType,
		Options:         options,
	}, nil
}

// SearchCourses matches the query against course codes and titles. Semantic
// requests use the retrieval index and fall back to substring matching when
// it has nothing to offer.
func (s *catalogService) SearchCourses(ctx context.Context, req *dto.SearchCoursesRequest) *dto.SearchCoursesResponse {
	resp := &dto.SearchCoursesResponse{Courses: []dto.CourseSearchResult{}}
	query := strings.TrimSpace(req.Query)
	if len(query) < catalog.MinSearchLength {
		return resp
	}

	if req.Semantic {
		for _, h := range s.searcher.SearchCourses(ctx, query, req.Limit) {
			score := h.Score
			result := dto.CourseSearchResult{
				Code:       h.Code,
				Units:      h.Units,
				Terms:      h.Terms,
				Department: h.Department,
				Score:      &score,
			}
			if c, ok := s.cat.Courses.Find(h.Subject, h.Number); ok {
				result.Title = c.Title
			}
			resp.Courses = append(resp.Courses, result)
		}
		if len(resp.Courses) > 0 {
			return resp
		}
	}

	for _, c := range s.cat.Courses.Search(query, req.Limit) {
		resp.Courses = append(resp.Courses, dto.CourseSearchResult{
			Code:       c.Code(),
			Title:      c.Title,
			Units:      c.Units,
			Terms:      c.TermsString(),
			Department: c.Department,
		})
	}
	return resp
}

func mapCatalogError(err error) error {
	switch {
	case errors.Is(err, catalog.ErrMajorNotFound):
		return apperrors.ErrMajorNotFound
	case errors.Is(err, catalog.ErrCategoryNotFound):
		return apperrors.ErrRequirementTypeNotFound
	case errors.Is(err, catalog.ErrGroupNotFound):
		return apperrors.ErrRequirementNotFound
	}
	return err
}
