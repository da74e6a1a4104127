package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/gradplan/internal/app/models/dto"
	"github.com/yigit/gradplan/internal/app/services"
	"github.com/yigit/gradplan/internal/catalog"
	"github.com/yigit/gradplan/internal/middleware"
	"github.com/yigit/gradplan/internal/pkg/apperrors"
	"github.com/yigit/gradplan/internal/pkg/export"
	"github.com/yigit/gradplan/internal/rag"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Success bool             `json:"success"`
	Data    json.RawMessage  `json:"data"`
	Error   *dto.ErrorDetail `json:"error"`
}

func do(t *testing.T, r http.Handler, method, target string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	if rec.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func catalogRouter() *gin.Engine {
	cat := catalog.Load(catalog.CourseSource{}, zerolog.Nop())
	pipeline := rag.NewPipeline(cat, nil, nil, rag.Options{}, zerolog.Nop())
	catalogService := services.NewCatalogService(cat, pipeline)
	cc := NewCatalogController(catalogService, zerolog.Nop())
	pc := NewPlanController(services.NewPlanService(cat, pipeline, nil, zerolog.Nop()), catalogService, zerolog.Nop())

	r := gin.New()
	r.GET("/health", cc.Health)
	r.GET("/majors", cc.ListMajors)
	r.GET("/majors/:name", cc.GetMajor)
	r.GET("/colleges", cc.ListColleges)
	r.POST("/courses/search", cc.SearchCourses)
	r.POST("/plans/generate", pc.Generate)
	r.POST("/plans/course-options", pc.CourseOptions)
	r.POST("/plans/suggestions", pc.Suggestions)
	return r
}

func TestCatalogEndpoints(t *testing.T) {
	r := catalogRouter()

	rec, env := do(t, r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var health dto.HealthResponse
	require.NoError(t, json.Unmarshal(env.Data, &health))
	assert.Equal(t, "uninitialized", health.RAGState)

	rec, env = do(t, r, http.MethodGet, "/majors", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var majors dto.MajorsResponse
	require.NoError(t, json.Unmarshal(env.Data, &majors))
	assert.Contains(t, majors.Majors, "Computer Science")

	rec, env = do(t, r, http.MethodGet, "/majors/Computer%20Science", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var major catalog.Major
	require.NoError(t, json.Unmarshal(env.Data, &major))
	assert.Equal(t, "College of Engineering", major.College)

	rec, env = do(t, r, http.MethodGet, "/majors/Astrology", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, env.Error.Code)

	rec, _ = do(t, r, http.MethodGet, "/colleges", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = do(t, r, http.MethodPost, "/courses/search", map[string]interface{}{"query": "61", "semantic": true})
	require.Equal(t, http.StatusOK, rec.Code)
	var found dto.SearchCoursesResponse
	require.NoError(t, json.Unmarshal(env.Data, &found))
	require.NotEmpty(t, found.Courses)
	assert.Equal(t, "COMPSCI 61A", found.Courses[0].Code)

	rec, env = do(t, r, http.MethodPost, "/courses/search", map[string]interface{}{"query": "61", "limit": 500})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "limit", env.Error.Field)
}

func TestGeneratePlan(t *testing.T) {
	r := catalogRouter()

	rec, env := do(t, r, http.MethodPost, "/plans/generate", map[string]interface{}{
		"major":             "Computer Science",
		"graduation_year":   2028,
		"current_year":      2024,
		"completed_courses": []string{"MATH 1A"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var plan struct {
		Major     string `json:"major"`
		Source    string `json:"source"`
		Semesters []struct {
			Term string `json:"term"`
		} `json:"semesters"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &plan))
	assert.Equal(t, "deterministic", plan.Source)
	require.NotEmpty(t, plan.Semesters)
	assert.Equal(t, "Fall", plan.Semesters[0].Term)

	tests := []struct {
		name       string
		body       interface{}
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"unknown major", map[string]interface{}{"major": "Astrology", "graduation_year": 2028}, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"missing year", map[string]interface{}{"major": "Computer Science"}, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"summer graduation", map[string]interface{}{"major": "Computer Science", "graduation_year": 2028, "graduation_semester": "Summer"}, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"horizon too long", map[string]interface{}{"major": "Computer Science", "graduation_year": 2040, "current_year": 2024}, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"wrong type", `{"major": "Computer Science", "graduation_year": "soon"}`, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := do(t, r, http.MethodPost, "/plans/generate", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
		})
	}
}

func TestCourseOptionsAndSuggestions(t *testing.T) {
	r := catalogRouter()

	rec, env := do(t, r, http.MethodPost, "/plans/course-options", dto.CourseOptionsRequest{
		Major: "Computer Science", RequirementType: "lower_division", RequirementName: "Programming Fundamentals",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var options dto.CourseOptionsResponse
	require.NoError(t, json.Unmarshal(env.Data, &options))
	assert.Len(t, options.Options, 2)

	rec, _ = do(t, r, http.MethodPost, "/plans/course-options", dto.CourseOptionsRequest{
		Major: "Computer Science", RequirementType: "lower_division", RequirementName: "Missing",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, env = do(t, r, http.MethodPost, "/plans/suggestions", map[string]interface{}{
		"major":    "Computer Science",
		"semester": map[string]interface{}{"term": "Fall", "year": 2025},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var suggestions rag.Suggestions
	require.NoError(t, json.Unmarshal(env.Data, &suggestions))
	assert.Empty(t, suggestions.Suggestions)
	assert.Equal(t, rag.AdviceUnavailable, suggestions.Advice)

	rec, env = do(t, r, http.MethodPost, "/plans/suggestions", map[string]interface{}{"major": "Computer Science"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "semester", env.Error.Field)
}

// fakeAuth implements services.AuthService
type fakeAuth struct {
	services.AuthService
	profiles map[int64]*dto.UserResponse
}

func (f *fakeAuth) Register(_ context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if req.Email == "taken@berkeley.edu" {
		return nil, apperrors.ErrEmailAlreadyExists
	}
	return &dto.AuthResponse{Token: dto.TokenResponse{AccessToken: "a", TokenType: "Bearer"}, User: dto.UserResponse{ID: 1, Email: req.Email}}, nil
}

func (f *fakeAuth) Login(_ context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if req.Password != "golden8ears" {
		return nil, apperrors.ErrInvalidCredentials
	}
	return &dto.TokenResponse{AccessToken: "a", TokenType: "Bearer"}, nil
}

func (f *fakeAuth) RefreshToken(_ context.Context, token string) (*dto.TokenResponse, error) {
	if token != "good" {
		return nil, apperrors.ErrTokenRevoked
	}
	return &dto.TokenResponse{AccessToken: "b", TokenType: "Bearer"}, nil
}

func (f *fakeAuth) Logout(context.Context, string) error { return nil }

func (f *fakeAuth) GetProfile(_ context.Context, userID int64) (*dto.UserResponse, error) {
	if p, ok := f.profiles[userID]; ok {
		return p, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func TestAuthEndpoints(t *testing.T) {
	svc := &fakeAuth{profiles: map[int64]*dto.UserResponse{7: {ID: 7, Email: "oski@berkeley.edu"}}}
	ac := NewAuthController(svc, zerolog.Nop())
	uc := NewUserController(svc)

	r := gin.New()
	r.POST("/auth/register", ac.Register)
	r.POST("/auth/login", ac.Login)
	r.POST("/auth/refresh", ac.RefreshToken)
	r.POST("/auth/logout", ac.Logout)
	r.GET("/users/me", func(c *gin.Context) { c.Set(middleware.UserIDKey, int64(7)) }, uc.GetProfile)
	r.GET("/users/anonymous", uc.GetProfile)

	register := dto.RegisterRequest{Email: "oski@berkeley.edu", Password: "golden8ears", FirstName: "Oski", LastName: "Bear"}
	rec, env := do(t, r, http.MethodPost, "/auth/register", register)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)

	register.Email = "taken@berkeley.edu"
	rec, _ = do(t, r, http.MethodPost, "/auth/register", register)
	assert.Equal(t, http.StatusConflict, rec.Code)

	register.Email = "not-an-email"
	rec, env = do(t, r, http.MethodPost, "/auth/register", register)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "email", env.Error.Field)

	rec, _ = do(t, r, http.MethodPost, "/auth/login", dto.LoginRequest{Email: "oski@berkeley.edu", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = do(t, r, http.MethodPost, "/auth/refresh", dto.RefreshTokenRequest{RefreshToken: "good"})
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, env = do(t, r, http.MethodPost, "/auth/refresh", dto.RefreshTokenRequest{RefreshToken: "replayed"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Token revoked", env.Error.Message)

	rec, _ = do(t, r, http.MethodPost, "/auth/logout", dto.RefreshTokenRequest{RefreshToken: "whatever"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = do(t, r, http.MethodGet, "/users/me", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":7,"email":"oski@berkeley.edu","firstName":"","lastName":"","createdAt":"0001-01-01T00:00:00Z"}`, string(env.Data))

	rec, _ = do(t, r, http.MethodGet, "/users/anonymous", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// fakeSchedules implements services.ScheduleService for user 7 only
type fakeSchedules struct {
	services.ScheduleService
	saved *dto.ScheduleResponse
}

func (f *fakeSchedules) Create(_ context.Context, userID int64, req *dto.SaveScheduleRequest) (*dto.ScheduleResponse, error) {
	f.saved = &dto.ScheduleResponse{ID: "5b0c8f9e-2d7a-4a53-9d1c-8c3f2f1a7e11", Name: req.Name, Plan: req.Plan, CreatedAt: time.Unix(0, 0).UTC()}
	return f.saved, nil
}

func (f *fakeSchedules) List(_ context.Context, _ int64, page, size int) (*dto.ScheduleListResponse, error) {
	return &dto.ScheduleListResponse{
		Schedules:  []dto.ScheduleSummaryResponse{},
		Pagination: dto.PaginationInfo{CurrentPage: page, PageSize: size, TotalPages: 1},
	}, nil
}

func (f *fakeSchedules) Get(_ context.Context, _ int64, id string) (*dto.ScheduleResponse, error) {
	if id == "bad" {
		return nil, apperrors.ErrInvalidScheduleID
	}
	if f.saved == nil || id != f.saved.ID {
		return nil, apperrors.ErrScheduleNotFound
	}
	return f.saved, nil
}

func (f *fakeSchedules) Delete(_ context.Context, _ int64, id string) error {
	if f.saved == nil || id != f.saved.ID {
		return apperrors.ErrScheduleNotFound
	}
	f.saved = nil
	return nil
}

func (f *fakeSchedules) Export(_ context.Context, _ int64, id string) ([]byte, string, error) {
	if f.saved == nil || id != f.saved.ID {
		return nil, "", apperrors.ErrScheduleNotFound
	}
	return []byte("PK"), "My_plan.xlsx", nil
}

func TestScheduleEndpoints(t *testing.T) {
	sc := NewScheduleController(&fakeSchedules{}, zerolog.Nop())
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(middleware.UserIDKey, int64(7)) })
	r.POST("/schedules", sc.Create)
	r.GET("/schedules", sc.List)
	r.GET("/schedules/:id", sc.Get)
	r.DELETE("/schedules/:id", sc.Delete)
	r.GET("/schedules/:id/export", sc.Export)

	rec, env := do(t, r, http.MethodPost, "/schedules", `{"name":"My plan","plan":{"major":"Computer Science","semesters":[]}}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var saved dto.ScheduleResponse
	require.NoError(t, json.Unmarshal(env.Data, &saved))
	assert.JSONEq(t, `{"major":"Computer Science","semesters":[]}`, string(saved.Plan))

	rec, env = do(t, r, http.MethodPost, "/schedules", `{"name":"No plan"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "plan", env.Error.Field)

	rec, env = do(t, r, http.MethodGet, "/schedules?page=2&size=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var page dto.ScheduleListResponse
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, 2, page.Pagination.CurrentPage)
	assert.Equal(t, 5, page.Pagination.PageSize)

	rec, _ = do(t, r, http.MethodGet, "/schedules/bad", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = do(t, r, http.MethodGet, "/schedules/"+saved.ID+"/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, export.ContentType, rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="My_plan.xlsx"`, rec.Header().Get("Content-Disposition"))

	rec, _ = do(t, r, http.MethodDelete, "/schedules/"+saved.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, env = do(t, r, http.MethodGet, "/schedules/"+saved.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Schedule not found", env.Error.Message)
}
