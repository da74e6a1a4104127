package routes

import (
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/yigit/gradplan/internal/app/controllers"
	"github.com/yigit/gradplan/internal/middleware"
	"github.com/yigit/gradplan/internal/pkg/auth"
)

func TestSetupRouterRegistersAPI(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	jwt := auth.NewJWTService(auth.JWTConfig{SecretKey: "s", AccessTokenExp: time.Hour, TokenIssuer: "gradplan"})
	SetupRouter(router, Controllers{
		Auth:     &controllers.AuthController{},
		User:     &controllers.UserController{},
		Catalog:  &controllers.CatalogController{},
		Plan:     &controllers.PlanController{},
		Schedule: &controllers.ScheduleController{},
	}, middleware.NewAuthMiddleware(jwt))
	SetupSwagger(router)

	var got []string
	for _, r := range router.Routes() {
		got = append(got, r.Method+" "+r.Path)
	}
	sort.Strings(got)

	assert.Equal(t, []string{
		"DELETE /api/v1/schedules/:id",
		"GET /api/v1/colleges",
		"GET /api/v1/health",
		"GET /api/v1/majors",
		"GET /api/v1/majors/:name",
		"GET /api/v1/schedules",
		"GET /api/v1/schedules/:id",
		"GET /api/v1/schedules/:id/export",
		"GET /api/v1/users/me",
		"GET /swagger/*any",
		"POST /api/v1/auth/login",
		"POST /api/v1/auth/logout",
		"POST /api/v1/auth/refresh",
		"POST /api/v1/auth/register",
		"POST /api/v1/courses/search",
		"POST /api/v1/plans/course-options",
		"POST /api/v1/plans/generate",
		"POST /api/v1/plans/suggestions",
		"POST /api/v1/schedules",
		"PUT /api/v1/schedules/:id",
	}, got)
}

func TestSchedulesRequireAuthentication(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	jwt := auth.NewJWTService(auth.JWTConfig{SecretKey: "s", AccessTokenExp: time.Hour, TokenIssuer: "gradplan"})
	SetupRouter(router, Controllers{
		Auth:     &controllers.AuthController{},
		User:     &controllers.UserController{},
		Catalog:  &controllers.CatalogController{},
		Plan:     &controllers.PlanController{},
		Schedule: &controllers.ScheduleController{},
	}, middleware.NewAuthMiddleware(jwt))

	for _, target := range []string{"/api/v1/schedules", "/api/v1/users/me", "/api/v1/schedules/abc/export"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
	}
}
