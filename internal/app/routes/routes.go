package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/gradplan/internal/app/controllers"
	"github.com/yigit/gradplan/internal/middleware"
)

// Controllers groups the handlers mounted under /api/v1
type Controllers struct {
	Auth     *controllers.AuthController
	User     *controllers.UserController
	Catalog  *controllers.CatalogController
	Plan     *controllers.PlanController
	Schedule *controllers.ScheduleController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware) {
	v1 := router.Group("/api/v1")

	// --- Public catalog routes ---
	v1.GET("/health", c.Catalog.Health)
	v1.GET("/majors", c.Catalog.ListMajors)
	v1.GET("/majors/:name", c.Catalog.GetMajor)
	v1.GET("/colleges", c.Catalog.ListColleges)
	v1.POST("/courses/search", c.Catalog.SearchCourses)

	plans := v1.Group("/plans")
	{
		plans.POST("/generate", c.Plan.Generate)
		plans.POST("/course-options", c.Plan.CourseOptions)
		plans.POST("/suggestions", c.Plan.Suggestions)
	}

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.Auth.Register)
		auth.POST("/login", c.Auth.Login)
		auth.POST("/refresh", c.Auth.RefreshToken)
		auth.POST("/logout", c.Auth.Logout)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/users/me", c.User.GetProfile)

		schedules := authenticated.Group("/schedules")
		schedules.POST("", c.Schedule.Create)
		schedules.GET("", c.Schedule.List)
		schedules.GET("/:id", c.Schedule.Get)
		schedules.PUT("/:id", c.Schedule.Update)
		schedules.DELETE("/:id", c.Schedule.Delete)
		schedules.GET("/:id/export", c.Schedule.Export)
	}
}
