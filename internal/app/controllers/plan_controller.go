package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/gradplan/internal/app/models/dto"
	"github.com/yigit/gradplan/internal/app/services"
	"github.com/yigit/gradplan/internal/middleware"
)

// PlanController generates plans and course suggestions
type PlanController struct {
	planService    services.PlanService
	catalogService services.CatalogService
	logger         zerolog.Logger
}

// NewPlanController creates a new PlanController
func NewPlanController(planService services.PlanService, catalogService services.CatalogService, logger zerolog.Logger) *PlanController {
	return &PlanController{
		planService:    planService,
		catalogService: catalogService,
		logger:         logger,
	}
}

// Generate builds a four-year plan
// @Summary Generate a four-year plan
// @Description Uses AI generation grounded on the catalog when available and the deterministic assembler otherwise. Courses that do not fit before graduation are listed under unplaced_courses.
// @Tags plans
// @Accept json
// @Produce json
// @Param request body dto.GeneratePlanRequest true "Plan request"
// @Success 200 {object} dto.APIResponse{data=planner.Plan}
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Major not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /plans/generate [post]
func (c *PlanController) Generate(ctx *gin.Context) {
	var req dto.GeneratePlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid plan request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	plan, err := c.planService.Generate(ctx.Request.Context(), req.ToRequest())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(plan, ""))
}

// CourseOptions lists the courses of one requirement group
// @Summary Course options for a requirement
// @Tags plans
// @Accept json
// @Produce json
// @Param request body dto.CourseOptionsRequest true "Requirement group"
// @Success 200 {object} dto.APIResponse{data=dto.CourseOptionsResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Major, requirement type or requirement not found"
// @Router /plans/course-options [post]
func (c *PlanController) CourseOptions(ctx *gin.Context) {
	var req dto.CourseOptionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	options, err := c.catalogService.CourseOptions(&req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(options, ""))
}

// Suggestions proposes courses for one semester
// @Summary AI course suggestions
// @Description Suggests three to five additional courses. When AI generation is unavailable the list is empty and the advice explains why.
// @Tags plans
// @Accept json
// @Produce json
// @Param request body dto.SuggestionsRequest true "Semester"
// @Success 200 {object} dto.APIResponse{data=rag.Suggestions}
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Major not found"
// @Router /plans/suggestions [post]
func (c *PlanController) Suggestions(ctx *gin.Context) {
	var req dto.SuggestionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	suggestions, err := c.planService.Suggest(ctx.Request.Context(), req.ToRequest())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(suggestions, ""))
}
