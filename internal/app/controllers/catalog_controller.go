package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/gradplan/internal/app/models/dto"
	"github.com/yigit/gradplan/internal/app/services"
	"github.com/yigit/gradplan/internal/middleware"
)

// CatalogController serves the course and major catalogs
type CatalogController struct {
	catalogService services.CatalogService
	logger         zerolog.Logger
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService services.CatalogService, logger zerolog.Logger) *CatalogController {
	return &CatalogController{catalogService: catalogService, logger: logger}
}

// Health reports service status
// @Summary Health check
// @Description Reports catalog sizes and whether AI generation is available
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.HealthResponse}
// @Router /health [get]
func (c *CatalogController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.catalogService.Health(), ""))
}

// ListMajors lists major names
// @Summary List majors
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.MajorsResponse}
// @Router /majors [get]
func (c *CatalogController) ListMajors(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MajorsResponse{Majors: c.catalogService.MajorNames()}, ""))
}

// GetMajor returns one major with its requirements
// @Summary Get major details
// @Tags catalog
// @Produce json
// @Param name path string true "Major name" example(Computer Science)
// @Success 200 {object} dto.APIResponse{data=catalog.Major}
// @Failure 404 {object} dto.ErrorResponse "Major not found"
// @Router /majors/{name} [get]
func (c *CatalogController) GetMajor(ctx *gin.Context) {
	major, err := c.catalogService.GetMajor(ctx.Param("name"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(major, ""))
}

// ListColleges lists colleges with their majors
// @Summary List colleges
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.CollegesResponse}
// @Router /colleges [get]
func (c *CatalogController) ListColleges(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.CollegesResponse{Colleges: c.catalogService.Colleges()}, ""))
}

// SearchCourses searches the course catalog
// @Summary Search courses
// @Description Substring match on course code and title. With semantic=true the retrieval index ranks courses by meaning, falling back to substring matching when it is unavailable.
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body dto.SearchCoursesRequest true "Search query"
// @Success 200 {object} dto.APIResponse{data=dto.SearchCoursesResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Router /courses/search [post]
func (c *CatalogController) SearchCourses(ctx *gin.Context) {
	var req dto.SearchCoursesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.catalogService.SearchCourses(ctx.Request.Context(), &req), ""))
}
