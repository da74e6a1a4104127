package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/gradplan/internal/app/models/dto"
	"github.com/yigit/gradplan/internal/app/services"
	"github.com/yigit/gradplan/internal/middleware"
	"github.com/yigit/gradplan/internal/pkg/export"
	"github.com/yigit/gradplan/internal/pkg/helpers"
)

// ScheduleController manages the caller's saved schedules
type ScheduleController struct {
	scheduleService services.ScheduleService
	logger          zerolog.Logger
}

// NewScheduleController creates a new ScheduleController
func NewScheduleController(scheduleService services.ScheduleService, logger zerolog.Logger) *ScheduleController {
	return &ScheduleController{scheduleService: scheduleService, logger: logger}
}

// Create saves a plan
// @Summary Save a schedule
// @Description Stores a plan document under a name. The plan must be a JSON object and is returned as saved.
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SaveScheduleRequest true "Schedule"
// @Success 201 {object} dto.APIResponse{data=dto.ScheduleResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /schedules [post]
func (c *ScheduleController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.SaveScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	schedule, err := c.scheduleService.Create(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(schedule, "Schedule saved successfully"))
}

// List returns one page of the caller's schedules
// @Summary List schedules
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.ScheduleListResponse}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /schedules [get]
func (c *ScheduleController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	schedules, err := c.scheduleService.List(ctx.Request.Context(), userID, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(schedules, ""))
}

// Get returns one schedule
// @Summary Get a schedule
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Schedule ID" format(uuid)
// @Success 200 {object} dto.APIResponse{data=dto.ScheduleResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid schedule ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Schedule not found"
// @Router /schedules/{id} [get]
func (c *ScheduleController) Get(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	schedule, err := c.scheduleService.Get(ctx.Request.Context(), userID, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(schedule, ""))
}

// Update renames a schedule and replaces its plan
// @Summary Update a schedule
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Schedule ID" format(uuid)
// @Param request body dto.SaveScheduleRequest true "Schedule"
// @Success 200 {object} dto.APIResponse{data=dto.ScheduleResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request or schedule ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Schedule not found"
// @Router /schedules/{id} [put]
func (c *ScheduleController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.SaveScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	schedule, err := c.scheduleService.Update(ctx.Request.Context(), userID, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(schedule, "Schedule updated successfully"))
}

// Delete removes a schedule
// @Summary Delete a schedule
// @Tags schedules
// @Security BearerAuth
// @Param id path string true "Schedule ID" format(uuid)
// @Success 204 "Schedule deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid schedule ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Schedule not found"
// @Router /schedules/{id} [delete]
func (c *ScheduleController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	if err := c.scheduleService.Delete(ctx.Request.Context(), userID, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Export downloads a schedule as an xlsx workbook
// @Summary Export a schedule
// @Tags schedules
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param id path string true "Schedule ID" format(uuid)
// @Success 200 {file} file "Workbook"
// @Failure 400 {object} dto.ErrorResponse "Invalid schedule ID or plan document"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Schedule not found"
// @Router /schedules/{id}/export [get]
func (c *ScheduleController) Export(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	data, filename, err := c.scheduleService.Export(ctx.Request.Context(), userID, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, export.ContentType, data)
}
