package dto

import (
	"encoding/json"
	"time"

	"github.com/yigit/gradplan/internal/app/models"
)

// SaveScheduleRequest stores a plan under a name. The plan is kept verbatim.
type SaveScheduleRequest struct {
	Name string          `json:"name" binding:"required,max=200" example:"CS plan, graduating 2028"`
	Plan json.RawMessage `json:"plan" binding:"required" swaggertype:"object"`
}

// ScheduleResponse is a saved schedule with its plan document
type ScheduleResponse struct {
	ID        string          `json:"id" example:"5b0c8f9e-2d7a-4a53-9d1c-8c3f2f1a7e11"`
	Name      string          `json:"name"`
	Plan      json.RawMessage `json:"plan" swaggertype:"object"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ScheduleSummaryResponse is a listing entry without the plan document
type ScheduleSummaryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Major     string    `json:"major,omitempty" example:"Computer Science"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ScheduleListResponse is one page of the caller's schedules
type ScheduleListResponse struct {
	Schedules  []ScheduleSummaryResponse `json:"schedules"`
	Pagination PaginationInfo            `json:"pagination"`
}

// NewScheduleResponse maps a schedule model
func NewScheduleResponse(s *models.Schedule) ScheduleResponse {
	return ScheduleResponse{
		ID:        s.ID.String(),
		Name:      s.Name,
		Plan:      s.Plan,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// NewScheduleSummaryResponse maps a listing row
func NewScheduleSummaryResponse(s models.ScheduleSummary) ScheduleSummaryResponse {
	return ScheduleSummaryResponse{
		ID:        s.ID.String(),
		Name:      s.Name,
		Major:     s.Major,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
