package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yigit/gradplan/internal/app/models"
	"github.com/yigit/gradplan/internal/app/models/dto"
	"github.com/yigit/gradplan/internal/app/repositories"
	"github.com/yigit/gradplan/internal/pkg/apperrors"
	"github.com/yigit/gradplan/internal/pkg/export"
	"github.com/yigit/gradplan/internal/pkg/helpers"
	"github.com/yigit/gradplan/internal/planner"
)

// ScheduleService manages the saved schedules of one user at a time
type ScheduleService interface {
	Create(ctx context.Context, userID int64, req *dto.SaveScheduleRequest) (*dto.ScheduleResponse, error)
	List(ctx context.Context, userID int64, page, size int) (*dto.ScheduleListResponse, error)
	Get(ctx context.Context, userID int64, id string) (*dto.ScheduleResponse, error)
	Update(ctx context.Context, userID int64, id string, req *dto.SaveScheduleRequest) (*dto.ScheduleResponse, error)
	Delete(ctx context.Context, userID int64, id string) error
	Export(ctx context.Context, userID int64, id string) (data []byte, filename string, err error)
}

type scheduleService struct {
	repo   repositories.IScheduleRepository
	logger zerolog.Logger
}

// NewScheduleService creates a new ScheduleService
func NewScheduleService(repo repositories.IScheduleRepository, logger zerolog.Logger) ScheduleService {
	return &scheduleService{repo: repo, logger: logger}
}

func parseScheduleID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, apperrors.ErrInvalidScheduleID
	}
	return parsed, nil
}

// validatePlanDocument accepts any JSON object
func validatePlanDocument(doc json.RawMessage) error {
	trimmed := bytes.TrimSpace(doc)
	if len(trimmed) == 0 || trimmed[0] != '{' || !json.Valid(trimmed) {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "plan must be a JSON object")
	}
	return nil
}

func (s *scheduleService) Create(ctx context.Context, userID int64, req *dto.SaveScheduleRequest) (*dto.ScheduleResponse, error) {
	if err := validatePlanDocument(req.Plan); err != nil {
		return nil, err
	}

	schedule := &models.Schedule{
		UserID: userID,
		Name:   strings.TrimSpace(req.Name),
		Plan:   req.Plan,
	}
	if err := s.repo.Create(ctx, schedule); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("userID", userID).Str("scheduleID", schedule.ID.String()).Msg("Schedule saved")

	resp := dto.NewScheduleResponse(schedule)
	return &resp, nil
}

func (s *scheduleService) List(ctx context.Context, userID int64, page, size int) (*dto.ScheduleListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	rows, total, err := s.repo.ListByUser(ctx, userID, offset, limit)
	if err != nil {
		return nil, err
	}

	schedules := make([]dto.ScheduleSummaryResponse, len(rows))
	for i, r := range rows {
		schedules[i] = dto.NewScheduleSummaryResponse(r)
	}
	return &dto.ScheduleListResponse{
		Schedules:  schedules,
		Pagination: helpers.NewPaginationInfo(total, page, int(limit)),
	}, nil
}

func (s *scheduleService) get(ctx context.Context, userID int64, id string) (*models.Schedule, error) {
	parsed, err := parseScheduleID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, userID, parsed)
}

func (s *scheduleService) Get(ctx context.Context, userID int64, id string) (*dto.ScheduleResponse, error) {
	schedule, err := s.get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewScheduleResponse(schedule)
	return &resp, nil
}

func (s *scheduleService) Update(ctx context.Context, userID int64, id string, req *dto.SaveScheduleRequest) (*dto.ScheduleResponse, error) {
	parsed, err := parseScheduleID(id)
	if err != nil {
		return nil, err
	}
	if err := validatePlanDocument(req.Plan); err != nil {
		return nil, err
	}

	schedule := &models.Schedule{
		ID:     parsed,
		UserID: userID,
		Name:   strings.TrimSpace(req.Name),
		Plan:   req.Plan,
	}
	if err := s.repo.Update(ctx, schedule); err != nil {
		return nil, err
	}
	resp := dto.NewScheduleResponse(schedule)
	return &resp, nil
}

func (s *scheduleService) Delete(ctx context.Context, userID int64, id string) error {
	parsed, err := parseScheduleID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, userID, parsed); err != nil {
		return err
	}
	s.logger.Info().Int64("userID", userID).Str("scheduleID", id).Msg("Schedule deleted")
	return nil
}

// Export renders a saved plan as an xlsx workbook
func (s *scheduleService) Export(ctx context.Context, userID int64, id string) ([]byte, string, error) {
	schedule, err := s.get(ctx, userID, id)
	if err != nil {
		return nil, "", err
	}

	var plan planner.Plan
	if err := json.Unmarshal(schedule.Plan, &plan); err != nil {
		return nil, "", apperrors.NewBadRequestError("saved plan cannot be exported")
	}

	var buf bytes.Buffer
	if err := export.WritePlan(&buf, schedule.Name, &plan); err != nil {
		return nil, "", fmt.Errorf("failed to render workbook: %w", err)
	}
	return buf.Bytes(), exportFilename(schedule.Name), nil
}

// exportFilename keeps letters, digits, dashes and underscores of name
func exportFilename(name string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(name) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)), r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	base := strings.Trim(b.String(), "_")
	if base == "" {
		base = "schedule"
	}
	return base + ".xlsx"
}
