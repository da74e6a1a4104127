package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yigit/gradplan/internal/app/models"
	"github.com/yigit/gradplan/internal/pkg/apperrors"
	"github.com/yigit/gradplan/internal/pkg/dberrors"
	"github.com/yigit/gradplan/internal/pkg/logger"
)

// ScheduleRepository handles saved schedule database operations
type ScheduleRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewScheduleRepository creates a new ScheduleRepository
func NewScheduleRepository(db *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a schedule. A zero id is replaced with a new random one.
func (r *ScheduleRepository) Create(ctx context.Context, s *models.Schedule) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	sql, args, err := r.sb.Insert("schedules").
		Columns("id", "user_id", "name", "plan").
		Values(s.ID, s.UserID, s.Name, s.Plan).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create schedule query: %w", err)
	}

	if err = r.db.QueryRow(ctx, sql, args...).Scan(&s.CreatedAt, &s.UpdatedAt); err != nil {
		if dberrors.IsForeignKeyError(err) {
			return apperrors.ErrUserNotFound
		}
		if mapped := planWriteError(err); mapped != nil {
			return mapped
		}
		logger.Error().Err(err).Int64("userID", s.UserID).Msg("Error executing create schedule query")
		return fmt.Errorf("error creating schedule: %w", err)
	}
	return nil
}

// GetByID retrieves one of the user's schedules
func (r *ScheduleRepository) GetByID(ctx context.Context, userID int64, id uuid.UUID) (*models.Schedule, error) {
	sql, args, err := r.sb.Select("id", "user_id", "name", "plan", "created_at", "updated_at").
		From("schedules").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get schedule query: %w", err)
	}

	s := &models.Schedule{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&s.ID, &s.UserID, &s.Name, &s.Plan, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("error retrieving schedule: %w", err)
	}
	return s, nil
}

// ListByUser returns one page of the user's schedules, newest first, and the
// total count
func (r *ScheduleRepository) ListByUser(ctx context.Context, userID int64, offset, limit uint64) ([]models.ScheduleSummary, int64, error) {
	countSQL, countArgs, err := r.sb.Select("COUNT(*)").
		From("schedules").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count schedules query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting schedules: %w", err)
	}

	sql, args, err := r.listQuery(userID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list schedules query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing schedules: %w", err)
	}
	defer rows.Close()

	summaries := []models.ScheduleSummary{}
	for rows.Next() {
		var s models.ScheduleSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Major, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("error scanning schedule row: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating schedule rows: %w", err)
	}
	return summaries, total, nil
}

func (r *ScheduleRepository) listQuery(userID int64, offset, limit uint64) (string, []interface{}, error) {
	return r.sb.Select("id", "name", "COALESCE(plan->>'major', '') AS major", "created_at", "updated_at").
		From("schedules").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id").
		Offset(offset).
		Limit(limit).
		ToSql()
}

// Update replaces the name and plan of one of the user's schedules
func (r *ScheduleRepository) Update(ctx context.Context, s *models.Schedule) error {
	sql, args, err := r.sb.Update("schedules").
		Set("name", s.Name).
		Set("plan", s.Plan).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": s.ID, "user_id": s.UserID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update schedule query: %w", err)
	}

	if err = r.db.QueryRow(ctx, sql, args...).Scan(&s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrScheduleNotFound
		}
		if mapped := planWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("error updating schedule: %w", err)
	}
	return nil
}

// planWriteError maps a plan document Postgres refused to parse as jsonb
func planWriteError(err error) error {
	if dberrors.IsInvalidTextRepresentation(err) {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "plan is not valid JSON")
	}
	return nil
}

// Delete removes one of the user's schedules
func (r *ScheduleRepository) Delete(ctx context.Context, userID int64, id uuid.UUID) error {
	sql, args, err := r.sb.Delete("schedules").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete schedule query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting schedule: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrScheduleNotFound
	}
	return nil
}
