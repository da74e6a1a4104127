package repositories

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/gradplan/internal/pkg/apperrors"
	"github.com/yigit/gradplan/internal/pkg/dberrors"
)

func TestScheduleListQueryIsScopedAndPaged(t *testing.T) {
	r := NewScheduleRepository(nil)

	sql, args, err := r.listQuery(7, 20, 10)
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT id, name, COALESCE(plan->>'major', '') AS major, created_at, updated_at FROM schedules WHERE user_id = $1 ORDER BY created_at DESC, id LIMIT 10 OFFSET 20",
		sql)
	assert.Equal(t, []interface{}{int64(7)}, args)
}

func TestTokenCleanupQuery(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	r := NewTokenRepository(nil)
	r.now = func() time.Time { return now }

	sql, args, err := r.cleanupQuery()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM refresh_tokens WHERE (expiry_date < $1 OR (is_revoked = $2 AND created_at < $3))", sql)
	assert.Equal(t, []interface{}{now, true, now.Add(-revokedRetention)}, args)
}

func TestPlanWriteError(t *testing.T) {
	badJSON := fmt.Errorf("insert: %w", &pgconn.PgError{Code: dberrors.InvalidTextRep, Message: "invalid input syntax for type json"})

	err := planWriteError(badJSON)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "plan is not valid JSON", err.Error())

	assert.NoError(t, planWriteError(&pgconn.PgError{Code: dberrors.UniqueViolation}))
	assert.NoError(t, planWriteError(errors.New("connection reset")))
}
