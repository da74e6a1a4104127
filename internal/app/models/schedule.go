package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Schedule is a saved plan. The plan document is stored verbatim.
type Schedule struct {
	ID        uuid.UUID       `db:"id"`
	UserID    int64           `db:"user_id"`
	Name      string          `db:"name"`
	Plan      json.RawMessage `db:"plan"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

// ScheduleSummary is a schedule listing row without its document
type ScheduleSummary struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Major     string    `db:"major"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
