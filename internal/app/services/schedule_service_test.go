package services

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/yigit/gradplan/internal/app/models/dto"
	"github.com/yigit/gradplan/internal/pkg/apperrors"
	"github.com/yigit/gradplan/internal/pkg/export"
	"github.com/yigit/gradplan/internal/planner"
)

func planJSON(t *testing.T) json.RawMessage {
	t.Helper()
	plan, err := planner.Assemble(sampleCatalog(), planner.Request{
		Major:          "Computer Science",
		GraduationYear: 2028,
		CurrentYear:    2024,
	}.Normalize())
	require.NoError(t, err)
	raw, err := json.Marshal(plan)
	require.NoError(t, err)
	return raw
}

func TestScheduleLifecycle(t *testing.T) {
	svc := NewScheduleService(newFakeScheduleRepo(), zerolog.Nop())
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, &dto.SaveScheduleRequest{Name: " My plan ", Plan: json.RawMessage(`{"major":"Computer Science"}`)})
	require.NoError(t, err)
	assert.Equal(t, "My plan", created.Name)
	assert.JSONEq(t, `{"major":"Computer Science"}`, string(created.Plan))

	got, err := svc.Get(ctx, 1, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.Get(ctx, 2, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrScheduleNotFound)

	updated, err := svc.Update(ctx, 1, created.ID, &dto.SaveScheduleRequest{Name: "Renamed", Plan: json.RawMessage(`{"major":"Data Science"}`)})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))

	_, err = svc.Update(ctx, 2, created.ID, &dto.SaveScheduleRequest{Name: "Stolen", Plan: json.RawMessage(`{}`)})
	assert.ErrorIs(t, err, apperrors.ErrScheduleNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, 2, created.ID), apperrors.ErrScheduleNotFound)
	require.NoError(t, svc.Delete(ctx, 1, created.ID))
	_, err = svc.Get(ctx, 1, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrScheduleNotFound)
}

func TestScheduleRejectsBadInput(t *testing.T) {
	svc := NewScheduleService(newFakeScheduleRepo(), zerolog.Nop())
	ctx := context.Background()

	for _, doc := range []string{`[1,2]`, `"plan"`, `{"open":`, ``} {
		_, err := svc.Create(ctx, 1, &dto.SaveScheduleRequest{Name: "x", Plan: json.RawMessage(doc)})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed, doc)
	}

	_, err := svc.Get(ctx, 1, "not-a-uuid")
	assert.ErrorIs(t, err, apperrors.ErrInvalidScheduleID)
	assert.ErrorIs(t, svc.Delete(ctx, 1, "42"), apperrors.ErrInvalidScheduleID)
	_, err = svc.Get(ctx, 1, uuid.NewString())
	assert.ErrorIs(t, err, apperrors.ErrScheduleNotFound)
}

func TestScheduleListPaginates(t *testing.T) {
	svc := NewScheduleService(newFakeScheduleRepo(), zerolog.Nop())
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		_, err := svc.Create(ctx, 1, &dto.SaveScheduleRequest{Name: name, Plan: json.RawMessage(`{}`)})
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, 2, &dto.SaveScheduleRequest{Name: "other", Plan: json.RawMessage(`{}`)})
	require.NoError(t, err)

	page, err := svc.List(ctx, 1, 1, 2)
	require.NoError(t, err)
	require.Len(t, page.Schedules, 2)
	assert.Equal(t, "third", page.Schedules[0].Name)
	assert.Equal(t, dto.PaginationInfo{CurrentPage: 1, TotalPages: 2, PageSize: 2, TotalItems: 3}, page.Pagination)

	page, err = svc.List(ctx, 1, 2, 2)
	require.NoError(t, err)
	require.Len(t, page.Schedules, 1)
	assert.Equal(t, "first", page.Schedules[0].Name)

	empty, err := svc.List(ctx, 3, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, empty.Schedules)
	assert.Equal(t, 1, empty.Pagination.TotalPages)
}

func TestScheduleExport(t *testing.T) {
	svc := NewScheduleService(newFakeScheduleRepo(), zerolog.Nop())
	ctx := context.Background()

	saved, err := svc.Create(ctx, 1, &dto.SaveScheduleRequest{Name: "CS plan, 2028", Plan: planJSON(t)})
	require.NoError(t, err)

	data, filename, err := svc.Export(ctx, 1, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "CS_plan__2028.xlsx", filename)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(export.PlanSheet)
	require.NoError(t, err)
	assert.Equal(t, "CS plan, 2028", rows[0][0])

	bad, err := svc.Create(ctx, 1, &dto.SaveScheduleRequest{Name: "odd", Plan: json.RawMessage(`{"semesters":"none"}`)})
	require.NoError(t, err)
	_, _, err = svc.Export(ctx, 1, bad.ID)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "schedule.xlsx", exportFilename("  "))
	assert.Equal(t, "schedule.xlsx", exportFilename("ÉÉ"))
	assert.Equal(t, "fall-2025_v2.xlsx", exportFilename("fall-2025_v2"))
}
