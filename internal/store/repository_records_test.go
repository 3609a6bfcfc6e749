package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obolotin/daykeeper/internal/logger"
	"github.com/obolotin/daykeeper/models"
)

func newTestRecordRepo(t *testing.T) (*localRecordRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err, "failed to create sqlmock")

	l := logger.Nop()
	repo := &localRecordRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestListRecords_Success(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now().UTC()
	payload := []byte(`{"title":"buy milk","status":"open"}`)

	rows := sqlmock.
		NewRows([]string{"id", "user_id", "created_at", "updated_at", "deleted", "payload"}).
		AddRow("task-1", "user-1", now, now, false, payload).
		AddRow("task-2", "user-1", now, now.Add(time.Minute), true, payload)

	mock.ExpectQuery("SELECT").WithArgs("user-1").WillReturnRows(rows)

	records, err := repo.ListRecords(ctx, "user-1", models.EntityTasks)

	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "task-1", records["task-1"].ID)
	assert.Equal(t, "user-1", records["task-1"].UserID)
	assert.False(t, records["task-1"].Deleted)
	assert.Equal(t, json.RawMessage(payload), records["task-1"].Payload)

	// soft-deleted records are listed too; the merge needs to see them
	assert.True(t, records["task-2"].Deleted)
}

func TestListRecords_Empty(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "user_id", "created_at", "updated_at", "deleted", "payload"})
	mock.ExpectQuery("SELECT").WithArgs("user-1").WillReturnRows(rows)

	records, err := repo.ListRecords(context.Background(), "user-1", models.EntityNotes)

	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NotNil(t, records, "empty collection must be a non-nil map")
}

func TestListRecords_UnknownEntityType(t *testing.T) {
	repo, _, db := newTestRecordRepo(t)
	defer db.Close()

	_, err := repo.ListRecords(context.Background(), "user-1", models.EntityType("contacts"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownEntityType)
}

func TestListRecords_QueryError(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT").WithArgs("user-1").WillReturnError(assert.AnError)

	_, err := repo.ListRecords(context.Background(), "user-1", models.EntityTasks)

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestUpsertRecords_Success(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	record := models.SyncRecord{
		ID:        "note-1",
		UserID:    "user-1",
		CreatedAt: now,
		UpdatedAt: now,
		Payload:   json.RawMessage(`{"title":"n","body":"b"}`),
	}

	mock.ExpectExec("INSERT INTO notes").
		WithArgs(record.ID, "user-1", record.CreatedAt, record.UpdatedAt, record.Deleted, []byte(record.Payload)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertRecords(context.Background(), "user-1", models.EntityNotes, record)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertRecords_Batch(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	records := []models.SyncRecord{
		{ID: "ev-1", UserID: "user-1", CreatedAt: now, UpdatedAt: now, Payload: json.RawMessage(`{}`)},
		{ID: "ev-2", UserID: "user-1", CreatedAt: now, UpdatedAt: now, Payload: json.RawMessage(`{}`)},
	}

	for range records {
		mock.ExpectExec("INSERT INTO calendar_events").
			WillReturnResult(sqlmock.NewResult(0, 1))
	}

	err := repo.UpsertRecords(context.Background(), "user-1", models.EntityCalendarEvents, records...)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertRecords_NoRowsAffected(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO tasks").
		WillReturnResult(sqlmock.NewResult(0, 0))

	record := models.SyncRecord{ID: "task-1", Payload: json.RawMessage(`{}`)}
	err := repo.UpsertRecords(context.Background(), "user-1", models.EntityTasks, record)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRecordsNotSaved)
}

func TestUpsertRecords_ExecError(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO tasks").WillReturnError(assert.AnError)

	record := models.SyncRecord{ID: "task-1", Payload: json.RawMessage(`{}`)}
	err := repo.UpsertRecords(context.Background(), "user-1", models.EntityTasks, record)

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestUpsertRecords_UnknownEntityType(t *testing.T) {
	repo, _, db := newTestRecordRepo(t)
	defer db.Close()

	err := repo.UpsertRecords(context.Background(), "user-1", models.EntityType("bogus"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownEntityType)
}
