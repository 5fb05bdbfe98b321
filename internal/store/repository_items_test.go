package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gophervault/vaultsync/internal/logger"
	"github.com/gophervault/vaultsync/models"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newTestItemStore(t *testing.T, db *sql.DB) (*itemStore, *Notifier) {
	t.Helper()
	notifier := NewNotifier()
	s := NewItemStore(&DB{DB: db, logger: logger.Nop()}, notifier, logger.Nop()).(*itemStore)
	return s, notifier
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

var itemColumns = []string{
	"user_id", "id", "type", "name", "data", "notes", "key",
	"folder_id", "organization_id", "collection_ids", "favorite",
	"revision_date", "deleted_date",
}

func sampleItem(userID, id string) models.Item {
	return models.Item{
		ID:           id,
		UserID:       userID,
		Type:         models.Login,
		Name:         "enc-name",
		Data:         "enc-data",
		RevisionDate: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

// ── Upsert ───────────────────────────────────────────────────────────────────

func TestItemStore_Upsert_Success(t *testing.T) {
	db, mock := newTestDB(t)
	s, _ := newTestItemStore(t, db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ciphers")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.Upsert(testContext(), sampleItem("user-1", "item-1"))
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestItemStore_Upsert_ExecError(t *testing.T) {
	db, mock := newTestDB(t)
	s, _ := newTestItemStore(t, db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ciphers")).
		WillReturnError(errors.New("disk full"))

	err := s.Upsert(testContext(), sampleItem("user-1", "item-1"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.ErrorIs(t, err, ErrStoreIO)
}

func TestItemStore_Upsert_Broadcasts(t *testing.T) {
	db, mock := newTestDB(t)
	s, notifier := newTestItemStore(t, db)

	ctx, cancel := context.WithCancel(testContext())
	defer cancel()
	changes := notifier.Subscribe(ctx, "user-1")

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ciphers")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Upsert(ctx, sampleItem("user-1", "item-1")))

	select {
	case <-changes:
	case <-time.After(time.Second):
		t.Fatal("expected a change signal after upsert")
	}
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestItemStore_Delete_Success(t *testing.T) {
	db, mock := newTestDB(t)
	s, _ := newTestItemStore(t, db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM ciphers")).
		WithArgs("user-1", "item-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Delete(testContext(), "user-1", "item-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestItemStore_Delete_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	s, _ := newTestItemStore(t, db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM ciphers")).
		WithArgs("user-1", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.Delete(testContext(), "user-1", "missing")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

// ── ReplaceAll ───────────────────────────────────────────────────────────────

func TestItemStore_ReplaceAll_UpsertsAndDeletesAbsent(t *testing.T) {
	db, mock := newTestDB(t)
	s, _ := newTestItemStore(t, db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ciphers")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ciphers")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// cleanup keeps only the snapshot ids
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM ciphers WHERE user_id = ? AND id NOT IN (?,?)")).
		WithArgs("user-1", "a", "b").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	snapshot := []models.Item{sampleItem("user-1", "a"), sampleItem("user-1", "b")}
	require.NoError(t, s.ReplaceAll(testContext(), "user-1", snapshot))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestItemStore_ReplaceAll_EmptySnapshotDeletesEverything(t *testing.T) {
	db, mock := newTestDB(t)
	s, _ := newTestItemStore(t, db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM ciphers WHERE user_id = ?")).
		WithArgs("user-1").
		WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectCommit()

	require.NoError(t, s.ReplaceAll(testContext(), "user-1", nil))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestItemStore_ReplaceAll_FailureRollsBack(t *testing.T) {
	db, mock := newTestDB(t)
	s, _ := newTestItemStore(t, db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ciphers")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ciphers")).
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	snapshot := []models.Item{sampleItem("user-1", "a"), sampleItem("user-1", "b")}
	err := s.ReplaceAll(testContext(), "user-1", snapshot)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestItemStore_ReplaceAll_CommitError(t *testing.T) {
	db, mock := newTestDB(t)
	s, _ := newTestItemStore(t, db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ciphers")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM ciphers")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	err := s.ReplaceAll(testContext(), "user-1", []models.Item{sampleItem("user-1", "a")})
	assert.ErrorIs(t, err, ErrCommittingTransaction)
}

// ── FetchAll / FetchByID ────────────────────────────────────────────────────

func TestItemStore_FetchAll_ScansOptionalColumns(t *testing.T) {
	db, mock := newTestDB(t)
	s, _ := newTestItemStore(t, db)

	revision := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	deleted := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(itemColumns).
		AddRow("user-1", "a", int(models.Login), "enc-name", "enc-data",
			"enc-notes", nil, "folder-1", nil, `["col-1","col-2"]`, true, revision, nil).
		AddRow("user-1", "b", int(models.Card), "enc-name-2", "enc-data-2",
			nil, "enc-key", nil, "org-1", nil, false, revision, deleted)

	mock.ExpectQuery(regexp.QuoteMeta("FROM ciphers")).
		WithArgs("user-1").
		WillReturnRows(rows)

	items, err := s.FetchAll(testContext(), "user-1")
	require.NoError(t, err)
	require.Len(t, items, 2)

	first := items[0]
	assert.Equal(t, "a", first.ID)
	assert.Equal(t, models.Login, first.Type)
	require.NotNil(t, first.Notes)
	assert.Equal(t, models.CipheredString("enc-notes"), *first.Notes)
	require.NotNil(t, first.FolderID)
	assert.Equal(t, "folder-1", *first.FolderID)
	assert.Equal(t, []string{"col-1", "col-2"}, first.CollectionIDs)
	assert.True(t, first.Favorite)
	assert.Nil(t, first.DeletedDate)

	second := items[1]
	require.NotNil(t, second.Key)
	assert.Equal(t, models.CipheredString("enc-key"), *second.Key)
	require.NotNil(t, second.OrganizationID)
	require.NotNil(t, second.DeletedDate)
	assert.Equal(t, deleted, second.DeletedDate.UTC())
}

func TestItemStore_FetchAll_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	s, _ := newTestItemStore(t, db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM ciphers")).
		WillReturnError(errors.New("io error"))

	_, err := s.FetchAll(testContext(), "user-1")
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, err, ErrStoreIO)
}

func TestItemStore_FetchByID_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	s, _ := newTestItemStore(t, db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM ciphers")).
		WithArgs("user-1", "missing").
		WillReturnRows(sqlmock.NewRows(itemColumns))

	_, err := s.FetchByID(testContext(), "user-1", "missing")
	assert.ErrorIs(t, err, ErrItemNotFound)
}
