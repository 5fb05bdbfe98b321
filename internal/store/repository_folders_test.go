package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gophervault/vaultsync/internal/logger"
	"github.com/gophervault/vaultsync/models"
)

func newTestFolderStore(t *testing.T, db *sql.DB) (*folderStore, *Notifier) {
	t.Helper()
	notifier := NewNotifier()
	s := NewFolderStore(&DB{DB: db, logger: logger.Nop()}, notifier, logger.Nop()).(*folderStore)
	return s, notifier
}

func sampleFolder(userID, id string) models.Folder {
	return models.Folder{
		ID:           id,
		UserID:       userID,
		Name:         "enc-folder-name",
		RevisionDate: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

// ── Upsert / Delete ──────────────────────────────────────────────────────────

func TestFolderStore_Upsert_Success(t *testing.T) {
	db, mock := newTestDB(t)
	s, _ := newTestFolderStore(t, db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO folders")).
		WithArgs("user-1", "folder-1", "enc-folder-name", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.Upsert(testContext(), sampleFolder("user-1", "folder-1"))
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFolderStore_Delete_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	s, _ := newTestFolderStore(t, db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM folders")).
		WithArgs("user-1", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.Delete(testContext(), "user-1", "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFolderNotFound)
}

// ── ReplaceAll ───────────────────────────────────────────────────────────────

func TestFolderStore_ReplaceAll_UpsertsAndDeletesAbsent(t *testing.T) {
	db, mock := newTestDB(t)
	s, notifier := newTestFolderStore(t, db)

	ctx, cancel := context.WithCancel(testContext())
	defer cancel()
	changes := notifier.Subscribe(ctx, "user-1")

	folders := []models.Folder{
		sampleFolder("user-1", "folder-1"),
		sampleFolder("user-1", "folder-2"),
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO folders")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO folders")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM folders WHERE user_id = ? AND id NOT IN (?,?)")).
		WithArgs("user-1", "folder-1", "folder-2").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	err := s.ReplaceAll(testContext(), "user-1", folders)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	select {
	case <-changes:
	case <-time.After(time.Second):
		t.Fatal("no change signal after reconcile")
	}
}

func TestFolderStore_ReplaceAll_UpsertFailureRollsBack(t *testing.T) {
	db, mock := newTestDB(t)
	s, _ := newTestFolderStore(t, db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO folders")).
		WillReturnError(errors.New("constraint failed"))
	mock.ExpectRollback()

	err := s.ReplaceAll(testContext(), "user-1", []models.Folder{sampleFolder("user-1", "folder-1")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStoreIO)
	require.NoError(t, mock.ExpectationsWereMet())
}

// ── FetchAll ─────────────────────────────────────────────────────────────────

func TestFolderStore_FetchAll(t *testing.T) {
	db, mock := newTestDB(t)
	s, _ := newTestFolderStore(t, db)

	rows := sqlmock.NewRows([]string{"user_id", "id", "name", "revision_date"}).
		AddRow("user-1", "folder-1", "enc-a", time.Unix(1700000000, 0)).
		AddRow("user-1", "folder-2", "enc-b", time.Unix(1700000100, 0))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, id, name, revision_date")).
		WithArgs("user-1").
		WillReturnRows(rows)

	got, err := s.FetchAll(testContext(), "user-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.CipheredString("enc-a"), got[0].Name)
	assert.Equal(t, "folder-2", got[1].ID)
}
