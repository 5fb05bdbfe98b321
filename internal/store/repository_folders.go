package store

import (
	"context"
	"fmt"

	"github.com/gophervault/vaultsync/internal/logger"
	"github.com/gophervault/vaultsync/models"
)

// folderStore is the SQLite-backed implementation of [FolderStore].
type folderStore struct {
	*DB
	notifier *Notifier
	logger   *logger.Logger
}

func NewFolderStore(db *DB, notifier *Notifier, logger *logger.Logger) FolderStore {
	return &folderStore{
		DB:       db,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *folderStore) Upsert(ctx context.Context, folder models.Folder) error {
	log := logger.FromContext(ctx)

	_, err := s.DB.ExecContext(ctx, upsertFolder,
		folder.UserID,
		folder.ID,
		string(folder.Name),
		folder.RevisionDate,
	)
	if err != nil {
		log.Err(err).
			Str("func", "folderStore.Upsert").
			Str("user_id", folder.UserID).
			Str("id", folder.ID).
			Msg("failed to execute upsert for folder")
		return fmt.Errorf("failed to upsert folder (id=%s): %w: %w", folder.ID, ErrExecutingStatement, err)
	}

	s.notifier.Broadcast(folder.UserID)
	return nil
}

func (s *folderStore) Delete(ctx context.Context, userID, id string) error {
	log := logger.FromContext(ctx)

	result, err := s.DB.ExecContext(ctx, deleteFolder, userID, id)
	if err != nil {
		log.Err(err).
			Str("func", "folderStore.Delete").
			Str("user_id", userID).
			Str("id", id).
			Msg("failed to execute delete for folder")
		return fmt.Errorf("failed to delete folder (id=%s): %w: %w", id, ErrExecutingStatement, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected (id=%s): %w: %w", id, ErrExecutingStatement, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w (id=%s)", ErrFolderNotFound, id)
	}

	s.notifier.Broadcast(userID)
	return nil
}

func (s *folderStore) ReplaceAll(ctx context.Context, userID string, folders []models.Folder) error {
	log := logger.FromContext(ctx)

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "folderStore.ReplaceAll").
			Str("user_id", userID).
			Msg("failed to begin reconcile transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	keepIDs := make([]string, 0, len(folders))
	for _, folder := range folders {
		_, err = tx.ExecContext(ctx, upsertFolder,
			folder.UserID,
			folder.ID,
			string(folder.Name),
			folder.RevisionDate,
		)
		if err != nil {
			log.Err(err).
				Str("func", "folderStore.ReplaceAll").
				Str("user_id", userID).
				Str("id", folder.ID).
				Msg("failed to upsert snapshot folder")
			return fmt.Errorf("failed to upsert snapshot folder (id=%s): %w: %w", folder.ID, ErrExecutingStatement, err)
		}
		keepIDs = append(keepIDs, folder.ID)
	}

	query, args, err := buildDeleteAbsent("folders", userID, keepIDs)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete absent folders: %w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	s.notifier.Broadcast(userID)
	return nil
}

func (s *folderStore) FetchAll(ctx context.Context, userID string) ([]models.Folder, error) {
	log := logger.FromContext(ctx)

	rows, err := s.DB.QueryContext(ctx, getAllFolders, userID)
	if err != nil {
		log.Err(err).
			Str("func", "folderStore.FetchAll").
			Str("user_id", userID).
			Msg("failed to execute query for getting all folders")
		return nil, fmt.Errorf("failed to query all folders: %w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var folders []models.Folder

	for rows.Next() {
		var folder models.Folder
		if scanErr := rows.Scan(&folder.UserID, &folder.ID, &folder.Name, &folder.RevisionDate); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		folders = append(folders, folder)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return folders, nil
}
