package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gophervault/vaultsync/internal/logger"
	"github.com/gophervault/vaultsync/models"
)

// itemStore is the SQLite-backed implementation of [ItemStore]. It executes
// all vault-item operations directly against the "ciphers" table using the
// embedded [*DB] connection and broadcasts a change signal after every
// successful mutation.
type itemStore struct {
	*DB
	notifier *Notifier
	logger   *logger.Logger
}

// NewItemStore constructs an [ItemStore] backed by the provided database
// connection, change notifier, and logger.
func NewItemStore(db *DB, notifier *Notifier, logger *logger.Logger) ItemStore {
	return &itemStore{
		DB:       db,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *itemStore) Upsert(ctx context.Context, item models.Item) error {
	log := logger.FromContext(ctx)

	args, err := itemArgs(item)
	if err != nil {
		log.Err(err).
			Str("func", "itemStore.Upsert").
			Str("user_id", item.UserID).
			Str("id", item.ID).
			Msg("failed to encode item columns")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, upsertItem, args...); err != nil {
		log.Err(err).
			Str("func", "itemStore.Upsert").
			Str("user_id", item.UserID).
			Str("id", item.ID).
			Msg("failed to execute upsert for vault item")
		return fmt.Errorf("failed to upsert vault item (id=%s): %w: %w", item.ID, ErrExecutingStatement, err)
	}

	s.notifier.Broadcast(item.UserID)
	return nil
}

func (s *itemStore) Delete(ctx context.Context, userID, id string) error {
	log := logger.FromContext(ctx)

	result, err := s.DB.ExecContext(ctx, deleteItem, userID, id)
	if err != nil {
		log.Err(err).
			Str("func", "itemStore.Delete").
			Str("user_id", userID).
			Str("id", id).
			Msg("failed to execute delete for vault item")
		return fmt.Errorf("failed to delete vault item (id=%s): %w: %w", id, ErrExecutingStatement, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected (id=%s): %w: %w", id, ErrExecutingStatement, err)
	}
	if rowsAffected == 0 {
		log.Warn().
			Str("func", "itemStore.Delete").
			Str("user_id", userID).
			Str("id", id).
			Msg("no rows affected during delete: record not found")
		return fmt.Errorf("%w (id=%s)", ErrItemNotFound, id)
	}

	s.notifier.Broadcast(userID)
	return nil
}

// ReplaceAll applies a full server snapshot of items in a single
// transaction: upsert everything in items, then delete every stored row
// whose id is absent. A failure at any point rolls the whole reconcile back,
// leaving the prior state intact.
func (s *itemStore) ReplaceAll(ctx context.Context, userID string, items []models.Item) error {
	log := logger.FromContext(ctx)

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "itemStore.ReplaceAll").
			Str("user_id", userID).
			Msg("failed to begin reconcile transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	keepIDs := make([]string, 0, len(items))
	for _, item := range items {
		args, argErr := itemArgs(item)
		if argErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, argErr)
		}
		if _, err = tx.ExecContext(ctx, upsertItem, args...); err != nil {
			log.Err(err).
				Str("func", "itemStore.ReplaceAll").
				Str("user_id", userID).
				Str("id", item.ID).
				Msg("failed to upsert snapshot item")
			return fmt.Errorf("failed to upsert snapshot item (id=%s): %w: %w", item.ID, ErrExecutingStatement, err)
		}
		keepIDs = append(keepIDs, item.ID)
	}

	query, args, err := buildDeleteAbsent("ciphers", userID, keepIDs)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "itemStore.ReplaceAll").
			Str("user_id", userID).
			Msg("failed to delete items absent from snapshot")
		return fmt.Errorf("failed to delete absent items: %w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "itemStore.ReplaceAll").
			Str("user_id", userID).
			Msg("failed to commit reconcile transaction")
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	s.notifier.Broadcast(userID)
	return nil
}

func (s *itemStore) FetchAll(ctx context.Context, userID string) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	rows, err := s.DB.QueryContext(ctx, getAllItems, userID)
	if err != nil {
		log.Err(err).
			Str("func", "itemStore.FetchAll").
			Str("user_id", userID).
			Msg("failed to execute query for getting all vault items")
		return nil, fmt.Errorf("failed to query all vault items: %w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []models.Item

	for rows.Next() {
		item, scanErr := scanItem(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "itemStore.FetchAll").
				Str("user_id", userID).
				Msg("failed to scan vault item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "itemStore.FetchAll").
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

func (s *itemStore) FetchByID(ctx context.Context, userID, id string) (models.Item, error) {
	log := logger.FromContext(ctx)

	row := s.DB.QueryRowContext(ctx, getSingleItem, userID, id)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, fmt.Errorf("%w (id=%s)", ErrItemNotFound, id)
		}
		log.Err(err).
			Str("func", "itemStore.FetchByID").
			Str("user_id", userID).
			Str("id", id).
			Msg("failed to scan vault item row")
		return models.Item{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scan code.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (models.Item, error) {
	var (
		item          models.Item
		notes         sql.NullString
		key           sql.NullString
		folderID      sql.NullString
		orgID         sql.NullString
		collectionIDs sql.NullString
		deletedDate   sql.NullTime
	)

	err := row.Scan(
		&item.UserID,
		&item.ID,
		&item.Type,
		&item.Name,
		&item.Data,
		&notes,
		&key,
		&folderID,
		&orgID,
		&collectionIDs,
		&item.Favorite,
		&item.RevisionDate,
		&deletedDate,
	)
	if err != nil {
		return models.Item{}, err
	}

	if notes.Valid {
		n := models.CipheredString(notes.String)
		item.Notes = &n
	}
	if key.Valid {
		k := models.CipheredString(key.String)
		item.Key = &k
	}
	if folderID.Valid {
		item.FolderID = &folderID.String
	}
	if orgID.Valid {
		item.OrganizationID = &orgID.String
	}
	if collectionIDs.Valid && collectionIDs.String != "" {
		if err = json.Unmarshal([]byte(collectionIDs.String), &item.CollectionIDs); err != nil {
			return models.Item{}, fmt.Errorf("decode collection ids: %w", err)
		}
	}
	if deletedDate.Valid {
		item.DeletedDate = &deletedDate.Time
	}

	return item, nil
}

// itemArgs flattens an item into the column order shared by upsertItem.
func itemArgs(item models.Item) ([]any, error) {
	var collectionIDs any
	if len(item.CollectionIDs) > 0 {
		raw, err := json.Marshal(item.CollectionIDs)
		if err != nil {
			return nil, fmt.Errorf("encode collection ids: %w", err)
		}
		collectionIDs = string(raw)
	}

	var notes, key any
	if item.Notes != nil {
		notes = string(*item.Notes)
	}
	if item.Key != nil {
		key = string(*item.Key)
	}

	var folderID, orgID any
	if item.FolderID != nil {
		folderID = *item.FolderID
	}
	if item.OrganizationID != nil {
		orgID = *item.OrganizationID
	}

	var deletedDate any
	if item.DeletedDate != nil {
		deletedDate = *item.DeletedDate
	}

	return []any{
		item.UserID,
		item.ID,
		item.Type,
		string(item.Name),
		string(item.Data),
		notes,
		key,
		folderID,
		orgID,
		collectionIDs,
		item.Favorite,
		item.RevisionDate,
		deletedDate,
	}, nil
}
