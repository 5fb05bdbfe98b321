// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/gophervault/vaultsync/internal/adapter"
	"github.com/gophervault/vaultsync/internal/logger"
	"github.com/gophervault/vaultsync/internal/store"
)

type syncService struct {
	client   adapter.SyncClient
	storages *store.VaultStorages
	logger   *logger.Logger
}

// NewSyncService constructs a [SyncService] that reconciles the local
// storages against snapshots fetched through client.
func NewSyncService(client adapter.SyncClient, storages *store.VaultStorages, log *logger.Logger) SyncService {
	return &syncService{client: client, storages: storages, logger: log}
}

// FullSync implements [SyncService]. The snapshot is applied per entity
// type: each ReplaceAll upserts the snapshot records and deletes local
// records the snapshot no longer contains, in one transaction. A failure
// leaves that entity type at its previous state and aborts the sync; the
// next run starts over from a fresh snapshot.
func (s *syncService) FullSync(ctx context.Context, userID string) error {
	log := s.logger.Debug().Str("func", "FullSync").Str("userID", userID)

	snapshot, err := s.client.FetchSnapshot(ctx, userID)
	if err != nil {
		return fmt.Errorf("fetch snapshot: %w", err)
	}

	if err = s.storages.Folders.ReplaceAll(ctx, userID, snapshot.Folders); err != nil {
		return fmt.Errorf("%w: folders: %w", ErrReconciliationConflict, err)
	}
	if err = s.storages.Collections.ReplaceAll(ctx, userID, snapshot.Collections); err != nil {
		return fmt.Errorf("%w: collections: %w", ErrReconciliationConflict, err)
	}
	if err = s.storages.Organizations.ReplaceAll(ctx, userID, snapshot.Organizations); err != nil {
		return fmt.Errorf("%w: organizations: %w", ErrReconciliationConflict, err)
	}
	if err = s.storages.Policies.ReplaceAll(ctx, userID, snapshot.Policies); err != nil {
		return fmt.Errorf("%w: policies: %w", ErrReconciliationConflict, err)
	}

	domains := snapshot.EquivalentDomains
	domains.UserID = userID
	if err = s.storages.Domains.Replace(ctx, domains); err != nil {
		return fmt.Errorf("%w: equivalent domains: %w", ErrReconciliationConflict, err)
	}

	// items last: by the time the item stream re-emits, the supporting
	// entities are already current
	if err = s.storages.Items.ReplaceAll(ctx, userID, snapshot.Items); err != nil {
		return fmt.Errorf("%w: items: %w", ErrReconciliationConflict, err)
	}

	log.
		Int("items", len(snapshot.Items)).
		Int("folders", len(snapshot.Folders)).
		Msg("snapshot reconciled")

	return nil
}
