// SPDX-License-Identifier: Apache-2.0

// Package service implements the client's domain logic on top of the local
// store and the cryptography boundary: the reactive decrypted item stream,
// item CRUD, search mediation, and snapshot reconciliation against the sync
// server.
package service

import (
	"context"
	"time"

	"github.com/gophervault/vaultsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// VaultRepository is the decrypted view of the vault. It sits between the
// encrypted store and consumers: reads decrypt on the way out, writes
// encrypt on the way in, and the item stream re-emits on every store
// change.
type VaultRepository interface {
	// ItemStream returns a channel of sectioned vault list updates for
	// userID. An update is emitted immediately on subscription and again
	// after every change to the user's stored records. Items that fail to
	// decrypt are skipped and logged; they never block the emission. The
	// channel is closed when ctx is cancelled.
	ItemStream(ctx context.Context, userID string) <-chan models.VaultListUpdate

	// Add encrypts view, assigns it an id and revision date, persists it
	// locally and uploads it to the server. Returns the stored view with
	// the generated fields populated.
	Add(ctx context.Context, view models.ItemView) (models.ItemView, error)

	// Update encrypts view and overwrites the stored record, stamping a
	// fresh revision date. Returns ErrItemNotFound if no record with the
	// view's id exists.
	Update(ctx context.Context, view models.ItemView) (models.ItemView, error)

	// Delete removes the item locally and requests server-side deletion.
	Delete(ctx context.Context, userID, id string) error

	// FetchByID loads and decrypts a single item.
	FetchByID(ctx context.Context, userID, id string) (models.ItemView, error)

	// RefreshCodes recomputes the one-time codes for every view carrying a
	// TOTP seed, at the given instant. Views without a seed pass through
	// unchanged. Never touches the store.
	RefreshCodes(views []models.ItemView, at time.Time) []models.ItemView
}

// SearchMediator narrows a live vault list down to a query. It keeps the
// latest decrypted list cached, so filter changes never re-read the store;
// only store change signals do.
type SearchMediator interface {
	// Results subscribes to filtered vault list updates for userID. Calling
	// Results again cancels the previous subscription; at most one is live
	// per mediator. The channel is closed when ctx is cancelled.
	Results(ctx context.Context, userID string) <-chan models.VaultListUpdate

	// UpdateFilter sets the active query. Consecutive duplicate queries are
	// dropped without re-filtering or re-emitting.
	UpdateFilter(query string)
}

// SyncService reconciles the local store against the server's full state.
type SyncService interface {
	// FullSync fetches the server snapshot for userID and reconciles every
	// entity type wholesale: snapshot records are upserted and local
	// records absent from the snapshot are deleted. Each entity type is
	// applied atomically.
	FullSync(ctx context.Context, userID string) error
}

// SyncJob is a background worker that periodically calls FullSync for the
// configured user.
type SyncJob interface {
	// Start launches the background sync goroutine. It syncs every
	// interval, defaulting to 5 minutes if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, userID string, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated.
	Stop()
}
