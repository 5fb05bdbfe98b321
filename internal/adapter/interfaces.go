// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer access to the vault sync server.
//
// The primary abstraction is [SyncClient], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPSyncClient]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrServerUnavailable]
// for 502/503/504).
package adapter

import (
	"context"

	"github.com/gophervault/vaultsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/sync_client_mock.go -package=mock

// SyncClient defines transport-agnostic communication with the vault sync
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type SyncClient interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the client, or an
	// empty string if no token has been set yet.
	Token() string

	// FetchSnapshot retrieves the server's full current state for userID in
	// a single request: encrypted items, folders, collections,
	// organizations, policies and the equivalent-domains list. The snapshot
	// drives wholesale reconciliation of the local store.
	FetchSnapshot(ctx context.Context, userID string) (models.SyncSnapshot, error)

	// PushItem uploads a locally created or modified encrypted item. The
	// payload is already encrypted; the server never sees plaintext fields.
	PushItem(ctx context.Context, item models.Item) error

	// DeleteItem requests server-side deletion of a single item.
	DeleteItem(ctx context.Context, userID, id string) error

	// PushFolder uploads a locally created or modified folder.
	PushFolder(ctx context.Context, folder models.Folder) error

	// DeleteFolder requests server-side deletion of a single folder.
	DeleteFolder(ctx context.Context, userID, id string) error
}
