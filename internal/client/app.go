// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"encoding/base64"
	"fmt"

	"golang.org/x/text/language"

	"github.com/gophervault/vaultsync/internal/adapter"
	"github.com/gophervault/vaultsync/internal/config"
	"github.com/gophervault/vaultsync/internal/crypto"
	"github.com/gophervault/vaultsync/internal/logger"
	"github.com/gophervault/vaultsync/internal/service"
	"github.com/gophervault/vaultsync/internal/store"
	"github.com/gophervault/vaultsync/internal/totp"
	"github.com/gophervault/vaultsync/internal/workers"
)

// App is the headless vaultsync client: it unlocks the vault, runs the
// initial snapshot sync, keeps syncing in the background, and follows the
// decrypted item stream, re-arming the code refresh scheduler on every
// emission.
type App struct {
	cfg      *config.StructuredConfig
	services *service.Services
	workers  *workers.Workers
	logger   *logger.Logger
}

// NewApp wires the full client from configuration: storage, cryptography,
// transport, services, and background workers.
func NewApp(cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	storages, err := store.NewVaultStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	keys, err := unlock(cfg.Vault)
	if err != nil {
		return nil, fmt.Errorf("unlock vault: %w", err)
	}

	syncClient, err := adapter.NewHTTPSyncClient(cfg.Sync, log)
	if err != nil {
		return nil, fmt.Errorf("create sync client: %w", err)
	}

	services := service.NewServices(storages, crypto.NewCipherService(keys), syncClient, language.English, log)

	return &App{
		cfg:      cfg,
		services: services,
		workers:  workers.New(workers.NewSyncWorker(services.SyncJob, cfg.Vault.UserID, cfg.Sync.Interval)),
		logger:   log,
	}, nil
}

// unlock derives the user key from the configured master password and salt
// and seeds the in-memory key provider with it.
func unlock(cfg config.Vault) (crypto.KeyProvider, error) {
	salt, err := base64.StdEncoding.DecodeString(cfg.KDFSalt)
	if err != nil {
		return nil, fmt.Errorf("decode kdf salt: %w", err)
	}

	keychain := crypto.NewKeychainService()
	provider := crypto.NewMemoryKeyProvider()
	provider.Store(cfg.UserID, keychain.DeriveUserKey(cfg.MasterPassword, salt))
	return provider, nil
}

// Run implements [Client]. It blocks until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	userID := a.cfg.Vault.UserID

	if err := a.services.Sync.FullSync(ctx, userID); err != nil {
		a.logger.Warn().Err(err).Msg("initial sync failed, serving local state")
	}

	a.workers.Run(ctx)
	defer a.workers.Stop()

	clock := totp.NewSystemClock()
	tracker := newCodeTracker(a.services.Repository, clock)

	var scheduler *totp.ExpirationScheduler
	scheduler = totp.NewExpirationScheduler(clock, func([]totp.Entry) {
		refreshed, next := tracker.Refresh()
		scheduler.Configure(next)
		a.logger.Debug().Int("codes", len(refreshed)).Msg("one-time codes rolled over")
	})
	defer scheduler.Stop()

	stream := a.services.Repository.ItemStream(ctx, userID)
	for update := range stream {
		if update.Err != nil {
			a.logger.Error().Err(update.Err).Msg("vault list emission failed")
			continue
		}

		scheduler.Configure(tracker.Track(update))
		a.logger.Info().
			Int("items", update.TotalItems()).
			Int("sections", len(update.Sections)).
			Msg("vault list updated")
	}

	return ctx.Err()
}
