package service

import (
	"golang.org/x/text/language"

	"github.com/gophervault/vaultsync/internal/adapter"
	"github.com/gophervault/vaultsync/internal/crypto"
	"github.com/gophervault/vaultsync/internal/logger"
	"github.com/gophervault/vaultsync/internal/store"
	"github.com/gophervault/vaultsync/internal/totp"
)

type Services struct {
	Repository VaultRepository
	Search     SearchMediator
	Sync       SyncService
	SyncJob    SyncJob
}

// NewServices wires the service layer: the decrypted repository over the
// local storages, search on top of the repository's stream, and snapshot
// sync with its background job.
func NewServices(
	storages *store.VaultStorages,
	cipher crypto.CipherService,
	syncClient adapter.SyncClient,
	locale language.Tag,
	log *logger.Logger,
) *Services {
	repo := NewVaultRepository(storages, cipher, syncClient, totp.NewSystemClock(), locale, logger.NewErrorSink(log), log)
	syncSvc := NewSyncService(syncClient, storages, log)

	return &Services{
		Repository: repo,
		Search:     NewSearchMediator(repo, log),
		Sync:       syncSvc,
		SyncJob:    NewSyncJob(syncSvc, log),
	}
}
