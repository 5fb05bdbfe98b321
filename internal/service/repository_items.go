// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/gophervault/vaultsync/internal/adapter"
	"github.com/gophervault/vaultsync/internal/crypto"
	"github.com/gophervault/vaultsync/internal/logger"
	"github.com/gophervault/vaultsync/internal/store"
	"github.com/gophervault/vaultsync/internal/totp"
	"github.com/gophervault/vaultsync/models"
)

const (
	sectionFavorites = "Favorites"
	sectionAllItems  = "All Items"
)

type vaultRepository struct {
	items   store.ItemStore
	changes store.ChangeFeed
	cipher  crypto.CipherService
	sync    adapter.SyncClient
	clock   totp.Clock

	collator *collate.Collator
	sink     logger.ErrorSink
	logger   *logger.Logger
}

// NewVaultRepository constructs the decrypted vault repository. Lists are
// ordered with a collator for locale, so sorting respects the user's
// alphabet rather than byte order. syncClient may be nil for an offline-only
// repository; local persistence then remains the sole effect of mutations.
// Skipped items (undecryptable records, bad seeds) are reported to sink; a
// nil sink falls back to reporting through log.
func NewVaultRepository(
	storages *store.VaultStorages,
	cipher crypto.CipherService,
	syncClient adapter.SyncClient,
	clock totp.Clock,
	locale language.Tag,
	sink logger.ErrorSink,
	log *logger.Logger,
) VaultRepository {
	if sink == nil {
		sink = logger.NewErrorSink(log)
	}
	return &vaultRepository{
		items:    storages.Items,
		changes:  storages.Changes,
		cipher:   cipher,
		sync:     syncClient,
		clock:    clock,
		collator: collate.New(locale, collate.IgnoreCase),
		sink:     sink,
		logger:   log,
	}
}

// ItemStream implements [VaultRepository]. The goroutine emits one update
// per change signal; a slow consumer delays the next rebuild rather than
// accumulating stale snapshots.
func (r *vaultRepository) ItemStream(ctx context.Context, userID string) <-chan models.VaultListUpdate {
	out := make(chan models.VaultListUpdate, 1)
	signals := r.changes.Subscribe(ctx, userID)

	go func() {
		defer close(out)

		for {
			update := r.buildUpdate(ctx, userID)
			select {
			case out <- update:
			case <-ctx.Done():
				return
			}

			select {
			case <-ctx.Done():
				return
			case _, ok := <-signals:
				if !ok {
					return
				}
			}
		}
	}()

	return out
}

// buildUpdate reads the authoritative local state and produces one full
// emission: fetch, decrypt, sort, section. Records that fail to decrypt are
// dropped from the emission and captured; a store read failure produces an
// update carrying only the error.
func (r *vaultRepository) buildUpdate(ctx context.Context, userID string) models.VaultListUpdate {
	items, err := r.items.FetchAll(ctx, userID)
	if err != nil {
		return models.VaultListUpdate{Err: fmt.Errorf("fetch items for stream: %w", err)}
	}

	views := make([]models.ItemView, 0, len(items))
	for _, item := range items {
		if item.DeletedDate != nil {
			continue
		}

		view, decErr := r.cipher.DecryptItem(ctx, item)
		if decErr != nil {
			r.sink.Capture(decErr, "skipping undecryptable item "+item.ID)
			continue
		}
		views = append(views, view)
	}

	views = r.RefreshCodes(views, r.clock.Now())

	sort.SliceStable(views, func(i, j int) bool {
		if cmp := r.collator.CompareString(views[i].Name, views[j].Name); cmp != 0 {
			return cmp < 0
		}
		return views[i].ID < views[j].ID
	})

	return models.VaultListUpdate{Sections: buildSections(views)}
}

func buildSections(views []models.ItemView) []models.VaultSection {
	var favorites []models.ItemView
	for _, v := range views {
		if v.Favorite {
			favorites = append(favorites, v)
		}
	}

	sections := make([]models.VaultSection, 0, 2)
	if len(favorites) > 0 {
		sections = append(sections, models.VaultSection{Name: sectionFavorites, Items: favorites})
	}
	sections = append(sections, models.VaultSection{Name: sectionAllItems, Items: views})
	return sections
}

// Add implements [VaultRepository].
func (r *vaultRepository) Add(ctx context.Context, view models.ItemView) (models.ItemView, error) {
	if err := validateView(view); err != nil {
		return models.ItemView{}, err
	}

	if view.ID == "" {
		view.ID = uuid.NewString()
	}
	view.RevisionDate = r.clock.Now().UTC()

	item, err := r.cipher.EncryptItem(ctx, view)
	if err != nil {
		return models.ItemView{}, fmt.Errorf("encrypt item for add: %w", err)
	}

	if err = r.items.Upsert(ctx, item); err != nil {
		return models.ItemView{}, fmt.Errorf("save added item: %w", err)
	}

	r.pushItem(ctx, item)
	return view, nil
}

// Update implements [VaultRepository].
func (r *vaultRepository) Update(ctx context.Context, view models.ItemView) (models.ItemView, error) {
	if err := validateView(view); err != nil {
		return models.ItemView{}, err
	}
	if view.ID == "" {
		return models.ItemView{}, fmt.Errorf("%w: missing id", ErrInvalidItem)
	}

	// Upsert would silently insert; an update of a missing record is a
	// caller bug and must surface as not-found.
	if _, err := r.items.FetchByID(ctx, view.UserID, view.ID); err != nil {
		return models.ItemView{}, fmt.Errorf("load item for update: %w", err)
	}

	view.RevisionDate = r.clock.Now().UTC()

	item, err := r.cipher.EncryptItem(ctx, view)
	if err != nil {
		return models.ItemView{}, fmt.Errorf("encrypt item for update: %w", err)
	}

	if err = r.items.Upsert(ctx, item); err != nil {
		return models.ItemView{}, fmt.Errorf("save updated item: %w", err)
	}

	r.pushItem(ctx, item)
	return view, nil
}

// Delete implements [VaultRepository].
func (r *vaultRepository) Delete(ctx context.Context, userID, id string) error {
	if err := r.items.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete local item: %w", err)
	}

	if r.sync != nil {
		if err := r.sync.DeleteItem(ctx, userID, id); err != nil {
			r.logger.Warn().Err(err).
				Str("func", "Delete").
				Str("itemID", id).
				Msg("server delete failed, next sync reconciles")
		}
	}
	return nil
}

// FetchByID implements [VaultRepository].
func (r *vaultRepository) FetchByID(ctx context.Context, userID, id string) (models.ItemView, error) {
	item, err := r.items.FetchByID(ctx, userID, id)
	if err != nil {
		return models.ItemView{}, fmt.Errorf("fetch item: %w", err)
	}

	view, err := r.cipher.DecryptItem(ctx, item)
	if err != nil {
		return models.ItemView{}, fmt.Errorf("decrypt fetched item: %w", err)
	}
	return view, nil
}

// RefreshCodes implements [VaultRepository]. The input slice is not
// modified; views carrying a seed come back as copies with TOTP populated.
func (r *vaultRepository) RefreshCodes(views []models.ItemView, at time.Time) []models.ItemView {
	refreshed := make([]models.ItemView, len(views))
	copy(refreshed, views)

	for i := range refreshed {
		if !refreshed[i].HasTOTP() {
			continue
		}

		code, err := totp.GenerateCode(*refreshed[i].Login.TOTP, at)
		if err != nil {
			r.sink.Capture(err, "bad totp seed on item "+refreshed[i].ID)
			refreshed[i].TOTP = nil
			continue
		}
		refreshed[i].TOTP = &code
	}
	return refreshed
}

// pushItem uploads best effort. Local persistence already succeeded; a
// failed upload is repaired by the next snapshot sync.
func (r *vaultRepository) pushItem(ctx context.Context, item models.Item) {
	if r.sync == nil {
		return
	}
	if err := r.sync.PushItem(ctx, item); err != nil {
		r.logger.Warn().Err(err).
			Str("func", "pushItem").
			Str("itemID", item.ID).
			Msg("server upload failed, next sync reconciles")
	}
}

// validateView checks the tagged-union shape: a known type, a name, and the
// payload slot matching the type set.
func validateView(view models.ItemView) error {
	if view.UserID == "" {
		return fmt.Errorf("%w: missing user id", ErrInvalidItem)
	}
	if view.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidItem)
	}

	var ok bool
	switch view.Type {
	case models.Login:
		ok = view.Login != nil
	case models.SecureNote:
		ok = view.SecureNote != nil
	case models.Card:
		ok = view.Card != nil
	case models.Identity:
		ok = view.Identity != nil
	case models.SSHKey:
		ok = view.SSHKey != nil
	default:
		return fmt.Errorf("%w: unknown item type %d", ErrInvalidItem, view.Type)
	}
	if !ok {
		return fmt.Errorf("%w: payload does not match type %s", ErrInvalidItem, view.Type)
	}
	return nil
}
