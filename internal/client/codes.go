package client

import (
	"sync"

	"github.com/gophervault/vaultsync/internal/service"
	"github.com/gophervault/vaultsync/internal/totp"
	"github.com/gophervault/vaultsync/models"
)

// codeTracker keeps the most recent decrypted views between stream
// emissions so expired one-time codes can be recomputed without waiting for
// a store change.
type codeTracker struct {
	repo  service.VaultRepository
	clock totp.Clock

	mu    sync.Mutex
	views []models.ItemView
}

func newCodeTracker(repo service.VaultRepository, clock totp.Clock) *codeTracker {
	return &codeTracker{repo: repo, clock: clock}
}

// Track records the views of a stream emission, deduplicated by item, and
// returns the scheduler entries for every code among them.
func (t *codeTracker) Track(update models.VaultListUpdate) []totp.Entry {
	seen := make(map[string]struct{})
	var views []models.ItemView

	for _, section := range update.Sections {
		for _, item := range section.Items {
			if _, ok := seen[item.ID]; ok {
				continue
			}
			seen[item.ID] = struct{}{}
			views = append(views, item)
		}
	}

	t.mu.Lock()
	t.views = views
	t.mu.Unlock()

	return codeEntries(views)
}

// Refresh recomputes the one-time codes of the tracked views at the current
// instant and returns the refreshed views with their next deadlines. Called
// from the scheduler when the earliest code expires.
func (t *codeTracker) Refresh() ([]models.ItemView, []totp.Entry) {
	t.mu.Lock()
	current := t.views
	t.mu.Unlock()

	refreshed := t.repo.RefreshCodes(current, t.clock.Now())

	t.mu.Lock()
	t.views = refreshed
	t.mu.Unlock()

	return refreshed, codeEntries(refreshed)
}

// Views returns the latest tracked views with their current codes.
func (t *codeTracker) Views() []models.ItemView {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.views
}

func codeEntries(views []models.ItemView) []totp.Entry {
	var entries []totp.Entry
	for _, item := range views {
		if item.TOTP == nil {
			continue
		}
		entries = append(entries, totp.Entry{
			ItemID:    item.ID,
			ExpiresAt: item.TOTP.ExpiresAt,
			Period:    item.TOTP.Period,
		})
	}
	return entries
}
