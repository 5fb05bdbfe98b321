package service

import (
	"context"
	"strings"
	"sync"

	"github.com/gophervault/vaultsync/internal/logger"
	"github.com/gophervault/vaultsync/models"
)

type searchMediator struct {
	repo   VaultRepository
	logger *logger.Logger

	mu         sync.Mutex
	query      string
	latest     models.VaultListUpdate
	haveUpdate bool
	out        chan models.VaultListUpdate
	cancel     context.CancelFunc
	wg         sync.WaitGroup
}

// NewSearchMediator constructs a [SearchMediator] on top of repo's item
// stream. The mediator holds the latest full emission in memory; typing in
// the search box only re-filters that cached list.
func NewSearchMediator(repo VaultRepository, log *logger.Logger) SearchMediator {
	return &searchMediator{repo: repo, logger: log}
}

// Results implements [SearchMediator]. A second call tears down the
// previous subscription before the new stream goes live, so two goroutines
// never feed results concurrently.
func (m *searchMediator) Results(ctx context.Context, userID string) <-chan models.VaultListUpdate {
	m.mu.Lock()
	if m.cancel != nil {
		m.cancel()
	}
	m.mu.Unlock()
	m.wg.Wait()

	streamCtx, cancel := context.WithCancel(ctx)
	out := make(chan models.VaultListUpdate, 1)

	m.mu.Lock()
	m.cancel = cancel
	m.out = out
	m.haveUpdate = false
	m.mu.Unlock()

	stream := m.repo.ItemStream(streamCtx, userID)

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		// Detach before closing, under the same lock UpdateFilter sends
		// under, so a keystroke arriving during teardown is a no-op
		// instead of a send on a closed channel.
		defer func() {
			m.mu.Lock()
			if m.out == out {
				m.out = nil
				m.haveUpdate = false
			}
			close(out)
			m.mu.Unlock()
		}()

		for update := range stream {
			m.mu.Lock()
			m.latest = update
			m.haveUpdate = true
			filtered := filterUpdate(update, m.query)
			m.mu.Unlock()

			select {
			case out <- filtered:
			case <-streamCtx.Done():
				return
			}
		}
	}()

	return out
}

// UpdateFilter implements [SearchMediator]. Duplicate consecutive queries
// are dropped, so key-repeat and cursor movement cost nothing.
func (m *searchMediator) UpdateFilter(query string) {
	query = strings.TrimSpace(query)

	m.mu.Lock()
	defer m.mu.Unlock()

	if query == m.query {
		return
	}
	m.query = query

	if m.out == nil || !m.haveUpdate {
		return
	}
	filtered := filterUpdate(m.latest, query)

	// coalesce: replace a pending emission rather than queueing behind it
	select {
	case <-m.out:
	default:
	}
	select {
	case m.out <- filtered:
	default:
	}
}

func filterUpdate(update models.VaultListUpdate, query string) models.VaultListUpdate {
	if query == "" || update.Err != nil {
		return update
	}

	filtered := models.VaultListUpdate{Sections: make([]models.VaultSection, 0, len(update.Sections))}
	for _, section := range update.Sections {
		var items []models.ItemView
		for _, item := range section.Items {
			if matchesQuery(item, query) {
				items = append(items, item)
			}
		}
		filtered.Sections = append(filtered.Sections, models.VaultSection{Name: section.Name, Items: items})
	}
	return filtered
}

// matchesQuery reports a case-insensitive substring hit on the item name,
// the login username, or any login URI.
func matchesQuery(item models.ItemView, query string) bool {
	query = strings.ToLower(query)

	if strings.Contains(strings.ToLower(item.Name), query) {
		return true
	}
	if item.Login == nil {
		return false
	}
	if strings.Contains(strings.ToLower(item.Login.Username), query) {
		return true
	}
	for _, uri := range item.Login.URIs {
		if strings.Contains(strings.ToLower(uri.URI), query) {
			return true
		}
	}
	return false
}
