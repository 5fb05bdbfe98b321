package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gophervault/vaultsync/internal/mock"
	"github.com/gophervault/vaultsync/models"
)

var trackerNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type trackerClock struct{ now time.Time }

func (c trackerClock) Now() time.Time { return c.now }

func codeView(id string, expiresAt time.Time) models.ItemView {
	return models.ItemView{
		ID:   id,
		Type: models.Login,
		Name: "item " + id,
		TOTP: &models.TOTPCode{
			Code:      "123456",
			Period:    30,
			IssuedAt:  expiresAt.Add(-30 * time.Second),
			ExpiresAt: expiresAt,
		},
	}
}

func TestCodeTracker_TrackDeduplicatesAcrossSections(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockVaultRepository(ctrl)
	tracker := newCodeTracker(repo, trackerClock{now: trackerNow})

	favorite := codeView("item-1", trackerNow.Add(10*time.Second))
	plain := models.ItemView{ID: "item-2", Type: models.Login, Name: "no code"}

	entries := tracker.Track(models.VaultListUpdate{Sections: []models.VaultSection{
		{Name: "Favorites", Items: []models.ItemView{favorite}},
		{Name: "All Items", Items: []models.ItemView{favorite, plain}},
	}})

	require.Len(t, entries, 1)
	assert.Equal(t, "item-1", entries[0].ItemID)
	assert.Equal(t, trackerNow.Add(10*time.Second), entries[0].ExpiresAt)
	assert.Len(t, tracker.Views(), 2)
}

func TestCodeTracker_RefreshRecomputesExpiredCodes(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockVaultRepository(ctrl)
	clock := trackerClock{now: trackerNow}
	tracker := newCodeTracker(repo, clock)

	stale := codeView("item-1", trackerNow) // boundary just passed
	tracker.Track(models.VaultListUpdate{Sections: []models.VaultSection{
		{Name: "All Items", Items: []models.ItemView{stale}},
	}})

	rolled := codeView("item-1", trackerNow.Add(30*time.Second))
	rolled.TOTP.Code = "654321"

	repo.EXPECT().
		RefreshCodes(gomock.Any(), trackerNow).
		DoAndReturn(func(views []models.ItemView, _ time.Time) []models.ItemView {
			require.Len(t, views, 1)
			assert.Equal(t, "item-1", views[0].ID)
			return []models.ItemView{rolled}
		})

	refreshed, entries := tracker.Refresh()

	require.Len(t, refreshed, 1)
	assert.Equal(t, "654321", refreshed[0].TOTP.Code)
	require.Len(t, entries, 1)
	assert.Equal(t, trackerNow.Add(30*time.Second), entries[0].ExpiresAt)

	// the refreshed views become the new tracked set
	assert.Equal(t, "654321", tracker.Views()[0].TOTP.Code)
}

func TestCodeTracker_RefreshWithNoCodesYieldsNoEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockVaultRepository(ctrl)
	tracker := newCodeTracker(repo, trackerClock{now: trackerNow})

	repo.EXPECT().
		RefreshCodes(gomock.Any(), trackerNow).
		Return([]models.ItemView{{ID: "item-1", Type: models.Login, Name: "no code"}})

	refreshed, entries := tracker.Refresh()
	require.Len(t, refreshed, 1)
	assert.Empty(t, entries)
}
