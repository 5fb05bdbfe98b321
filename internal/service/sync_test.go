// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gophervault/vaultsync/internal/adapter"
	"github.com/gophervault/vaultsync/internal/logger"
	"github.com/gophervault/vaultsync/internal/mock"
	"github.com/gophervault/vaultsync/internal/store"
	"github.com/gophervault/vaultsync/models"
)

type syncFixture struct {
	client        *mock.MockSyncClient
	items         *mock.MockItemStore
	folders       *mock.MockFolderStore
	collections   *mock.MockCollectionStore
	organizations *mock.MockOrganizationStore
	policies      *mock.MockPolicyStore
	domains       *mock.MockDomainStore
	svc           SyncService
}

func newSyncFixture(ctrl *gomock.Controller) *syncFixture {
	fx := &syncFixture{
		client:        mock.NewMockSyncClient(ctrl),
		items:         mock.NewMockItemStore(ctrl),
		folders:       mock.NewMockFolderStore(ctrl),
		collections:   mock.NewMockCollectionStore(ctrl),
		organizations: mock.NewMockOrganizationStore(ctrl),
		policies:      mock.NewMockPolicyStore(ctrl),
		domains:       mock.NewMockDomainStore(ctrl),
	}

	storages := &store.VaultStorages{
		Items:         fx.items,
		Folders:       fx.folders,
		Collections:   fx.collections,
		Organizations: fx.organizations,
		Policies:      fx.policies,
		Domains:       fx.domains,
	}
	fx.svc = NewSyncService(fx.client, storages, logger.Nop())
	return fx
}

func sampleSnapshot() models.SyncSnapshot {
	return models.SyncSnapshot{
		Items: []models.Item{
			{ID: "item-1", UserID: testUserID, Type: models.Login, Name: "enc", Data: "enc"},
		},
		Folders: []models.Folder{
			{ID: "folder-1", UserID: testUserID, Name: "enc"},
		},
		Collections:   []models.Collection{{ID: "col-1", UserID: testUserID}},
		Organizations: []models.Organization{{ID: "org-1", UserID: testUserID}},
		Policies:      []models.Policy{{ID: "pol-1", UserID: testUserID}},
		EquivalentDomains: models.EquivalentDomains{
			Groups: [][]string{{"amazon.com", "amazon.de"}},
		},
	}
}

func TestFullSync_ReconcilesEveryEntityType(t *testing.T) {
	ctrl := gomock.NewController(t)
	fx := newSyncFixture(ctrl)

	snapshot := sampleSnapshot()
	fx.client.EXPECT().FetchSnapshot(gomock.Any(), testUserID).Return(snapshot, nil)

	fx.folders.EXPECT().ReplaceAll(gomock.Any(), testUserID, snapshot.Folders).Return(nil)
	fx.collections.EXPECT().ReplaceAll(gomock.Any(), testUserID, snapshot.Collections).Return(nil)
	fx.organizations.EXPECT().ReplaceAll(gomock.Any(), testUserID, snapshot.Organizations).Return(nil)
	fx.policies.EXPECT().ReplaceAll(gomock.Any(), testUserID, snapshot.Policies).Return(nil)
	fx.domains.EXPECT().Replace(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, domains models.EquivalentDomains) error {
			// the snapshot's domain list is stamped with the syncing user
			assert.Equal(t, testUserID, domains.UserID)
			assert.Equal(t, snapshot.EquivalentDomains.Groups, domains.Groups)
			return nil
		})
	fx.items.EXPECT().ReplaceAll(gomock.Any(), testUserID, snapshot.Items).Return(nil)

	require.NoError(t, fx.svc.FullSync(context.Background(), testUserID))
}

func TestFullSync_FetchErrorAbortsBeforeStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	fx := newSyncFixture(ctrl)

	fx.client.EXPECT().
		FetchSnapshot(gomock.Any(), testUserID).
		Return(models.SyncSnapshot{}, adapter.ErrServerUnavailable)

	err := fx.svc.FullSync(context.Background(), testUserID)

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrServerUnavailable)
	assert.NotErrorIs(t, err, ErrReconciliationConflict)
}

func TestFullSync_ReplaceFailureIsReconciliationConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	fx := newSyncFixture(ctrl)

	snapshot := sampleSnapshot()
	fx.client.EXPECT().FetchSnapshot(gomock.Any(), testUserID).Return(snapshot, nil)
	fx.folders.EXPECT().ReplaceAll(gomock.Any(), testUserID, snapshot.Folders).Return(store.ErrStoreIO)

	err := fx.svc.FullSync(context.Background(), testUserID)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReconciliationConflict)
	assert.ErrorIs(t, err, store.ErrStoreIO)
}

func TestFullSync_ItemsReconciledLast(t *testing.T) {
	ctrl := gomock.NewController(t)
	fx := newSyncFixture(ctrl)

	snapshot := sampleSnapshot()
	fx.client.EXPECT().FetchSnapshot(gomock.Any(), testUserID).Return(snapshot, nil)

	gomock.InOrder(
		fx.folders.EXPECT().ReplaceAll(gomock.Any(), testUserID, snapshot.Folders).Return(nil),
		fx.items.EXPECT().ReplaceAll(gomock.Any(), testUserID, snapshot.Items).Return(nil),
	)
	fx.collections.EXPECT().ReplaceAll(gomock.Any(), testUserID, snapshot.Collections).Return(nil)
	fx.organizations.EXPECT().ReplaceAll(gomock.Any(), testUserID, snapshot.Organizations).Return(nil)
	fx.policies.EXPECT().ReplaceAll(gomock.Any(), testUserID, snapshot.Policies).Return(nil)
	fx.domains.EXPECT().Replace(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, fx.svc.FullSync(context.Background(), testUserID))
}
