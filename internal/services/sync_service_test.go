package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pmatchdesk/go-cabinet-sync/internal/common"
	"github.com/pmatchdesk/go-cabinet-sync/internal/config"
	"github.com/pmatchdesk/go-cabinet-sync/internal/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func Test_SyncService_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("all cabinets order published to queue", func(t *testing.T) {
		h := initTestServiceHelper(t, config.Config{})

		h.mockCacheRepository.EXPECT().
			SetIfNotExists(ctx, "go-cabinet-sync:sync-order:requested:all:5", "1", time.Minute).
			Return(true, nil)

		h.mockSyncOrderRepository.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, in *models.SyncOrder) (*models.SyncOrder, error) {
				assert.Nil(t, in.CabinetID)
				assert.Equal(t, 5, in.Pages)
				assert.Equal(t, models.SyncOrderStatusPending, in.Status)

				out := *in
				out.ID = 42
				return &out, nil
			})

		h.mockSyncOrderPub.EXPECT().
			Publish(ctx, models.SyncOrderPublisher{ID: "42", Task: models.SyncOrderTaskName}).
			Return(nil)

		output, err := h.syncService.CreateOrder(ctx, models.CreateSyncOrderRequest{CabinetID: "all", Pages: 5})

		assert.NoError(t, err)
		assert.Equal(t, "42", output.ID)
		assert.Equal(t, models.SyncOrderStatusPending, output.Status)
	})

	t.Run("single cabinet order checks the cabinet exists", func(t *testing.T) {
		h := initTestServiceHelper(t, config.Config{})

		h.mockCacheRepository.EXPECT().
			SetIfNotExists(ctx, "go-cabinet-sync:sync-order:requested:7:2", "1", time.Minute).
			Return(true, nil)

		h.mockCabinetRepository.EXPECT().
			GetByID(ctx, int64(7)).
			Return(&models.Cabinet{ID: 7, Name: "main"}, nil)

		h.mockSyncOrderRepository.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, in *models.SyncOrder) (*models.SyncOrder, error) {
				if assert.NotNil(t, in.CabinetID) {
					assert.Equal(t, int64(7), *in.CabinetID)
				}
				out := *in
				out.ID = 43
				return &out, nil
			})

		h.mockSyncOrderPub.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

		output, err := h.syncService.CreateOrder(ctx, models.CreateSyncOrderRequest{CabinetID: "7", Pages: 2})

		assert.NoError(t, err)
		assert.Equal(t, "43", output.ID)
	})

	t.Run("unknown cabinet rejected and dedup key released", func(t *testing.T) {
		h := initTestServiceHelper(t, config.Config{})

		h.mockCacheRepository.EXPECT().
			SetIfNotExists(ctx, "go-cabinet-sync:sync-order:requested:99:2", "1", time.Minute).
			Return(true, nil)

		h.mockCabinetRepository.EXPECT().
			GetByID(ctx, int64(99)).
			Return(nil, common.ErrCabinetNotFound)

		h.mockCacheRepository.EXPECT().
			Del(ctx, "go-cabinet-sync:sync-order:requested:99:2").
			Return(nil)

		_, err := h.syncService.CreateOrder(ctx, models.CreateSyncOrderRequest{CabinetID: "99", Pages: 2})

		assert.ErrorIs(t, err, common.ErrCabinetNotFound)
	})

	t.Run("identical request within the window rejected", func(t *testing.T) {
		h := initTestServiceHelper(t, config.Config{})

		h.mockCacheRepository.EXPECT().
			SetIfNotExists(ctx, "go-cabinet-sync:sync-order:requested:all:5", "1", time.Minute).
			Return(false, nil)

		_, err := h.syncService.CreateOrder(ctx, models.CreateSyncOrderRequest{CabinetID: "all", Pages: 5})

		assert.ErrorIs(t, err, common.ErrSyncOrderDuplicate)
	})

	t.Run("dedup cache outage does not block creation", func(t *testing.T) {
		h := initTestServiceHelper(t, config.Config{})

		h.mockCacheRepository.EXPECT().
			SetIfNotExists(ctx, gomock.Any(), "1", time.Minute).
			Return(false, errors.New("redis: connection refused"))

		h.mockSyncOrderRepository.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&models.SyncOrder{ID: 46, Status: models.SyncOrderStatusPending, Pages: 5}, nil)

		h.mockSyncOrderPub.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

		output, err := h.syncService.CreateOrder(ctx, models.CreateSyncOrderRequest{CabinetID: "all", Pages: 5})

		assert.NoError(t, err)
		assert.Equal(t, "46", output.ID)
	})

	t.Run("non numeric cabinet id rejected", func(t *testing.T) {
		h := initTestServiceHelper(t, config.Config{})

		_, err := h.syncService.CreateOrder(ctx, models.CreateSyncOrderRequest{CabinetID: "first", Pages: 2})

		assert.Error(t, err)
	})

	t.Run("zero pages falls back to configured default", func(t *testing.T) {
		cfg := config.Config{}
		cfg.Sync.DefaultPages = 25

		h := initTestServiceHelper(t, cfg)

		h.mockCacheRepository.EXPECT().
			SetIfNotExists(ctx, "go-cabinet-sync:sync-order:requested:all:25", "1", time.Minute).
			Return(true, nil)

		h.mockSyncOrderRepository.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, in *models.SyncOrder) (*models.SyncOrder, error) {
				assert.Equal(t, 25, in.Pages)
				out := *in
				out.ID = 44
				return &out, nil
			})

		h.mockSyncOrderPub.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

		_, err := h.syncService.CreateOrder(ctx, models.CreateSyncOrderRequest{CabinetID: "all"})

		assert.NoError(t, err)
	})

	t.Run("publish failure leaves the order pending", func(t *testing.T) {
		h := initTestServiceHelper(t, config.Config{})

		h.mockCacheRepository.EXPECT().
			SetIfNotExists(ctx, "go-cabinet-sync:sync-order:requested:all:10", "1", time.Minute).
			Return(true, nil)

		h.mockSyncOrderRepository.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&models.SyncOrder{ID: 45, Status: models.SyncOrderStatusPending, Pages: 10}, nil)

		h.mockSyncOrderPub.EXPECT().
			Publish(ctx, gomock.Any()).
			Return(errors.New("kafka: client has run out of available brokers"))

		output, err := h.syncService.CreateOrder(ctx, models.CreateSyncOrderRequest{CabinetID: "all", Pages: 10})

		assert.NoError(t, err)
		assert.Equal(t, "45", output.ID)
	})
}

func Test_SyncService_GetOrder(t *testing.T) {
	ctx := context.Background()

	h := initTestServiceHelper(t, config.Config{})

	now := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	want := &models.SyncOrder{ID: 42, Status: models.SyncOrderStatusCompleted, CreatedAt: &now}

	h.mockSyncOrderRepository.EXPECT().GetByID(ctx, int64(42)).Return(want, nil)

	got, err := h.syncService.GetOrder(ctx, 42)

	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func Test_SyncService_GetListOrders(t *testing.T) {
	ctx := context.Background()

	opts := models.SyncOrderFilterOptions{Status: models.SyncOrderStatusCompleted, Limit: 10}

	t.Run("success", func(t *testing.T) {
		h := initTestServiceHelper(t, config.Config{})

		want := []models.SyncOrder{{ID: 1}, {ID: 2}}
		h.mockSyncOrderRepository.EXPECT().GetList(ctx, opts).Return(want, nil)
		h.mockSyncOrderRepository.EXPECT().CountAll(ctx, opts).Return(2, nil)

		orders, total, err := h.syncService.GetListOrders(ctx, opts)

		assert.NoError(t, err)
		assert.Equal(t, want, orders)
		assert.Equal(t, 2, total)
	})

	t.Run("count query fails", func(t *testing.T) {
		h := initTestServiceHelper(t, config.Config{})

		h.mockSyncOrderRepository.EXPECT().GetList(ctx, opts).Return([]models.SyncOrder{}, nil)
		h.mockSyncOrderRepository.EXPECT().CountAll(ctx, opts).Return(0, errors.New("connection refused"))

		_, _, err := h.syncService.GetListOrders(ctx, opts)

		assert.Error(t, err)
	})
}

func Test_SyncService_ProcessSyncOrders(t *testing.T) {
	ctx := context.Background()

	t.Run("broken order does not block the queue", func(t *testing.T) {
		h := initTestServiceHelper(t, config.Config{})

		h.mockSyncOrderRepository.EXPECT().GetPending(ctx).Return([]models.SyncOrder{{ID: 1}, {ID: 2}}, nil)

		// order 1 is gone by the time it is picked up
		h.mockSyncOrderRepository.EXPECT().GetByID(ctx, int64(1)).Return(nil, common.ErrSyncOrderNotFound)

		// order 2 still runs
		cabinetID := int64(7)
		h.mockSyncOrderRepository.EXPECT().GetByID(ctx, int64(2)).
			Return(&models.SyncOrder{ID: 2, CabinetID: &cabinetID, Pages: 1, Status: models.SyncOrderStatusPending}, nil)
		h.mockSyncOrderRepository.EXPECT().MarkInProgress(ctx, int64(2)).Return(nil)
		h.mockCabinetRepository.EXPECT().GetByID(ctx, cabinetID).
			Return(&models.Cabinet{ID: cabinetID, Login: "u", Password: "p"}, nil)
		h.mockPanelClient.EXPECT().Authenticate(gomock.Any(), "u", "p").Return(panelSession(), nil)
		h.mockPanelClient.EXPECT().FetchTransactionPage(gomock.Any(), panelSession(), 1).Return(nil, nil)
		h.mockSyncOrderRepository.EXPECT().
			UpsertProcessedEntry(gomock.Any(), int64(2), cabinetID, models.CabinetSyncResult{}).
			Return(nil)
		h.mockSyncOrderRepository.EXPECT().Complete(ctx, int64(2)).Return(nil)

		err := h.syncService.ProcessSyncOrders(ctx)

		assert.NoError(t, err)
	})

	t.Run("listing pending fails", func(t *testing.T) {
		h := initTestServiceHelper(t, config.Config{})

		h.mockSyncOrderRepository.EXPECT().GetPending(ctx).Return(nil, errors.New("connection refused"))

		err := h.syncService.ProcessSyncOrders(ctx)

		assert.Error(t, err)
	})
}

func Test_SyncService_FailStaleOrders(t *testing.T) {
	ctx := context.Background()

	t.Run("uses configured threshold", func(t *testing.T) {
		cfg := config.Config{}
		cfg.Sync.StaleAfter = time.Hour

		h := initTestServiceHelper(t, cfg)

		h.mockSyncOrderRepository.EXPECT().
			FailStale(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, cutoff time.Time) (int64, error) {
				assert.WithinDuration(t, common.Now().Add(-time.Hour), cutoff, time.Minute)
				return 2, nil
			})

		failed, err := h.syncService.FailStaleOrders(ctx)

		assert.NoError(t, err)
		assert.Equal(t, int64(2), failed)
	})

	t.Run("defaults to thirty minutes", func(t *testing.T) {
		h := initTestServiceHelper(t, config.Config{})

		h.mockSyncOrderRepository.EXPECT().
			FailStale(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, cutoff time.Time) (int64, error) {
				assert.WithinDuration(t, common.Now().Add(-30*time.Minute), cutoff, time.Minute)
				return 0, nil
			})

		failed, err := h.syncService.FailStaleOrders(ctx)

		assert.NoError(t, err)
		assert.Zero(t, failed)
	})
}
