package services

import (
	"context"
	"fmt"
	"time"

	"github.com/pmatchdesk/go-cabinet-sync/internal/common"
	"github.com/pmatchdesk/go-cabinet-sync/internal/common/log"
	"github.com/pmatchdesk/go-cabinet-sync/internal/models"
	"github.com/pmatchdesk/go-cabinet-sync/internal/monitoring"
	"github.com/pmatchdesk/go-cabinet-sync/internal/repositories"
)

// orderDedupWindow bounds how long an identical create request is
// rejected after one was accepted. The key expires on its own, so a
// failed create never blocks the next attempt for long.
const orderDedupWindow = time.Minute

type SyncService interface {
	// CreateOrder registers a PENDING sync order and notifies the worker
	// queue. The order is processed asynchronously.
	CreateOrder(ctx context.Context, req models.CreateSyncOrderRequest) (output *models.CreateSyncOrderResponse, err error)
	GetOrder(ctx context.Context, id int64) (output *models.SyncOrder, err error)
	GetListOrders(ctx context.Context, opts models.SyncOrderFilterOptions) (orders []models.SyncOrder, total int, err error)
	// ProcessOrder runs one order through its full lifecycle:
	// IN_PROGRESS, per-cabinet fan-out, then COMPLETED or FAILED.
	ProcessOrder(ctx context.Context, id int64) error
	// ProcessSyncOrders drains the PENDING queue, oldest order first.
	ProcessSyncOrders(ctx context.Context) error
	// FailStaleOrders fails IN_PROGRESS orders abandoned by a crashed
	// worker so they do not stay dangling forever.
	FailStaleOrders(ctx context.Context) (failed int64, err error)
}

type syncService service

var _ SyncService = (*syncService)(nil)

// CreateOrder implements SyncService.
func (s *syncService) CreateOrder(ctx context.Context, req models.CreateSyncOrderRequest) (output *models.CreateSyncOrderResponse, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	order, err := req.ToModel()
	if err != nil {
		return nil, err
	}

	if order.Pages == 0 {
		order.Pages = s.defaultPages()
	}

	// SetNX guards against the same order being requested twice in a
	// short window (double-clicked button, redelivered request). A cache
	// outage only drops the guard, never the order.
	dedupKey := orderDedupKey(order)
	if s.srv.cacheRepo != nil {
		acquired, cacheErr := s.srv.cacheRepo.SetIfNotExists(ctx, dedupKey, "1", orderDedupWindow)
		if cacheErr != nil {
			log.Warn(ctx, "[SYNC-ORDER]",
				log.String("status", "dedup cache unavailable"),
				log.Err(cacheErr))
		} else if !acquired {
			return nil, common.ErrSyncOrderDuplicate
		}
	}

	var created *models.SyncOrder
	err = s.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		// A single-cabinet order must reference a cabinet that exists,
		// and the check has to hold when the order row lands.
		if !order.IsAllCabinets() {
			if _, stepErr := r.GetCabinetRepository().GetByID(ctx, *order.CabinetID); stepErr != nil {
				return stepErr
			}
		}

		var stepErr error
		created, stepErr = r.GetSyncOrderRepository().Create(ctx, order)
		return stepErr
	})
	if err != nil {
		if s.srv.cacheRepo != nil {
			if delErr := s.srv.cacheRepo.Del(ctx, dedupKey); delErr != nil {
				log.Warn(ctx, "[SYNC-ORDER]",
					log.String("status", "unable to release dedup key"),
					log.Err(delErr))
			}
		}
		return nil, err
	}

	if s.srv.syncOrderPub != nil {
		if pubErr := s.srv.syncOrderPub.Publish(ctx, models.SyncOrderPublisher{
			ID:   fmt.Sprint(created.ID),
			Task: models.SyncOrderTaskName,
		}); pubErr != nil {
			// The order stays PENDING; the periodic worker job will
			// pick it up even without the queue notification.
			log.Warn(ctx, "[SYNC-ORDER]",
				log.Int64("order_id", created.ID),
				log.String("status", "publish failed"),
				log.Err(pubErr))
		}
	}

	return models.NewCreateSyncOrderResponse(created.ID), nil
}

// GetOrder implements SyncService.
func (s *syncService) GetOrder(ctx context.Context, id int64) (output *models.SyncOrder, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return s.srv.sqlRepo.GetSyncOrderRepository().GetByID(ctx, id)
}

// GetListOrders implements SyncService.
func (s *syncService) GetListOrders(ctx context.Context, opts models.SyncOrderFilterOptions) (orders []models.SyncOrder, total int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	repo := s.srv.sqlRepo.GetSyncOrderRepository()

	orders, err = repo.GetList(ctx, opts)
	if err != nil {
		return orders, total, err
	}

	total, err = repo.CountAll(ctx, opts)
	if err != nil {
		return
	}

	return orders, total, nil
}

// ProcessSyncOrders implements SyncService.
func (s *syncService) ProcessSyncOrders(ctx context.Context) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	pending, err := s.srv.sqlRepo.GetSyncOrderRepository().GetPending(ctx)
	if err != nil {
		return err
	}

	for _, order := range pending {
		if processErr := s.ProcessOrder(ctx, order.ID); processErr != nil {
			// Keep draining; a broken order must not block the queue.
			log.Warn(ctx, "[SYNC-ORDER]",
				log.Int64("order_id", order.ID),
				log.String("status", "process failed"),
				log.Err(processErr))
		}
	}

	return nil
}

// FailStaleOrders implements SyncService.
func (s *syncService) FailStaleOrders(ctx context.Context) (failed int64, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	staleAfter := 30 * time.Minute // default
	if s.srv.conf.Sync.StaleAfter != 0 {
		staleAfter = s.srv.conf.Sync.StaleAfter
	}

	cutoff := common.Now().Add(-staleAfter)

	failed, err = s.srv.sqlRepo.GetSyncOrderRepository().FailStale(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if failed > 0 {
		log.Warn(ctx, "[SYNC-ORDER]",
			log.Int64("stale_failed", failed),
			log.Time("cutoff", cutoff))
	}

	return failed, nil
}

func (s *syncService) defaultPages() int {
	if s.srv.conf.Sync.DefaultPages > 0 {
		return s.srv.conf.Sync.DefaultPages
	}
	return 10
}

func orderDedupKey(order *models.SyncOrder) string {
	scope := "all"
	if !order.IsAllCabinets() {
		scope = fmt.Sprint(*order.CabinetID)
	}
	return fmt.Sprintf("go-cabinet-sync:sync-order:requested:%s:%d", scope, order.Pages)
}
