package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pmatchdesk/go-cabinet-sync/internal/common"
	"github.com/pmatchdesk/go-cabinet-sync/internal/common/chunkhelper"
	"github.com/pmatchdesk/go-cabinet-sync/internal/common/log"
	"github.com/pmatchdesk/go-cabinet-sync/internal/models"
	"github.com/pmatchdesk/go-cabinet-sync/internal/monitoring"
)

// ProcessOrder implements SyncService.
//
// Cabinet attempts are isolated: one cabinet failing to authenticate or
// fetch never stops its siblings, the failure is recorded in the order's
// processed map instead. Only a single-cabinet order failing, or cabinet
// resolution failing, fails the order as a whole.
func (s *syncService) ProcessOrder(ctx context.Context, id int64) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	repo := s.srv.sqlRepo.GetSyncOrderRepository()

	order, err := repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err = repo.MarkInProgress(ctx, id); err != nil {
		return err
	}

	log.Info(ctx, "[SYNC-ORDER]",
		log.Int64("order_id", id),
		log.String("operation", "start processing"),
		log.Int("pages", order.Pages))

	cabinets, err := s.resolveCabinets(ctx, order)
	if err != nil {
		return s.failOrder(ctx, id, err)
	}

	var failedCabinets atomic.Int64

	chunkSize := s.srv.conf.Sync.ConcurrentRequests
	chunks := chunkhelper.Chunk(cabinets, chunkSize)

	progress := chunkhelper.SyncProgress{
		OrderID:       fmt.Sprint(id),
		StartTime:     common.Now(),
		TotalChunks:   len(chunks),
		TotalCabinets: len(cabinets),
	}

	for i, chunk := range chunks {
		eg, egCtx := errgroup.WithContext(ctx)

		for _, cab := range chunk {
			cab := cab
			eg.Go(func() error {
				result := s.syncCabinet(egCtx, order, cab)
				if result.Error != "" {
					failedCabinets.Add(1)
				}

				// Persist progress right away so pollers can watch the
				// order advance cabinet by cabinet.
				if upsertErr := repo.UpsertProcessedEntry(egCtx, id, cab.ID, result); upsertErr != nil {
					return upsertErr
				}
				return nil
			})
		}

		if err = eg.Wait(); err != nil {
			return s.failOrder(ctx, id, err)
		}

		progress.LogProgress(ctx, i+1, len(chunk))

		if i < len(chunks)-1 && s.srv.conf.Sync.ChunkDelay > 0 {
			time.Sleep(s.srv.conf.Sync.ChunkDelay)
		}
	}

	// A single-cabinet order inherits its only cabinet's failure.
	if !order.IsAllCabinets() && failedCabinets.Load() > 0 {
		updated, getErr := repo.GetByID(ctx, id)
		message := "cabinet sync failed"
		if getErr == nil {
			if entry, ok := updated.Processed[fmt.Sprint(*order.CabinetID)]; ok && entry.Error != "" {
				message = entry.Error
			}
		}
		return s.failOrder(ctx, id, fmt.Errorf("%s", message))
	}

	if err = repo.Complete(ctx, id); err != nil {
		return err
	}

	s.srv.metrics.GetSyncPrometheus().RecordOrderFinished(models.SyncOrderStatusCompleted)

	log.Info(ctx, "[SYNC-ORDER]",
		log.Int64("order_id", id),
		log.String("operation", "finished processing"),
		log.Int64("failed_cabinets", failedCabinets.Load()),
		log.Int("total_cabinets", len(cabinets)))

	return nil
}

func (s *syncService) resolveCabinets(ctx context.Context, order *models.SyncOrder) ([]models.Cabinet, error) {
	if order.IsAllCabinets() {
		return s.srv.sqlRepo.GetCabinetRepository().GetAll(ctx)
	}

	cab, err := s.srv.sqlRepo.GetCabinetRepository().GetByID(ctx, *order.CabinetID)
	if err != nil {
		return nil, err
	}

	return []models.Cabinet{*cab}, nil
}

// syncCabinet authenticates one cabinet and walks its transaction pages
// up to the order's requested depth, stopping early on an empty page.
// Failures never escape: they come back inside the result entry.
func (s *syncService) syncCabinet(ctx context.Context, order *models.SyncOrder, cab models.Cabinet) (result models.CabinetSyncResult) {
	start := common.Now()
	var cabErr error
	defer func() {
		s.srv.metrics.GetSyncPrometheus().RecordCabinetSync(time.Since(start), cabErr)
	}()

	if s.srv.conf.Sync.CabinetTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.srv.conf.Sync.CabinetTimeout)
		defer cancel()
	}

	session, cabErr := s.srv.panelClient.Authenticate(ctx, cab.Login, cab.Password)
	if cabErr != nil {
		log.Warn(ctx, "[SYNC-CABINET]",
			log.Int64("cabinet_id", cab.ID),
			log.String("status", "authentication failed"),
			log.Err(cabErr))
		// A failure entry carries no counts even when earlier pages
		// landed; the stored transactions themselves are kept.
		return models.CabinetSyncResult{Error: cabErr.Error()}
	}

	reauthenticated := false
	for page := 1; page <= order.Pages; page++ {
		records, fetchErr := s.srv.panelClient.FetchTransactionPage(ctx, session, page)
		if fetchErr != nil {
			// The client already dropped the dead cached session, so a
			// single fresh login is enough to resume the same page.
			if errors.Is(fetchErr, common.ErrSessionExpired) && !reauthenticated {
				reauthenticated = true
				session, cabErr = s.srv.panelClient.Authenticate(ctx, cab.Login, cab.Password)
				if cabErr == nil {
					page--
					continue
				}
				return models.CabinetSyncResult{Error: cabErr.Error()}
			}

			cabErr = fetchErr
			log.Warn(ctx, "[SYNC-CABINET]",
				log.Int64("cabinet_id", cab.ID),
				log.Int("page", page),
				log.String("status", "fetch failed"),
				log.Err(fetchErr))
			return models.CabinetSyncResult{Error: fetchErr.Error()}
		}

		// An empty page means the cabinet history is exhausted.
		if len(records) == 0 {
			break
		}

		persisted, persistErr := s.srv.Transaction.PersistBatch(ctx, cab.ID, records)
		if persistErr != nil {
			cabErr = persistErr
			return models.CabinetSyncResult{Error: persistErr.Error()}
		}

		result.TotalProcessed += persisted.TotalProcessed
		result.NewTransactions += persisted.NewTransactions
	}

	return result
}

func (s *syncService) failOrder(ctx context.Context, id int64, cause error) error {
	if failErr := s.srv.sqlRepo.GetSyncOrderRepository().Fail(ctx, id, cause.Error()); failErr != nil {
		log.Error(ctx, "[SYNC-ORDER]",
			log.Int64("order_id", id),
			log.String("status", "unable to mark order failed"),
			log.Err(failErr))
	}

	s.srv.metrics.GetSyncPrometheus().RecordOrderFinished(models.SyncOrderStatusFailed)

	return cause
}
