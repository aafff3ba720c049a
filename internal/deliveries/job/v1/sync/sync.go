package v1sync

import (
	"context"
	"time"

	"github.com/pmatchdesk/go-cabinet-sync/internal/common/flag"
	"github.com/pmatchdesk/go-cabinet-sync/internal/common/log"
	"github.com/pmatchdesk/go-cabinet-sync/internal/services"
)

type syncHandler struct {
	syncSrv services.SyncService
}

func Routes(ss services.SyncService) map[string]func(ctx context.Context, date time.Time, flag flag.Job) error {
	handler := syncHandler{syncSrv: ss}
	return map[string]func(ctx context.Context, date time.Time, flag flag.Job) error{
		"ProcessSyncOrders":   handler.ProcessSyncOrders,
		"FailStaleSyncOrders": handler.FailStaleSyncOrders,
		// add more job here
	}
}

// ProcessSyncOrders sweeps abandoned orders first, then drains the
// PENDING queue. It backs up the kafka consumer for deployments
// without a message broker.
func (sh *syncHandler) ProcessSyncOrders(ctx context.Context, date time.Time, flag flag.Job) error {
	failed, err := sh.syncSrv.FailStaleOrders(ctx)
	if err != nil {
		return err
	}
	if failed > 0 {
		log.Info(ctx, "ProcessSyncOrders", log.Int64("staleOrdersFailed", failed))
	}

	return sh.syncSrv.ProcessSyncOrders(ctx)
}

func (sh *syncHandler) FailStaleSyncOrders(ctx context.Context, date time.Time, flag flag.Job) error {
	failed, err := sh.syncSrv.FailStaleOrders(ctx)
	if err != nil {
		return err
	}

	log.Info(ctx, "FailStaleSyncOrders", log.Int64("staleOrdersFailed", failed))

	return nil
}
