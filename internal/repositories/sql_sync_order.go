package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/pmatchdesk/go-cabinet-sync/internal/common"
	"github.com/pmatchdesk/go-cabinet-sync/internal/models"
	"github.com/pmatchdesk/go-cabinet-sync/internal/monitoring"
)

type SyncOrderRepository interface {
	Create(ctx context.Context, in *models.SyncOrder) (created *models.SyncOrder, err error)
	GetByID(ctx context.Context, id int64) (result *models.SyncOrder, err error)
	// GetPending returns PENDING orders in creation order, oldest first.
	GetPending(ctx context.Context) (result []models.SyncOrder, err error)
	GetList(ctx context.Context, opts models.SyncOrderFilterOptions) (result []models.SyncOrder, err error)
	CountAll(ctx context.Context, opts models.SyncOrderFilterOptions) (total int, err error)
	// MarkInProgress transitions PENDING -> IN_PROGRESS and stamps startSyncAt.
	// Returns ErrSyncOrderNotPending when the order is missing or already past PENDING.
	MarkInProgress(ctx context.Context, id int64) error
	// UpsertProcessedEntry merges one cabinet's result into the processed map
	// atomically, so concurrent cabinet writers cannot lose updates.
	UpsertProcessedEntry(ctx context.Context, id int64, cabinetID int64, result models.CabinetSyncResult) error
	Complete(ctx context.Context, id int64) error
	Fail(ctx context.Context, id int64, message string) error
	// FailStale fails IN_PROGRESS orders whose startSyncAt is older than the
	// cutoff. These were abandoned by a crashed worker.
	FailStale(ctx context.Context, cutoff time.Time) (failed int64, err error)
}

type syncOrderRepository sqlRepo

var _ SyncOrderRepository = (*syncOrderRepository)(nil)

func (r *syncOrderRepository) Create(ctx context.Context, in *models.SyncOrder) (created *models.SyncOrder, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	var entity models.SyncOrder
	err = db.QueryRowContext(ctx, querySyncOrderCreate, in.CabinetID, in.Pages).Scan(
		&entity.ID,
		&entity.Status,
		&entity.CreatedAt,
	)
	if err != nil {
		return
	}

	entity.CabinetID = in.CabinetID
	entity.Pages = in.Pages
	entity.Processed = models.ProcessedMap{}
	created = &entity

	return
}

func (r *syncOrderRepository) GetByID(ctx context.Context, id int64) (result *models.SyncOrder, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	result = &models.SyncOrder{}
	err = db.QueryRowContext(ctx, querySyncOrderGetByID, id).Scan(
		&result.ID,
		&result.CabinetID,
		&result.Pages,
		&result.Status,
		&result.ErrorMessage,
		&result.Processed,
		&result.CreatedAt,
		&result.StartSyncAt,
		&result.EndSyncAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrSyncOrderNotFound
		}
		return nil, err
	}

	return result, nil
}

func (r *syncOrderRepository) GetPending(ctx context.Context) (result []models.SyncOrder, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	rows, err := db.QueryContext(ctx, querySyncOrderGetPending, models.SyncOrderStatusPending)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var so models.SyncOrder
		err = rows.Scan(
			&so.ID,
			&so.CabinetID,
			&so.Pages,
			&so.Status,
			&so.ErrorMessage,
			&so.Processed,
			&so.CreatedAt,
			&so.StartSyncAt,
			&so.EndSyncAt,
		)
		if err != nil {
			return result, err
		}
		result = append(result, so)
	}
	if rows.Err() != nil {
		return result, rows.Err()
	}

	return result, nil
}

func (r *syncOrderRepository) GetList(ctx context.Context, opts models.SyncOrderFilterOptions) (result []models.SyncOrder, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	query, args, err := buildListSyncOrderQuery(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var so models.SyncOrder
		err = rows.Scan(
			&so.ID,
			&so.CabinetID,
			&so.Pages,
			&so.Status,
			&so.ErrorMessage,
			&so.Processed,
			&so.CreatedAt,
			&so.StartSyncAt,
			&so.EndSyncAt,
		)
		if err != nil {
			return result, err
		}
		result = append(result, so)
	}
	if rows.Err() != nil {
		return result, rows.Err()
	}

	return result, nil
}

func (r *syncOrderRepository) CountAll(ctx context.Context, opts models.SyncOrderFilterOptions) (total int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	query, args, err := buildCountSyncOrderQuery(opts)
	if err != nil {
		return total, fmt.Errorf("failed to build query: %w", err)
	}

	if err = db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return
	}

	return
}

func (r *syncOrderRepository) MarkInProgress(ctx context.Context, id int64) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	result, err := db.ExecContext(ctx, querySyncOrderMarkInProgress,
		id, models.SyncOrderStatusInProgress, models.SyncOrderStatusPending)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return common.ErrSyncOrderNotPending
	}

	return nil
}

func (r *syncOrderRepository) UpsertProcessedEntry(ctx context.Context, id int64, cabinetID int64, entry models.CabinetSyncResult) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	patch, err := json.Marshal(models.ProcessedMap{fmt.Sprint(cabinetID): entry})
	if err != nil {
		return err
	}

	result, err := db.ExecContext(ctx, querySyncOrderUpsertProcessedEntry, id, patch)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return common.ErrSyncOrderNotFound
	}

	return nil
}

func (r *syncOrderRepository) Complete(ctx context.Context, id int64) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	result, err := db.ExecContext(ctx, querySyncOrderComplete,
		id, models.SyncOrderStatusCompleted, models.SyncOrderStatusInProgress)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return common.ErrSyncOrderTerminal
	}

	return nil
}

func (r *syncOrderRepository) Fail(ctx context.Context, id int64, message string) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	result, err := db.ExecContext(ctx, querySyncOrderFail,
		id, models.SyncOrderStatusFailed, message, models.SyncOrderStatusInProgress)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return common.ErrSyncOrderTerminal
	}

	return nil
}

func (r *syncOrderRepository) FailStale(ctx context.Context, cutoff time.Time) (failed int64, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	result, err := db.ExecContext(ctx, querySyncOrderFailStale,
		models.SyncOrderStatusFailed, models.SyncOrderStatusInProgress, cutoff)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
