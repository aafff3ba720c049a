package services

import (
	"context"

	"github.com/pmatchdesk/go-cabinet-sync/internal/common/log"
	"github.com/pmatchdesk/go-cabinet-sync/internal/common/panel"
	"github.com/pmatchdesk/go-cabinet-sync/internal/models"
	"github.com/pmatchdesk/go-cabinet-sync/internal/monitoring"
)

type TransactionService interface {
	// PersistBatch stores one fetched page of raw panel records for a
	// cabinet. Records already present for the cabinet are skipped, a
	// single bad record never aborts the batch.
	PersistBatch(ctx context.Context, cabinetID int64, records []panel.RawTransaction) (result models.PersistResult, err error)
	GetList(ctx context.Context, opts models.ExternalTransactionFilterOptions) (transactions []models.ExternalTransaction, total int, err error)
}

type transaction service

var _ TransactionService = (*transaction)(nil)

// PersistBatch implements TransactionService.
func (s *transaction) PersistBatch(ctx context.Context, cabinetID int64, records []panel.RawTransaction) (result models.PersistResult, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	repo := s.srv.sqlRepo.GetExternalTransactionRepository()

	for _, record := range records {
		result.TotalProcessed++

		created, insertErr := repo.CreateIfAbsent(ctx, &models.ExternalTransaction{
			ExternalID:         record.ID,
			CabinetID:          cabinetID,
			Wallet:             record.Wallet,
			Amount:             record.Amount,
			Total:              record.Total,
			Status:             record.Status,
			ExternalCreatedAt:  record.CreatedAt,
			ExternalApprovedAt: record.ApprovedAt,
			ExternalExpiredAt:  record.ExpiredAt,
			Payload:            models.Payload(record.Raw),
		})
		if insertErr != nil {
			result.Failed++
			log.Warn(ctx, "[TRANSACTION-PERSIST]",
				log.String("externalId", record.ID),
				log.Int64("cabinetId", cabinetID),
				log.Err(insertErr))
			continue
		}

		if created {
			result.NewTransactions++
		}
	}

	duplicates := result.TotalProcessed - result.NewTransactions - result.Failed
	s.srv.metrics.GetSyncPrometheus().RecordIngestion(result.NewTransactions, duplicates)

	return result, nil
}

// GetList implements TransactionService.
func (s *transaction) GetList(ctx context.Context, opts models.ExternalTransactionFilterOptions) (transactions []models.ExternalTransaction, total int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	repo := s.srv.sqlRepo.GetExternalTransactionRepository()

	transactions, err = repo.GetList(ctx, opts)
	if err != nil {
		return transactions, total, err
	}

	total, err = repo.CountAll(ctx, opts)
	if err != nil {
		return
	}

	return transactions, total, nil
}
