package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pmatchdesk/go-cabinet-sync/internal/common"
	"github.com/pmatchdesk/go-cabinet-sync/internal/models"
	"github.com/pmatchdesk/go-cabinet-sync/internal/monitoring"
)

type ExternalTransactionRepository interface {
	// CreateIfAbsent inserts the record unless one already exists for the
	// same (externalId, cabinetId) pair. It reports whether a row was
	// actually created; a duplicate is not an error.
	CreateIfAbsent(ctx context.Context, in *models.ExternalTransaction) (created bool, err error)
	GetByExternalID(ctx context.Context, externalID string, cabinetID int64) (result *models.ExternalTransaction, err error)
	GetList(ctx context.Context, opts models.ExternalTransactionFilterOptions) (result []models.ExternalTransaction, err error)
	CountAll(ctx context.Context, opts models.ExternalTransactionFilterOptions) (total int, err error)
}

type externalTransactionRepository sqlRepo

var _ ExternalTransactionRepository = (*externalTransactionRepository)(nil)

func (r *externalTransactionRepository) CreateIfAbsent(ctx context.Context, in *models.ExternalTransaction) (created bool, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	err = db.QueryRowContext(ctx, queryExternalTransactionCreateIfAbsent,
		in.ExternalID,
		in.CabinetID,
		in.Wallet,
		in.Amount,
		in.Total,
		in.Status,
		in.ExternalCreatedAt,
		in.ExternalApprovedAt,
		in.ExternalExpiredAt,
		in.Payload,
	).Scan(&in.ID)
	if err != nil {
		// ON CONFLICT DO NOTHING returns no row for a duplicate.
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (r *externalTransactionRepository) GetByExternalID(ctx context.Context, externalID string, cabinetID int64) (result *models.ExternalTransaction, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	result = &models.ExternalTransaction{}
	err = db.QueryRowContext(ctx, queryExternalTransactionGetByExternalID, externalID, cabinetID).Scan(
		&result.ID,
		&result.ExternalID,
		&result.CabinetID,
		&result.Wallet,
		&result.Amount,
		&result.Total,
		&result.Status,
		&result.ExternalCreatedAt,
		&result.ExternalApprovedAt,
		&result.ExternalExpiredAt,
		&result.Payload,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrDataNotFound
		}
		return nil, err
	}

	return result, nil
}

func (r *externalTransactionRepository) GetList(ctx context.Context, opts models.ExternalTransactionFilterOptions) (result []models.ExternalTransaction, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	query, args, err := buildListExternalTransactionQuery(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var et models.ExternalTransaction
		err = rows.Scan(
			&et.ID,
			&et.ExternalID,
			&et.CabinetID,
			&et.Wallet,
			&et.Amount,
			&et.Total,
			&et.Status,
			&et.ExternalCreatedAt,
			&et.ExternalApprovedAt,
			&et.ExternalExpiredAt,
			&et.Payload,
			&et.CreatedAt,
			&et.UpdatedAt,
		)
		if err != nil {
			return result, err
		}
		result = append(result, et)
	}
	if rows.Err() != nil {
		return result, rows.Err()
	}

	return result, nil
}

func (r *externalTransactionRepository) CountAll(ctx context.Context, opts models.ExternalTransactionFilterOptions) (total int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	query, args, err := buildCountExternalTransactionQuery(opts)
	if err != nil {
		return total, fmt.Errorf("failed to build query: %w", err)
	}

	if err = db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return
	}

	return
}
