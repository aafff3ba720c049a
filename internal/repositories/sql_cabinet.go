package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pmatchdesk/go-cabinet-sync/internal/common"
	"github.com/pmatchdesk/go-cabinet-sync/internal/models"
	"github.com/pmatchdesk/go-cabinet-sync/internal/monitoring"

	"github.com/pmatchdesk/go-cabinet-sync/internal/common/log"
)

type CabinetRepository interface {
	Create(ctx context.Context, in *models.Cabinet) (created *models.Cabinet, err error)
	GetByID(ctx context.Context, id int64) (result *models.Cabinet, err error)
	GetAll(ctx context.Context) (result []models.Cabinet, err error)
	GetList(ctx context.Context, opts models.CabinetFilterOptions) (result []models.Cabinet, err error)
	CountAll(ctx context.Context, opts models.CabinetFilterOptions) (total int, err error)
	Update(ctx context.Context, id int64, in *models.Cabinet) (updated *models.Cabinet, err error)
	DeleteByID(ctx context.Context, id int64) error
}

type cabinetRepository sqlRepo

var _ CabinetRepository = (*cabinetRepository)(nil)

func (r *cabinetRepository) Create(ctx context.Context, in *models.Cabinet) (created *models.Cabinet, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	var entity models.Cabinet
	err = db.QueryRowContext(ctx, queryCabinetCreate, in.Name, in.Login, in.Password).Scan(
		&entity.ID,
		&entity.CreatedAt,
		&entity.UpdatedAt,
	)
	if err != nil {
		return
	}

	entity.Name = in.Name
	entity.Login = in.Login
	entity.Password = in.Password
	created = &entity

	return
}

func (r *cabinetRepository) GetByID(ctx context.Context, id int64) (result *models.Cabinet, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	result = &models.Cabinet{}
	err = db.QueryRowContext(ctx, queryCabinetGetByID, id).Scan(
		&result.ID,
		&result.Name,
		&result.Login,
		&result.Password,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrCabinetNotFound
		}
		return nil, err
	}

	return result, nil
}

func (r *cabinetRepository) GetAll(ctx context.Context) (result []models.Cabinet, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, queryCabinetGetAll)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var cabinet models.Cabinet
		err = rows.Scan(
			&cabinet.ID,
			&cabinet.Name,
			&cabinet.Login,
			&cabinet.Password,
			&cabinet.CreatedAt,
			&cabinet.UpdatedAt,
		)
		if err != nil {
			return result, err
		}
		result = append(result, cabinet)
	}
	if rows.Err() != nil {
		return result, rows.Err()
	}

	return result, nil
}

func (r *cabinetRepository) GetList(ctx context.Context, opts models.CabinetFilterOptions) (result []models.Cabinet, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	query, args, err := buildListCabinetQuery(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var cabinet models.Cabinet
		err = rows.Scan(
			&cabinet.ID,
			&cabinet.Name,
			&cabinet.Login,
			&cabinet.Password,
			&cabinet.CreatedAt,
			&cabinet.UpdatedAt,
		)
		if err != nil {
			return result, err
		}
		result = append(result, cabinet)
	}
	if rows.Err() != nil {
		return result, rows.Err()
	}

	return result, nil
}

func (r *cabinetRepository) CountAll(ctx context.Context, opts models.CabinetFilterOptions) (total int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	query, args, err := buildCountCabinetQuery(opts)
	if err != nil {
		return total, fmt.Errorf("failed to build query: %w", err)
	}

	if err = db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return
	}

	return
}

func (r *cabinetRepository) Update(ctx context.Context, id int64, in *models.Cabinet) (updated *models.Cabinet, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	result, err := db.ExecContext(ctx, queryCabinetUpdate, id, in.Name, in.Login, in.Password)
	if err != nil {
		return nil, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}

	if rowsAffected == 0 {
		err = common.ErrCabinetNotFound
		return
	}

	in.ID = id
	return in, nil
}

func (r *cabinetRepository) DeleteByID(ctx context.Context, id int64) error {
	var err error
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	result, err := db.ExecContext(ctx, queryCabinetDeleteByID, id)
	if err != nil {
		return err
	}

	// Check the number of rows affected
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected <= 0 {
		log.Warnf(ctx, "no row affected on delete id: %d", id)
	}

	return nil
}
