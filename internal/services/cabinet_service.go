package services

import (
	"context"

	"github.com/pmatchdesk/go-cabinet-sync/internal/models"
	"github.com/pmatchdesk/go-cabinet-sync/internal/monitoring"
)

type CabinetService interface {
	Create(ctx context.Context, req models.CreateCabinetRequest) (output *models.Cabinet, err error)
	GetByID(ctx context.Context, id int64) (output *models.Cabinet, err error)
	GetList(ctx context.Context, opts models.CabinetFilterOptions) (cabinets []models.Cabinet, total int, err error)
	Update(ctx context.Context, id int64, req models.UpdateCabinetRequest) (output *models.Cabinet, err error)
	Delete(ctx context.Context, id int64) error
}

type cabinet service

var _ CabinetService = (*cabinet)(nil)

// Create implements CabinetService.
func (s *cabinet) Create(ctx context.Context, req models.CreateCabinetRequest) (output *models.Cabinet, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	output, err = s.srv.sqlRepo.GetCabinetRepository().Create(ctx, &models.Cabinet{
		Name:     req.Name,
		Login:    req.Login,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// GetByID implements CabinetService.
func (s *cabinet) GetByID(ctx context.Context, id int64) (output *models.Cabinet, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return s.srv.sqlRepo.GetCabinetRepository().GetByID(ctx, id)
}

// GetList implements CabinetService.
func (s *cabinet) GetList(ctx context.Context, opts models.CabinetFilterOptions) (cabinets []models.Cabinet, total int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	repo := s.srv.sqlRepo.GetCabinetRepository()

	cabinets, err = repo.GetList(ctx, opts)
	if err != nil {
		return cabinets, total, err
	}

	total, err = repo.CountAll(ctx, opts)
	if err != nil {
		return
	}

	return cabinets, total, nil
}

// Update implements CabinetService. Empty request fields keep their
// current value.
func (s *cabinet) Update(ctx context.Context, id int64, req models.UpdateCabinetRequest) (output *models.Cabinet, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	repo := s.srv.sqlRepo.GetCabinetRepository()

	existing, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		existing.Name = req.Name
	}
	if req.Login != "" {
		existing.Login = req.Login
	}
	if req.Password != "" {
		existing.Password = req.Password
	}

	return repo.Update(ctx, id, existing)
}

// Delete implements CabinetService.
func (s *cabinet) Delete(ctx context.Context, id int64) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return s.srv.sqlRepo.GetCabinetRepository().DeleteByID(ctx, id)
}
