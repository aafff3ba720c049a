package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/pmatchdesk/go-cabinet-sync/internal/common"
	"github.com/pmatchdesk/go-cabinet-sync/internal/config"
	"github.com/pmatchdesk/go-cabinet-sync/internal/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func Test_CabinetService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		h := initTestServiceHelper(t, config.Config{})

		h.mockCabinetRepository.EXPECT().
			Create(ctx, &models.Cabinet{Name: "main", Login: "user", Password: "secret"}).
			Return(&models.Cabinet{ID: 1, Name: "main", Login: "user", Password: "secret"}, nil)

		output, err := h.cabinetService.Create(ctx, models.CreateCabinetRequest{
			Name:     "main",
			Login:    "user",
			Password: "secret",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), output.ID)
	})

	t.Run("duplicate name", func(t *testing.T) {
		h := initTestServiceHelper(t, config.Config{})

		h.mockCabinetRepository.EXPECT().
			Create(ctx, gomock.Any()).
			Return(nil, common.ErrDataExist)

		_, err := h.cabinetService.Create(ctx, models.CreateCabinetRequest{
			Name:     "main",
			Login:    "user",
			Password: "secret",
		})

		assert.ErrorIs(t, err, common.ErrDataExist)
	})
}

func Test_CabinetService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		h := initTestServiceHelper(t, config.Config{})

		want := &models.Cabinet{ID: 7, Name: "main"}
		h.mockCabinetRepository.EXPECT().GetByID(ctx, int64(7)).Return(want, nil)

		got, err := h.cabinetService.GetByID(ctx, 7)

		assert.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("not found", func(t *testing.T) {
		h := initTestServiceHelper(t, config.Config{})

		h.mockCabinetRepository.EXPECT().GetByID(ctx, int64(99)).Return(nil, common.ErrCabinetNotFound)

		_, err := h.cabinetService.GetByID(ctx, 99)

		assert.ErrorIs(t, err, common.ErrCabinetNotFound)
	})
}

func Test_CabinetService_GetList(t *testing.T) {
	ctx := context.Background()

	opts := models.CabinetFilterOptions{Limit: 10}

	t.Run("success", func(t *testing.T) {
		h := initTestServiceHelper(t, config.Config{})

		want := []models.Cabinet{{ID: 1}, {ID: 2}}
		h.mockCabinetRepository.EXPECT().GetList(ctx, opts).Return(want, nil)
		h.mockCabinetRepository.EXPECT().CountAll(ctx, opts).Return(2, nil)

		cabinets, total, err := h.cabinetService.GetList(ctx, opts)

		assert.NoError(t, err)
		assert.Equal(t, want, cabinets)
		assert.Equal(t, 2, total)
	})

	t.Run("list query fails", func(t *testing.T) {
		h := initTestServiceHelper(t, config.Config{})

		h.mockCabinetRepository.EXPECT().GetList(ctx, opts).Return(nil, errors.New("connection refused"))

		_, _, err := h.cabinetService.GetList(ctx, opts)

		assert.Error(t, err)
	})
}

func Test_CabinetService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("empty fields keep current values", func(t *testing.T) {
		h := initTestServiceHelper(t, config.Config{})

		h.mockCabinetRepository.EXPECT().GetByID(ctx, int64(7)).
			Return(&models.Cabinet{ID: 7, Name: "main", Login: "user", Password: "secret"}, nil)

		h.mockCabinetRepository.EXPECT().
			Update(ctx, int64(7), &models.Cabinet{ID: 7, Name: "renamed", Login: "user", Password: "secret"}).
			DoAndReturn(func(_ context.Context, _ int64, in *models.Cabinet) (*models.Cabinet, error) {
				return in, nil
			})

		output, err := h.cabinetService.Update(ctx, 7, models.UpdateCabinetRequest{Name: "renamed"})

		assert.NoError(t, err)
		assert.Equal(t, "renamed", output.Name)
		assert.Equal(t, "user", output.Login)
	})

	t.Run("not found", func(t *testing.T) {
		h := initTestServiceHelper(t, config.Config{})

		h.mockCabinetRepository.EXPECT().GetByID(ctx, int64(99)).Return(nil, common.ErrCabinetNotFound)

		_, err := h.cabinetService.Update(ctx, 99, models.UpdateCabinetRequest{Name: "renamed"})

		assert.ErrorIs(t, err, common.ErrCabinetNotFound)
	})
}

func Test_CabinetService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		h := initTestServiceHelper(t, config.Config{})

		h.mockCabinetRepository.EXPECT().DeleteByID(ctx, int64(7)).Return(nil)

		assert.NoError(t, h.cabinetService.Delete(ctx, 7))
	})

	t.Run("not found", func(t *testing.T) {
		h := initTestServiceHelper(t, config.Config{})

		h.mockCabinetRepository.EXPECT().DeleteByID(ctx, int64(99)).Return(common.ErrCabinetNotFound)

		assert.ErrorIs(t, h.cabinetService.Delete(ctx, 99), common.ErrCabinetNotFound)
	})
}
