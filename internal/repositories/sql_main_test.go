package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pmatchdesk/go-cabinet-sync/internal/config"
	"github.com/pmatchdesk/go-cabinet-sync/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Atomic(t *testing.T) {
	newRepo := func(t *testing.T) (*Repository, sqlmock.Sqlmock) {
		t.Helper()

		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		t.Cleanup(func() { db.Close() })

		return NewSQLRepository(db, db, config.Config{}), mock
	}

	t.Run("commits when the steps succeed", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(querySyncOrderCreate)).
			WithArgs(nil, 5).
			WillReturnRows(sqlmock.NewRows([]string{"id", "status", "createdAt"}).
				AddRow(int64(42), models.SyncOrderStatusPending, time.Now()))
		mock.ExpectCommit()

		err := repo.Atomic(context.Background(), func(ctx context.Context, r SQLRepository) error {
			// the injected tx must carry through the nested repository call
			created, stepErr := r.GetSyncOrderRepository().Create(ctx, &models.SyncOrder{Pages: 5})
			if stepErr != nil {
				return stepErr
			}
			assert.Equal(t, int64(42), created.ID)
			return nil
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when the steps fail", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectBegin()
		mock.ExpectRollback()

		err := repo.Atomic(context.Background(), func(ctx context.Context, r SQLRepository) error {
			return errors.New("step exploded")
		})

		assert.EqualError(t, err, "step exploded")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back before re-panicking", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectBegin()
		mock.ExpectRollback()

		assert.Panics(t, func() {
			_ = repo.Atomic(context.Background(), func(ctx context.Context, r SQLRepository) error {
				panic("boom")
			})
		})

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
