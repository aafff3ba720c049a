package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/pmatchdesk/go-cabinet-sync/internal/common"
	"github.com/pmatchdesk/go-cabinet-sync/internal/config"
	"github.com/pmatchdesk/go-cabinet-sync/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestSyncOrderRepositoryTestSuite(t *testing.T) {
	t.Helper()
	suite.Run(t, new(syncOrderRepoTestSuite))
}

type syncOrderRepoTestSuite struct {
	suite.Suite
	t       *testing.T
	writeDB *sql.DB
	readDB  *sql.DB
	mock    sqlmock.Sqlmock
	repo    SyncOrderRepository
}

func (suite *syncOrderRepoTestSuite) SetupTest() {
	var err error
	var cfg config.Config

	suite.writeDB, suite.mock, err = sqlmock.New()
	require.NoError(suite.T(), err)

	suite.readDB = suite.writeDB

	suite.t = suite.T()
	suite.repo = NewSQLRepository(suite.writeDB, suite.readDB, cfg).GetSyncOrderRepository()
}

func (suite *syncOrderRepoTestSuite) TearDownTest() {
	defer suite.writeDB.Close()
}

func (suite *syncOrderRepoTestSuite) TestRepository_Create() {
	testCases := []struct {
		name    string
		in      models.SyncOrder
		wantErr bool
		doMock  func(in models.SyncOrder)
	}{
		{
			name: "happy path",
			in:   models.SyncOrder{Pages: 10},
			doMock: func(in models.SyncOrder) {
				rows := sqlmock.
					NewRows([]string{"id", "status", "createdAt"}).
					AddRow(1, models.SyncOrderStatusPending, time.Now())

				suite.mock.
					ExpectQuery(regexp.QuoteMeta(querySyncOrderCreate)).
					WillReturnRows(rows)
			},
			wantErr: false,
		},
		{
			name: "error db",
			in:   models.SyncOrder{Pages: 10},
			doMock: func(in models.SyncOrder) {
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(querySyncOrderCreate)).
					WillReturnError(assert.AnError)
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		suite.t.Run(tc.name, func(t *testing.T) {
			tc.doMock(tc.in)

			created, err := suite.repo.Create(context.Background(), &tc.in)
			assert.Equal(t, tc.wantErr, err != nil)
			if !tc.wantErr {
				assert.Equal(t, models.SyncOrderStatusPending, created.Status)
				assert.NotNil(t, created.Processed)
			}

			if err = suite.mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}

func (suite *syncOrderRepoTestSuite) TestRepository_GetByID() {
	suite.t.Run("happy path scans processed map", func(t *testing.T) {
		cabinetID := int64(7)
		rows := sqlmock.
			NewRows([]string{"id", "cabinetId", "pages", "status", "errorMessage", "processed", "createdAt", "startSyncAt", "endSyncAt"}).
			AddRow(1, cabinetID, 2, models.SyncOrderStatusCompleted, "", []byte(`{"7":{"totalProcessed":2,"newTransactions":2}}`), time.Now(), time.Now(), time.Now())

		suite.mock.
			ExpectQuery(regexp.QuoteMeta(querySyncOrderGetByID)).
			WithArgs(int64(1)).
			WillReturnRows(rows)

		result, err := suite.repo.GetByID(context.Background(), 1)
		require.NoError(t, err)
		require.NotNil(t, result.CabinetID)
		assert.Equal(t, cabinetID, *result.CabinetID)
		assert.Equal(t, models.CabinetSyncResult{TotalProcessed: 2, NewTransactions: 2}, result.Processed["7"])
	})

	suite.t.Run("missing order", func(t *testing.T) {
		suite.mock.
			ExpectQuery(regexp.QuoteMeta(querySyncOrderGetByID)).
			WithArgs(int64(42)).
			WillReturnError(sql.ErrNoRows)

		_, err := suite.repo.GetByID(context.Background(), 42)
		assert.ErrorIs(t, err, common.ErrSyncOrderNotFound)
	})
}

func (suite *syncOrderRepoTestSuite) TestRepository_GetPending() {
	suite.t.Run("returns pending orders oldest first", func(t *testing.T) {
		rows := sqlmock.
			NewRows([]string{"id", "cabinetId", "pages", "status", "errorMessage", "processed", "createdAt", "startSyncAt", "endSyncAt"}).
			AddRow(1, nil, 10, models.SyncOrderStatusPending, "", []byte(`{}`), time.Now().Add(-time.Hour), nil, nil).
			AddRow(2, nil, 10, models.SyncOrderStatusPending, "", []byte(`{}`), time.Now(), nil, nil)

		suite.mock.
			ExpectQuery(regexp.QuoteMeta(querySyncOrderGetPending)).
			WithArgs(models.SyncOrderStatusPending).
			WillReturnRows(rows)

		result, err := suite.repo.GetPending(context.Background())
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Nil(t, result[0].CabinetID)
		assert.EqualValues(t, 1, result[0].ID)
	})
}

func (suite *syncOrderRepoTestSuite) TestRepository_MarkInProgress() {
	suite.t.Run("happy path", func(t *testing.T) {
		suite.mock.
			ExpectExec(regexp.QuoteMeta(querySyncOrderMarkInProgress)).
			WithArgs(int64(1), models.SyncOrderStatusInProgress, models.SyncOrderStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, suite.repo.MarkInProgress(context.Background(), 1))
	})

	suite.t.Run("already claimed", func(t *testing.T) {
		suite.mock.
			ExpectExec(regexp.QuoteMeta(querySyncOrderMarkInProgress)).
			WithArgs(int64(1), models.SyncOrderStatusInProgress, models.SyncOrderStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := suite.repo.MarkInProgress(context.Background(), 1)
		assert.ErrorIs(t, err, common.ErrSyncOrderNotPending)
	})
}

func (suite *syncOrderRepoTestSuite) TestRepository_UpsertProcessedEntry() {
	suite.t.Run("merges one cabinet entry", func(t *testing.T) {
		suite.mock.
			ExpectExec(regexp.QuoteMeta(querySyncOrderUpsertProcessedEntry)).
			WithArgs(int64(1), []byte(`{"7":{"totalProcessed":2,"newTransactions":1}}`)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := suite.repo.UpsertProcessedEntry(context.Background(), 1, 7,
			models.CabinetSyncResult{TotalProcessed: 2, NewTransactions: 1})
		assert.NoError(t, err)
	})

	suite.t.Run("missing order", func(t *testing.T) {
		suite.mock.
			ExpectExec(regexp.QuoteMeta(querySyncOrderUpsertProcessedEntry)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := suite.repo.UpsertProcessedEntry(context.Background(), 99, 7, models.CabinetSyncResult{})
		assert.ErrorIs(t, err, common.ErrSyncOrderNotFound)
	})
}

func (suite *syncOrderRepoTestSuite) TestRepository_TerminalTransitions() {
	suite.t.Run("complete happy path", func(t *testing.T) {
		suite.mock.
			ExpectExec(regexp.QuoteMeta(querySyncOrderComplete)).
			WithArgs(int64(1), models.SyncOrderStatusCompleted, models.SyncOrderStatusInProgress).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, suite.repo.Complete(context.Background(), 1))
	})

	suite.t.Run("complete refuses non in-progress order", func(t *testing.T) {
		suite.mock.
			ExpectExec(regexp.QuoteMeta(querySyncOrderComplete)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := suite.repo.Complete(context.Background(), 1)
		assert.ErrorIs(t, err, common.ErrSyncOrderTerminal)
	})

	suite.t.Run("fail stamps message", func(t *testing.T) {
		suite.mock.
			ExpectExec(regexp.QuoteMeta(querySyncOrderFail)).
			WithArgs(int64(1), models.SyncOrderStatusFailed, "cabinet not found", models.SyncOrderStatusInProgress).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, suite.repo.Fail(context.Background(), 1, "cabinet not found"))
	})
}

func (suite *syncOrderRepoTestSuite) TestRepository_FailStale() {
	suite.t.Run("fails abandoned orders", func(t *testing.T) {
		cutoff := time.Now().Add(-30 * time.Minute)
		suite.mock.
			ExpectExec(regexp.QuoteMeta(querySyncOrderFailStale)).
			WithArgs(models.SyncOrderStatusFailed, models.SyncOrderStatusInProgress, cutoff).
			WillReturnResult(sqlmock.NewResult(0, 2))

		failed, err := suite.repo.FailStale(context.Background(), cutoff)
		require.NoError(t, err)
		assert.EqualValues(t, 2, failed)
	})
}

func (suite *syncOrderRepoTestSuite) TestRepository_GetList() {
	suite.t.Run("filters by status", func(t *testing.T) {
		opts := models.SyncOrderFilterOptions{Status: models.SyncOrderStatusCompleted, Limit: 11}

		query, _, err := buildListSyncOrderQuery(opts)
		require.NoError(t, err)

		rows := sqlmock.
			NewRows([]string{"id", "cabinetId", "pages", "status", "errorMessage", "processed", "createdAt", "startSyncAt", "endSyncAt"}).
			AddRow(1, nil, 10, models.SyncOrderStatusCompleted, "", []byte(`{}`), time.Now(), time.Now(), time.Now())

		suite.mock.
			ExpectQuery(regexp.QuoteMeta(query)).
			WillReturnRows(rows)

		result, err := suite.repo.GetList(context.Background(), opts)
		require.NoError(t, err)
		assert.Len(t, result, 1)
	})
}

func Test_buildListSyncOrderQuery(t *testing.T) {
	t.Run("descending by default with over-fetch limit", func(t *testing.T) {
		query, args, err := buildListSyncOrderQuery(models.SyncOrderFilterOptions{Status: models.SyncOrderStatusPending, Limit: 11})
		require.NoError(t, err)
		assert.Contains(t, query, `"createdAt" DESC`)
		assert.Contains(t, query, "LIMIT 11")
		assert.Len(t, args, 1)
	})

	t.Run("prev cursor flips to ascending", func(t *testing.T) {
		before := time.Now()
		query, _, err := buildListSyncOrderQuery(models.SyncOrderFilterOptions{BeforeCreatedAt: &before, AscendingOrder: true, Limit: 11})
		require.NoError(t, err)
		assert.Contains(t, query, `"createdAt" ASC`)
	})
}
