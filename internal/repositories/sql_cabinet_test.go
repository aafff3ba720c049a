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

func TestCabinetRepositoryTestSuite(t *testing.T) {
	t.Helper()
	suite.Run(t, new(cabinetRepoTestSuite))
}

type cabinetRepoTestSuite struct {
	suite.Suite
	t       *testing.T
	writeDB *sql.DB
	readDB  *sql.DB
	mock    sqlmock.Sqlmock
	repo    CabinetRepository
}

func (suite *cabinetRepoTestSuite) SetupTest() {
	var err error
	var cfg config.Config

	suite.writeDB, suite.mock, err = sqlmock.New()
	require.NoError(suite.T(), err)

	suite.readDB = suite.writeDB

	suite.t = suite.T()
	suite.repo = NewSQLRepository(suite.writeDB, suite.readDB, cfg).GetCabinetRepository()
}

func (suite *cabinetRepoTestSuite) TearDownTest() {
	defer suite.writeDB.Close()
}

func (suite *cabinetRepoTestSuite) TestRepository_Create() {
	suite.t.Run("happy path", func(t *testing.T) {
		rows := sqlmock.
			NewRows([]string{"id", "createdAt", "updatedAt"}).
			AddRow(7, time.Now(), time.Now())

		suite.mock.
			ExpectQuery(regexp.QuoteMeta(queryCabinetCreate)).
			WithArgs("Cabinet One", "ann", "pw").
			WillReturnRows(rows)

		created, err := suite.repo.Create(context.Background(), &models.Cabinet{Name: "Cabinet One", Login: "ann", Password: "pw"})
		require.NoError(t, err)
		assert.EqualValues(t, 7, created.ID)
		assert.Equal(t, "ann", created.Login)
	})

	suite.t.Run("error db", func(t *testing.T) {
		suite.mock.
			ExpectQuery(regexp.QuoteMeta(queryCabinetCreate)).
			WillReturnError(assert.AnError)

		_, err := suite.repo.Create(context.Background(), &models.Cabinet{})
		assert.Error(t, err)
	})
}

func (suite *cabinetRepoTestSuite) TestRepository_GetByID() {
	suite.t.Run("happy path", func(t *testing.T) {
		rows := sqlmock.
			NewRows([]string{"id", "name", "login", "password", "createdAt", "updatedAt"}).
			AddRow(7, "Cabinet One", "ann", "pw", time.Now(), time.Now())

		suite.mock.
			ExpectQuery(regexp.QuoteMeta(queryCabinetGetByID)).
			WithArgs(int64(7)).
			WillReturnRows(rows)

		result, err := suite.repo.GetByID(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, "ann", result.Login)
	})

	suite.t.Run("not found maps to cabinet not found", func(t *testing.T) {
		suite.mock.
			ExpectQuery(regexp.QuoteMeta(queryCabinetGetByID)).
			WithArgs(int64(404)).
			WillReturnError(sql.ErrNoRows)

		_, err := suite.repo.GetByID(context.Background(), 404)
		assert.ErrorIs(t, err, common.ErrCabinetNotFound)
	})
}

func (suite *cabinetRepoTestSuite) TestRepository_GetAll() {
	suite.t.Run("happy path", func(t *testing.T) {
		rows := sqlmock.
			NewRows([]string{"id", "name", "login", "password", "createdAt", "updatedAt"}).
			AddRow(1, "A", "a", "pw", time.Now(), time.Now()).
			AddRow(2, "B", "b", "pw", time.Now(), time.Now())

		suite.mock.
			ExpectQuery(regexp.QuoteMeta(queryCabinetGetAll)).
			WillReturnRows(rows)

		result, err := suite.repo.GetAll(context.Background())
		require.NoError(t, err)
		assert.Len(t, result, 2)
	})
}

func (suite *cabinetRepoTestSuite) TestRepository_Update() {
	suite.t.Run("happy path", func(t *testing.T) {
		suite.mock.
			ExpectExec(regexp.QuoteMeta(queryCabinetUpdate)).
			WithArgs(int64(7), "Renamed", "ann", "pw").
			WillReturnResult(sqlmock.NewResult(0, 1))

		updated, err := suite.repo.Update(context.Background(), 7, &models.Cabinet{Name: "Renamed", Login: "ann", Password: "pw"})
		require.NoError(t, err)
		assert.EqualValues(t, 7, updated.ID)
	})

	suite.t.Run("missing cabinet", func(t *testing.T) {
		suite.mock.
			ExpectExec(regexp.QuoteMeta(queryCabinetUpdate)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := suite.repo.Update(context.Background(), 404, &models.Cabinet{})
		assert.ErrorIs(t, err, common.ErrCabinetNotFound)
	})
}

func (suite *cabinetRepoTestSuite) TestRepository_DeleteByID() {
	suite.t.Run("happy path", func(t *testing.T) {
		suite.mock.
			ExpectExec(regexp.QuoteMeta(queryCabinetDeleteByID)).
			WithArgs(int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, suite.repo.DeleteByID(context.Background(), 7))
	})
}
