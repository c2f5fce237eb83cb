// internal/portfolio/postgres_test.go
package portfolio

import (
	"context"
	"encoding/json"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unihub-api/internal/common/errors"
	"unihub-api/internal/common/logger"
)

func newMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresStore(db, logger.NewTestLogger(t)), mock
}

func TestPostgresStore_Load(t *testing.T) {
	store, mock := newMockStore(t)

	data, err := json.Marshal(samplePortfolio())
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT data FROM portfolios`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow(data))

	p, err := store.Load(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 115, *p.ENTScore)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_LoadMissingRow(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT data FROM portfolios`).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"data"}))

	_, err := store.Load(context.Background(), "nobody")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_LoadCorruptSnapshot(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT data FROM portfolios`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow([]byte("{not json")))

	_, err := store.Load(context.Background(), "user-1")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodePortfolioStoreFailed, errors.AsStandardError(err).Code)
}

func TestPostgresStore_SaveUpserts(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(`INSERT INTO portfolios`).
		WithArgs("user-1", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.Save(context.Background(), "user-1", samplePortfolio())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_SaveQueryFailure(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(`INSERT INTO portfolios`).
		WithArgs("user-1", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(assert.AnError)

	err := store.Save(context.Background(), "user-1", samplePortfolio())
	require.Error(t, err)

	stdErr := errors.AsStandardError(err)
	assert.Equal(t, errors.ErrCodePortfolioStoreFailed, stdErr.Code)
	assert.True(t, stdErr.Retryable)
}

func TestPostgresStore_Clear(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(`DELETE FROM portfolios`).
		WithArgs("user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.Clear(context.Background(), "user-1")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
