package storage_test

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/malusev998/currency"
	"github.com/malusev998/currency/storage"
)

type IDGeneratorMock struct {
	mock.Mock
}

func (i *IDGeneratorMock) Generate() []byte {
	args := i.Called()
	if value, ok := args.Get(0).([]byte); ok {
		return value
	}
	return nil
}

const (
	insertQuery = "INSERT INTO currency_store_test_unit(id, position, from_currency, to_currency, rate, obtained_at) VALUES (?,?,?,?,?,?);"
	deleteQuery = "DELETE FROM currency_store_test_unit;"
	selectQuery = "SELECT from_currency, to_currency, rate, obtained_at FROM currency_store_test_unit ORDER BY position;"
)

func newMockStorage(t *testing.T, generator storage.IDGenerator) (*storage.SQLStorage, sqlmock.Sqlmock) {
	db, m, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.Nil(t, err)
	t.Cleanup(func() { _ = db.Close() })

	st, err := storage.NewSQLStorage(context.Background(), db, generator, "currency_store_test_unit", false)
	require.Nil(t, err)

	return st, m
}

func TestSQLStorage_Save(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	obtainedAt := time.Date(2024, time.January, 2, 3, 4, 5, 600000000, time.UTC)
	rates := currency.NewRateStore()
	rates.Add(currency.NewExchangeRate("USD", "EUR", 0.8, obtainedAt))

	t.Run("Transaction_Not_Started", func(t *testing.T) {
		asserts := require.New(t)
		st, m := newMockStorage(t, nil)
		m.ExpectBegin().WillReturnError(errors.New("error while starting transaction"))

		err := st.Save(ctx, rates)

		asserts.Nil(m.ExpectationsWereMet())
		asserts.Equal("error while starting transaction", err.Error())
	})

	t.Run("Prepare_SQL_WithError", func(t *testing.T) {
		asserts := require.New(t)
		st, m := newMockStorage(t, nil)
		m.ExpectBegin()
		m.ExpectExec(deleteQuery).WillReturnResult(sqlmock.NewResult(0, 0))
		m.ExpectPrepare(insertQuery).WillReturnError(errors.New("cannot create prepare statement"))
		m.ExpectRollback()

		err := st.Save(ctx, rates)

		asserts.Nil(m.ExpectationsWereMet())
		asserts.Equal("cannot create prepare statement", err.Error())
	})

	t.Run("Short_ID", func(t *testing.T) {
		asserts := require.New(t)
		generator := &IDGeneratorMock{}
		generator.On("Generate").Return(make([]byte, 10))
		st, m := newMockStorage(t, generator)
		m.ExpectBegin()
		m.ExpectExec(deleteQuery).WillReturnResult(sqlmock.NewResult(0, 0))
		m.ExpectPrepare(insertQuery)
		m.ExpectRollback()

		err := st.Save(ctx, rates)

		asserts.Nil(m.ExpectationsWereMet())
		asserts.True(errors.Is(err, storage.ErrNotEnoughBytesInGenerator))
	})

	t.Run("Replaces_Rows", func(t *testing.T) {
		asserts := require.New(t)
		id := make([]byte, 16)
		generator := &IDGeneratorMock{}
		generator.On("Generate").Return(id)
		st, m := newMockStorage(t, generator)

		m.ExpectBegin()
		m.ExpectExec(deleteQuery).WillReturnResult(sqlmock.NewResult(0, 4))
		prepare := m.ExpectPrepare(insertQuery)
		prepare.ExpectExec().
			WithArgs(id, 0, "EUR", "USD", 1.25, "2024-01-02 03:04:05.600000").
			WillReturnResult(sqlmock.NewResult(1, 1))
		prepare.ExpectExec().
			WithArgs(id, 1, "USD", "EUR", 0.8, "2024-01-02 03:04:05.600000").
			WillReturnResult(sqlmock.NewResult(2, 1))
		m.ExpectCommit()

		asserts.Nil(st.Save(ctx, rates))
		asserts.Nil(m.ExpectationsWereMet())
		generator.AssertNumberOfCalls(t, "Generate", 2)
	})
}

func TestSQLStorage_Load(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	obtainedAt := time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC)

	t.Run("Rows_In_Order", func(t *testing.T) {
		asserts := require.New(t)
		st, m := newMockStorage(t, nil)
		m.ExpectQuery(selectQuery).WillReturnRows(
			sqlmock.NewRows([]string{"from_currency", "to_currency", "rate", "obtained_at"}).
				AddRow("EUR", "USD", 1.25, obtainedAt).
				AddRow("USD", "EUR", 0.8, obtainedAt),
		)

		rates, err := st.Load(ctx)

		asserts.Nil(err)
		asserts.Nil(m.ExpectationsWereMet())
		asserts.Equal(2, rates.Len())

		rate, ok := rates.Find("USD", "EUR")
		asserts.True(ok)
		asserts.Equal(0.8, rate.Rate)
		asserts.True(obtainedAt.Equal(rate.ObtainedAt))
	})

	t.Run("Query_Error", func(t *testing.T) {
		asserts := require.New(t)
		st, m := newMockStorage(t, nil)
		m.ExpectQuery(selectQuery).WillReturnError(sql.ErrConnDone)

		rates, err := st.Load(ctx)

		asserts.Nil(rates)
		asserts.True(errors.Is(err, sql.ErrConnDone))
	})
}

func TestMySQLStorage_Integration(t *testing.T) {
	dsn := os.Getenv("CURR_MYSQL_DSN")
	if dsn == "" {
		t.Skip("CURR_MYSQL_DSN is not set")
	}

	asserts := require.New(t)
	ctx := context.Background()

	st, err := storage.NewMySQLStorage(storage.MySQLConfig{
		BaseConfig: storage.BaseConfig{
			Ctx:     ctx,
			Migrate: true,
		},
		ConnectionString: dsn,
		TableName:        "currency_store_test_integration",
	})
	asserts.Nil(err)
	defer st.Close()
	defer st.Drop()

	expected := fakeRates(4)
	asserts.Nil(st.Save(ctx, expected))

	actual, err := st.Load(ctx)
	asserts.Nil(err)
	requireSameRates(t, expected, actual)
}
