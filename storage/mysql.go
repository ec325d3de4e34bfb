package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"github.com/malusev998/currency"
)

const MySQLTimeFormat = "2006-01-02 15:04:05.000000"

type (
	IDGenerator interface {
		Generate() []byte
	}

	uuidGenerator struct{}

	// SQLStorage keeps one row per rate record, ordered by position.
	SQLStorage struct {
		ctx         context.Context
		db          *sql.DB
		idGenerator IDGenerator
		tableName   string
	}
)

var (
	ErrNotEnoughBytesInGenerator = errors.New("id generator must return 16 bytes")

	_ currency.Storage = (*SQLStorage)(nil)
)

func (uuidGenerator) Generate() []byte {
	id := uuid.New()

	return id[:]
}

func NewMySQLStorage(c MySQLConfig) (*SQLStorage, error) {
	db, err := sql.Open("mysql", c.ConnectionString)

	if err != nil {
		return nil, fmt.Errorf("error while connecting to mysql: %w", err)
	}

	return NewSQLStorage(c.Ctx, db, c.IDGenerator, c.TableName, c.Migrate)
}

func NewSQLStorage(ctx context.Context, db *sql.DB, idGenerator IDGenerator, tableName string, migrate bool) (*SQLStorage, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	if idGenerator == nil {
		idGenerator = uuidGenerator{}
	}

	if tableName == "" {
		tableName = "exchange_rates"
	}

	s := &SQLStorage{
		ctx:         ctx,
		db:          db,
		idGenerator: idGenerator,
		tableName:   tableName,
	}

	if migrate {
		if err := s.Migrate(); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *SQLStorage) Migrate() error {
	_, err := s.db.ExecContext(s.ctx, fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s(
	id BINARY(16) PRIMARY KEY,
	position INT UNSIGNED NOT NULL,
	from_currency CHAR(3) NOT NULL,
	to_currency CHAR(3) NOT NULL,
	rate DOUBLE NOT NULL,
	obtained_at DATETIME(6) NOT NULL
);`, s.tableName))

	return err
}

func (s *SQLStorage) Load(ctx context.Context) (*currency.RateStore, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf("SELECT from_currency, to_currency, rate, obtained_at FROM %s ORDER BY position;", s.tableName))

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	rates := currency.NewRateStore()

	for rows.Next() {
		var rate currency.ExchangeRate

		if err := rows.Scan(&rate.From, &rate.To, &rate.Rate, &rate.ObtainedAt); err != nil {
			return nil, err
		}

		rate.ObtainedAt = rate.ObtainedAt.UTC()
		rates.Rates = append(rates.Rates, rate)
	}

	return rates, rows.Err()
}

// Save replaces the stored rows with rates in a single transaction.
func (s *SQLStorage) Save(ctx context.Context, rates *currency.RateStore) error {
	tx, err := s.db.BeginTx(ctx, nil)

	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s;", s.tableName)); err != nil {
		_ = tx.Rollback()
		return err
	}

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf("INSERT INTO %s(id, position, from_currency, to_currency, rate, obtained_at) VALUES (?,?,?,?,?,?);", s.tableName))

	if err != nil {
		_ = tx.Rollback()
		return err
	}

	defer stmt.Close()

	for i, rate := range rates.Rates {
		id := s.idGenerator.Generate()

		if len(id) != 16 {
			_ = tx.Rollback()
			return ErrNotEnoughBytesInGenerator
		}

		if _, err := stmt.ExecContext(ctx, id, i, rate.From, rate.To, rate.Rate, rate.ObtainedAt.UTC().Format(MySQLTimeFormat)); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return nil
}

func (s *SQLStorage) Drop() error {
	_, err := s.db.ExecContext(s.ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s;", s.tableName))

	return err
}

func (s *SQLStorage) Name() string {
	return string(MySQL)
}

func (s *SQLStorage) Close() error {
	return s.db.Close()
}
