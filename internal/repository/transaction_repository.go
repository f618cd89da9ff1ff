package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"fisk-dimension/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const transactionsSchema = `
CREATE TABLE IF NOT EXISTS transactions (
	id            TEXT PRIMARY KEY,
	type          TEXT NOT NULL,
	data          JSONB NOT NULL,
	timestamp     BIGINT NOT NULL,
	status        TEXT NOT NULL DEFAULT 'logged',
	block_number  BIGINT NOT NULL DEFAULT 0,
	confirmations INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS transactions_timestamp_idx ON transactions (timestamp DESC);
`

var transactionColumns = []string{"id", "type", "data", "timestamp", "status", "block_number", "confirmations"}

// TransactionRepository persists the chain log in PostgreSQL. Filtering stays in the
// query engine, so reads return the whole table.
type TransactionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTransactionRepository(db *pgxpool.Pool, logger *zap.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *TransactionRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, transactionsSchema); err != nil {
		return fmt.Errorf("create transactions schema: %w", err)
	}
	return nil
}

func (r *TransactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	return r.CreateBatch(ctx, []*models.Transaction{tx})
}

func (r *TransactionRepository) CreateBatch(ctx context.Context, transactions []*models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	builder := squirrel.Insert("transactions").
		Columns(transactionColumns...).
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	for _, tx := range transactions {
		data, err := json.Marshal(tx.Data)
		if err != nil {
			return fmt.Errorf("encode transaction %s: %w", tx.ID, err)
		}
		builder = builder.Values(tx.ID, string(tx.Data.Type), string(data), tx.Timestamp, tx.Status, tx.BlockNumber, tx.Confirmations)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *TransactionRepository) All(ctx context.Context) ([]*models.Transaction, error) {
	query := squirrel.Select(transactionColumns...).
		From("transactions").
		OrderBy("timestamp DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*models.Transaction
	for rows.Next() {
		var (
			tx   models.Transaction
			typ  string
			data []byte
		)
		if err := rows.Scan(&tx.ID, &typ, &data, &tx.Timestamp, &tx.Status, &tx.BlockNumber, &tx.Confirmations); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &tx.Data); err != nil {
			r.logger.Warn("Skipping transaction with undecodable data", zap.String("id", tx.ID), zap.Error(err))
			continue
		}
		transactions = append(transactions, &tx)
	}

	return transactions, rows.Err()
}
