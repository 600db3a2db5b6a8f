package store

import (
	"context"
	"fmt"

	"financial-backend/internal/models"
)

// InsertTransaction inserts a row and returns the generated id. The
// caller is responsible for validating user_id against the users
// table first; the column carries no foreign key.
func (s *PostgresStore) InsertTransaction(ctx context.Context, t *models.Transaction) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx,
		`INSERT INTO transactions (user_id, amount, transaction_type, category, transaction_date, description)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING transaction_id`,
		t.UserID, t.Amount, t.TransactionType, t.Category, t.TransactionDate.Time, t.Description,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert transaction: %w", err)
	}
	return id, nil
}

// ListTransactions returns every row in the ledger, unfiltered, in
// store-native order.
func (s *PostgresStore) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT transaction_id, user_id, amount, transaction_type, category, transaction_date, description
		 FROM transactions`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Transaction, 0)
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(
			&t.TransactionID, &t.UserID, &t.Amount, &t.TransactionType,
			&t.Category, &t.TransactionDate.Time, &t.Description,
		); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// UpdateTransaction overwrites all five mutable fields of the row with
// the given id. Returns ErrNotFound when the statement touches no row.
func (s *PostgresStore) UpdateTransaction(ctx context.Context, id int64, upd *models.UpdateTransactionRequest) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE transactions
		 SET amount = $1, category = $2, transaction_type = $3, transaction_date = $4, description = $5
		 WHERE transaction_id = $6`,
		upd.Amount, upd.Category, upd.TransactionType, upd.TransactionDate.Time, upd.Description, id,
	)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteTransaction removes the row with the given id. Returns
// ErrNotFound when no row matched.
func (s *PostgresStore) DeleteTransaction(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM transactions WHERE transaction_id = $1`, id,
	)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
