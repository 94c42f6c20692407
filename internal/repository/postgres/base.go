package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// withTx executes fn within a transaction, rolling back on error or panic so
// a failed write never leaves a half-committed row.
func withTx(ctx context.Context, db *sqlx.DB, fn func(*sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
