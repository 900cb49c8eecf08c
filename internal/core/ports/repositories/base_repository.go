package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TxRunner runs a group of price writes in one database transaction.
// The ledger upsert with its opposite-currency delete, and every backup batch, go through it.
type TxRunner interface {
	// InTx begins a transaction and runs fn inside it. The transaction commits when fn returns nil
	// and rolls back otherwise, including when ctx is cancelled.
	InTx(ctx context.Context, fn func(tx pgx.Tx) error) error
}
