package booking

import (
	"context"
	"database/sql"

	"github.com/inkmatch/booking-service/pkg/dbmetrics"
)

// Reuse the dbmetrics executor interfaces so the repository works unchanged
// against *sql.DB, the instrumented wrapper, and transactions from context.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner is satisfied by handles that can open transactions.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
