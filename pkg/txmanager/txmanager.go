// Package txmanager runs functions inside instrumented database transactions.
// The transaction travels in the context, so repositories pick it up through
// dbmetrics.GetExecutor without signature changes.
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/inkmatch/booking-service/pkg/dbmetrics"
)

const (
	// serializationFailureCode is the PostgreSQL class 40001 error returned
	// when a SERIALIZABLE transaction must be retried.
	serializationFailureCode = "40001"

	// maxSerializableRetries bounds how often a serializable transaction is
	// retried before the conflict is surfaced to the caller.
	maxSerializableRetries = 3
)

var (
	// ErrSerializationFailure is returned when a serializable transaction
	// keeps conflicting after all retries. Callers should treat it as a
	// retryable conflict, re-query state and try again.
	ErrSerializationFailure = errors.New("txmanager: serialization failure")

	// ErrBeginTx is returned when a transaction cannot be started.
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommitTx is returned when a commit fails for a reason other than
	// serialization.
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")
)

// TransactionManager executes functions within transactions on an
// instrumented database handle.
type TransactionManager struct {
	db *dbmetrics.DB
}

// NewTransactionManager creates a manager over the instrumented handle.
func NewTransactionManager(db *dbmetrics.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do runs fn inside a READ COMMITTED transaction.
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted}, fn)
}

// DoReadOnly runs fn inside a read-only transaction.
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted, ReadOnly: true}, fn)
}

// DoSerializable runs fn inside a SERIALIZABLE transaction, retrying a
// bounded number of times on serialization failures. This is the critical
// section used by the reservation path: two concurrent check-then-insert
// sequences for the same artist cannot both commit.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	var lastErr error
	for attempt := 0; attempt <= maxSerializableRetries; attempt++ {
		err := m.run(ctx, opts, fn)
		if err == nil {
			return nil
		}
		if !isSerializationFailure(err) {
			return err
		}
		lastErr = err
	}

	return fmt.Errorf("%w: gave up after %d attempts: %v", ErrSerializationFailure, maxSerializableRetries+1, lastErr)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBeginTx, err)
	}

	txCtx := dbmetrics.WithTx(ctx, tx)

	if err := fn(txCtx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		if isSerializationFailure(err) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrCommitTx, err)
	}

	return nil
}

func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == serializationFailureCode
	}
	return false
}
