package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/compass/internal/db"
)

// FailOnNthExecUoW is a UnitOfWork that fails the Nth ExecContext call inside
// its transaction, counting from 1. Reads are not counted. It lets rollback
// tests break a multi-write use case at an exact step.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error

	execs atomic.Int32
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	wrapped := &failOnNthExec{DBTX: tx, owner: u}
	if fnErr := fn(ctx, wrapped); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

// Execs reports how many writes were attempted across all transactions.
func (u *FailOnNthExecUoW) Execs() int {
	return int(u.execs.Load())
}

type failOnNthExec struct {
	db.DBTX
	owner *FailOnNthExecUoW
	count atomic.Int32
}

func (f *failOnNthExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.owner.execs.Add(1)
	if f.count.Add(1) == f.owner.FailOn {
		return nil, f.owner.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
