package main

import (
	"context"
	"database/sql"
	"time"

	dErrors "cineclub/pkg/domain-errors"
	txcontext "cineclub/pkg/platform/tx"
)

const defaultGroupTxTimeout = 5 * time.Second

// groupPostgresTx runs compound group mutations in one database transaction
// bound to the context the stores read from.
type groupPostgresTx struct {
	db      *sql.DB
	timeout time.Duration
}

func newGroupPostgresTx(db *sql.DB, timeout time.Duration) *groupPostgresTx {
	return &groupPostgresTx{db: db, timeout: timeout}
}

func (t *groupPostgresTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}

	timeout := t.timeout
	if timeout == 0 {
		timeout = defaultGroupTxTimeout
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	tx, err := t.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(txcontext.WithTx(ctx, tx)); err != nil {
		return err
	}
	return tx.Commit()
}
