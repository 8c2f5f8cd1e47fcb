// Ref: https://github.com/Thiht/transactor/blob/main/sqlx/transactor.go
package transactor

import (
	"context"
	"fmt"

	"go-rewards/shared/common/logger"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// PostCommitHook จะถูกเรียกหลังจาก transaction ชั้นนอกสุด commit สำเร็จแล้วเท่านั้น
type PostCommitHook func(ctx context.Context) error

type Transactor interface {
	WithinTransaction(ctx context.Context, txFunc func(ctxWithTx context.Context, registerPostCommitHook func(PostCommitHook)) error) error
}

type (
	sqlxDBGetter               func(context.Context) sqlxDB
	nestedTransactionsStrategy func(sqlxDB, *sqlx.Tx) (sqlxDB, sqlxTx)
)

type sqlTransactor struct {
	sqlxDBGetter
	nestedTransactionsStrategy
}

type Option func(*sqlTransactor)

func New(db *sqlx.DB, opts ...Option) (Transactor, DBTXContext) {
	t := &sqlTransactor{
		sqlxDBGetter: func(ctx context.Context) sqlxDB {
			if tx := txFromContext(ctx); tx != nil {
				return tx
			}
			return db
		},
		nestedTransactionsStrategy: NestedTransactionsNone, // Default strategy
	}

	for _, opt := range opts {
		opt(t)
	}

	dbGetter := func(ctx context.Context) DBTX {
		if tx := txFromContext(ctx); tx != nil {
			return tx
		}

		return db
	}

	return t, dbGetter
}

func WithNestedTransactionStrategy(strategy nestedTransactionsStrategy) Option {
	return func(t *sqlTransactor) {
		t.nestedTransactionsStrategy = strategy
	}
}

func (t *sqlTransactor) WithinTransaction(ctx context.Context, txFunc func(ctxWithTx context.Context, registerPostCommitHook func(PostCommitHook)) error) error {
	currentDB := t.sqlxDBGetter(ctx)

	tx, err := currentDB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	newDB, currentTX := t.nestedTransactionsStrategy(currentDB, tx)
	defer func() {
		_ = currentTX.Rollback() // If rollback fails, there's nothing to do, the transaction will expire by itself
	}()
	ctxWithTx := txToContext(ctx, newDB)

	// transaction ซ้อนให้ฝาก hook ไว้กับชั้นนอกสุด
	hooks := hooksFromContext(ctx)
	outermost := hooks == nil
	if outermost {
		hooks = &postCommitHooks{}
		ctxWithTx = hooksToContext(ctxWithTx, hooks)
	}

	registerPostCommitHook := func(hook PostCommitHook) {
		hooks.hooks = append(hooks.hooks, hook)
	}

	if err := txFunc(ctxWithTx, registerPostCommitHook); err != nil {
		return err
	}

	if err := currentTX.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	if outermost {
		runPostCommitHooks(ctx, hooks.hooks)
	}

	return nil
}

// hook ทำงานหลัง commit แล้ว error จึงทำได้แค่ log ไม่ย้อนผลของ transaction
func runPostCommitHooks(ctx context.Context, hooks []PostCommitHook) {
	for _, hook := range hooks {
		if err := hook(ctx); err != nil {
			logger.FromContext(ctx).Error("post-commit hook failed", zap.Error(err))
		}
	}
}

func IsWithinTransaction(ctx context.Context) bool {
	return ctx.Value(transactorKey{}) != nil
}
