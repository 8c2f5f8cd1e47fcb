package transactor

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlx.NewDb(db, "postgres"), mock
}

func TestWithinTransactionCommitsAndRunsHooks(t *testing.T) {
	db, mock := newMock(t)
	tr, dbCtx := New(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO t VALUES ($1)")).WithArgs(1).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	hookCalled := false
	err := tr.WithinTransaction(context.Background(), func(ctx context.Context, register func(PostCommitHook)) error {
		assert.True(t, IsWithinTransaction(ctx))
		if _, err := dbCtx(ctx).ExecContext(ctx, "INSERT INTO t VALUES ($1)", 1); err != nil {
			return err
		}
		register(func(ctx context.Context) error {
			hookCalled = true
			return nil
		})
		assert.False(t, hookCalled, "hook must wait for commit")
		return nil
	})

	require.NoError(t, err)
	assert.True(t, hookCalled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTransactionRollsBackOnError(t *testing.T) {
	db, mock := newMock(t)
	tr, _ := New(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	hookCalled := false
	err := tr.WithinTransaction(context.Background(), func(ctx context.Context, register func(PostCommitHook)) error {
		register(func(ctx context.Context) error {
			hookCalled = true
			return nil
		})
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.False(t, hookCalled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTransactionHookErrorDoesNotFailCommit(t *testing.T) {
	db, mock := newMock(t)
	tr, _ := New(db)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := tr.WithinTransaction(context.Background(), func(ctx context.Context, register func(PostCommitHook)) error {
		register(func(ctx context.Context) error { return errors.New("mail server down") })
		return nil
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNestedTransactionsNoneShareOuterTransaction(t *testing.T) {
	db, mock := newMock(t)
	tr, _ := New(db)

	mock.ExpectBegin()
	mock.ExpectCommit()

	order := []string{}
	err := tr.WithinTransaction(context.Background(), func(ctx context.Context, register func(PostCommitHook)) error {
		register(func(ctx context.Context) error {
			order = append(order, "outer")
			return nil
		})
		return tr.WithinTransaction(ctx, func(ctx context.Context, register func(PostCommitHook)) error {
			register(func(ctx context.Context) error {
				order = append(order, "inner")
				return nil
			})
			assert.Empty(t, order, "inner hooks run only after the outer commit")
			return nil
		})
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"outer", "inner"}, order)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNestedTransactionsSavepoints(t *testing.T) {
	db, mock := newMock(t)
	tr, _ := New(db, WithNestedTransactionStrategy(NestedTransactionsSavepoints))

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SAVEPOINT sp_1")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("ROLLBACK TO SAVEPOINT sp_1")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("SAVEPOINT sp_1")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("RELEASE SAVEPOINT sp_1")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := tr.WithinTransaction(context.Background(), func(ctx context.Context, _ func(PostCommitHook)) error {
		innerErr := tr.WithinTransaction(ctx, func(ctx context.Context, _ func(PostCommitHook)) error {
			return errors.New("inner failed")
		})
		assert.Error(t, innerErr)

		return tr.WithinTransaction(ctx, func(ctx context.Context, _ func(PostCommitHook)) error {
			return nil
		})
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBTXContextOutsideTransaction(t *testing.T) {
	db, _ := newMock(t)
	_, dbCtx := New(db)

	assert.Same(t, db, dbCtx(context.Background()))
	assert.False(t, IsWithinTransaction(context.Background()))
}
