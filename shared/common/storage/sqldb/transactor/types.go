package transactor

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// DBTX คือ method ที่ใช้ได้ทั้ง *sqlx.DB และ *sqlx.Tx
type DBTX interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}

// DBTXContext คืน DBTX ที่ผูกกับ context ถ้าอยู่ใน transaction จะได้ tx กลับไป
type DBTXContext func(ctx context.Context) DBTX

type sqlxDB interface {
	DBTX
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
}

type sqlxTx interface {
	Commit() error
	Rollback() error
}

var (
	_ sqlxDB = (*sqlx.DB)(nil)
	_ DBTX   = (*sqlx.Tx)(nil)
	_ sqlxTx = (*sqlx.Tx)(nil)
)
