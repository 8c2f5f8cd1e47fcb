package sqldb

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver
)

type closeDB func() error

type DBContext interface {
	DB() *sqlx.DB
}

type dbContext struct {
	db *sqlx.DB
}

var _ DBContext = (*dbContext)(nil)

func NewDBContext(dsn string) (DBContext, closeDB, error) {
	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	// ตั้งค่า connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &dbContext{db: db}, func() error {
		return db.Close()
	}, nil
}

// NewDBContextFromDB ใช้ห่อ *sqlx.DB ที่สร้างไว้แล้ว (เช่นจาก sqlmock ใน test)
func NewDBContextFromDB(db *sqlx.DB) DBContext {
	return &dbContext{db: db}
}

func (c *dbContext) DB() *sqlx.DB {
	return c.db
}
