package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"projecthub/internal/core/ports"
)

type txKey struct{}

type Transactor struct {
	db *sqlx.DB
}

var _ ports.Transactor = (*Transactor)(nil)

func NewTransactor(db *sqlx.DB) *Transactor {
	return &Transactor{db: db}
}

// WithinTransaction commits when fn returns nil and rolls back otherwise. A call
// made inside another transaction joins it.
func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return withinTransaction(ctx, t.db, fn)
}

func withinTransaction(ctx context.Context, db *sqlx.DB, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return fn(ctx)
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			zap.L().Warn("failed to rollback transaction", zap.Error(rollbackErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// conn returns the transaction bound to ctx, or db when there is none.
func conn(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return db
}

// lockRow returns notFound unless table holds a row with id. On MySQL the row
// stays locked until the surrounding transaction ends.
func lockRow(ctx context.Context, db *sqlx.DB, table, id string, notFound error) error {
	query := `SELECT 1 FROM ` + table + ` WHERE id = ?`
	if db.DriverName() == "mysql" {
		query += ` FOR UPDATE`
	}
	var found int
	if err := sqlx.GetContext(ctx, conn(ctx, db), &found, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return notFound
		}
		return err
	}
	return nil
}
