package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/migrations"
)

// DB wraps the connection pool together with the dialect-aware statement
// builder and the error classifier of the configured driver.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB opens a connection pool for the configured driver.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Migrate applies the embedded migrations of the DB's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// withTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back otherwise.
func (db *DB) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "DB.withTx").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "DB.withTx").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// insert executes an INSERT ... RETURNING id inside its own transaction and
// returns the assigned identifier.
func (db *DB) insert(ctx context.Context, query sq.InsertBuilder) (int64, error) {
	sqlStr, args, err := query.Suffix("RETURNING id").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	err = db.withTx(ctx, func(tx *sql.Tx) error {
		if scanErr := tx.QueryRowContext(ctx, sqlStr, args...).Scan(&id); scanErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, db.errorClassificator.Classify(scanErr))
		}
		return nil
	})

	return id, err
}

// execAffectingOne executes an UPDATE or DELETE inside its own transaction.
// It returns [ErrNotFound] when no row matched.
func (db *DB) execAffectingOne(ctx context.Context, query sq.Sqlizer) error {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return db.withTx(ctx, func(tx *sql.Tx) error {
		res, execErr := tx.ExecContext(ctx, sqlStr, args...)
		if execErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, db.errorClassificator.Classify(execErr))
		}

		affected, affErr := res.RowsAffected()
		if affErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, affErr)
		}
		if affected == 0 {
			return ErrNotFound
		}

		return nil
	})
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// queryAll runs a SELECT and collects every row with scan.
func queryAll[T any](ctx context.Context, db *DB, query sq.SelectBuilder, scan func(rowScanner) (T, error)) ([]T, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]T, 0)
	for rows.Next() {
		item, scanErr := scan(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

// queryOne runs a SELECT expected to match at most one row. It returns
// [ErrNotFound] when nothing matched.
func queryOne[T any](ctx context.Context, db *DB, query sq.SelectBuilder, scan func(rowScanner) (T, error)) (T, error) {
	var zero T

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scan(db.QueryRowContext(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, ErrNotFound
		}
		return zero, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return item, nil
}
