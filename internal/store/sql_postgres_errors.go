package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassificator translates driver specific errors into store sentinels.
// Errors it does not recognise are returned unchanged.
type ErrorClassificator interface {
	Classify(err error) error
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It attempts to unwrap err as a
// *pgconn.PgError and delegates to [ClassifyPgError]. If err is nil or is not
// a PostgreSQL driver error, it is returned as is.
func (c *PostgresErrorClassifier) Classify(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && ClassifyPgError(pgErr) {
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	}

	return err
}

// ClassifyPgError reports whether pgErr was caused by the data sent by the
// client rather than by the server or the connection.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
//
// Client-caused codes:
//   - Class 22: string_data_right_truncation, numeric_value_out_of_range
//   - Class 23: integrity constraint violations
func ClassifyPgError(pgErr *pgconn.PgError) bool {
	switch pgErr.Code {
	// Class 22: data exceptions
	case pgerrcode.StringDataRightTruncationDataException,
		pgerrcode.NumericValueOutOfRange:
		return true

	// Class 23: integrity constraint violations
	case pgerrcode.IntegrityConstraintViolation,
		pgerrcode.RestrictViolation,
		pgerrcode.NotNullViolation,
		pgerrcode.ForeignKeyViolation,
		pgerrcode.UniqueViolation,
		pgerrcode.CheckViolation:
		return true
	}

	return false
}
