package postgres

import (
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// pgError extracts the underlying PostgreSQL error, if any.
func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}

	return nil, false
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	// Check for GORM's translated duplicate key error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	if pgErr, ok := pgError(err); ok {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	return false
}

func isForeignKeyConstraintViolation(err error) bool {
	// Check for GORM's translated foreign key violation error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	if pgErr, ok := pgError(err); ok {
		return pgErr.Code == pgerrcode.ForeignKeyViolation
	}

	return false
}

func isNotNullConstraintViolation(err error) bool {
	if pgErr, ok := pgError(err); ok {
		return pgErr.Code == pgerrcode.NotNullViolation
	}

	return false
}
