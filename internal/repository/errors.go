package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Классы ошибок PostgreSQL, которые репозитории переводят в доменные ошибки.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}
