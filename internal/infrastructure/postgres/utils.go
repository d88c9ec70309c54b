package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE que se tratan aparte.
const (
	sqlStateUndefinedTable = "42P01"
)

// hasSQLState verifica si err es un *pgconn.PgError con el código indicado.
func hasSQLState(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}
