package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestHasSQLState(t *testing.T) {
	undefined := &pgconn.PgError{Code: sqlStateUndefinedTable, Message: `relation "app_snapshots" does not exist`}

	assert.True(t, hasSQLState(undefined, sqlStateUndefinedTable))
	assert.True(t, hasSQLState(fmt.Errorf("leer: %w", undefined), sqlStateUndefinedTable))
	assert.False(t, hasSQLState(&pgconn.PgError{Code: "23505"}, sqlStateUndefinedTable))
	assert.False(t, hasSQLState(errors.New("42P01"), sqlStateUndefinedTable))
	assert.False(t, hasSQLState(nil, sqlStateUndefinedTable))
}
