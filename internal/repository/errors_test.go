package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation_Postgres(t *testing.T) {
	err := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	assert.True(t, IsUniqueViolation(err))

	wrapped := fmt.Errorf("create user: %w", err)
	assert.True(t, IsUniqueViolation(wrapped))
}

func TestIsUniqueViolation_PostgresOtherCode(t *testing.T) {
	err := &pgconn.PgError{Code: "23503"} // FK violation
	assert.False(t, IsUniqueViolation(err))
}

func TestIsUniqueViolation_SQLite(t *testing.T) {
	err := errors.New("UNIQUE constraint failed: reviews.booking_id")
	assert.True(t, IsUniqueViolation(err))
}

func TestIsUniqueViolation_Unrelated(t *testing.T) {
	assert.False(t, IsUniqueViolation(errors.New("connection refused")))
	assert.False(t, IsUniqueViolation(nil))
}
