package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	apperrors "github.com/yourusername/trivia-questions/internal/pkg/errors"
)

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil))
	assert.ErrorIs(t, translateError(gorm.ErrRecordNotFound), apperrors.ErrNotFound)

	pgxErr := &pgconn.PgError{Code: "23502", Message: "null value in column"}
	assert.ErrorIs(t, translateError(pgxErr), apperrors.ErrUnprocessable)

	pqErr := &pq.Error{Code: "23505", Message: "duplicate key"}
	assert.ErrorIs(t, translateError(pqErr), apperrors.ErrUnprocessable)

	other := &pgconn.PgError{Code: "42P01", Message: "relation does not exist"}
	translated := translateError(other)
	assert.NotErrorIs(t, translated, apperrors.ErrUnprocessable)
	assert.Equal(t, other, translated)

	plain := errors.New("connection refused")
	assert.Equal(t, plain, translateError(plain))
}
