package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"

	apperrors "github.com/yourusername/trivia-questions/internal/pkg/errors"
)

// isConstraintViolation проверяет нарушение ограничений Postgres (класс 23) для pgconn и lib/pq драйверов
func isConstraintViolation(err error) (code string, ok bool) {
	// pgx/v5 driver (pgconn.PgError)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "23") {
		return pgErr.Code, true
	}
	// lib/pq driver
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && strings.HasPrefix(string(pqErr.Code), "23") {
		return string(pqErr.Code), true
	}
	return "", false
}

// translateError приводит ошибки GORM и драйвера к ошибкам приложения
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound
	}
	if code, ok := isConstraintViolation(err); ok {
		return fmt.Errorf("%w: constraint violation (sqlstate %s): %v", apperrors.ErrUnprocessable, code, err)
	}
	return err
}
