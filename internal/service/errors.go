package service

import (
	"errors"
	"fmt"

	apperrors "github.com/yourusername/trivia-questions/internal/pkg/errors"
)

// storeFailure превращает ошибку хранилища в ErrUnprocessable.
// ErrNotFound тоже становится unprocessable: для операции записи отсутствие строки - сбой запроса, а не 404.
func storeFailure(op string, err error) error {
	if errors.Is(err, apperrors.ErrUnprocessable) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w (%v)", op, apperrors.ErrUnprocessable, err)
}
