package repository

import (
	"github.com/yourusername/trivia-questions/internal/domain/entity"
)

// CategoryRepository определяет методы для чтения категорий
type CategoryRepository interface {
	GetAll() ([]entity.Category, error)
	// GetByID возвращает apperrors.ErrNotFound, если категории нет
	GetByID(id uint) (*entity.Category, error)
}
