package service

import (
	"errors"
	"fmt"

	"github.com/yourusername/trivia-questions/internal/domain/entity"
	"github.com/yourusername/trivia-questions/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-questions/internal/pkg/errors"
	"github.com/yourusername/trivia-questions/internal/pkg/pagination"
)

// CategoryService предоставляет методы для работы с категориями
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	questionRepo repository.QuestionRepository
}

// NewCategoryService создает новый сервис категорий
func NewCategoryService(categoryRepo repository.CategoryRepository, questionRepo repository.QuestionRepository) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		questionRepo: questionRepo,
	}
}

// ListCategories возвращает все категории
func (s *CategoryService) ListCategories() ([]entity.Category, error) {
	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, storeFailure("list categories", err)
	}
	return categories, nil
}

// ListQuestionsByCategory возвращает страницу вопросов категории.
// Существование категории проверяется до запроса вопросов.
func (s *CategoryService) ListQuestionsByCategory(categoryID uint, page pagination.Page) (*QuestionPage, error) {
	if _, err := s.categoryRepo.GetByID(categoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("category %d: %w", categoryID, apperrors.ErrNotFound)
		}
		return nil, storeFailure("get category", err)
	}

	return findPage(s.questionRepo, repository.QuestionFilter{CategoryID: &categoryID}, page)
}
