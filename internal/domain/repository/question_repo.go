package repository

import (
	"github.com/yourusername/trivia-questions/internal/domain/entity"
	"github.com/yourusername/trivia-questions/internal/pkg/pagination"
)

// QuestionFilter определяет фильтры выборки вопросов.
// Фильтры комбинируются через AND; пустой фильтр означает все вопросы.
type QuestionFilter struct {
	CategoryID   *uint   // Только вопросы этой категории
	Search       *string // Подстрока в тексте вопроса без учета регистра
	ExcludeIDs   []uint  // Уже заданные вопросы
	DistinctText bool    // Один вопрос (с минимальным id) на каждый одинаковый текст
}

// QuestionRepository определяет методы для работы с вопросами.
// Все выборки упорядочены по difficulty, затем category, затем id.
type QuestionRepository interface {
	Find(filter QuestionFilter, page pagination.Page) ([]entity.Question, error)
	FindAll(filter QuestionFilter) ([]entity.Question, error)
	Count(filter QuestionFilter) (int64, error)
	// CandidateIDs возвращает id всех вопросов, подходящих под фильтр
	CandidateIDs(filter QuestionFilter) ([]uint, error)
	GetByID(id uint) (*entity.Question, error)
	Create(question *entity.Question) error
	// Delete возвращает apperrors.ErrNotFound, если вопроса нет
	Delete(id uint) error
}
