package postgres

import (
	"strings"

	"gorm.io/gorm"

	"github.com/yourusername/trivia-questions/internal/domain/entity"
	"github.com/yourusername/trivia-questions/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-questions/internal/pkg/errors"
	"github.com/yourusername/trivia-questions/internal/pkg/pagination"
)

// questionOrder - порядок выдачи вопросов. id в конце делает границы страниц детерминированными.
const questionOrder = "difficulty ASC, category ASC, id ASC"

// likeEscaper экранирует спецсимволы LIKE, чтобы поиск был буквальным поиском подстроки.
// LOWER в SQLite приводит к нижнему регистру только ASCII: на SQLite "ÉCOLE" не найдет "école",
// PostgreSQL сворачивает регистр по локали базы и находит.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// filtered строит запрос по фильтру без сортировки и пагинации
func (r *QuestionRepo) filtered(filter repository.QuestionFilter) *gorm.DB {
	query := r.db.Model(&entity.Question{})

	if filter.CategoryID != nil {
		query = query.Where("category = ?", *filter.CategoryID)
	}

	// Пустая строка поиска совпадает со всеми вопросами
	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + likeEscaper.Replace(*filter.Search) + "%"
		query = query.Where(`LOWER(question) LIKE LOWER(?) ESCAPE '\'`, pattern)
	}

	if len(filter.ExcludeIDs) > 0 {
		query = query.Where("id NOT IN ?", filter.ExcludeIDs)
	}

	if filter.DistinctText {
		inner := filter
		inner.DistinctText = false
		firstPerText := r.filtered(inner).Select("MIN(id)").Group("question")
		query = query.Where("id IN (?)", firstPerText)
	}

	return query
}

// Find возвращает одну страницу вопросов по фильтру
func (r *QuestionRepo) Find(filter repository.QuestionFilter, page pagination.Page) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.filtered(filter).
		Order(questionOrder).
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&questions).Error
	if err != nil {
		return nil, translateError(err)
	}
	return questions, nil
}

// FindAll возвращает все вопросы по фильтру без пагинации (для экспорта)
func (r *QuestionRepo) FindAll(filter repository.QuestionFilter) ([]entity.Question, error) {
	var questions []entity.Question
	if err := r.filtered(filter).Order(questionOrder).Find(&questions).Error; err != nil {
		return nil, translateError(err)
	}
	return questions, nil
}

// Count возвращает количество вопросов по фильтру
func (r *QuestionRepo) Count(filter repository.QuestionFilter) (int64, error) {
	var count int64
	if err := r.filtered(filter).Count(&count).Error; err != nil {
		return 0, translateError(err)
	}
	return count, nil
}

// CandidateIDs возвращает id вопросов по фильтру (кандидаты для случайного выбора)
func (r *QuestionRepo) CandidateIDs(filter repository.QuestionFilter) ([]uint, error) {
	var ids []uint
	if err := r.filtered(filter).Order("id").Pluck("id", &ids).Error; err != nil {
		return nil, translateError(err)
	}
	return ids, nil
}

// GetByID возвращает вопрос по ID
func (r *QuestionRepo) GetByID(id uint) (*entity.Question, error) {
	var question entity.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &question, nil
}

// Create создает новый вопрос; ID назначается базой данных
func (r *QuestionRepo) Create(question *entity.Question) error {
	return translateError(r.db.Create(question).Error)
}

// Delete удаляет вопрос
func (r *QuestionRepo) Delete(id uint) error {
	result := r.db.Delete(&entity.Question{}, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
