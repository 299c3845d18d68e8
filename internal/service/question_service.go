package service

import (
	"fmt"
	"log"

	"github.com/yourusername/trivia-questions/internal/domain/entity"
	"github.com/yourusername/trivia-questions/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-questions/internal/pkg/errors"
	"github.com/yourusername/trivia-questions/internal/pkg/pagination"
)

// QuestionPage - одна страница вопросов и общее количество вопросов по тому же фильтру
type QuestionPage struct {
	Questions []entity.Question
	Total     int64
}

// findPage выбирает страницу и считает общее количество по одному фильтру
func findPage(repo repository.QuestionRepository, filter repository.QuestionFilter, page pagination.Page) (*QuestionPage, error) {
	questions, err := repo.Find(filter, page)
	if err != nil {
		return nil, storeFailure("find questions", err)
	}
	total, err := repo.Count(filter)
	if err != nil {
		return nil, storeFailure("count questions", err)
	}
	if questions == nil {
		questions = []entity.Question{}
	}
	return &QuestionPage{Questions: questions, Total: total}, nil
}

// QuestionService предоставляет методы для работы с вопросами
type QuestionService struct {
	questionRepo repository.QuestionRepository
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(questionRepo repository.QuestionRepository) *QuestionService {
	return &QuestionService{questionRepo: questionRepo}
}

// ListQuestions возвращает страницу всех вопросов.
// Пустая страница считается отсутствующим ресурсом.
func (s *QuestionService) ListQuestions(page pagination.Page) (*QuestionPage, error) {
	result, err := findPage(s.questionRepo, repository.QuestionFilter{}, page)
	if err != nil {
		return nil, err
	}
	if len(result.Questions) == 0 {
		return nil, fmt.Errorf("questions page %d: %w", page.Number, apperrors.ErrNotFound)
	}
	return result, nil
}

// CreateQuestion сохраняет новый вопрос (question.ID заполняется) и возвращает текущую страницу
func (s *QuestionService) CreateQuestion(question *entity.Question, page pagination.Page) (*QuestionPage, error) {
	if err := s.questionRepo.Create(question); err != nil {
		log.Printf("[QuestionService] Ошибка при создании вопроса: %v", err)
		return nil, storeFailure("create question", err)
	}
	return findPage(s.questionRepo, repository.QuestionFilter{}, page)
}

// DeleteQuestion удаляет вопрос и возвращает текущую страницу.
// Удаление несуществующего вопроса - ErrUnprocessable.
func (s *QuestionService) DeleteQuestion(id uint, page pagination.Page) (*QuestionPage, error) {
	if err := s.questionRepo.Delete(id); err != nil {
		return nil, storeFailure(fmt.Sprintf("delete question %d", id), err)
	}
	return findPage(s.questionRepo, repository.QuestionFilter{}, page)
}

// SearchQuestions ищет вопросы, содержащие term (без учета регистра).
// Одинаковые тексты вопросов возвращаются один раз.
func (s *QuestionService) SearchQuestions(term string, page pagination.Page) (*QuestionPage, error) {
	filter := repository.QuestionFilter{Search: &term, DistinctText: true}
	return findPage(s.questionRepo, filter, page)
}

// ExportQuestions возвращает все вопросы в порядке выдачи
func (s *QuestionService) ExportQuestions() ([]entity.Question, error) {
	questions, err := s.questionRepo.FindAll(repository.QuestionFilter{})
	if err != nil {
		return nil, storeFailure("export questions", err)
	}
	return questions, nil
}
