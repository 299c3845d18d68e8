package dto

import (
	"github.com/yourusername/trivia-questions/internal/domain/entity"
)

// QuestionResponse представляет вопрос в формате для ответа клиенту
type QuestionResponse struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   uint   `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// NewQuestionResponse создает DTO для вопроса
func NewQuestionResponse(question *entity.Question) *QuestionResponse {
	return &QuestionResponse{
		ID:         question.ID,
		Question:   question.Text,
		Answer:     question.Answer,
		Category:   question.CategoryID,
		Difficulty: question.Difficulty,
	}
}

// NewQuestionListResponse создает список DTO для вопросов (никогда не nil)
func NewQuestionListResponse(questions []entity.Question) []*QuestionResponse {
	result := make([]*QuestionResponse, 0, len(questions))
	for i := range questions {
		result = append(result, NewQuestionResponse(&questions[i]))
	}
	return result
}

// NewCategoryMap превращает список категорий в отображение id -> type
func NewCategoryMap(categories []entity.Category) map[uint]string {
	result := make(map[uint]string, len(categories))
	for _, category := range categories {
		result[category.ID] = category.Type
	}
	return result
}

// CreateQuestionRequest - тело POST /questions.
// Все четыре поля обязательны.
type CreateQuestionRequest struct {
	Question   string      `json:"question" binding:"required"`
	Answer     string      `json:"answer" binding:"required"`
	Category   *FlexibleID `json:"category" binding:"required"`
	Difficulty *int        `json:"difficulty" binding:"required"`
}

// ToEntity создает сущность вопроса из запроса
func (r *CreateQuestionRequest) ToEntity() *entity.Question {
	return &entity.Question{
		Text:       r.Question,
		Answer:     r.Answer,
		CategoryID: uint(*r.Category),
		Difficulty: *r.Difficulty,
	}
}

// SearchQuestionsRequest - тело POST /questions/search.
// Отсутствующий или null searchTerm равен пустой строке (совпадает со всеми вопросами).
type SearchQuestionsRequest struct {
	SearchTerm *string `json:"searchTerm"`
}

// Term возвращает строку поиска с учетом значения по умолчанию
func (r *SearchQuestionsRequest) Term() string {
	if r.SearchTerm == nil {
		return ""
	}
	return *r.SearchTerm
}
