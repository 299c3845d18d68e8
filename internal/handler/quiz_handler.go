package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-questions/internal/handler/dto"
	"github.com/yourusername/trivia-questions/internal/handler/response"
	"github.com/yourusername/trivia-questions/internal/service"
)

// QuizHandler обрабатывает игровой режим викторины
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler создает новый обработчик викторины
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// NextQuestion возвращает случайный еще не заданный вопрос.
// Если вопросы закончились, поле "question" отсутствует в ответе.
// POST /quizzes
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req dto.NextQuestionRequest
	if !bindJSON(c, &req) {
		return
	}
	req.Normalize()

	result, err := h.quizService.NextQuestion(service.NextQuestionInput{
		PreviousQuestions: req.PreviousQuestions,
		CategoryID:        req.CategoryID(),
		SessionID:         req.QuizSession,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	body := gin.H{
		"quiz_category":      req.QuizCategory,
		"previous_questions": req.PreviousQuestions,
	}
	if result.Question != nil {
		body["question"] = dto.NewQuestionResponse(result.Question)
	}
	if h.quizService.SessionsEnabled() {
		body["quiz_session"] = result.SessionID
	}

	response.OK(c, http.StatusOK, body)
}
