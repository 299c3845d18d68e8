package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-questions/internal/handler/dto"
	"github.com/yourusername/trivia-questions/internal/handler/response"
	"github.com/yourusername/trivia-questions/internal/service"
)

// CategoryHandler обрабатывает запросы, связанные с категориями
type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler создает новый обработчик категорий
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// GetCategories возвращает все категории в виде id -> type
// GET /categories
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{
		"categories":       dto.NewCategoryMap(categories),
		"total_categories": len(categories),
	})
}

// GetCategoryQuestions возвращает страницу вопросов одной категории
// GET /categories/:id/questions?page=N
func (h *CategoryHandler) GetCategoryQuestions(c *gin.Context) {
	categoryID := c.MustGet("categoryID").(uint) // Получаем из контекста

	result, err := h.categoryService.ListQuestionsByCategory(categoryID, pageFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{
		"questions":        dto.NewQuestionListResponse(result.Questions),
		"total_questions":  result.Total,
		"current_category": categoryID,
	})
}
