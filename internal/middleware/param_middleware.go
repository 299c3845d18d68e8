package middleware

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-questions/internal/handler/response"
	apperrors "github.com/yourusername/trivia-questions/internal/pkg/errors"
)

// ExtractUintParam создает middleware для извлечения и валидации числового параметра URL.
// paramName - имя параметра в URL (например, "id").
// contextKey - ключ, под которым значение будет сохранено в контексте Gin.
// Нечисловой параметр означает, что такого ресурса нет (404).
func ExtractUintParam(paramName, contextKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param(paramName)
		id, err := strconv.ParseUint(idStr, 10, 32)
		if err != nil {
			response.Error(c, fmt.Errorf("invalid %s %q: %w", paramName, idStr, apperrors.ErrNotFound))
			return
		}
		c.Set(contextKey, uint(id))
		c.Next()
	}
}
