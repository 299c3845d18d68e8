package response

import (
	"log"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yourusername/trivia-questions/internal/pkg/errors"
)

// RequestIDKey - ключ контекста gin с идентификатором запроса
const RequestIDKey = "request_id"

// OK отправляет успешный ответ. Поле "success": true добавляется всегда.
func OK(c *gin.Context, status int, body gin.H) {
	if body == nil {
		body = gin.H{}
	}
	body["success"] = true
	c.JSON(status, body)
}

// Error отправляет ответ об ошибке в формате {"success": false, "error": <код>, "message": <текст>}
// и прерывает цепочку обработчиков.
func Error(c *gin.Context, err error) {
	kind := apperrors.KindOf(err)
	requestID := c.GetString(RequestIDKey)

	if apperrors.IsClientError(err) {
		log.Printf("[API] %s %s -> %d (request %s): %v", c.Request.Method, c.Request.URL.Path, kind.Status, requestID, err)
	} else {
		log.Printf("ERROR: Internal server error on %s %s (request %s): %v", c.Request.Method, c.Request.URL.Path, requestID, err)
	}

	c.AbortWithStatusJSON(kind.Status, gin.H{
		"success": false,
		"error":   kind.Status,
		"message": kind.Message,
	})
}
