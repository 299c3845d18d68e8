package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-questions/internal/handler/response"
)

// HealthHandler отвечает на проверки доступности
type HealthHandler struct {
	ping func() error
}

// NewHealthHandler создает обработчик. ping проверяет соединение с базой данных.
func NewHealthHandler(ping func() error) *HealthHandler {
	return &HealthHandler{ping: ping}
}

// Health проверяет базу данных
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.ping(); err != nil {
		response.Error(c, fmt.Errorf("database ping: %w", err))
		return
	}
	response.OK(c, http.StatusOK, gin.H{"status": "ok"})
}
