package handler

import (
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-questions/internal/config"
	"github.com/yourusername/trivia-questions/internal/handler/response"
	"github.com/yourusername/trivia-questions/internal/middleware"
	apperrors "github.com/yourusername/trivia-questions/internal/pkg/errors"
)

// Handlers - набор обработчиков, из которых собирается роутер
type Handlers struct {
	Category *CategoryHandler
	Question *QuestionHandler
	Quiz     *QuizHandler
	Health   *HealthHandler
}

// corsConfig строит настройки CORS. "*" в списке источников разрешает любой источник.
func corsConfig(cfg config.CORSConfig) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "PUT", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	for _, origin := range cfg.AllowOrigins {
		if origin == "*" {
			corsCfg.AllowAllOrigins = true
			return corsCfg
		}
	}
	corsCfg.AllowOrigins = cfg.AllowOrigins
	return corsCfg
}

// NewRouter создает роутер Gin со всеми маршрутами API
func NewRouter(corsCfg config.CORSConfig, h Handlers) *gin.Engine {
	router := gin.Default()
	router.HandleMethodNotAllowed = true

	router.Use(middleware.RequestID())
	router.Use(cors.New(corsConfig(corsCfg)))

	// Единый формат ошибок для неизвестных маршрутов и неподдерживаемых методов
	router.NoRoute(func(c *gin.Context) {
		response.Error(c, fmt.Errorf("route %s: %w", c.Request.URL.Path, apperrors.ErrNotFound))
	})
	router.NoMethod(func(c *gin.Context) {
		response.Error(c, fmt.Errorf("%s %s: %w", c.Request.Method, c.Request.URL.Path, apperrors.ErrMethodNotAllowed))
	})

	router.GET("/health", h.Health.Health)

	categories := router.Group("/categories")
	{
		categories.GET("", h.Category.GetCategories)
		categories.GET("/:id/questions", middleware.ExtractUintParam("id", "categoryID"), h.Category.GetCategoryQuestions)
	}

	questions := router.Group("/questions")
	{
		questions.GET("", h.Question.ListQuestions)
		questions.POST("", h.Question.CreateQuestion)
		questions.POST("/search", h.Question.SearchQuestions)
		questions.GET("/export", h.Question.ExportQuestions)
		questions.DELETE("/:id", middleware.ExtractUintParam("id", "questionID"), h.Question.DeleteQuestion)
	}

	router.POST("/quizzes", h.Quiz.NextQuestion)

	return router
}
