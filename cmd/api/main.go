package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yourusername/trivia-questions/internal/config"
	"github.com/yourusername/trivia-questions/internal/handler"
	pgRepo "github.com/yourusername/trivia-questions/internal/repository/postgres"
	redisRepo "github.com/yourusername/trivia-questions/internal/repository/redis"
	"github.com/yourusername/trivia-questions/internal/service"
	"github.com/yourusername/trivia-questions/internal/service/quizselector"
	"github.com/yourusername/trivia-questions/pkg/database"
)

func main() {
	// .env не обязателен: в контейнере переменные окружения задаются напрямую
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: failed to load .env file: %v", err)
	}

	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	gin.SetMode(cfg.Server.Mode)

	db, err := openDatabase(cfg.Database, cfg.Server.Mode)
	if err != nil {
		log.Printf("Failed to initialize database: %v", err)
		os.Exit(1)
	}

	// Redis нужен только для серверных сессий викторины
	var redisClient redis.UniversalClient
	var sessions *service.QuizSessionStore
	if cfg.Redis.Enabled {
		redisClient, err = database.NewUniversalRedisClient(cfg.Redis)
		if err != nil {
			log.Printf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		log.Println("Successfully connected to Redis")

		cacheRepo, err := redisRepo.NewCacheRepo(redisClient)
		if err != nil {
			log.Printf("Failed to initialize CacheRepo: %v", err)
			os.Exit(1)
		}
		sessions = service.NewQuizSessionStore(cacheRepo, cfg.Quiz.SessionTTL)
	} else {
		log.Println("Redis disabled: quiz sessions are kept by the client only")
	}

	// Инициализируем репозитории
	categoryRepo := pgRepo.NewCategoryRepo(db)
	questionRepo := pgRepo.NewQuestionRepo(db)

	// Инициализируем сервисы
	categoryService := service.NewCategoryService(categoryRepo, questionRepo)
	questionService := service.NewQuestionService(questionRepo)
	quizService := service.NewQuizService(quizselector.NewSelector(questionRepo), sessions)

	// Инициализируем обработчики и роутер
	router := handler.NewRouter(cfg.CORS, handler.Handlers{
		Category: handler.NewCategoryHandler(categoryService),
		Question: handler.NewQuestionHandler(questionService, categoryService),
		Quiz:     handler.NewQuizHandler(quizService),
		Health:   handler.NewHealthHandler(func() error { return database.Ping(db) }),
	})

	if gin.Mode() == gin.ReleaseMode {
		// Production: не доверять прокси-заголовкам
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
		log.Printf("Warning: failed to set trusted proxies: %v", err)
	}

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis client: %v", err)
		}
	}
	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}

	log.Println("Server exited properly")
}

// openDatabase подключается к PostgreSQL или SQLite и при необходимости применяет миграции
func openDatabase(cfg config.DatabaseConfig, mode string) (*gorm.DB, error) {
	logLevel := logger.Warn
	if mode == gin.DebugMode {
		logLevel = logger.Info
	}

	if cfg.IsSQLite() {
		log.Printf("Using SQLite database at %s", cfg.Path)
		db, err := database.NewSQLiteDB(cfg.Path, logLevel)
		if err != nil {
			return nil, err
		}
		if cfg.AutoMigrate {
			if err := database.AutoMigrate(db); err != nil {
				return nil, err
			}
			if err := database.SeedCategories(db); err != nil {
				return nil, err
			}
		}
		return db, nil
	}

	db, err := database.NewPostgresDB(cfg.PostgresConnectionString(), logLevel)
	if err != nil {
		return nil, err
	}
	if cfg.AutoMigrate {
		if err := database.MigrateDB(db, cfg.MigrationsPath); err != nil {
			return nil, err
		}
	}
	return db, nil
}
