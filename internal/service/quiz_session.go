package service

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/trivia-questions/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-questions/internal/pkg/errors"
)

// QuizSessionStore хранит в кеше множество id вопросов, уже заданных в сессии викторины
type QuizSessionStore struct {
	cacheRepo repository.CacheRepository
	ttl       time.Duration
}

// NewQuizSessionStore создает хранилище сессий поверх кеша
func NewQuizSessionStore(cacheRepo repository.CacheRepository, ttl time.Duration) *QuizSessionStore {
	return &QuizSessionStore{cacheRepo: cacheRepo, ttl: ttl}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("quiz_session:%s", sessionID)
}

// NewSessionID выдает идентификатор новой сессии
func (s *QuizSessionStore) NewSessionID() string {
	return uuid.NewString()
}

// ValidateSessionID проверяет, что идентификатор сессии - корректный UUID
func (s *QuizSessionStore) ValidateSessionID(sessionID string) error {
	if _, err := uuid.Parse(sessionID); err != nil {
		return fmt.Errorf("invalid quiz_session %q: %w", sessionID, apperrors.ErrBadRequest)
	}
	return nil
}

// Seen возвращает id вопросов, уже заданных в сессии, по возрастанию.
// Неизвестная сессия - пустой список.
func (s *QuizSessionStore) Seen(sessionID string) ([]uint, error) {
	members, err := s.cacheRepo.SetMembers(sessionKey(sessionID))
	if err != nil {
		return nil, err
	}

	seen := make([]uint, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseUint(m, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("corrupted quiz session %s entry %q: %w", sessionID, m, err)
		}
		seen = append(seen, uint(id))
	}
	sort.Slice(seen, func(i, j int) bool { return seen[i] < seen[j] })
	return seen, nil
}

// MarkSeen добавляет вопрос в сессию и продлевает время ее жизни.
// Добавление атомарно: параллельные запросы одной сессии не теряют id друг друга.
func (s *QuizSessionStore) MarkSeen(sessionID string, questionID uint) error {
	return s.cacheRepo.AddToSet(sessionKey(sessionID), s.ttl, strconv.FormatUint(uint64(questionID), 10))
}
