package service

import (
	"github.com/yourusername/trivia-questions/internal/domain/entity"
	"github.com/yourusername/trivia-questions/internal/service/quizselector"
)

// NextQuestionInput - входные данные для выбора следующего вопроса викторины
type NextQuestionInput struct {
	PreviousQuestions []uint
	CategoryID        uint   // quizselector.AllCategories - все категории
	SessionID         string // пусто - новая сессия (если сессии включены)
}

// NextQuestionResult - результат выбора. Question == nil означает, что вопросы закончились.
type NextQuestionResult struct {
	Question  *entity.Question
	SessionID string // пусто, если сессии выключены
}

// QuizService реализует игровой режим "следующий вопрос"
type QuizService struct {
	selector *quizselector.Selector
	sessions *QuizSessionStore // nil - серверные сессии выключены
}

// NewQuizService создает новый сервис викторины. sessions может быть nil.
func NewQuizService(selector *quizselector.Selector, sessions *QuizSessionStore) *QuizService {
	return &QuizService{
		selector: selector,
		sessions: sessions,
	}
}

// SessionsEnabled сообщает, хранит ли сервис сессии на сервере
func (s *QuizService) SessionsEnabled() bool {
	return s.sessions != nil
}

// NextQuestion выбирает случайный вопрос среди еще не заданных
func (s *QuizService) NextQuestion(input NextQuestionInput) (*NextQuestionResult, error) {
	if s.sessions == nil {
		question, err := s.selector.Pick(input.CategoryID, input.PreviousQuestions)
		if err != nil {
			return nil, storeFailure("pick quiz question", err)
		}
		return &NextQuestionResult{Question: question}, nil
	}

	sessionID := input.SessionID
	if sessionID == "" {
		sessionID = s.sessions.NewSessionID()
	} else if err := s.sessions.ValidateSessionID(sessionID); err != nil {
		return nil, err
	}

	seen, err := s.sessions.Seen(sessionID)
	if err != nil {
		return nil, storeFailure("load quiz session", err)
	}

	question, err := s.selector.Pick(input.CategoryID, mergeIDs(input.PreviousQuestions, seen))
	if err != nil {
		return nil, storeFailure("pick quiz question", err)
	}

	if question != nil {
		if err := s.sessions.MarkSeen(sessionID, question.ID); err != nil {
			return nil, storeFailure("save quiz session", err)
		}
	}

	return &NextQuestionResult{Question: question, SessionID: sessionID}, nil
}

// mergeIDs объединяет два списка id без повторов, сохраняя порядок
func mergeIDs(a, b []uint) []uint {
	merged := make([]uint, 0, len(a)+len(b))
	seen := make(map[uint]struct{}, len(a)+len(b))
	for _, list := range [][]uint{a, b} {
		for _, id := range list {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			merged = append(merged, id)
		}
	}
	return merged
}
