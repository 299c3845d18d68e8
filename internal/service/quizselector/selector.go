package quizselector

import (
	"fmt"
	"math/rand/v2"

	"github.com/yourusername/trivia-questions/internal/domain/entity"
	"github.com/yourusername/trivia-questions/internal/domain/repository"
)

// AllCategories - значение id категории, означающее "без ограничения по категории"
const AllCategories uint = 0

// CandidateStore - хранилище, из которого выбираются вопросы
type CandidateStore interface {
	CandidateIDs(filter repository.QuestionFilter) ([]uint, error)
	GetByID(id uint) (*entity.Question, error)
}

// Selector выбирает следующий вопрос викторины:
// один равновероятный случайный вопрос среди еще не заданных.
type Selector struct {
	store CandidateStore
	intN  func(n int) int
}

// NewSelector создает селектор на глобальном генераторе math/rand/v2 (безопасен для горутин)
func NewSelector(store CandidateStore) *Selector {
	return &Selector{store: store, intN: rand.IntN}
}

// NewSelectorWithRand создает селектор с собственным генератором.
// *rand.Rand не потокобезопасен, поэтому такой селектор нельзя делить между горутинами.
func NewSelectorWithRand(store CandidateStore, rnd *rand.Rand) *Selector {
	return &Selector{store: store, intN: rnd.IntN}
}

// CandidateFilter строит фильтр кандидатов: категория (если не AllCategories) минус уже заданные вопросы
func CandidateFilter(categoryID uint, previous []uint) repository.QuestionFilter {
	filter := repository.QuestionFilter{ExcludeIDs: previous}
	if categoryID != AllCategories {
		filter.CategoryID = &categoryID
	}
	return filter
}

// Pick выбирает случайный вопрос из кандидатов.
// Если кандидатов нет, возвращает (nil, nil): вопросы закончились, это не ошибка.
func (s *Selector) Pick(categoryID uint, previous []uint) (*entity.Question, error) {
	ids, err := s.store.CandidateIDs(CandidateFilter(categoryID, previous))
	if err != nil {
		return nil, fmt.Errorf("failed to list quiz candidates: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	// Одно равновероятное извлечение
	id := ids[s.intN(len(ids))]

	question, err := s.store.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load quiz question %d: %w", id, err)
	}
	return question, nil
}
