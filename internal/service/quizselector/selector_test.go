package quizselector

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/trivia-questions/internal/domain/entity"
	"github.com/yourusername/trivia-questions/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-questions/internal/pkg/errors"
)

// MockCandidateStore реализует CandidateStore
type MockCandidateStore struct {
	mock.Mock
}

func (m *MockCandidateStore) CandidateIDs(filter repository.QuestionFilter) ([]uint, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockCandidateStore) GetByID(id uint) (*entity.Question, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Question), args.Error(1)
}

func uintPtr(v uint) *uint { return &v }

func TestCandidateFilter(t *testing.T) {
	all := CandidateFilter(AllCategories, []uint{1, 2})
	assert.Nil(t, all.CategoryID, "id 0 означает все категории")
	assert.Equal(t, []uint{1, 2}, all.ExcludeIDs)

	science := CandidateFilter(3, nil)
	require.NotNil(t, science.CategoryID)
	assert.Equal(t, uint(3), *science.CategoryID)
	assert.Empty(t, science.ExcludeIDs)
}

func TestPick_Exhausted(t *testing.T) {
	store := new(MockCandidateStore)
	store.On("CandidateIDs", repository.QuestionFilter{CategoryID: uintPtr(2), ExcludeIDs: []uint{5, 9}}).
		Return([]uint{}, nil)

	selector := NewSelector(store)
	question, err := selector.Pick(2, []uint{5, 9})

	require.NoError(t, err, "исчерпание кандидатов - не ошибка")
	assert.Nil(t, question)
	store.AssertExpectations(t)
	store.AssertNotCalled(t, "GetByID", mock.Anything)
}

func TestPick_ReturnsCandidate(t *testing.T) {
	store := new(MockCandidateStore)
	store.On("CandidateIDs", mock.Anything).Return([]uint{7}, nil)
	store.On("GetByID", uint(7)).Return(&entity.Question{ID: 7, Text: "Q7"}, nil)

	question, err := NewSelector(store).Pick(AllCategories, nil)

	require.NoError(t, err)
	require.NotNil(t, question)
	assert.Equal(t, uint(7), question.ID)
	store.AssertExpectations(t)
}

func TestPick_StoreErrors(t *testing.T) {
	t.Run("candidates", func(t *testing.T) {
		store := new(MockCandidateStore)
		store.On("CandidateIDs", mock.Anything).Return(nil, errors.New("db down"))

		_, err := NewSelector(store).Pick(AllCategories, nil)
		assert.ErrorContains(t, err, "db down")
	})

	t.Run("row vanished", func(t *testing.T) {
		store := new(MockCandidateStore)
		store.On("CandidateIDs", mock.Anything).Return([]uint{4}, nil)
		store.On("GetByID", uint(4)).Return(nil, apperrors.ErrNotFound)

		_, err := NewSelector(store).Pick(AllCategories, nil)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

// TestPick_Uniform проверяет, что при многократных вызовах все кандидаты выпадают примерно поровну
func TestPick_Uniform(t *testing.T) {
	candidates := []uint{10, 20, 30, 40}
	store := new(MockCandidateStore)
	store.On("CandidateIDs", mock.Anything).Return(candidates, nil)
	for _, id := range candidates {
		store.On("GetByID", id).Return(&entity.Question{ID: id}, nil)
	}

	selector := NewSelectorWithRand(store, rand.New(rand.NewPCG(42, 1024)))

	const trials = 8000
	counts := make(map[uint]int)
	for i := 0; i < trials; i++ {
		question, err := selector.Pick(AllCategories, nil)
		require.NoError(t, err)
		counts[question.ID]++
	}

	expected := trials / len(candidates)
	for _, id := range candidates {
		// Допуск 10% от ожидаемого значения (около 6 стандартных отклонений)
		assert.InDelta(t, expected, counts[id], float64(expected)/10, "кандидат %d", id)
	}
}
