package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/trivia-questions/internal/domain/entity"
	"github.com/yourusername/trivia-questions/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-questions/internal/pkg/errors"
	"github.com/yourusername/trivia-questions/internal/service/quizselector"
)

func newTestQuizService(questionRepo *MockQuestionRepository, cacheRepo *MockCacheRepository) *QuizService {
	var sessions *QuizSessionStore
	if cacheRepo != nil {
		sessions = NewQuizSessionStore(cacheRepo, time.Hour)
	}
	return NewQuizService(quizselector.NewSelector(questionRepo), sessions)
}

// ============================================================================
// Без серверных сессий
// ============================================================================

func TestNextQuestion_AllCategoriesEmptyHistory(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	questionRepo.On("CandidateIDs", repository.QuestionFilter{ExcludeIDs: []uint{}}).Return([]uint{1, 2, 3}, nil)
	questionRepo.On("GetByID", mock.AnythingOfType("uint")).Return(&entity.Question{ID: 2}, nil)

	result, err := newTestQuizService(questionRepo, nil).NextQuestion(NextQuestionInput{
		PreviousQuestions: []uint{},
		CategoryID:        quizselector.AllCategories,
	})

	require.NoError(t, err)
	require.NotNil(t, result.Question)
	assert.Empty(t, result.SessionID, "без Redis сессия не выдается")
	questionRepo.AssertExpectations(t)
}

func TestNextQuestion_CategoryExhausted(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryID := uint(4)
	questionRepo.On("CandidateIDs", repository.QuestionFilter{CategoryID: &categoryID, ExcludeIDs: []uint{10, 11}}).
		Return([]uint{}, nil)

	result, err := newTestQuizService(questionRepo, nil).NextQuestion(NextQuestionInput{
		PreviousQuestions: []uint{10, 11},
		CategoryID:        4,
	})

	require.NoError(t, err)
	assert.Nil(t, result.Question)
}

func TestNextQuestion_StoreFailureIsUnprocessable(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	questionRepo.On("CandidateIDs", mock.Anything).Return(nil, errors.New("db down"))

	_, err := newTestQuizService(questionRepo, nil).NextQuestion(NextQuestionInput{})

	assert.ErrorIs(t, err, apperrors.ErrUnprocessable)
}

func TestNextQuestion_VanishedRowIsUnprocessable(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	questionRepo.On("CandidateIDs", mock.Anything).Return([]uint{8}, nil)
	questionRepo.On("GetByID", uint(8)).Return(nil, apperrors.ErrNotFound)

	_, err := newTestQuizService(questionRepo, nil).NextQuestion(NextQuestionInput{})

	assert.ErrorIs(t, err, apperrors.ErrUnprocessable)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
}

// ============================================================================
// С серверными сессиями (Redis)
// ============================================================================

func TestNextQuestion_NewSessionIsIssued(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	cacheRepo := new(MockCacheRepository)

	questionRepo.On("CandidateIDs", repository.QuestionFilter{ExcludeIDs: []uint{}}).Return([]uint{5}, nil)
	questionRepo.On("GetByID", uint(5)).Return(&entity.Question{ID: 5}, nil)
	cacheRepo.On("SetMembers", mock.MatchedBy(func(key string) bool { return len(key) > len("quiz_session:") })).
		Return([]string{}, nil)
	cacheRepo.On("AddToSet", mock.Anything, time.Hour, []string{"5"}).Return(nil)

	result, err := newTestQuizService(questionRepo, cacheRepo).NextQuestion(NextQuestionInput{})

	require.NoError(t, err)
	_, parseErr := uuid.Parse(result.SessionID)
	assert.NoError(t, parseErr, "новая сессия должна быть UUID")
	assert.Equal(t, uint(5), result.Question.ID)
	cacheRepo.AssertExpectations(t)
}

func TestNextQuestion_SessionExcludesSeenQuestions(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	cacheRepo := new(MockCacheRepository)
	sessionID := uuid.NewString()
	key := "quiz_session:" + sessionID

	cacheRepo.On("SetMembers", key).Return([]string{"4", "3"}, nil)
	// previous_questions из запроса и сессии объединяются без повторов
	questionRepo.On("CandidateIDs", repository.QuestionFilter{ExcludeIDs: []uint{1, 3, 4}}).Return([]uint{9}, nil)
	questionRepo.On("GetByID", uint(9)).Return(&entity.Question{ID: 9}, nil)
	// В сессию добавляется только новый id: SADD не затирает параллельные записи
	cacheRepo.On("AddToSet", key, time.Hour, []string{"9"}).Return(nil)

	result, err := newTestQuizService(questionRepo, cacheRepo).NextQuestion(NextQuestionInput{
		PreviousQuestions: []uint{1, 3},
		SessionID:         sessionID,
	})

	require.NoError(t, err)
	assert.Equal(t, sessionID, result.SessionID)
	assert.Equal(t, uint(9), result.Question.ID)
	questionRepo.AssertExpectations(t)
	cacheRepo.AssertExpectations(t)
}

func TestNextQuestion_SessionExhaustedDoesNotWrite(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	cacheRepo := new(MockCacheRepository)
	sessionID := uuid.NewString()

	cacheRepo.On("SetMembers", "quiz_session:"+sessionID).Return([]string{"1", "2"}, nil)
	questionRepo.On("CandidateIDs", mock.Anything).Return([]uint{}, nil)

	result, err := newTestQuizService(questionRepo, cacheRepo).NextQuestion(NextQuestionInput{SessionID: sessionID})

	require.NoError(t, err)
	assert.Nil(t, result.Question)
	cacheRepo.AssertNotCalled(t, "AddToSet", mock.Anything, mock.Anything, mock.Anything)
}

func TestNextQuestion_InvalidSessionID(t *testing.T) {
	_, err := newTestQuizService(new(MockQuestionRepository), new(MockCacheRepository)).
		NextQuestion(NextQuestionInput{SessionID: "not-a-uuid"})

	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestNextQuestion_CacheFailureIsUnprocessable(t *testing.T) {
	cacheRepo := new(MockCacheRepository)
	cacheRepo.On("SetMembers", mock.Anything).Return(nil, errors.New("redis: connection pool timeout"))

	_, err := newTestQuizService(new(MockQuestionRepository), cacheRepo).NextQuestion(NextQuestionInput{})

	assert.ErrorIs(t, err, apperrors.ErrUnprocessable)
}

func TestNextQuestion_CorruptedSessionIsUnprocessable(t *testing.T) {
	cacheRepo := new(MockCacheRepository)
	cacheRepo.On("SetMembers", mock.Anything).Return([]string{"7", "oops"}, nil)

	_, err := newTestQuizService(new(MockQuestionRepository), cacheRepo).
		NextQuestion(NextQuestionInput{SessionID: uuid.NewString()})

	assert.ErrorIs(t, err, apperrors.ErrUnprocessable)
}

func TestNextQuestion_MarkSeenFailureIsUnprocessable(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	cacheRepo := new(MockCacheRepository)

	cacheRepo.On("SetMembers", mock.Anything).Return([]string{}, nil)
	questionRepo.On("CandidateIDs", mock.Anything).Return([]uint{2}, nil)
	questionRepo.On("GetByID", uint(2)).Return(&entity.Question{ID: 2}, nil)
	cacheRepo.On("AddToSet", mock.Anything, time.Hour, []string{"2"}).Return(errors.New("redis: EXECABORT"))

	_, err := newTestQuizService(questionRepo, cacheRepo).NextQuestion(NextQuestionInput{})

	assert.ErrorIs(t, err, apperrors.ErrUnprocessable)
}

func TestMergeIDs(t *testing.T) {
	assert.Equal(t, []uint{1, 2, 3}, mergeIDs([]uint{1, 2}, []uint{2, 3}))
	assert.Equal(t, []uint{}, mergeIDs(nil, nil))
}
