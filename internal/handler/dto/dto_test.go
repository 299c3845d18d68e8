package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/trivia-questions/internal/domain/entity"
)

func TestFlexibleID_Unmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    FlexibleID
		wantErr bool
	}{
		{"number", `4`, 4, false},
		{"string", `"4"`, 4, false},
		{"zero", `0`, 0, false},
		{"null", `null`, 0, false},
		{"negative", `-1`, 0, true},
		{"fraction", `1.5`, 0, true},
		{"text", `"history"`, 0, true},
		{"bool", `true`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id FlexibleID
			err := json.Unmarshal([]byte(tt.input), &id)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestIDList_Unmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    IDList
		wantErr bool
	}{
		{"array", `{"previous_questions": [23, 12]}`, IDList{23, 12}, false},
		{"empty array", `{"previous_questions": []}`, IDList{}, false},
		{"empty object", `{"previous_questions": {}}`, IDList{}, false},
		{"null", `{"previous_questions": null}`, IDList{}, false},
		{"absent", `{}`, IDList{}, false},
		{"object with keys", `{"previous_questions": {"a": 1}}`, nil, true},
		{"negative id", `{"previous_questions": [-1]}`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req NextQuestionRequest
			err := json.Unmarshal([]byte(tt.input), &req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			req.Normalize()
			assert.Equal(t, tt.want, req.PreviousQuestions)
		})
	}
}

func TestNextQuestionRequest_CategoryID(t *testing.T) {
	var req NextQuestionRequest
	require.NoError(t, json.Unmarshal([]byte(`{"quiz_category": {"type": "History", "id": "4"}}`), &req))
	assert.Equal(t, uint(4), req.CategoryID())

	req = NextQuestionRequest{}
	assert.Equal(t, uint(0), req.CategoryID(), "отсутствующая категория означает все категории")

	req = NextQuestionRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"quiz_category": {"type": "click", "id": null}}`), &req))
	assert.Equal(t, uint(0), req.CategoryID(), "id null означает все категории")
}

func TestCreateQuestionRequest_NullCategoryStaysAbsent(t *testing.T) {
	var req CreateQuestionRequest
	require.NoError(t, json.Unmarshal([]byte(`{"question": "Q?", "answer": "A", "category": null, "difficulty": 1}`), &req))
	assert.Nil(t, req.Category, "null категория не проходит проверку required")
}

func TestSearchQuestionsRequest_Term(t *testing.T) {
	var req SearchQuestionsRequest
	require.NoError(t, json.Unmarshal([]byte(`{"searchTerm": null}`), &req))
	assert.Equal(t, "", req.Term())

	require.NoError(t, json.Unmarshal([]byte(`{"searchTerm": "India"}`), &req))
	assert.Equal(t, "India", req.Term())
}

func TestNewQuestionResponse(t *testing.T) {
	resp := NewQuestionResponse(&entity.Question{ID: 5, Text: "Q?", Answer: "A", CategoryID: 3, Difficulty: 2})

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":5,"question":"Q?","answer":"A","category":3,"difficulty":2}`, string(data))
}

func TestNewCategoryMap(t *testing.T) {
	categories := NewCategoryMap([]entity.Category{{ID: 1, Type: "Science"}, {ID: 2, Type: "Art"}})

	data, err := json.Marshal(categories)
	require.NoError(t, err)
	assert.JSONEq(t, `{"1":"Science","2":"Art"}`, string(data))
}
