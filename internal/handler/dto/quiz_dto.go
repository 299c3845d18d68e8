package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexibleID - неотрицательный идентификатор, который клиент может прислать
// числом (4) или строкой с числом ("4"). null равен 0.
type FlexibleID uint

// UnmarshalJSON реализует json.Unmarshaler
func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	raw := string(bytes.TrimSpace(data))
	if raw == "null" {
		*id = 0
		return nil
	}
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = s
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid id %s: must be a non-negative integer", string(data))
	}
	*id = FlexibleID(value)
	return nil
}

// IDList - список id ранее заданных вопросов.
// null и пустой объект {} считаются пустым списком.
type IDList []uint

// UnmarshalJSON реализует json.Unmarshaler
func (l *IDList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*l = IDList{}
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return err
		}
		if len(obj) > 0 {
			return fmt.Errorf("previous_questions must be an array of ids")
		}
		*l = IDList{}
		return nil
	}

	var ids []uint
	if err := json.Unmarshal(trimmed, &ids); err != nil {
		return err
	}
	if ids == nil {
		ids = []uint{}
	}
	*l = ids
	return nil
}

// QuizCategory - выбранная категория викторины. ID 0 означает "все категории".
type QuizCategory struct {
	ID   FlexibleID `json:"id"`
	Type string     `json:"type,omitempty"`
}

// NextQuestionRequest - тело POST /quizzes.
// previous_questions по умолчанию пустой, отсутствующая quiz_category равна "все категории".
type NextQuestionRequest struct {
	PreviousQuestions IDList        `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
	QuizSession       string        `json:"quiz_session"`
}

// Normalize подставляет значения по умолчанию
func (r *NextQuestionRequest) Normalize() {
	if r.PreviousQuestions == nil {
		r.PreviousQuestions = IDList{}
	}
}

// CategoryID возвращает id категории (0 - все категории)
func (r *NextQuestionRequest) CategoryID() uint {
	if r.QuizCategory == nil {
		return 0
	}
	return uint(r.QuizCategory.ID)
}
