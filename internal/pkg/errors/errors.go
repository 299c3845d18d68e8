package errors

import (
	"errors"
	"net/http"
)

// Общие ошибки приложения. Каждая ошибка соответствует одному виду ответа API.
var (
	// ErrBadRequest используется для некорректного или неполного тела запроса.
	ErrBadRequest = errors.New("bad request")

	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("resource not found")

	// ErrMethodNotAllowed используется, когда метод не определён для маршрута.
	ErrMethodNotAllowed = errors.New("method not allowed")

	// ErrUnprocessable используется, когда корректный запрос не удалось выполнить на уровне хранилища
	// (нарушение ограничений, удаление несуществующей записи, ошибка поиска).
	ErrUnprocessable = errors.New("unprocessable")
)

// Kind описывает вид ошибки для HTTP ответа
type Kind struct {
	Status  int
	Message string
}

var (
	kindBadRequest       = Kind{Status: http.StatusBadRequest, Message: "bad request"}
	kindNotFound         = Kind{Status: http.StatusNotFound, Message: "resource not found"}
	kindMethodNotAllowed = Kind{Status: http.StatusMethodNotAllowed, Message: "method not allowed"}
	kindUnprocessable    = Kind{Status: http.StatusUnprocessableEntity, Message: "unprocessable"}
	kindInternal         = Kind{Status: http.StatusInternalServerError, Message: "internal server error"}
)

// KindOf возвращает HTTP статус и сообщение для ошибки.
// Неизвестные ошибки считаются внутренними.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrBadRequest):
		return kindBadRequest
	case errors.Is(err, ErrNotFound):
		return kindNotFound
	case errors.Is(err, ErrMethodNotAllowed):
		return kindMethodNotAllowed
	case errors.Is(err, ErrUnprocessable):
		return kindUnprocessable
	default:
		return kindInternal
	}
}

// IsClientError сообщает, относится ли ошибка к одному из четырёх клиентских видов
func IsClientError(err error) bool {
	return KindOf(err).Status != http.StatusInternalServerError
}
