package repository

import (
	"time"
)

// CacheRepository определяет методы для работы с кешем (Redis)
type CacheRepository interface {
	// AddToSet атомарно добавляет элементы в множество и продлевает его время жизни
	AddToSet(key string, expiration time.Duration, members ...string) error
	// SetMembers возвращает элементы множества; для отсутствующего ключа - пустой список
	SetMembers(key string) ([]string, error)
}
