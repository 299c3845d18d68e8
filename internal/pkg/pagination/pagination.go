package pagination

import (
	"errors"
	"math"
	"strconv"
)

// PageSize - фиксированный размер страницы для всех списков вопросов
const PageSize = 10

// MaxPage - наибольший номер страницы, для которого Offset не переполняет int.
// Большие номера приводятся к нему: такая страница все равно за пределами любой выборки.
const MaxPage = math.MaxInt / PageSize

// Page описывает одну страницу упорядоченной выборки (нумерация с 1)
type Page struct {
	Number int
	Size   int
}

// New создает страницу с номером number. Номер < 1 заменяется на 1, номер > MaxPage - на MaxPage.
func New(number int) Page {
	if number < 1 {
		number = 1
	}
	if number > MaxPage {
		number = MaxPage
	}
	return Page{Number: number, Size: PageSize}
}

// ParsePage разбирает query-параметр page.
// Пустое, нечисловое или неположительное значение дает первую страницу.
// Слишком большое значение (в том числе не помещающееся в int) дает MaxPage.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange && raw != "" && raw[0] != '-' {
			return MaxPage
		}
		return 1
	}
	if page < 1 {
		return 1
	}
	if page > MaxPage {
		return MaxPage
	}
	return page
}

// Offset возвращает индекс первого элемента страницы
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Limit возвращает максимальное количество элементов на странице
func (p Page) Limit() int {
	return p.Size
}
