// Package paginate реализует срез списка по limit/offset.
package paginate

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// ErrInvalidParam возвращается для нечислового или отрицательного limit/offset.
var ErrInvalidParam = errors.New("invalid pagination parameter")

// Slice возвращает копию items[offset : offset+limit].
// offset за пределами списка и limit = 0 дают пустой результат без ошибки.
func Slice[T any](items []T, limit, offset int) []T {
	if limit <= 0 || offset < 0 || offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit < end-offset {
		end = offset + limit
	}
	out := make([]T, end-offset)
	copy(out, items[offset:end])
	return out
}

// Params разбирает limit и offset из строки запроса.
// Отсутствующий параметр заменяется значением по умолчанию.
func Params(q url.Values, defaultLimit, defaultOffset int) (limit, offset int, err error) {
	limit, err = intParam(q, "limit", defaultLimit)
	if err != nil {
		return 0, 0, err
	}
	offset, err = intParam(q, "offset", defaultOffset)
	if err != nil {
		return 0, 0, err
	}
	return limit, offset, nil
}

func intParam(q url.Values, name string, def int) (int, error) {
	raw := q.Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", ErrInvalidParam, name)
	}
	return v, nil
}
