package availability

import "errors"

var (
	// ErrInvalidDateKey возвращается при некорректном ключе даты
	ErrInvalidDateKey = errors.New("availability.store: invalid date key")

	// ErrInvalidTime возвращается при некорректной метке времени
	ErrInvalidTime = errors.New("availability.store: invalid time label")
)
