package calendar

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия календаря не найдена
	ErrSessionNotFound = errors.New("calendar: session not found")

	// ErrInvalidDirection возвращается при неподдерживаемом шаге навигации
	ErrInvalidDirection = errors.New("calendar: navigation direction must be -1 or 1")

	// ErrDateInPast возвращается при попытке выбрать прошедшую дату
	ErrDateInPast = errors.New("calendar: date is in the past")

	// ErrDateClosed возвращается при попытке выбрать нерабочий день
	ErrDateClosed = errors.New("calendar: station is closed on this date")

	// ErrNoDateSelected возвращается при выборе времени до выбора даты
	ErrNoDateSelected = errors.New("calendar: no date selected")

	// ErrUnknownSlot возвращается, когда метка времени не принадлежит сетке слотов
	ErrUnknownSlot = errors.New("calendar: time is not a valid slot for this date")

	// ErrSlotBusy возвращается при выборе уже занятого слота
	ErrSlotBusy = errors.New("calendar: slot is already busy")
)
