package create_booking

import "errors"

var (
	// ErrEmptyName возвращается, когда имя клиента не заполнено
	ErrEmptyName = errors.New("create_booking: client name is required")

	// ErrEmptyPhone возвращается, когда телефон клиента не заполнен
	ErrEmptyPhone = errors.New("create_booking: client phone is required")

	// ErrNoDateSelected возвращается, когда дата записи не выбрана
	ErrNoDateSelected = errors.New("create_booking: booking date is required")

	// ErrNoTimeSelected возвращается, когда время записи не выбрано
	ErrNoTimeSelected = errors.New("create_booking: start time is required")

	// ErrEmptySelection возвращается, когда не выбрано ни одной услуги
	ErrEmptySelection = errors.New("create_booking: at least one service must be selected")

	// ErrDateInPast возвращается при записи на прошедшую дату
	ErrDateInPast = errors.New("create_booking: date is in the past")

	// ErrDateClosed возвращается при записи на нерабочий день
	ErrDateClosed = errors.New("create_booking: station is closed on this date")

	// ErrInvalidTimeSlot возвращается, когда время не принадлежит сетке слотов
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrTooLateToBook возвращается, когда до начала слота осталось меньше
	// минимального интервала записи
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrSlotNotAvailable возвращается при записи на занятый слот
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")
)
