package domain

// Default schedule values
const (
	DefaultOpenHour    = 9
	DefaultCloseHour   = 19
	DefaultSlotMinutes = 60
)

// Business validation constants
const (
	MinSlotMinutes = 5
	MaxSlotMinutes = 480 // 8 часов

	MaxClientNameLength = 200
	MaxPhoneLength      = 32
	MaxCommentLength    = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
