package get_calendar

import "github.com/avtoline-dev/STO-SiteService/internal/service/calendar"

// CalendarService интерфейс навигатора календаря
type CalendarService interface {
	MonthView(sessionID string) (*calendar.MonthView, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
