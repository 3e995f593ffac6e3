package navigate_month

import "github.com/avtoline-dev/STO-SiteService/internal/service/calendar"

// CalendarService интерфейс навигатора календаря
type CalendarService interface {
	NavigateMonth(sessionID string, direction int) (*calendar.MonthView, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
