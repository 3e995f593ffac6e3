package select_date

import (
	"time"

	"github.com/avtoline-dev/STO-SiteService/internal/service/calendar"
)

// CalendarService интерфейс навигатора календаря
type CalendarService interface {
	SelectDate(sessionID string, date time.Time) (*calendar.DaySlotsView, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
