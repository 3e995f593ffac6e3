package select_time

import "github.com/avtoline-dev/STO-SiteService/pkg/types"

// CalendarService интерфейс навигатора календаря
type CalendarService interface {
	SelectTime(sessionID string, t types.TimeString) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
