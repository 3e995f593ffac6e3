package get_notice

import "github.com/avtoline-dev/STO-SiteService/internal/domain"

// NoticeService интерфейс центра транзитных уведомлений
type NoticeService interface {
	Current(sessionID string) (domain.Notice, bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
