package calendar

import (
	"time"

	"github.com/avtoline-dev/STO-SiteService/internal/domain"
	"github.com/avtoline-dev/STO-SiteService/pkg/types"
)

// AvailabilityReader интерфейс чтения занятых слотов
type AvailabilityReader interface {
	IsBusy(dateKey string, t types.TimeString) bool
}

// NoticePublisher интерфейс публикации транзитных уведомлений
type NoticePublisher interface {
	Publish(sessionID string, level domain.NoticeLevel, text string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
