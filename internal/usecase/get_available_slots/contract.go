package get_available_slots

import (
	"time"

	"github.com/avtoline-dev/STO-SiteService/pkg/types"
)

// AvailabilityStore интерфейс хранилища занятых слотов
type AvailabilityStore interface {
	IsBusy(dateKey string, t types.TimeString) bool
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
