package create_booking

import (
	"context"
	"time"

	"github.com/avtoline-dev/STO-SiteService/internal/domain"
	"github.com/avtoline-dev/STO-SiteService/internal/service/pricing"
	"github.com/avtoline-dev/STO-SiteService/pkg/types"
)

// AvailabilityStore интерфейс хранилища занятых слотов
type AvailabilityStore interface {
	IsBusy(dateKey string, t types.TimeString) bool
	Reserve(dateKey string, t types.TimeString)
}

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	Create(booking *domain.Booking) *domain.Booking
}

// PricingService интерфейс сервиса расчёта стоимости
type PricingService interface {
	Resolve(selection []domain.SelectionRecord) []domain.ServiceItem
	Recompute(items []domain.ServiceItem) domain.PriceSummary
	FormatSummary(summary domain.PriceSummary) pricing.FormattedSummary
	BuildSelectionDescription(items []domain.ServiceItem) []string
}

// NoticePublisher интерфейс публикации транзитных уведомлений
type NoticePublisher interface {
	Publish(sessionID string, level domain.NoticeLevel, text string)
}

// Notifier интерфейс исходящего канала сообщений (Telegram)
type Notifier interface {
	SendMessage(ctx context.Context, text string) error
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
