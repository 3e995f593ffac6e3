package get_booking

import "github.com/avtoline-dev/STO-SiteService/internal/domain"

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	GetByID(id string) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
