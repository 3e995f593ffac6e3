package create_booking

import (
	"context"

	createBooking "github.com/avtoline-dev/STO-SiteService/internal/usecase/create_booking"
)

// CreateBookingUseCase интерфейс use case создания записи
type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// BookingsCounter интерфейс счётчика созданных записей
type BookingsCounter interface {
	Inc()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
