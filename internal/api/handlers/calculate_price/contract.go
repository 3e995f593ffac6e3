package calculate_price

import (
	"context"

	calculatePrice "github.com/avtoline-dev/STO-SiteService/internal/usecase/calculate_price"
)

// CalculatePriceUseCase интерфейс use case пересчёта стоимости
type CalculatePriceUseCase interface {
	Execute(ctx context.Context, req *calculatePrice.Request) *calculatePrice.Response
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
