package get_services

import "github.com/avtoline-dev/STO-SiteService/internal/domain"

// PricingService интерфейс сервиса расчёта стоимости
type PricingService interface {
	Catalog() []domain.CatalogService
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
