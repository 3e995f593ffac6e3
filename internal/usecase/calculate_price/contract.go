package calculate_price

import (
	"github.com/avtoline-dev/STO-SiteService/internal/domain"
	"github.com/avtoline-dev/STO-SiteService/internal/service/pricing"
)

// PricingService интерфейс сервиса расчёта стоимости
type PricingService interface {
	Resolve(selection []domain.SelectionRecord) []domain.ServiceItem
	Recompute(items []domain.ServiceItem) domain.PriceSummary
	FormatSummary(summary domain.PriceSummary) pricing.FormattedSummary
	BuildSelectionDescription(items []domain.ServiceItem) []string
	ComposeMessage(items []domain.ServiceItem, summary domain.PriceSummary) string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
