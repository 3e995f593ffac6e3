package calculate_price

import (
	"context"
)

// UseCase use case пересчёта стоимости выбранных услуг.
// Ошибок не возвращает: некорректные позиции выбора отбрасываются или
// приводятся к допустимым значениям (fail-soft), пустой выбор даёт
// нулевую сводку.
type UseCase struct {
	pricing PricingService
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(pricing PricingService, logger Logger) *UseCase {
	return &UseCase{
		pricing: pricing,
		logger:  logger,
	}
}

// Execute выполняет пересчёт стоимости
func (uc *UseCase) Execute(_ context.Context, req *Request) *Response {
	items := uc.pricing.Resolve(req.Selection)
	summary := uc.pricing.Recompute(items)
	formatted := uc.pricing.FormatSummary(summary)

	uc.logger.Info("CalculatePrice: %d items, total=%.0f, duration=%d min",
		summary.Count, summary.Total, summary.TotalDurationMinutes)

	return &Response{
		Total:                summary.Total,
		TotalFormatted:       formatted.TotalFormatted,
		Count:                summary.Count,
		TotalDurationMinutes: summary.TotalDurationMinutes,
		DurationFormatted:    formatted.DurationFormatted,
		Lines:                uc.pricing.BuildSelectionDescription(items),
		Message:              uc.pricing.ComposeMessage(items, summary),
	}
}
