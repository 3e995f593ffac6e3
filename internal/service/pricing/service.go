package pricing

import (
	"fmt"
	"strings"

	"github.com/avtoline-dev/STO-SiteService/internal/domain"
)

// Service пересчитывает стоимость текущего набора выбранных услуг.
// Прайс-лист read-only после старта, сам сервис состояния не имеет:
// каждый пересчёт строит позиции заново из переданного выбора.
type Service struct {
	catalog map[int64]domain.CatalogService
	ordered []domain.CatalogService
	logger  Logger
}

// NewService создает сервис расчёта стоимости поверх прайс-листа
func NewService(catalog []domain.CatalogService, logger Logger) *Service {
	byID := make(map[int64]domain.CatalogService, len(catalog))
	for _, svc := range catalog {
		byID[svc.ID] = svc
	}
	return &Service{
		catalog: byID,
		ordered: catalog,
		logger:  logger,
	}
}

// Catalog возвращает прайс-лист в порядке конфигурации
func (s *Service) Catalog() []domain.CatalogService {
	return s.ordered
}

// ServiceByID возвращает услугу прайс-листа по ID
func (s *Service) ServiceByID(id int64) (domain.CatalogService, bool) {
	svc, ok := s.catalog[id]
	return svc, ok
}

// Resolve строит позиции заказа из сырого выбора пользователя.
// Политика fail-soft: неизвестные услуги пропускаются, неизвестные опции
// игнорируются, количество <= 0 приводится к 1. Ошибок не возвращает —
// выбор приходит из разметки страницы, а не из свободного пользовательского
// ввода.
func (s *Service) Resolve(selection []domain.SelectionRecord) []domain.ServiceItem {
	items := make([]domain.ServiceItem, 0, len(selection))

	for _, record := range selection {
		svc, ok := s.catalog[record.ServiceID]
		if !ok {
			s.logger.Warn("pricing: unknown service id=%d in selection, skipped", record.ServiceID)
			continue
		}

		quantity := record.Quantity
		if quantity < 1 {
			quantity = 1
		}

		item := domain.ServiceItem{
			Title:           svc.Title,
			BasePrice:       svc.BasePrice,
			DurationMinutes: svc.DurationMinutes,
			Quantity:        quantity,
		}

		if record.OptionID != nil {
			opt, found := svc.OptionByID(*record.OptionID)
			if found {
				item.SelectedOption = &domain.SelectedOption{
					Label:            opt.Label,
					SurchargePerUnit: opt.Surcharge,
				}
			} else {
				s.logger.Warn("pricing: unknown option id=%d for service id=%d, ignored",
					*record.OptionID, record.ServiceID)
			}
		}

		items = append(items, item)
	}

	return items
}

// Recompute агрегирует позиции заказа в итоговую сводку.
// Count увеличивается на единицу на каждую позицию независимо от количества.
func (s *Service) Recompute(items []domain.ServiceItem) domain.PriceSummary {
	var summary domain.PriceSummary

	for _, item := range items {
		summary.Total += item.LineTotal()
		summary.Count++
		summary.TotalDurationMinutes += item.LineDurationMinutes()
	}

	return summary
}

// FormatSummary готовит сводку к отображению
func (s *Service) FormatSummary(summary domain.PriceSummary) FormattedSummary {
	return FormattedSummary{
		Total:                summary.Total,
		TotalFormatted:       FormatPrice(summary.Total),
		Count:                summary.Count,
		TotalDurationMinutes: summary.TotalDurationMinutes,
		DurationFormatted:    domain.FormatDuration(summary.TotalDurationMinutes),
	}
}

// BuildSelectionDescription возвращает по строке на каждую позицию заказа:
// название, количество и опция, длительность (если указана) и стоимость
func (s *Service) BuildSelectionDescription(items []domain.ServiceItem) []string {
	lines := make([]string, 0, len(items))

	for _, item := range items {
		annotations := make([]string, 0, 2)
		if item.Quantity > 1 {
			annotations = append(annotations, fmt.Sprintf("%d шт.", item.Quantity))
		}
		if item.SelectedOption != nil {
			annotations = append(annotations, domain.OptionDisplayLabel(item.SelectedOption.Label))
		}

		line := item.Title
		if len(annotations) > 0 {
			line += fmt.Sprintf(" (%s)", strings.Join(annotations, ", "))
		}
		if minutes := item.LineDurationMinutes(); minutes > 0 {
			line += " — " + domain.FormatDuration(minutes)
		}
		line += " — " + FormatPrice(item.LineTotal())

		lines = append(lines, line)
	}

	return lines
}

// ComposeMessage собирает текст исходящего сообщения с составом заказа.
// Текст передается внешнему каналу (Telegram), сам сервис сообщение не
// отправляет.
func (s *Service) ComposeMessage(items []domain.ServiceItem, summary domain.PriceSummary) string {
	var b strings.Builder

	b.WriteString("Заявка с сайта: расчёт стоимости\n\n")
	for _, line := range s.BuildSelectionDescription(items) {
		b.WriteString("• ")
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\nИтого: ")
	b.WriteString(FormatPrice(summary.Total))
	b.WriteString("\nВремя работ: ")
	b.WriteString(domain.FormatDuration(summary.TotalDurationMinutes))

	return b.String()
}
