package calculate_price

import "github.com/avtoline-dev/STO-SiteService/internal/domain"

// Request модель запроса пересчёта стоимости
type Request struct {
	Selection []domain.SelectionRecord
}

// Response сводка стоимости текущего выбора
type Response struct {
	Total                float64
	TotalFormatted       string
	Count                int
	TotalDurationMinutes int
	DurationFormatted    string

	// Строки состава заказа и готовый текст исходящего сообщения
	Lines   []string
	Message string
}
