package pricing

// FormattedSummary сводка стоимости, готовая к отображению на странице
type FormattedSummary struct {
	Total                float64
	TotalFormatted       string // "2 000 ₽"
	Count                int    // количество выбранных позиций
	TotalDurationMinutes int
	DurationFormatted    string // "1 ч 30 мин"
}
