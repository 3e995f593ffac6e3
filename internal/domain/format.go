package domain

import (
	"fmt"
	"strings"
	"time"
)

// Названия месяцев для заголовка календаря ("Сентябрь 2026")
var monthsNominative = [...]string{
	"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь",
	"Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь",
}

// Названия месяцев для дат в тексте ("2 сентября")
var monthsGenitive = [...]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

// MonthTitle возвращает локализованный заголовок месяца, например "Сентябрь 2026"
func MonthTitle(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", monthsNominative[month-1], year)
}

// FormatLongDate возвращает дату в виде "2 сентября"
func FormatLongDate(date time.Time) string {
	return fmt.Sprintf("%d %s", date.Day(), monthsGenitive[date.Month()-1])
}

// FormatDuration форматирует длительность в минутах в виде "1 ч 30 мин".
// Часы опускаются при нулевом количестве часов, минуты — при нулевом
// остатке минут; нулевая длительность отображается как "0 мин".
func FormatDuration(totalMinutes int) string {
	if totalMinutes <= 0 {
		return "0 мин"
	}

	hours := totalMinutes / 60
	minutes := totalMinutes % 60

	parts := make([]string, 0, 2)
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d ч", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%d мин", minutes))
	}

	return strings.Join(parts, " ")
}

// OptionDisplayLabel возвращает короткое имя опции для сводки заказа.
// Полная подпись опции хранится в виде "Название — уточнение", короткое
// имя — часть до первого разделителя (длинное или обычное тире).
func OptionDisplayLabel(label string) string {
	for _, sep := range []string{"—", "-"} {
		if idx := strings.Index(label, sep); idx >= 0 {
			return strings.TrimSpace(label[:idx])
		}
	}
	return strings.TrimSpace(label)
}
