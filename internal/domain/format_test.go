package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthTitle(t *testing.T) {
	assert.Equal(t, "Сентябрь 2026", MonthTitle(2026, time.September))
	assert.Equal(t, "Январь 2027", MonthTitle(2027, time.January))
	assert.Equal(t, "Декабрь 2026", MonthTitle(2026, time.December))
}

func TestFormatLongDate(t *testing.T) {
	assert.Equal(t, "2 сентября", FormatLongDate(time.Date(2026, 9, 2, 0, 0, 0, 0, time.Local)))
	assert.Equal(t, "31 декабря", FormatLongDate(time.Date(2026, 12, 31, 0, 0, 0, 0, time.Local)))
	assert.Equal(t, "1 мая", FormatLongDate(time.Date(2027, 5, 1, 0, 0, 0, 0, time.Local)))
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		want    string
	}{
		{"zero", 0, "0 мин"},
		{"negative treated as zero", -15, "0 мин"},
		{"minutes only", 40, "40 мин"},
		{"exact hour", 60, "1 ч"},
		{"hours and minutes", 90, "1 ч 30 мин"},
		{"multiple hours", 150, "2 ч 30 мин"},
		{"exact hours", 180, "3 ч"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.minutes))
		})
	}
}

func TestOptionDisplayLabel(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  string
	}{
		{"em dash separator", "Castrol Magnatec — синтетика", "Castrol Magnatec"},
		{"hyphen separator", "TRW - оригинал", "TRW"},
		{"em dash wins over hyphen", "X-line — премиум", "X-line"},
		{"no separator", "Lukoil Genesis", "Lukoil Genesis"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OptionDisplayLabel(tt.label))
		})
	}
}

func TestServiceItemPricing(t *testing.T) {
	plain := ServiceItem{Title: "Диагностика", BasePrice: 500, DurationMinutes: 40, Quantity: 2}
	assert.Equal(t, 500.0, plain.UnitPrice())
	assert.Equal(t, 1000.0, plain.LineTotal())
	assert.Equal(t, 80, plain.LineDurationMinutes())

	withOption := ServiceItem{
		Title:           "Замена масла",
		BasePrice:       800,
		DurationMinutes: 30,
		Quantity:        2,
		SelectedOption:  &SelectedOption{Label: "Castrol Magnatec — синтетика", SurchargePerUnit: 300},
	}
	assert.Equal(t, 1100.0, withOption.UnitPrice())
	assert.Equal(t, 2200.0, withOption.LineTotal())
}
