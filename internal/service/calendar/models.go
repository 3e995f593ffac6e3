package calendar

import (
	"time"

	"github.com/avtoline-dev/STO-SiteService/internal/domain"
	"github.com/avtoline-dev/STO-SiteService/pkg/types"
)

// DayCell ячейка сетки месяца. Day == 0 означает пустую ячейку-отступ
// перед первым числом месяца.
type DayCell struct {
	Day        int
	Date       string // YYYY-MM-DD, пусто для отступов
	Selectable bool
	Today      bool
}

// MonthView отображаемый месяц: локализованный заголовок и сетка дней,
// выровненная по неделе с понедельника
type MonthView struct {
	Year          int
	Month         time.Month
	Title         string // "Сентябрь 2026"
	Cells         []DayCell
	SelectedDate  string           // YYYY-MM-DD, пусто если дата не выбрана
	SelectedTime  types.TimeString // пусто если время не выбрано
}

// DaySlotsView слоты выбранной даты с признаком занятости
type DaySlotsView struct {
	Date   string // YYYY-MM-DD
	Closed bool
	Slots  []domain.Slot
}

// SessionView сессия календаря с текущим отображаемым месяцем
type SessionView struct {
	SessionID string
	Month     *MonthView
}
