package domain

import "time"

// WorkingHoursConfig describes the booking schedule of the service station.
// Read-only after startup: the schedule is loaded from configuration once
// and shared by every component that derives slots from it.
type WorkingHoursConfig struct {
	WorkingWeekdays  map[time.Weekday]bool
	OpenHour         int // час открытия, 0-23
	CloseHour        int // час закрытия (исключительно), OpenHour < CloseHour <= 24
	SlotMinutes      int // шаг сетки слотов
	MinNoticeMinutes int // минимальный интервал до начала слота при записи на сегодня
}

// NewWorkingHoursConfig собирает конфигурацию расписания из списка рабочих
// дней недели (0 = воскресенье, как в time.Weekday)
func NewWorkingHoursConfig(weekdays []int, openHour, closeHour, slotMinutes, minNoticeMinutes int) WorkingHoursConfig {
	working := make(map[time.Weekday]bool, len(weekdays))
	for _, d := range weekdays {
		if d >= 0 && d <= 6 {
			working[time.Weekday(d)] = true
		}
	}

	return WorkingHoursConfig{
		WorkingWeekdays:  working,
		OpenHour:         openHour,
		CloseHour:        closeHour,
		SlotMinutes:      slotMinutes,
		MinNoticeMinutes: minNoticeMinutes,
	}
}

// IsWorkingDay returns true if the station is open on the date's weekday.
func (c WorkingHoursConfig) IsWorkingDay(date time.Time) bool {
	return c.WorkingWeekdays[date.Weekday()]
}

// DateKey возвращает ключ даты в формате YYYY-MM-DD (локальный календарный день)
func DateKey(date time.Time) string {
	return date.Format(DateFormat)
}

// TruncateToDay обнуляет время, оставляя только календарную дату
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsDateInPast проверяет, что дата раньше сегодняшнего дня (по локальному времени)
func IsDateInPast(date, now time.Time) bool {
	return TruncateToDay(date).Before(TruncateToDay(now))
}

// IsSameDay проверяет, что две даты относятся к одному календарному дню
func IsSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
