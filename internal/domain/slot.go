package domain

import (
	"time"

	"github.com/avtoline-dev/STO-SiteService/pkg/types"
)

// Slot represents a single bookable time slot of a day.
type Slot struct {
	StartTime       types.TimeString
	DurationMinutes int
	Busy            bool
}

// DaySlots represents the bookable grid of a single date.
// Closed is true when the station does not work on that weekday.
type DaySlots struct {
	Slots  []types.TimeString
	Closed bool
}

// GenerateDaySlots генерирует сетку слотов на указанную дату по расписанию.
// Чистая функция: результат зависит только от аргументов.
//
// Метки генерируются от часа открытия (включительно) до часа закрытия
// (исключительно) с шагом SlotMinutes. Если шаг не делит рабочее окно
// нацело, последний неполный слот всё равно получает метку, пока она
// строго раньше часа закрытия — хвост за закрытием отбрасывается.
func GenerateDaySlots(date time.Time, cfg WorkingHoursConfig) DaySlots {
	if !cfg.IsWorkingDay(date) {
		return DaySlots{Slots: []types.TimeString{}, Closed: true}
	}

	openMinutes := cfg.OpenHour * 60
	closeMinutes := cfg.CloseHour * 60

	slots := make([]types.TimeString, 0, (closeMinutes-openMinutes)/cfg.SlotMinutes+1)
	for m := openMinutes; m < closeMinutes; m += cfg.SlotMinutes {
		label, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			break
		}
		slots = append(slots, label)
	}

	return DaySlots{Slots: slots, Closed: false}
}

// FilterSameDaySlots отсекает метки, на которые уже нельзя записаться,
// если запрошенная дата — сегодня: слот должен начинаться не раньше, чем
// через minNoticeMinutes от текущего времени. Для других дат список
// возвращается без изменений.
func FilterSameDaySlots(slots []types.TimeString, date, now time.Time, minNoticeMinutes int) []types.TimeString {
	if !IsSameDay(date, now) {
		return slots
	}

	minAllowed, err := types.NewTimeString(now).AddMinutes(minNoticeMinutes)
	if err != nil {
		// Порог ушёл за конец суток: на сегодня записаться уже нельзя
		return []types.TimeString{}
	}

	filtered := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if !slot.IsBefore(minAllowed) {
			filtered = append(filtered, slot)
		}
	}
	return filtered
}

// ContainsSlot проверяет, что метка времени принадлежит сетке слотов даты
func (d DaySlots) ContainsSlot(t types.TimeString) bool {
	for _, slot := range d.Slots {
		if slot == t {
			return true
		}
	}
	return false
}
