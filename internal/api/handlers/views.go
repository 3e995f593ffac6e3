package handlers

import (
	"github.com/avtoline-dev/STO-SiteService/internal/domain"
	"github.com/avtoline-dev/STO-SiteService/internal/service/calendar"
)

// DayCellResponse ячейка сетки месяца (day = 0 для отступов)
type DayCellResponse struct {
	Day        int    `json:"day"`
	Date       string `json:"date,omitempty"`
	Selectable bool   `json:"selectable"`
	Today      bool   `json:"today,omitempty"`
}

// MonthViewResponse отображаемый месяц календаря
type MonthViewResponse struct {
	Year         int               `json:"year"`
	Month        int               `json:"month"`
	Title        string            `json:"title"`
	Cells        []DayCellResponse `json:"cells"`
	SelectedDate string            `json:"selectedDate,omitempty"`
	SelectedTime string            `json:"selectedTime,omitempty"`
}

// SlotResponse слот записи с признаком занятости
type SlotResponse struct {
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Busy            bool   `json:"busy"`
}

// FromMonthView конвертирует месяц календаря в HTTP модель
func FromMonthView(view *calendar.MonthView) *MonthViewResponse {
	cells := make([]DayCellResponse, len(view.Cells))
	for i, cell := range view.Cells {
		cells[i] = DayCellResponse{
			Day:        cell.Day,
			Date:       cell.Date,
			Selectable: cell.Selectable,
			Today:      cell.Today,
		}
	}

	return &MonthViewResponse{
		Year:         view.Year,
		Month:        int(view.Month),
		Title:        view.Title,
		Cells:        cells,
		SelectedDate: view.SelectedDate,
		SelectedTime: view.SelectedTime.String(),
	}
}

// FromSlots конвертирует слоты в HTTP модель
func FromSlots(slots []domain.Slot) []SlotResponse {
	result := make([]SlotResponse, len(slots))
	for i, slot := range slots {
		result[i] = SlotResponse{
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
			Busy:            slot.Busy,
		}
	}
	return result
}
