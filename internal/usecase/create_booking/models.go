package create_booking

import (
	"time"

	"github.com/avtoline-dev/STO-SiteService/internal/domain"
	"github.com/avtoline-dev/STO-SiteService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	SessionID string // сессия календаря для уведомлений (опционально)

	Name      string
	Phone     string
	Date      time.Time
	StartTime types.TimeString
	Selection []domain.SelectionRecord
	Comment   *string
}

// Response модель ответа с созданной записью
type Response struct {
	ID          string
	Name        string
	Phone       string
	BookingDate time.Time
	StartTime   types.TimeString

	// Денормализованная сводка заказа
	Services             []domain.ServiceItem
	Total                float64
	TotalFormatted       string
	TotalDurationMinutes int
	DurationFormatted    string

	// Подтверждение для пользователя с локализованными датой и временем
	ConfirmationMessage string

	// Обновленный список слотов даты: только что занятый слот помечен Busy,
	// страница перерисовывает сетку без повторного запроса
	Slots []domain.Slot

	CreatedAt time.Time
}
