package create_booking

import (
	"time"

	"github.com/avtoline-dev/STO-SiteService/internal/api/handlers"
	"github.com/avtoline-dev/STO-SiteService/internal/domain"
	createBooking "github.com/avtoline-dev/STO-SiteService/internal/usecase/create_booking"
	"github.com/avtoline-dev/STO-SiteService/pkg/types"
)

// SelectionItemRequest одна выбранная услуга
type SelectionItemRequest struct {
	ServiceID int64  `json:"serviceId"`
	Quantity  int    `json:"quantity"`
	OptionID  *int64 `json:"optionId,omitempty"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SessionID string                 `json:"sessionId,omitempty"`
	Name      string                 `json:"name"`
	Phone     string                 `json:"phone"`
	Date      string                 `json:"date"` // "2026-09-02"
	Time      string                 `json:"time"` // "10:00"
	Selection []SelectionItemRequest `json:"selection"`
	Comment   *string                `json:"comment,omitempty"`
}

// BookingServiceResponse позиция заказа в ответе
type BookingServiceResponse struct {
	Title           string  `json:"title"`
	Quantity        int     `json:"quantity"`
	Option          string  `json:"option,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	LineTotal       float64 `json:"lineTotal"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                   string                   `json:"id"`
	Name                 string                   `json:"name"`
	Phone                string                   `json:"phone"`
	Date                 string                   `json:"date"`
	Time                 string                   `json:"time"`
	Services             []BookingServiceResponse `json:"services"`
	Total                float64                  `json:"total"`
	TotalFormatted       string                   `json:"totalFormatted"`
	TotalDurationMinutes int                      `json:"totalDurationMinutes"`
	DurationFormatted    string                   `json:"durationFormatted"`
	ConfirmationMessage  string                   `json:"confirmationMessage"`
	Slots                []handlers.SlotResponse  `json:"slots"`
	CreatedAt            string                   `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	var date time.Time
	if r.Date != "" {
		parsed, err := time.ParseInLocation(domain.DateFormat, r.Date, time.Local)
		if err != nil {
			return nil, err
		}
		date = parsed
	}

	var startTime types.TimeString
	if r.Time != "" {
		parsed, err := types.NewTimeStringFromString(r.Time)
		if err != nil {
			return nil, err
		}
		startTime = parsed
	}

	selection := make([]domain.SelectionRecord, len(r.Selection))
	for i, item := range r.Selection {
		selection[i] = domain.SelectionRecord{
			ServiceID: item.ServiceID,
			Quantity:  item.Quantity,
			OptionID:  item.OptionID,
		}
	}

	return &createBooking.Request{
		SessionID: r.SessionID,
		Name:      r.Name,
		Phone:     r.Phone,
		Date:      date,
		StartTime: startTime,
		Selection: selection,
		Comment:   r.Comment,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	services := make([]BookingServiceResponse, len(resp.Services))
	for i, item := range resp.Services {
		service := BookingServiceResponse{
			Title:           item.Title,
			Quantity:        item.Quantity,
			DurationMinutes: item.LineDurationMinutes(),
			LineTotal:       item.LineTotal(),
		}
		if item.SelectedOption != nil {
			service.Option = domain.OptionDisplayLabel(item.SelectedOption.Label)
		}
		services[i] = service
	}

	return &BookingResponse{
		ID:                   resp.ID,
		Name:                 resp.Name,
		Phone:                resp.Phone,
		Date:                 resp.BookingDate.Format(domain.DateFormat),
		Time:                 resp.StartTime.String(),
		Services:             services,
		Total:                resp.Total,
		TotalFormatted:       resp.TotalFormatted,
		TotalDurationMinutes: resp.TotalDurationMinutes,
		DurationFormatted:    resp.DurationFormatted,
		ConfirmationMessage:  resp.ConfirmationMessage,
		Slots:                handlers.FromSlots(resp.Slots),
		CreatedAt:            resp.CreatedAt.Format(time.RFC3339),
	}
}
