package get_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/avtoline-dev/STO-SiteService/internal/api/handlers"
	"github.com/avtoline-dev/STO-SiteService/internal/domain"
	bookingsRepo "github.com/avtoline-dev/STO-SiteService/internal/infra/storage/bookings"
)

const msgBookingNotFound = "запись не найдена"

type Handler struct {
	bookings BookingRepository
	logger   Logger
}

func NewHandler(bookings BookingRepository, logger Logger) *Handler {
	return &Handler{
		bookings: bookings,
		logger:   logger,
	}
}

// BookingServiceResponse позиция заказа
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
	TotalDurationMinutes int                      `json:"totalDurationMinutes"`
	Comment              *string                  `json:"comment,omitempty"`
	CreatedAt            string                   `json:"createdAt"`
}

// Handle GET /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	booking, err := h.bookings.GetByID(bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookingsRepo.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id} - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)
		default:
			h.logger.Error("GET /bookings/{id} - Failed to get booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	services := make([]BookingServiceResponse, len(booking.Services))
	for i, item := range booking.Services {
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

	handlers.RespondJSON(w, http.StatusOK, &BookingResponse{
		ID:                   booking.ID,
		Name:                 booking.ClientName,
		Phone:                booking.ClientPhone,
		Date:                 booking.BookingDate.Format(domain.DateFormat),
		Time:                 booking.StartTime.String(),
		Services:             services,
		Total:                booking.TotalPrice,
		TotalDurationMinutes: booking.TotalDurationMinutes,
		Comment:              booking.Comment,
		CreatedAt:            booking.CreatedAt.Format(time.RFC3339),
	})
}
