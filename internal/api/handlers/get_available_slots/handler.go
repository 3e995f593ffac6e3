package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/avtoline-dev/STO-SiteService/internal/api/handlers"
	"github.com/avtoline-dev/STO-SiteService/internal/domain"
	getAvailableSlots "github.com/avtoline-dev/STO-SiteService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate = "дата обязательна"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateInPast  = "нельзя получить слоты на прошедшую дату"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date   string                  `json:"date"`
	Closed bool                    `json:"closed"`
	Slots  []handlers.SlotResponse `json:"slots"`
}

// Handle GET /api/v1/schedule/slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /schedule/slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.ParseInLocation(domain.DateFormat, dateStr, time.Local)
	if err != nil {
		h.logger.Warn("GET /schedule/slots - Invalid date format: %q", dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrDateInPast):
			h.logger.Warn("GET /schedule/slots - Date in past: %s", dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /schedule/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
		default:
			h.logger.Error("GET /schedule/slots - Failed to get slots: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule/slots - Slots retrieved: date=%s, closed=%t, slots_count=%d",
		dateStr, result.Closed, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, &SlotsResponse{
		Date:   result.Date.Format(domain.DateFormat),
		Closed: result.Closed,
		Slots:  handlers.FromSlots(result.Slots),
	})
}
