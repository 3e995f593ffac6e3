package select_date

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/avtoline-dev/STO-SiteService/internal/api/handlers"
	"github.com/avtoline-dev/STO-SiteService/internal/domain"
	calendarService "github.com/avtoline-dev/STO-SiteService/internal/service/calendar"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgSessionNotFound    = "сессия календаря не найдена"
	msgDateInPast         = "нельзя выбрать прошедшую дату"
	msgDateClosed         = "в этот день сервис не работает"
)

type Handler struct {
	calendar CalendarService
	logger   Logger
}

func NewHandler(calendar CalendarService, logger Logger) *Handler {
	return &Handler{
		calendar: calendar,
		logger:   logger,
	}
}

// SelectDateRequest HTTP request model
type SelectDateRequest struct {
	Date string `json:"date"` // "2026-09-02"
}

// SelectDateResponse HTTP response model: слоты выбранной даты
type SelectDateResponse struct {
	Date   string                  `json:"date"`
	Closed bool                    `json:"closed"`
	Slots  []handlers.SlotResponse `json:"slots"`
}

// Handle POST /api/v1/sessions/{sessionId}/calendar/date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/calendar/date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.ParseInLocation(domain.DateFormat, req.Date, time.Local)
	if err != nil {
		h.logger.Warn("POST /sessions/{id}/calendar/date - Invalid date format: %q", req.Date)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	view, err := h.calendar.SelectDate(sessionID, date)
	if err != nil {
		switch {
		case errors.Is(err, calendarService.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/calendar/date - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
		case errors.Is(err, calendarService.ErrDateInPast):
			h.logger.Warn("POST /sessions/{id}/calendar/date - Date in past: %s", req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)
		case errors.Is(err, calendarService.ErrDateClosed):
			h.logger.Warn("POST /sessions/{id}/calendar/date - Closed date: %s", req.Date)
			handlers.RespondBadRequest(w, msgDateClosed)
		default:
			h.logger.Error("POST /sessions/{id}/calendar/date - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/calendar/date - Date selected: session_id=%s, date=%s, slots=%d",
		sessionID, view.Date, len(view.Slots))
	handlers.RespondJSON(w, http.StatusOK, &SelectDateResponse{
		Date:   view.Date,
		Closed: view.Closed,
		Slots:  handlers.FromSlots(view.Slots),
	})
}
