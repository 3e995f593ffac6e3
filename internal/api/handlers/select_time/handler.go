package select_time

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avtoline-dev/STO-SiteService/internal/api/handlers"
	calendarService "github.com/avtoline-dev/STO-SiteService/internal/service/calendar"
	"github.com/avtoline-dev/STO-SiteService/pkg/types"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgSessionNotFound    = "сессия календаря не найдена"
	msgNoDateSelected     = "сначала выберите дату"
	msgUnknownSlot        = "некорректное время записи"
	msgSlotBusy           = "это время уже занято"
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

// SelectTimeRequest HTTP request model
type SelectTimeRequest struct {
	Time string `json:"time"` // "10:00"
}

// SelectTimeResponse HTTP response model
type SelectTimeResponse struct {
	SelectedTime string `json:"selectedTime"`
}

// Handle POST /api/v1/sessions/{sessionId}/calendar/time
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/calendar/time - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	label, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		h.logger.Warn("POST /sessions/{id}/calendar/time - Invalid time format: %q", req.Time)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	if err := h.calendar.SelectTime(sessionID, label); err != nil {
		switch {
		case errors.Is(err, calendarService.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/calendar/time - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
		case errors.Is(err, calendarService.ErrNoDateSelected):
			h.logger.Warn("POST /sessions/{id}/calendar/time - No date selected: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgNoDateSelected)
		case errors.Is(err, calendarService.ErrUnknownSlot):
			h.logger.Warn("POST /sessions/{id}/calendar/time - Unknown slot: session_id=%s, time=%s", sessionID, label)
			handlers.RespondBadRequest(w, msgUnknownSlot)
		case errors.Is(err, calendarService.ErrSlotBusy):
			h.logger.Warn("POST /sessions/{id}/calendar/time - Slot busy: session_id=%s, time=%s", sessionID, label)
			handlers.RespondConflict(w, msgSlotBusy)
		default:
			h.logger.Error("POST /sessions/{id}/calendar/time - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/calendar/time - Time selected: session_id=%s, time=%s", sessionID, label)
	handlers.RespondJSON(w, http.StatusOK, &SelectTimeResponse{SelectedTime: label.String()})
}
