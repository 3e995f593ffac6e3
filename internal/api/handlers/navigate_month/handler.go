package navigate_month

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avtoline-dev/STO-SiteService/internal/api/handlers"
	calendarService "github.com/avtoline-dev/STO-SiteService/internal/service/calendar"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDirection   = "направление навигации должно быть -1 или 1"
	msgSessionNotFound    = "сессия календаря не найдена"
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

// NavigateRequest HTTP request model
type NavigateRequest struct {
	Direction int `json:"direction"` // -1 или 1
}

// Handle POST /api/v1/sessions/{sessionId}/calendar/navigate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req NavigateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/calendar/navigate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	view, err := h.calendar.NavigateMonth(sessionID, req.Direction)
	if err != nil {
		switch {
		case errors.Is(err, calendarService.ErrInvalidDirection):
			h.logger.Warn("POST /sessions/{id}/calendar/navigate - Invalid direction: %d", req.Direction)
			handlers.RespondBadRequest(w, msgInvalidDirection)
		case errors.Is(err, calendarService.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/calendar/navigate - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
		default:
			h.logger.Error("POST /sessions/{id}/calendar/navigate - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromMonthView(view))
}
