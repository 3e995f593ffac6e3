package get_calendar

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avtoline-dev/STO-SiteService/internal/api/handlers"
	calendarService "github.com/avtoline-dev/STO-SiteService/internal/service/calendar"
)

const msgSessionNotFound = "сессия календаря не найдена"

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

// Handle GET /api/v1/sessions/{sessionId}/calendar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	view, err := h.calendar.MonthView(sessionID)
	if err != nil {
		switch {
		case errors.Is(err, calendarService.ErrSessionNotFound):
			h.logger.Warn("GET /sessions/{id}/calendar - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
		default:
			h.logger.Error("GET /sessions/{id}/calendar - Failed to build month view: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromMonthView(view))
}
