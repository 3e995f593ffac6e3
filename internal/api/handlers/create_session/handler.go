package create_session

import (
	"net/http"

	"github.com/avtoline-dev/STO-SiteService/internal/api/handlers"
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

// SessionResponse HTTP response model
type SessionResponse struct {
	SessionID string                      `json:"sessionId"`
	Month     *handlers.MonthViewResponse `json:"month"`
}

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	view := h.calendar.CreateSession()

	h.logger.Info("POST /sessions - Session created: session_id=%s", view.SessionID)
	handlers.RespondJSON(w, http.StatusCreated, &SessionResponse{
		SessionID: view.SessionID,
		Month:     handlers.FromMonthView(view.Month),
	})
}
