package get_notice

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/avtoline-dev/STO-SiteService/internal/api/handlers"
)

type Handler struct {
	notices NoticeService
	logger  Logger
}

func NewHandler(notices NoticeService, logger Logger) *Handler {
	return &Handler{
		notices: notices,
		logger:  logger,
	}
}

// NoticeResponse HTTP response model. Present=false означает, что
// уведомления нет или оно уже погашено по TTL.
type NoticeResponse struct {
	Present     bool   `json:"present"`
	Level       string `json:"level,omitempty"`
	Text        string `json:"text,omitempty"`
	PublishedAt string `json:"publishedAt,omitempty"`
}

// Handle GET /api/v1/sessions/{sessionId}/notice
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	notice, ok := h.notices.Current(sessionID)
	if !ok {
		handlers.RespondJSON(w, http.StatusOK, &NoticeResponse{Present: false})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &NoticeResponse{
		Present:     true,
		Level:       string(notice.Level),
		Text:        notice.Text,
		PublishedAt: notice.PublishedAt.Format(time.RFC3339),
	})
}
