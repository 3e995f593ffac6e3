package get_services

import (
	"net/http"

	"github.com/avtoline-dev/STO-SiteService/internal/api/handlers"
)

type Handler struct {
	pricing PricingService
	logger  Logger
}

func NewHandler(pricing PricingService, logger Logger) *Handler {
	return &Handler{
		pricing: pricing,
		logger:  logger,
	}
}

// OptionResponse платная опция услуги
type OptionResponse struct {
	ID        int64   `json:"id"`
	Label     string  `json:"label"`
	Surcharge float64 `json:"surcharge"`
}

// ServiceResponse услуга прайс-листа
type ServiceResponse struct {
	ID              int64            `json:"id"`
	Title           string           `json:"title"`
	BasePrice       float64          `json:"basePrice"`
	DurationMinutes int              `json:"durationMinutes"`
	Options         []OptionResponse `json:"options,omitempty"`
}

// CatalogResponse HTTP response model
type CatalogResponse struct {
	Services []ServiceResponse `json:"services"`
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	catalog := h.pricing.Catalog()

	services := make([]ServiceResponse, len(catalog))
	for i, svc := range catalog {
		options := make([]OptionResponse, len(svc.Options))
		for j, opt := range svc.Options {
			options[j] = OptionResponse{
				ID:        opt.ID,
				Label:     opt.Label,
				Surcharge: opt.Surcharge,
			}
		}
		services[i] = ServiceResponse{
			ID:              svc.ID,
			Title:           svc.Title,
			BasePrice:       svc.BasePrice,
			DurationMinutes: svc.DurationMinutes,
			Options:         options,
		}
	}

	handlers.RespondJSON(w, http.StatusOK, &CatalogResponse{Services: services})
}
