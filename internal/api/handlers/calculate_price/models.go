package calculate_price

import (
	"github.com/avtoline-dev/STO-SiteService/internal/domain"
	calculatePrice "github.com/avtoline-dev/STO-SiteService/internal/usecase/calculate_price"
)

// SelectionItemRequest одна выбранная услуга
type SelectionItemRequest struct {
	ServiceID int64  `json:"serviceId"`
	Quantity  int    `json:"quantity"`
	OptionID  *int64 `json:"optionId,omitempty"`
}

// CalculatePriceRequest HTTP request model
type CalculatePriceRequest struct {
	Selection []SelectionItemRequest `json:"selection"`
}

// CalculatePriceResponse HTTP response model
type CalculatePriceResponse struct {
	Total                float64  `json:"total"`
	TotalFormatted       string   `json:"totalFormatted"`
	Count                int      `json:"count"`
	TotalDurationMinutes int      `json:"totalDurationMinutes"`
	DurationFormatted    string   `json:"durationFormatted"`
	Lines                []string `json:"lines"`
	Message              string   `json:"message"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CalculatePriceRequest) ToUseCaseRequest() *calculatePrice.Request {
	selection := make([]domain.SelectionRecord, len(r.Selection))
	for i, item := range r.Selection {
		selection[i] = domain.SelectionRecord{
			ServiceID: item.ServiceID,
			Quantity:  item.Quantity,
			OptionID:  item.OptionID,
		}
	}
	return &calculatePrice.Request{Selection: selection}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *calculatePrice.Response) *CalculatePriceResponse {
	return &CalculatePriceResponse{
		Total:                resp.Total,
		TotalFormatted:       resp.TotalFormatted,
		Count:                resp.Count,
		TotalDurationMinutes: resp.TotalDurationMinutes,
		DurationFormatted:    resp.DurationFormatted,
		Lines:                resp.Lines,
		Message:              resp.Message,
	}
}
