package get_available_slots

import (
	"time"

	"github.com/avtoline-dev/STO-SiteService/internal/domain"
)

// Request модель запроса слотов на дату
type Request struct {
	Date time.Time // дата без времени
}

// Response модель ответа со слотами даты
// Занятые слоты остаются в списке с Busy=true: страница показывает их
// неактивными, а не скрывает
type Response struct {
	Date   time.Time
	Closed bool
	Slots  []domain.Slot
}
