package get_available_slots

import (
	"context"
	"fmt"

	"github.com/avtoline-dev/STO-SiteService/internal/domain"
)

// UseCase use case получения слотов записи на дату
type UseCase struct {
	schedule     domain.WorkingHoursConfig
	availability AvailabilityStore
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	schedule domain.WorkingHoursConfig,
	availability AvailabilityStore,
	logger Logger,
) *UseCase {
	return &UseCase{
		schedule:     schedule,
		availability: availability,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	// 2. Прошедшие даты недоступны для записи
	if domain.IsDateInPast(req.Date, now) {
		uc.logger.Warn("GetAvailableSlots: requested past date %s", req.Date.Format(domain.DateFormat))
		return nil, ErrDateInPast
	}

	// 3. Генерируем сетку слотов по расписанию
	grid := domain.GenerateDaySlots(req.Date, uc.schedule)
	if grid.Closed {
		uc.logger.Info("GetAvailableSlots: station is closed on %s", req.Date.Format(domain.DateFormat))
		return &Response{Date: req.Date, Closed: true, Slots: []domain.Slot{}}, nil
	}

	// 4. На сегодня отсекаем слоты, до начала которых осталось меньше
	// минимального интервала записи
	offered := domain.FilterSameDaySlots(grid.Slots, req.Date, now, uc.schedule.MinNoticeMinutes)

	// 5. Помечаем занятые слоты по хранилищу
	dateKey := domain.DateKey(req.Date)
	slots := make([]domain.Slot, 0, len(offered))
	for _, label := range offered {
		slots = append(slots, domain.Slot{
			StartTime:       label,
			DurationMinutes: uc.schedule.SlotMinutes,
			Busy:            uc.availability.IsBusy(dateKey, label),
		})
	}

	uc.logger.Info("GetAvailableSlots: %d slots for date=%s", len(slots), dateKey)

	return &Response{Date: req.Date, Slots: slots}, nil
}
