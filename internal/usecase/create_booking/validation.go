package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/avtoline-dev/STO-SiteService/internal/domain"
	"github.com/avtoline-dev/STO-SiteService/pkg/types"
)

// validateRequest валидирует заполненность формы записи.
// Ни одна из проверок не мутирует хранилища: частичная заявка не фиксируется.
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Name) == "" {
		return ErrEmptyName
	}
	if len(req.Name) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Phone) == "" {
		return ErrEmptyPhone
	}
	if len(req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone is too long", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return ErrNoDateSelected
	}

	if req.StartTime.IsZero() {
		return ErrNoTimeSelected
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}

	if len(req.Selection) == 0 {
		return ErrEmptySelection
	}

	if req.Comment != nil && len(*req.Comment) > domain.MaxCommentLength {
		return fmt.Errorf("%w: comment is too long", ErrInvalidInput)
	}

	return nil
}

// validateSlot проверяет, что дата и время пригодны для записи:
// дата не в прошлом, день рабочий, метка принадлежит сетке слотов
// и не отсечена минимальным интервалом записи на сегодня
func validateSlot(
	date time.Time,
	startTime types.TimeString,
	now time.Time,
	schedule domain.WorkingHoursConfig,
) error {
	if domain.IsDateInPast(date, now) {
		return ErrDateInPast
	}

	grid := domain.GenerateDaySlots(date, schedule)
	if grid.Closed {
		return ErrDateClosed
	}

	if !grid.ContainsSlot(startTime) {
		return ErrInvalidTimeSlot
	}

	offered := domain.FilterSameDaySlots(grid.Slots, date, now, schedule.MinNoticeMinutes)
	if !(domain.DaySlots{Slots: offered}).ContainsSlot(startTime) {
		return ErrTooLateToBook
	}

	return nil
}
