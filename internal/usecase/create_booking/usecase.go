package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avtoline-dev/STO-SiteService/internal/domain"
)

// Тексты уведомлений формы записи
const (
	msgEmptyName      = "Укажите ваше имя"
	msgEmptyPhone     = "Укажите телефон для связи"
	msgNoDate         = "Выберите дату записи"
	msgNoTime         = "Выберите время записи"
	msgEmptySelection = "Выберите хотя бы одну услугу"
	msgSlotTaken      = "Это время уже занято, выберите другое"
)

// UseCase use case создания записи: связывает форму, календарь и хранилище
// занятых слотов в одну локальную транзакцию
type UseCase struct {
	schedule     domain.WorkingHoursConfig
	availability AvailabilityStore
	bookingRepo  BookingRepository
	pricing      PricingService
	notices      NoticePublisher
	notifier     Notifier // nil, если исходящий канал выключен
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	schedule domain.WorkingHoursConfig,
	availability AvailabilityStore,
	bookingRepo BookingRepository,
	pricing PricingService,
	notices NoticePublisher,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		schedule:     schedule,
		availability: availability,
		bookingRepo:  bookingRepo,
		pricing:      pricing,
		notices:      notices,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания записи.
// При любой ошибке валидации хранилище остаётся нетронутым; резервирование
// слота происходит только после всех проверок.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: date=%s, time=%s, services=%d",
		req.Date.Format(domain.DateFormat), req.StartTime, len(req.Selection))

	// 1. Валидация формы
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.publishValidationNotice(req.SessionID, err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Валидация даты и времени по расписанию
	if err := validateSlot(req.Date, req.StartTime, now, uc.schedule); err != nil {
		uc.logger.Warn("CreateBooking: slot validation failed: %v", err)
		uc.publishValidationNotice(req.SessionID, err)
		return nil, err
	}

	// 3. Проверяем занятость слота
	dateKey := domain.DateKey(req.Date)
	if uc.availability.IsBusy(dateKey, req.StartTime) {
		uc.logger.Warn("CreateBooking: slot %s %s is busy", dateKey, req.StartTime)
		uc.publishNotice(req.SessionID, domain.NoticeError, msgSlotTaken)
		return nil, ErrSlotNotAvailable
	}

	// 4. Пересчитываем заказ из сырого выбора
	items := uc.pricing.Resolve(req.Selection)
	if len(items) == 0 {
		// Все позиции выбора оказались неизвестными прайс-листу
		uc.logger.Warn("CreateBooking: selection resolved to zero items")
		uc.publishNotice(req.SessionID, domain.NoticeError, msgEmptySelection)
		return nil, ErrEmptySelection
	}
	summary := uc.pricing.Recompute(items)
	formatted := uc.pricing.FormatSummary(summary)

	// 5. Резервируем слот и сохраняем запись
	uc.availability.Reserve(dateKey, req.StartTime)

	booking := uc.bookingRepo.Create(&domain.Booking{
		ClientName:           strings.TrimSpace(req.Name),
		ClientPhone:          strings.TrimSpace(req.Phone),
		BookingDate:          domain.TruncateToDay(req.Date),
		StartTime:            req.StartTime,
		Services:             items,
		TotalPrice:           summary.Total,
		TotalDurationMinutes: summary.TotalDurationMinutes,
		Comment:              req.Comment,
		CreatedAt:            now,
	})

	// 6. Подтверждение с локализованными датой и временем
	confirmation := fmt.Sprintf("Вы записаны на %s в %s",
		domain.FormatLongDate(booking.BookingDate), booking.StartTime)
	uc.publishNotice(req.SessionID, domain.NoticeSuccess, confirmation)

	// 7. Отправляем заявку в исходящий канал (best-effort: отказ канала не
	// отменяет уже созданную запись)
	uc.sendOutboundMessage(ctx, booking, items, summary)

	uc.logger.Info("CreateBooking: created booking id=%s for %s %s", booking.ID, dateKey, booking.StartTime)

	return &Response{
		ID:                   booking.ID,
		Name:                 booking.ClientName,
		Phone:                booking.ClientPhone,
		BookingDate:          booking.BookingDate,
		StartTime:            booking.StartTime,
		Services:             items,
		Total:                summary.Total,
		TotalFormatted:       formatted.TotalFormatted,
		TotalDurationMinutes: summary.TotalDurationMinutes,
		DurationFormatted:    formatted.DurationFormatted,
		ConfirmationMessage:  confirmation,
		Slots:                uc.refreshSlots(booking.BookingDate, now),
		CreatedAt:            booking.CreatedAt,
	}, nil
}

// refreshSlots строит актуальный список слотов даты после резервирования:
// только что занятый слот возвращается с Busy=true
func (uc *UseCase) refreshSlots(date time.Time, now time.Time) []domain.Slot {
	grid := domain.GenerateDaySlots(date, uc.schedule)
	offered := domain.FilterSameDaySlots(grid.Slots, date, now, uc.schedule.MinNoticeMinutes)

	dateKey := domain.DateKey(date)
	slots := make([]domain.Slot, 0, len(offered))
	for _, label := range offered {
		slots = append(slots, domain.Slot{
			StartTime:       label,
			DurationMinutes: uc.schedule.SlotMinutes,
			Busy:            uc.availability.IsBusy(dateKey, label),
		})
	}
	return slots
}

// sendOutboundMessage передает заявку внешнему каналу сообщений
func (uc *UseCase) sendOutboundMessage(
	ctx context.Context,
	booking *domain.Booking,
	items []domain.ServiceItem,
	summary domain.PriceSummary,
) {
	if uc.notifier == nil {
		return
	}

	var b strings.Builder
	b.WriteString("Новая запись с сайта\n\n")
	b.WriteString("Имя: " + booking.ClientName + "\n")
	b.WriteString("Телефон: " + booking.ClientPhone + "\n")
	b.WriteString(fmt.Sprintf("Дата: %s, %s\n", domain.FormatLongDate(booking.BookingDate), booking.StartTime))
	if booking.Comment != nil && *booking.Comment != "" {
		b.WriteString("Комментарий: " + *booking.Comment + "\n")
	}

	b.WriteString("\nУслуги:\n")
	for _, line := range uc.pricing.BuildSelectionDescription(items) {
		b.WriteString("• " + line + "\n")
	}
	b.WriteString("\nИтого: " + uc.pricing.FormatSummary(summary).TotalFormatted)

	if err := uc.notifier.SendMessage(ctx, b.String()); err != nil {
		uc.logger.Error("CreateBooking: failed to send outbound message for booking id=%s: %v", booking.ID, err)
	}
}

func (uc *UseCase) publishNotice(sessionID string, level domain.NoticeLevel, text string) {
	if sessionID == "" {
		return
	}
	uc.notices.Publish(sessionID, level, text)
}

// publishValidationNotice переводит ошибку валидации в текст уведомления
func (uc *UseCase) publishValidationNotice(sessionID string, err error) {
	var text string
	switch {
	case errors.Is(err, ErrEmptyName):
		text = msgEmptyName
	case errors.Is(err, ErrEmptyPhone):
		text = msgEmptyPhone
	case errors.Is(err, ErrNoDateSelected), errors.Is(err, ErrDateInPast), errors.Is(err, ErrDateClosed):
		text = msgNoDate
	case errors.Is(err, ErrNoTimeSelected), errors.Is(err, ErrInvalidTimeSlot), errors.Is(err, ErrTooLateToBook):
		text = msgNoTime
	case errors.Is(err, ErrEmptySelection):
		text = msgEmptySelection
	default:
		return
	}
	uc.publishNotice(sessionID, domain.NoticeError, text)
}
