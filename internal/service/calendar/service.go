package calendar

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/avtoline-dev/STO-SiteService/internal/domain"
	"github.com/avtoline-dev/STO-SiteService/pkg/types"
)

// Тексты транзитных уведомлений календаря
const (
	msgDateInPast   = "Нельзя выбрать прошедшую дату"
	msgDateClosed   = "В этот день сервис не работает"
	msgNoDate       = "Сначала выберите дату"
	msgUnknownSlot  = "Некорректное время записи"
	msgSlotBusy     = "Это время уже занято"
)

// session состояние календаря одной страницы: отображаемый месяц и выбор
// пользователя. selectedTime сбрасывается при каждой смене selectedDate.
type session struct {
	id           string
	year         int
	month        time.Month
	selectedDate *time.Time
	selectedTime types.TimeString
}

// Service навигатор календаря записи. Держит сессии страниц в памяти,
// расписание и хранилище занятых слотов получает при создании и дальше
// только читает.
type Service struct {
	mu           sync.RWMutex
	sessions     map[string]*session
	schedule     domain.WorkingHoursConfig
	availability AvailabilityReader
	notices      NoticePublisher
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает навигатор календаря
func NewService(
	schedule domain.WorkingHoursConfig,
	availability AvailabilityReader,
	notices NoticePublisher,
	logger Logger,
) *Service {
	return &Service{
		sessions:     make(map[string]*session),
		schedule:     schedule,
		availability: availability,
		notices:      notices,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// CreateSession открывает новую сессию календаря на текущем месяце
func (s *Service) CreateSession() *SessionView {
	now := s.timeProvider.Now()

	sess := &session{
		id:    uuid.NewString(),
		year:  now.Year(),
		month: now.Month(),
	}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	s.logger.Info("calendar: session created id=%s, month=%d-%02d", sess.id, sess.year, sess.month)

	return &SessionView{
		SessionID: sess.id,
		Month:     s.buildMonthView(sess, now),
	}
}

// MonthView возвращает текущий отображаемый месяц сессии
func (s *Service) MonthView(sessionID string) (*MonthView, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	return s.buildMonthView(sess, s.timeProvider.Now()), nil
}

// NavigateMonth сдвигает отображаемый месяц на direction (-1 или 1).
// Выбранные дата и время при навигации не меняются.
func (s *Service) NavigateMonth(sessionID string, direction int) (*MonthView, error) {
	if direction != -1 && direction != 1 {
		return nil, ErrInvalidDirection
	}

	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}

	// time.Date нормализует переполнение месяца (декабрь+1 -> январь следующего года)
	shifted := time.Date(sess.year, sess.month+time.Month(direction), 1, 0, 0, 0, 0, time.Local)
	sess.year = shifted.Year()
	sess.month = shifted.Month()
	s.mu.Unlock()

	return s.MonthView(sessionID)
}

// SelectDate выбирает дату записи. Прошедшие и нерабочие даты отклоняются,
// выбор даты всегда сбрасывает ранее выбранное время.
func (s *Service) SelectDate(sessionID string, date time.Time) (*DaySlotsView, error) {
	now := s.timeProvider.Now()

	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}

	if domain.IsDateInPast(date, now) {
		s.mu.Unlock()
		s.notices.Publish(sessionID, domain.NoticeError, msgDateInPast)
		return nil, ErrDateInPast
	}

	if !s.schedule.IsWorkingDay(date) {
		s.mu.Unlock()
		s.notices.Publish(sessionID, domain.NoticeError, msgDateClosed)
		return nil, ErrDateClosed
	}

	selected := domain.TruncateToDay(date)
	sess.selectedDate = &selected
	sess.selectedTime = ""
	s.mu.Unlock()

	s.logger.Info("calendar: session=%s selected date %s", sessionID, domain.DateKey(selected))

	return s.daySlots(selected, now), nil
}

// SelectTime выбирает время записи на ранее выбранную дату.
// Занятое время отклоняется без изменения состояния.
func (s *Service) SelectTime(sessionID string, t types.TimeString) error {
	now := s.timeProvider.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}

	if sess.selectedDate == nil {
		s.notices.Publish(sessionID, domain.NoticeError, msgNoDate)
		return ErrNoDateSelected
	}

	date := *sess.selectedDate
	grid := domain.GenerateDaySlots(date, s.schedule)
	offered := domain.FilterSameDaySlots(grid.Slots, date, now, s.schedule.MinNoticeMinutes)
	if !(domain.DaySlots{Slots: offered}).ContainsSlot(t) {
		s.notices.Publish(sessionID, domain.NoticeError, msgUnknownSlot)
		return ErrUnknownSlot
	}

	if s.availability.IsBusy(domain.DateKey(date), t) {
		s.notices.Publish(sessionID, domain.NoticeError, msgSlotBusy)
		return ErrSlotBusy
	}

	sess.selectedTime = t
	s.logger.Info("calendar: session=%s selected time %s", sessionID, t)
	return nil
}

// Selection возвращает текущие выбранные дату и время сессии
func (s *Service) Selection(sessionID string) (selectedDate *time.Time, selectedTime types.TimeString, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, "", ErrSessionNotFound
	}
	return sess.selectedDate, sess.selectedTime, nil
}

// buildMonthView строит сетку месяца: первая ячейка первого числа выровнена
// по колонке своего дня недели при неделе с понедельника
func (s *Service) buildMonthView(sess *session, now time.Time) *MonthView {
	first := time.Date(sess.year, sess.month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	// Понедельник = 0 .. воскресенье = 6
	leading := (int(first.Weekday()) + 6) % 7

	cells := make([]DayCell, 0, leading+daysInMonth)
	for i := 0; i < leading; i++ {
		cells = append(cells, DayCell{})
	}

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(sess.year, sess.month, day, 0, 0, 0, 0, time.Local)
		cells = append(cells, DayCell{
			Day:        day,
			Date:       domain.DateKey(date),
			Selectable: !domain.IsDateInPast(date, now) && s.schedule.IsWorkingDay(date),
			Today:      domain.IsSameDay(date, now),
		})
	}

	view := &MonthView{
		Year:         sess.year,
		Month:        sess.month,
		Title:        domain.MonthTitle(sess.year, sess.month),
		Cells:        cells,
		SelectedTime: sess.selectedTime,
	}
	if sess.selectedDate != nil {
		view.SelectedDate = domain.DateKey(*sess.selectedDate)
	}
	return view
}

// daySlots строит список слотов даты с признаком занятости.
// Занятые слоты остаются в списке: страница показывает их неактивными.
func (s *Service) daySlots(date time.Time, now time.Time) *DaySlotsView {
	grid := domain.GenerateDaySlots(date, s.schedule)
	if grid.Closed {
		return &DaySlotsView{Date: domain.DateKey(date), Closed: true, Slots: []domain.Slot{}}
	}

	offered := domain.FilterSameDaySlots(grid.Slots, date, now, s.schedule.MinNoticeMinutes)
	dateKey := domain.DateKey(date)

	slots := make([]domain.Slot, 0, len(offered))
	for _, label := range offered {
		slots = append(slots, domain.Slot{
			StartTime:       label,
			DurationMinutes: s.schedule.SlotMinutes,
			Busy:            s.availability.IsBusy(dateKey, label),
		})
	}

	return &DaySlotsView{Date: dateKey, Slots: slots}
}
