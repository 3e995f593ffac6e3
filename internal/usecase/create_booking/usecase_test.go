package create_booking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avtoline-dev/STO-SiteService/internal/domain"
	"github.com/avtoline-dev/STO-SiteService/internal/infra/storage/availability"
	"github.com/avtoline-dev/STO-SiteService/internal/infra/storage/bookings"
	"github.com/avtoline-dev/STO-SiteService/internal/service/pricing"
	"github.com/avtoline-dev/STO-SiteService/pkg/ptr"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type stubTimeProvider struct {
	now time.Time
}

func (p *stubTimeProvider) Now() time.Time {
	return p.now
}

type recordingNotices struct {
	published []domain.Notice
}

func (r *recordingNotices) Publish(sessionID string, level domain.NoticeLevel, text string) {
	r.published = append(r.published, domain.Notice{Level: level, Text: text})
}

func (r *recordingNotices) last() (domain.Notice, bool) {
	if len(r.published) == 0 {
		return domain.Notice{}, false
	}
	return r.published[len(r.published)-1], true
}

type recordingNotifier struct {
	messages []string
	err      error
}

func (n *recordingNotifier) SendMessage(_ context.Context, text string) error {
	if n.err != nil {
		return n.err
	}
	n.messages = append(n.messages, text)
	return nil
}

type bookingFixture struct {
	uc           *UseCase
	store        *availability.Store
	repo         *bookings.Repository
	notices      *recordingNotices
	notifier     *recordingNotifier
	timeProvider *stubTimeProvider
}

// Понедельник-суббота, 9:00-19:00, шаг 60 минут.
// "Сейчас" — вторник 1 сентября 2026, 08:00.
func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	schedule := domain.NewWorkingHoursConfig([]int{1, 2, 3, 4, 5, 6}, 9, 19, 60, 0)
	store := availability.NewStore()
	repo := bookings.NewRepository()
	notices := &recordingNotices{}
	notifier := &recordingNotifier{}
	timeProvider := &stubTimeProvider{now: time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local)}

	catalog := []domain.CatalogService{
		{
			ID:              1,
			Title:           "Замена масла",
			BasePrice:       1000,
			DurationMinutes: 30,
			Options: []domain.CatalogOption{
				{ID: 11, Label: "Lukoil Genesis — синтетика", Surcharge: 300},
			},
		},
		{
			ID:              2,
			Title:           "Диагностика ходовой",
			BasePrice:       500,
			DurationMinutes: 40,
		},
	}

	uc := NewUseCase(
		schedule,
		store,
		repo,
		pricing.NewService(catalog, noopLogger{}),
		notices,
		notifier,
		noopLogger{},
	)
	uc.timeProvider = timeProvider

	return &bookingFixture{
		uc:           uc,
		store:        store,
		repo:         repo,
		notices:      notices,
		notifier:     notifier,
		timeProvider: timeProvider,
	}
}

func validRequest() *Request {
	return &Request{
		SessionID: "session-1",
		Name:      "Иван Петров",
		Phone:     "+7 900 123-45-67",
		Date:      time.Date(2026, 9, 2, 0, 0, 0, 0, time.Local),
		StartTime: "10:00",
		Selection: []domain.SelectionRecord{
			{ServiceID: 1, Quantity: 1},
			{ServiceID: 2, Quantity: 2},
		},
	}
}

func TestExecuteSuccess(t *testing.T) {
	f := newBookingFixture(t)

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.NotEmpty(t, resp.ID)
	assert.Equal(t, "Иван Петров", resp.Name)
	assert.Equal(t, 2000.0, resp.Total)
	assert.Equal(t, 110, resp.TotalDurationMinutes)
	assert.Equal(t, "Вы записаны на 2 сентября в 10:00", resp.ConfirmationMessage)

	// Слот зарезервирован
	assert.True(t, f.store.IsBusy("2026-09-02", "10:00"))

	// Запись сохранена в репозитории
	stored, err := f.repo.GetByID(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "2026-09-02", stored.DateKey())
	require.Len(t, stored.Services, 2)

	// Опубликовано подтверждение
	notice, ok := f.notices.last()
	require.True(t, ok)
	assert.Equal(t, domain.NoticeSuccess, notice.Level)
	assert.Equal(t, resp.ConfirmationMessage, notice.Text)

	// В обновленной сетке только что занятый слот помечен занятым
	require.NotEmpty(t, resp.Slots)
	for _, slot := range resp.Slots {
		assert.Equal(t, slot.StartTime == "10:00", slot.Busy, "slot %s", slot.StartTime)
	}
}

func TestExecuteSendsOutboundMessage(t *testing.T) {
	f := newBookingFixture(t)

	req := validRequest()
	req.Comment = ptr.Ptr("Стук спереди справа")
	req.Selection = []domain.SelectionRecord{
		{ServiceID: 1, Quantity: 1, OptionID: ptr.Ptr(int64(11))},
	}

	_, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, f.notifier.messages, 1)
	msg := f.notifier.messages[0]
	assert.Contains(t, msg, "Новая запись с сайта")
	assert.Contains(t, msg, "Имя: Иван Петров")
	assert.Contains(t, msg, "Телефон: +7 900 123-45-67")
	assert.Contains(t, msg, "Дата: 2 сентября, 10:00")
	assert.Contains(t, msg, "Комментарий: Стук спереди справа")
	assert.Contains(t, msg, "Замена масла (Lukoil Genesis)")
}

func TestExecuteNotifierFailureDoesNotUndoBooking(t *testing.T) {
	f := newBookingFixture(t)
	f.notifier.err = errors.New("telegram is down")

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, f.store.IsBusy("2026-09-02", "10:00"))
	_, err = f.repo.GetByID(resp.ID)
	assert.NoError(t, err)
}

func TestExecuteWithoutNotifier(t *testing.T) {
	f := newBookingFixture(t)
	f.uc.notifier = nil

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
}

func TestExecuteValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr error
		notice  string
	}{
		{
			name:    "empty name",
			mutate:  func(req *Request) { req.Name = "   " },
			wantErr: ErrEmptyName,
			notice:  "Укажите ваше имя",
		},
		{
			name:    "empty phone",
			mutate:  func(req *Request) { req.Phone = "" },
			wantErr: ErrEmptyPhone,
			notice:  "Укажите телефон для связи",
		},
		{
			name:    "no date",
			mutate:  func(req *Request) { req.Date = time.Time{} },
			wantErr: ErrNoDateSelected,
			notice:  "Выберите дату записи",
		},
		{
			name:    "no time",
			mutate:  func(req *Request) { req.StartTime = "" },
			wantErr: ErrNoTimeSelected,
			notice:  "Выберите время записи",
		},
		{
			name:    "empty selection",
			mutate:  func(req *Request) { req.Selection = nil },
			wantErr: ErrEmptySelection,
			notice:  "Выберите хотя бы одну услугу",
		},
		{
			name:    "name too long",
			mutate:  func(req *Request) { req.Name = strings.Repeat("а", domain.MaxClientNameLength+1) },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "past date",
			mutate:  func(req *Request) { req.Date = time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local) },
			wantErr: ErrDateInPast,
		},
		{
			name:    "closed day",
			mutate:  func(req *Request) { req.Date = time.Date(2026, 9, 6, 0, 0, 0, 0, time.Local) },
			wantErr: ErrDateClosed,
		},
		{
			name:    "off-grid time",
			mutate:  func(req *Request) { req.StartTime = "10:30" },
			wantErr: ErrInvalidTimeSlot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBookingFixture(t)

			req := validRequest()
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, tt.wantErr)

			// Хранилище не тронуто, запись не создана
			assert.Equal(t, 0, f.store.BusyCount("2026-09-02"))
			assert.Empty(t, f.notifier.messages)

			if tt.notice != "" {
				notice, ok := f.notices.last()
				require.True(t, ok)
				assert.Equal(t, tt.notice, notice.Text)
				assert.Equal(t, domain.NoticeError, notice.Level)
			}
		})
	}
}

func TestExecuteTooLateToBook(t *testing.T) {
	f := newBookingFixture(t)
	f.timeProvider.now = time.Date(2026, 9, 2, 12, 30, 0, 0, time.Local)

	req := validRequest()
	req.StartTime = "10:00"

	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrTooLateToBook)
	assert.Equal(t, 0, f.store.BusyCount("2026-09-02"))
}

func TestExecuteSlotAlreadyTaken(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Повторная запись на тот же слот отклоняется
	second := validRequest()
	second.Name = "Пётр Сидоров"
	_, err = f.uc.Execute(context.Background(), second)
	require.ErrorIs(t, err, ErrSlotNotAvailable)

	notice, ok := f.notices.last()
	require.True(t, ok)
	assert.Equal(t, "Это время уже занято, выберите другое", notice.Text)

	// Слот остается занятым ровно один раз
	assert.Equal(t, 1, f.store.BusyCount("2026-09-02"))
}

func TestExecuteUnknownServicesOnly(t *testing.T) {
	f := newBookingFixture(t)

	req := validRequest()
	req.Selection = []domain.SelectionRecord{{ServiceID: 99, Quantity: 1}}

	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrEmptySelection)
	assert.Equal(t, 0, f.store.BusyCount("2026-09-02"))
}
