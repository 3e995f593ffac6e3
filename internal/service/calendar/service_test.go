package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avtoline-dev/STO-SiteService/internal/domain"
	"github.com/avtoline-dev/STO-SiteService/pkg/types"
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

type stubAvailability struct {
	busy map[string]map[types.TimeString]bool
}

func (s *stubAvailability) IsBusy(dateKey string, t types.TimeString) bool {
	return s.busy[dateKey][t]
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

type calendarFixture struct {
	svc          *Service
	availability *stubAvailability
	notices      *recordingNotices
	timeProvider *stubTimeProvider
}

// Понедельник-суббота, 9:00-19:00, шаг 60 минут.
// "Сейчас" — вторник 1 сентября 2026, 08:00.
func newCalendarFixture(t *testing.T) *calendarFixture {
	t.Helper()

	schedule := domain.NewWorkingHoursConfig([]int{1, 2, 3, 4, 5, 6}, 9, 19, 60, 0)
	availability := &stubAvailability{busy: map[string]map[types.TimeString]bool{}}
	notices := &recordingNotices{}
	timeProvider := &stubTimeProvider{now: time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local)}

	svc := NewService(schedule, availability, notices, noopLogger{})
	svc.timeProvider = timeProvider

	return &calendarFixture{
		svc:          svc,
		availability: availability,
		notices:      notices,
		timeProvider: timeProvider,
	}
}

func (f *calendarFixture) markBusy(dateKey string, t types.TimeString) {
	if f.availability.busy[dateKey] == nil {
		f.availability.busy[dateKey] = map[types.TimeString]bool{}
	}
	f.availability.busy[dateKey][t] = true
}

func TestCreateSession(t *testing.T) {
	f := newCalendarFixture(t)

	view := f.svc.CreateSession()

	require.NotEmpty(t, view.SessionID)
	assert.Equal(t, 2026, view.Month.Year)
	assert.Equal(t, time.September, view.Month.Month)
	assert.Equal(t, "Сентябрь 2026", view.Month.Title)
	assert.Empty(t, view.Month.SelectedDate)
	assert.True(t, view.Month.SelectedTime.IsZero())
}

func TestMonthViewGrid(t *testing.T) {
	f := newCalendarFixture(t)
	sess := f.svc.CreateSession()

	view, err := f.svc.MonthView(sess.SessionID)
	require.NoError(t, err)

	// 1 сентября 2026 — вторник: одна пустая ячейка перед первым числом
	require.Greater(t, len(view.Cells), 30)
	assert.Equal(t, 0, view.Cells[0].Day)
	assert.Equal(t, 1, view.Cells[1].Day)
	assert.Equal(t, "2026-09-01", view.Cells[1].Date)
	assert.True(t, view.Cells[1].Today)
	assert.True(t, view.Cells[1].Selectable)

	// Воскресенье 6 сентября — нерабочий день
	sunday := view.Cells[6]
	require.Equal(t, 6, sunday.Day)
	assert.False(t, sunday.Selectable)
}

func TestMonthViewUnknownSession(t *testing.T) {
	f := newCalendarFixture(t)

	_, err := f.svc.MonthView("missing")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestNavigateMonth(t *testing.T) {
	f := newCalendarFixture(t)
	sess := f.svc.CreateSession()

	t.Run("forward", func(t *testing.T) {
		view, err := f.svc.NavigateMonth(sess.SessionID, 1)
		require.NoError(t, err)
		assert.Equal(t, time.October, view.Month)
		assert.Equal(t, 2026, view.Year)
	})

	t.Run("back", func(t *testing.T) {
		view, err := f.svc.NavigateMonth(sess.SessionID, -1)
		require.NoError(t, err)
		assert.Equal(t, time.September, view.Month)
	})

	t.Run("year rollover", func(t *testing.T) {
		var view *MonthView
		var err error
		for i := 0; i < 4; i++ {
			view, err = f.svc.NavigateMonth(sess.SessionID, 1)
			require.NoError(t, err)
		}
		assert.Equal(t, time.January, view.Month)
		assert.Equal(t, 2027, view.Year)
	})

	t.Run("invalid direction", func(t *testing.T) {
		_, err := f.svc.NavigateMonth(sess.SessionID, 2)
		require.ErrorIs(t, err, ErrInvalidDirection)
	})
}

func TestSelectDate(t *testing.T) {
	f := newCalendarFixture(t)
	sess := f.svc.CreateSession()

	t.Run("working day accepted", func(t *testing.T) {
		view, err := f.svc.SelectDate(sess.SessionID, time.Date(2026, 9, 2, 0, 0, 0, 0, time.Local))
		require.NoError(t, err)
		assert.Equal(t, "2026-09-02", view.Date)
		assert.False(t, view.Closed)
		require.Len(t, view.Slots, 10)
		assert.Equal(t, types.TimeString("09:00"), view.Slots[0].StartTime)
	})

	t.Run("past date rejected", func(t *testing.T) {
		_, err := f.svc.SelectDate(sess.SessionID, time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local))
		require.ErrorIs(t, err, ErrDateInPast)

		notice, ok := f.notices.last()
		require.True(t, ok)
		assert.Equal(t, "Нельзя выбрать прошедшую дату", notice.Text)
		assert.Equal(t, domain.NoticeError, notice.Level)
	})

	t.Run("closed day rejected", func(t *testing.T) {
		_, err := f.svc.SelectDate(sess.SessionID, time.Date(2026, 9, 6, 0, 0, 0, 0, time.Local))
		require.ErrorIs(t, err, ErrDateClosed)

		notice, ok := f.notices.last()
		require.True(t, ok)
		assert.Equal(t, "В этот день сервис не работает", notice.Text)
	})

	t.Run("busy slots flagged", func(t *testing.T) {
		f.markBusy("2026-09-03", "14:00")

		view, err := f.svc.SelectDate(sess.SessionID, time.Date(2026, 9, 3, 0, 0, 0, 0, time.Local))
		require.NoError(t, err)

		var busyCount int
		for _, slot := range view.Slots {
			if slot.Busy {
				busyCount++
				assert.Equal(t, types.TimeString("14:00"), slot.StartTime)
			}
		}
		assert.Equal(t, 1, busyCount)
	})

	t.Run("same day hides elapsed slots", func(t *testing.T) {
		f.timeProvider.now = time.Date(2026, 9, 1, 12, 30, 0, 0, time.Local)

		view, err := f.svc.SelectDate(sess.SessionID, time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local))
		require.NoError(t, err)
		require.NotEmpty(t, view.Slots)
		assert.Equal(t, types.TimeString("13:00"), view.Slots[0].StartTime)
	})
}

func TestSelectDateResetsTime(t *testing.T) {
	f := newCalendarFixture(t)
	sess := f.svc.CreateSession()

	_, err := f.svc.SelectDate(sess.SessionID, time.Date(2026, 9, 2, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)
	require.NoError(t, f.svc.SelectTime(sess.SessionID, "10:00"))

	_, selectedTime, err := f.svc.Selection(sess.SessionID)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:00"), selectedTime)

	// Повторный выбор даты сбрасывает выбранное время
	_, err = f.svc.SelectDate(sess.SessionID, time.Date(2026, 9, 3, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)

	selectedDate, selectedTime, err := f.svc.Selection(sess.SessionID)
	require.NoError(t, err)
	require.NotNil(t, selectedDate)
	assert.Equal(t, "2026-09-03", domain.DateKey(*selectedDate))
	assert.True(t, selectedTime.IsZero())
}

func TestSelectTime(t *testing.T) {
	t.Run("without date", func(t *testing.T) {
		f := newCalendarFixture(t)
		sess := f.svc.CreateSession()

		err := f.svc.SelectTime(sess.SessionID, "10:00")
		require.ErrorIs(t, err, ErrNoDateSelected)

		notice, ok := f.notices.last()
		require.True(t, ok)
		assert.Equal(t, "Сначала выберите дату", notice.Text)
	})

	t.Run("off-grid label", func(t *testing.T) {
		f := newCalendarFixture(t)
		sess := f.svc.CreateSession()
		_, err := f.svc.SelectDate(sess.SessionID, time.Date(2026, 9, 2, 0, 0, 0, 0, time.Local))
		require.NoError(t, err)

		err = f.svc.SelectTime(sess.SessionID, "10:30")
		require.ErrorIs(t, err, ErrUnknownSlot)

		notice, ok := f.notices.last()
		require.True(t, ok)
		assert.Equal(t, "Некорректное время записи", notice.Text)
	})

	t.Run("busy slot", func(t *testing.T) {
		f := newCalendarFixture(t)
		f.markBusy("2026-09-02", "11:00")
		sess := f.svc.CreateSession()
		_, err := f.svc.SelectDate(sess.SessionID, time.Date(2026, 9, 2, 0, 0, 0, 0, time.Local))
		require.NoError(t, err)

		err = f.svc.SelectTime(sess.SessionID, "11:00")
		require.ErrorIs(t, err, ErrSlotBusy)

		notice, ok := f.notices.last()
		require.True(t, ok)
		assert.Equal(t, "Это время уже занято", notice.Text)

		// Состояние выбора не изменилось
		_, selectedTime, err := f.svc.Selection(sess.SessionID)
		require.NoError(t, err)
		assert.True(t, selectedTime.IsZero())
	})

	t.Run("elapsed slot on today", func(t *testing.T) {
		f := newCalendarFixture(t)
		f.timeProvider.now = time.Date(2026, 9, 1, 12, 30, 0, 0, time.Local)
		sess := f.svc.CreateSession()
		_, err := f.svc.SelectDate(sess.SessionID, time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local))
		require.NoError(t, err)

		err = f.svc.SelectTime(sess.SessionID, "10:00")
		require.ErrorIs(t, err, ErrUnknownSlot)
	})

	t.Run("free slot accepted", func(t *testing.T) {
		f := newCalendarFixture(t)
		sess := f.svc.CreateSession()
		_, err := f.svc.SelectDate(sess.SessionID, time.Date(2026, 9, 2, 0, 0, 0, 0, time.Local))
		require.NoError(t, err)

		require.NoError(t, f.svc.SelectTime(sess.SessionID, "15:00"))

		selectedDate, selectedTime, err := f.svc.Selection(sess.SessionID)
		require.NoError(t, err)
		require.NotNil(t, selectedDate)
		assert.Equal(t, "2026-09-02", domain.DateKey(*selectedDate))
		assert.Equal(t, types.TimeString("15:00"), selectedTime)
	})
}
