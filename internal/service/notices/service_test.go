package notices

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avtoline-dev/STO-SiteService/internal/domain"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestPublishAndCurrent(t *testing.T) {
	svc := NewService(time.Minute, noopLogger{})

	svc.Publish("session-1", domain.NoticeError, "Это время уже занято")

	notice, ok := svc.Current("session-1")
	require.True(t, ok)
	assert.Equal(t, domain.NoticeError, notice.Level)
	assert.Equal(t, "Это время уже занято", notice.Text)
	assert.False(t, notice.PublishedAt.IsZero())
}

func TestCurrentUnknownSession(t *testing.T) {
	svc := NewService(time.Minute, noopLogger{})

	_, ok := svc.Current("missing")
	assert.False(t, ok)
}

func TestNoticeExpiresAfterTTL(t *testing.T) {
	svc := NewService(20*time.Millisecond, noopLogger{})

	svc.Publish("session-1", domain.NoticeInfo, "Сначала выберите дату")

	_, ok := svc.Current("session-1")
	require.True(t, ok)

	assert.Eventually(t, func() bool {
		_, stillThere := svc.Current("session-1")
		return !stillThere
	}, time.Second, 5*time.Millisecond)
}

func TestNewNoticeOutlivesStaleTimer(t *testing.T) {
	svc := NewService(50*time.Millisecond, noopLogger{})

	svc.Publish("session-1", domain.NoticeInfo, "первое")
	time.Sleep(20 * time.Millisecond)
	// Второе уведомление публикуется до истечения TTL первого:
	// отложенная очистка первого не должна стереть второе
	svc.Publish("session-1", domain.NoticeSuccess, "второе")
	time.Sleep(40 * time.Millisecond)

	notice, ok := svc.Current("session-1")
	require.True(t, ok, "fresh notice must survive the stale timer of the replaced one")
	assert.Equal(t, "второе", notice.Text)
}

func TestSessionsAreIsolated(t *testing.T) {
	svc := NewService(time.Minute, noopLogger{})

	svc.Publish("session-1", domain.NoticeInfo, "для первой")
	svc.Publish("session-2", domain.NoticeError, "для второй")

	first, ok := svc.Current("session-1")
	require.True(t, ok)
	assert.Equal(t, "для первой", first.Text)

	second, ok := svc.Current("session-2")
	require.True(t, ok)
	assert.Equal(t, "для второй", second.Text)
}
