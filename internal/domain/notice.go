package domain

import "time"

// NoticeLevel уровень транзитного уведомления
type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
)

// Notice транзитное уведомление пользователю (валидация, подтверждение)
// Автоматически гаснет по истечении TTL
type Notice struct {
	Level       NoticeLevel
	Text        string
	PublishedAt time.Time
}
