package telegram

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("telegram client: internal error")

	// ErrUnexpectedStatus возвращается при неуспешном ответе Telegram API
	ErrUnexpectedStatus = errors.New("telegram client: unexpected status code")
)
