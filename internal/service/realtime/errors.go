package realtime

import "errors"

var (
	// ErrInvalidWindow окно подписки пустое или слишком длинное
	ErrInvalidWindow = errors.New("realtime: invalid subscription window")

	// ErrHubClosed хаб остановлен
	ErrHubClosed = errors.New("realtime: hub closed")
)
