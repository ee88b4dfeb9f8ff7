package settings

import "errors"

var (
	// ErrSettingNotFound возвращается, когда ключ настройки отсутствует
	ErrSettingNotFound = errors.New("settings.repository: setting not found")

	ErrBuildQuery = errors.New("settings.repository: failed to build query")
	ErrExecQuery  = errors.New("settings.repository: failed to execute query")
	ErrScanRow    = errors.New("settings.repository: failed to scan row")
)
