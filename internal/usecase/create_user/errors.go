package create_user

import (
	"errors"

	"github.com/m04kA/SMC-RoomBooking/internal/integrations/authadmin"
)

var (
	// ErrForbidden вызывающий не администратор
	ErrForbidden = errors.New("create_user: admin access required")

	// ErrMissingFields не заполнены email, full_name или department
	ErrMissingFields = errors.New("create_user: missing required fields")

	// ErrCreateFailed провайдер аутентификации отклонил создание пользователя
	// Текст причины остаётся в цепочке ошибки
	ErrCreateFailed = errors.New("create_user: failed to create user")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_user: internal error")
)

// RejectionMessage текст отказа провайдера из цепочки ErrCreateFailed
func RejectionMessage(err error) string {
	var rejected *authadmin.RejectedError
	if errors.As(err, &rejected) && rejected.Message != "" {
		return rejected.Message
	}
	return ""
}
