package subscribe_bookings

import (
	"github.com/gorilla/websocket"

	"github.com/m04kA/SMC-RoomBooking/internal/service/realtime"
)

// ServeFunc обслуживает соединение подписчика до закрытия
type ServeFunc func(conn *websocket.Conn, sub *realtime.Subscriber)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
