package subscribe_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/service/realtime"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidWindow = "некорректное окно подписки"
)

type Handler struct {
	serve    ServeFunc
	upgrader websocket.Upgrader
	loc      *time.Location
	logger   Logger
}

// NewHandler allowedOrigins пустой или содержащий "*" разрешает любой Origin
func NewHandler(serve ServeFunc, allowedOrigins []string, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		serve: serve,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     originChecker(allowedOrigins),
		},
		loc:    loc,
		logger: logger,
	}
}

// Handle GET /api/v1/bookings/subscribe?from=2026-05-04&to=2026-05-10 (websocket)
// При любом изменении дня из окна приходит полный снимок бронирований и блокировок этого дня
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/subscribe - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	access, _ := middleware.GetAccess(r.Context())

	from, to, err := h.parseWindow(r)
	if err != nil {
		h.logger.Warn("GET /bookings/subscribe - Invalid dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	window, err := realtime.NewWindow(from, to, h.loc)
	if err != nil {
		if errors.Is(err, realtime.ErrInvalidWindow) {
			h.logger.Warn("GET /bookings/subscribe - Invalid window: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWindow)
			return
		}
		h.logger.Error("GET /bookings/subscribe - Failed to build window: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	// Upgrade сам отвечает клиенту при ошибке
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("GET /bookings/subscribe - Upgrade failed: user_id=%s, error=%v", userID, err)
		return
	}

	h.logger.Info("GET /bookings/subscribe - Subscribed: user_id=%s, from=%s, to=%s",
		userID, window.From.Format(domain.DateFormat), window.To.Format(domain.DateFormat))
	h.serve(conn, realtime.NewSubscriber(userID, access, window))
}

// parseWindow без параметров подписывает на сегодняшний день
func (h *Handler) parseWindow(r *http.Request) (time.Time, time.Time, error) {
	query := r.URL.Query()

	from := time.Now().In(h.loc)
	if raw := query.Get("from"); raw != "" {
		parsed, err := time.ParseInLocation(domain.DateFormat, raw, h.loc)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
	}

	to := from
	if raw := query.Get("to"); raw != "" {
		parsed, err := time.ParseInLocation(domain.DateFormat, raw, h.loc)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = parsed
	}

	return from, to, nil
}

func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		set[o] = struct{}{}
	}
	if len(set) == 0 {
		return func(*http.Request) bool { return true }
	}

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := set[origin]
		return ok
	}
}
