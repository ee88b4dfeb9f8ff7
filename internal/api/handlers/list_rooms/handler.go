package list_rooms

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
)

const msgInvalidActive = "параметр active должен быть true или false"

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms?active=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	onlyActive := false
	if raw := r.URL.Query().Get("active"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /rooms - Invalid active flag: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidActive)
			return
		}
		onlyActive = v
	}

	rooms, err := h.service.List(r.Context(), onlyActive)
	if err != nil {
		h.logger.Error("GET /rooms - Failed to list rooms: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, rooms)
}
