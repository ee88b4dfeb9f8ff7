package upload_room_image

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/service/rooms"
	"github.com/m04kA/SMC-RoomBooking/internal/service/rooms/models"
)

const (
	msgInvalidRoomID = "некорректный ID комнаты"
	msgInvalidFile   = "не удалось прочитать файл"
	msgInvalidImage  = "неподдерживаемый или слишком большой файл изображения"
	msgNotFound      = "комната не найдена"
)

type Handler struct {
	service  RoomService
	maxBytes int64
	logger   Logger
}

func NewHandler(service RoomService, maxBytes int64, logger Logger) *Handler {
	return &Handler{
		service:  service,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

// Handle POST /api/v1/rooms/{roomId}/image (multipart, поле file)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := uuid.Parse(mux.Vars(r)["roomId"])
	if err != nil {
		h.logger.Warn("POST /rooms/{id}/image - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	upload, err := handlers.ReadUpload(w, r, h.maxBytes)
	if err != nil {
		h.logger.Warn("POST /rooms/{id}/image - Invalid upload: room_id=%s, error=%v", roomID, err)
		handlers.RespondBadRequest(w, msgInvalidFile)
		return
	}
	defer upload.Body.Close()

	room, err := h.service.UploadImage(r.Context(), roomID, &models.ImageFile{
		Name:        upload.Name,
		ContentType: upload.ContentType,
		Size:        upload.Size,
		Body:        upload.Body,
	})
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrRoomNotFound):
			h.logger.Warn("POST /rooms/{id}/image - Room not found: room_id=%s", roomID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rooms.ErrInvalidImage):
			h.logger.Warn("POST /rooms/{id}/image - Invalid image: room_id=%s, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidImage)

		default:
			h.logger.Error("POST /rooms/{id}/image - Failed to upload image: room_id=%s, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms/{id}/image - Image uploaded: room_id=%s", roomID)
	handlers.RespondJSON(w, http.StatusOK, room)
}
