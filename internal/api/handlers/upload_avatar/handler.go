package upload_avatar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBooking/internal/service/profiles"
	"github.com/m04kA/SMC-RoomBooking/internal/service/profiles/models"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidFile   = "не удалось прочитать файл"
	msgInvalidImage  = "неподдерживаемый или слишком большой файл изображения"
	msgNotFound      = "профиль не найден"
)

type Handler struct {
	service  ProfileService
	maxBytes int64
	logger   Logger
}

func NewHandler(service ProfileService, maxBytes int64, logger Logger) *Handler {
	return &Handler{
		service:  service,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

// Handle POST /api/v1/profile/avatar (multipart, поле file)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /profile/avatar - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	upload, err := handlers.ReadUpload(w, r, h.maxBytes)
	if err != nil {
		h.logger.Warn("POST /profile/avatar - Invalid upload: user_id=%s, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidFile)
		return
	}
	defer upload.Body.Close()

	profile, err := h.service.UploadAvatar(r.Context(), userID, &models.AvatarFile{
		Name:        upload.Name,
		ContentType: upload.ContentType,
		Size:        upload.Size,
		Body:        upload.Body,
	})
	if err != nil {
		switch {
		case errors.Is(err, profiles.ErrInvalidImage):
			h.logger.Warn("POST /profile/avatar - Invalid image: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidImage)

		case errors.Is(err, profiles.ErrProfileNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("POST /profile/avatar - Failed to upload avatar: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /profile/avatar - Avatar uploaded: user_id=%s", userID)
	handlers.RespondJSON(w, http.StatusOK, profile)
}
