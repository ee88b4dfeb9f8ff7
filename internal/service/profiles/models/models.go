package models

import (
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// UpdateProfileRequest изменение имени и отдела
type UpdateProfileRequest struct {
	FullName   string `json:"fullName"`
	Department string `json:"department"`
}

// UpdateAccessRequest изменение роли и прав пользователя
type UpdateAccessRequest struct {
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// AvatarFile загружаемый аватар
type AvatarFile struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ProfileResponse профиль с действующими правами
type ProfileResponse struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	FullName      string    `json:"fullName"`
	Department    string    `json:"department"`
	Role          string    `json:"role"`
	AvatarURL     *string   `json:"avatarUrl,omitempty"`
	TermsAccepted bool      `json:"termsAccepted"`
	Permissions   []string  `json:"permissions"`
	CreatedAt     time.Time `json:"createdAt"`
}

// FromDomainProfile конвертирует профиль и его права в ответ
func FromDomainProfile(p *domain.Profile, access domain.Access) *ProfileResponse {
	effective := access.Effective()
	perms := make([]string, len(effective))
	for i, perm := range effective {
		perms[i] = string(perm)
	}

	return &ProfileResponse{
		ID:            p.ID,
		Email:         p.Email,
		FullName:      p.FullName,
		Department:    p.Department,
		Role:          string(p.Role),
		AvatarURL:     p.AvatarURL,
		TermsAccepted: p.TermsAccepted,
		Permissions:   perms,
		CreatedAt:     p.CreatedAt,
	}
}
