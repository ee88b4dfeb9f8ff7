package models

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// RoomInput данные для создания и изменения комнаты
type RoomInput struct {
	Name       string   `json:"name"`
	Floor      int      `json:"floor"`
	Capacity   int      `json:"capacity"`
	Facilities []string `json:"facilities"`
	Status     string   `json:"status"`
}

// Validate проверяет поля комнаты. Пустой статус означает active
func (in *RoomInput) Validate() error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(in.Name) > domain.MaxRoomNameLength {
		return fmt.Errorf("name is longer than %d characters", domain.MaxRoomNameLength)
	}
	if in.Floor < domain.MinFloor || in.Floor > domain.MaxFloor {
		return fmt.Errorf("floor must be between %d and %d", domain.MinFloor, domain.MaxFloor)
	}
	if in.Capacity < 1 {
		return fmt.Errorf("capacity must be at least 1")
	}
	if len(in.Facilities) > domain.MaxFacilities {
		return fmt.Errorf("at most %d facilities allowed", domain.MaxFacilities)
	}
	if in.Status == "" {
		in.Status = string(domain.RoomStatusActive)
	}
	if !domain.RoomStatus(in.Status).IsValid() {
		return fmt.Errorf("unknown status %q", in.Status)
	}
	return nil
}

// ToDomain конвертирует данные в domain.Room
func (in *RoomInput) ToDomain(id uuid.UUID) *domain.Room {
	facilities := make([]string, 0, len(in.Facilities))
	for _, f := range in.Facilities {
		if f = strings.TrimSpace(f); f != "" {
			facilities = append(facilities, f)
		}
	}

	return &domain.Room{
		ID:         id,
		Name:       in.Name,
		Floor:      in.Floor,
		Capacity:   in.Capacity,
		Facilities: facilities,
		Status:     domain.RoomStatus(in.Status),
	}
}

// ImageFile загружаемый файл
type ImageFile struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// RoomResponse ответ с данными комнаты
type RoomResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Floor      int       `json:"floor"`
	FloorLabel string    `json:"floorLabel"`
	Capacity   int       `json:"capacity"`
	Facilities []string  `json:"facilities"`
	Status     string    `json:"status"`
	ImageURL   *string   `json:"imageUrl,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// FromDomainRoom конвертирует domain.Room в RoomResponse
func FromDomainRoom(r *domain.Room) *RoomResponse {
	facilities := r.Facilities
	if facilities == nil {
		facilities = []string{}
	}

	return &RoomResponse{
		ID:         r.ID,
		Name:       r.Name,
		Floor:      r.Floor,
		FloorLabel: r.FloorLabel(),
		Capacity:   r.Capacity,
		Facilities: facilities,
		Status:     string(r.Status),
		ImageURL:   r.ImageURL,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// FromDomainRoomList конвертирует список комнат
func FromDomainRoomList(rooms []*domain.Room) []*RoomResponse {
	result := make([]*RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		result = append(result, FromDomainRoom(r))
	}
	return result
}
