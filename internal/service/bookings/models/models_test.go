package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/ptr"
)

func TestFromDomainBookingListFor(t *testing.T) {
	viewer := uuid.New()
	own := &domain.Booking{ID: uuid.New(), UserID: viewer, Title: "1:1", Description: ptr.Ptr("notes")}
	foreign := &domain.Booking{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Title:       "Board meeting",
		Description: ptr.Ptr("budget"),
		User:        &domain.Profile{FullName: "Rita"},
		Room:        &domain.Room{Name: "Atlas", Floor: 1},
	}

	masked := FromDomainBookingListFor([]*domain.Booking{own, foreign}, viewer, false)
	require.Len(t, masked, 2)
	assert.Equal(t, "1:1", masked[0].Title)
	assert.Equal(t, ReservedTitle, masked[1].Title)
	assert.Nil(t, masked[1].Description)
	assert.Nil(t, masked[1].User)
	assert.Equal(t, "1st floor", masked[1].Room.FloorLabel)

	visible := FromDomainBookingListFor([]*domain.Booking{foreign}, viewer, true)
	assert.Equal(t, "Board meeting", visible[0].Title)
	assert.Equal(t, "Rita", visible[0].User.FullName)
}
