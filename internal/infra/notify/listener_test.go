package notify

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEvent(t *testing.T) {
	id := uuid.New()
	roomID := uuid.New()
	payload := `{"table" : "bookings", "event" : "INSERT", "id" : "` + id.String() +
		`", "room_id" : "` + roomID.String() +
		`", "start_time" : "2026-05-04T09:00:00+00:00", "end_time" : "2026-05-04T10:00:00+00:00"}`

	e, err := ParseEvent(payload)

	require.NoError(t, err)
	assert.Equal(t, "bookings", e.Table)
	assert.Equal(t, "INSERT", e.Event)
	assert.Equal(t, id, e.ID)
	assert.Equal(t, roomID, e.RoomID)
	assert.True(t, e.StartTime.Equal(time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)))
}

func TestParseEvent_Invalid(t *testing.T) {
	_, err := ParseEvent("not json")

	assert.Error(t, err)
}
