package handlers

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-RoomBooking/internal/service/policy"
)

func TestPolicyMessage(t *testing.T) {
	wrapped := fmt.Errorf("create_booking: policy: %w", &policy.LimitError{Err: policy.ErrExceedsMaxDuration, Limit: 4})
	assert.Equal(t, "бронирование не может быть длиннее 4 ч", PolicyMessage(wrapped))

	assert.Equal(t, "количество участников превышает вместимость комнаты (8)",
		PolicyMessage(&policy.LimitError{Err: policy.ErrAttendeesOverCapacity, Limit: 8}))
	assert.Equal(t, "нельзя бронировать на прошедшее время", PolicyMessage(policy.ErrStartInPast))
	assert.Equal(t, "бронирование нарушает правила", PolicyMessage(fmt.Errorf("other")))
}
