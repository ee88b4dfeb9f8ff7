package queue

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockEnqueuer struct {
	mock.Mock
}

func (m *mockEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	args := m.Called(ctx, task)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*asynq.TaskInfo), args.Error(1)
}

type mockSender struct {
	mock.Mock
}

func (m *mockSender) SendForBooking(ctx context.Context, bookingID uuid.UUID) error {
	return m.Called(ctx, bookingID).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestBookingConfirmationTask_RoundTrip(t *testing.T) {
	id := uuid.New()

	task, err := NewBookingConfirmationTask(id, 5)
	require.NoError(t, err)
	assert.Equal(t, TypeBookingConfirmation, task.Type())

	payload, err := ParseBookingConfirmation(task)
	require.NoError(t, err)
	assert.Equal(t, id, payload.BookingID)
}

func TestClient_EnqueueBookingConfirmation(t *testing.T) {
	enq := new(mockEnqueuer)
	id := uuid.New()

	enq.On("EnqueueContext", mock.Anything, mock.MatchedBy(func(task *asynq.Task) bool {
		return task.Type() == TypeBookingConfirmation
	})).Return(&asynq.TaskInfo{ID: "t1"}, nil)

	require.NoError(t, NewClient(enq, 3).EnqueueBookingConfirmation(context.Background(), id))
	enq.AssertExpectations(t)
}

func TestClient_EnqueueBookingConfirmation_RedisDown(t *testing.T) {
	enq := new(mockEnqueuer)
	enq.On("EnqueueContext", mock.Anything, mock.Anything).Return(nil, errors.New("dial tcp: refused"))

	err := NewClient(enq, 3).EnqueueBookingConfirmation(context.Background(), uuid.New())

	assert.Error(t, err)
}

func TestHandleBookingConfirmation(t *testing.T) {
	sender := new(mockSender)
	id := uuid.New()
	sender.On("SendForBooking", mock.Anything, id).Return(nil)

	task, err := NewBookingConfirmationTask(id, 1)
	require.NoError(t, err)

	require.NoError(t, HandleBookingConfirmation(sender, nopLogger{})(context.Background(), task))
	sender.AssertExpectations(t)
}

func TestHandleBookingConfirmation_BadPayloadSkipsRetry(t *testing.T) {
	sender := new(mockSender)
	task := asynq.NewTask(TypeBookingConfirmation, []byte(`{"booking_id":""}`))

	err := HandleBookingConfirmation(sender, nopLogger{})(context.Background(), task)

	assert.ErrorIs(t, err, asynq.SkipRetry)
	sender.AssertNotCalled(t, "SendForBooking", mock.Anything, mock.Anything)
}
