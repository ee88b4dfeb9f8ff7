package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Send(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_key", r.Header.Get("Authorization"))

		var msg Message
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		assert.Equal(t, []string{"ana@example.com"}, msg.To)
		require.Len(t, msg.Attachments, 1)

		_, _ = w.Write([]byte(`{"id":"em_1"}`))
	}))
	defer srv.Close()

	id, err := NewClient(srv.URL, "re_key", time.Second).Send(context.Background(), Message{
		From:        "Rooms <noreply@example.com>",
		To:          []string{"ana@example.com"},
		Subject:     "Booking confirmed",
		HTML:        "<p>ok</p>",
		Attachments: []Attachment{{Filename: "booking.ics", Content: "QkVHSU4="}},
	})

	require.NoError(t, err)
	assert.Equal(t, "em_1", id)
}

func TestClient_Send_NotConfigured(t *testing.T) {
	c := NewClient("https://api.example.com", "", time.Second)

	assert.False(t, c.Configured())
	_, err := c.Send(context.Background(), Message{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestClient_Send_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"domain not verified"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "k", time.Second).Send(context.Background(), Message{})

	assert.ErrorIs(t, err, ErrSendFailed)
}
