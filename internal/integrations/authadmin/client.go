// Package authadmin клиент административного API провайдера аутентификации
package authadmin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент административного API
type Client struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый клиент. serviceKey - привилегированный ключ сервиса
func NewClient(baseURL, serviceKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateUser создает пользователя с подтверждённым email
// Отказ провайдера возвращается как *RejectedError, его текст показывается администратору
func (c *Client) CreateUser(ctx context.Context, in CreateUserRequest) (*User, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/admin/users", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("apikey", c.serviceKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		// Продолжаем обработку
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		var e ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&e)
		c.log.Warn("authadmin: create user %s rejected with %d: %s", in.Email, resp.StatusCode, e.Text())
		return nil, &RejectedError{Message: e.Text()}
	default:
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if user.ID == "" {
		return nil, fmt.Errorf("%w: empty user id", ErrInvalidResponse)
	}

	return &user, nil
}
