package accept_terms

import (
	"context"

	"github.com/google/uuid"
)

type ProfileService interface {
	AcceptTerms(ctx context.Context, userID uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
