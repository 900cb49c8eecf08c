package services

import (
	"context"
	"time"
)

// AuthSvc authenticates the store administrator and issues access tokens.
type AuthSvc interface {
	// Login checks the credentials and returns a signed access token with its expiry.
	// Returns apperrors.ErrUnauthorized for wrong credentials.
	Login(ctx context.Context, username, password string) (string, time.Time, error)
}
