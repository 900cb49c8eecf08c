package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/dual_currency_display/internal/apperrors"
	portssvc "github.com/SscSPs/dual_currency_display/internal/core/ports/services"
	"github.com/SscSPs/dual_currency_display/internal/platform/config"
	"github.com/SscSPs/dual_currency_display/internal/utils"
)

// authService checks the configured administrator credentials and issues access tokens.
type authService struct {
	BaseService
	cfg *config.Config
}

// NewAuthService creates a new instance of authService.
func NewAuthService(cfg *config.Config) portssvc.AuthSvc {
	return &authService{cfg: cfg}
}

var _ portssvc.AuthSvc = (*authService)(nil)

// Login returns apperrors.ErrUnauthorized for unknown users and wrong passwords. It does the same when the
// admin password hash is missing or unreadable.
func (s *authService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	if s.cfg.AdminPasswordHash == "" {
		s.LogWarn(ctx, "Admin login attempted but no admin password hash is configured")
		return "", time.Time{}, apperrors.ErrUnauthorized
	}
	validUser := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUsername)) == 1
	validPassword, err := utils.CheckAdminPassword(password, s.cfg.AdminPasswordHash)
	if err != nil {
		s.LogError(ctx, err, "Configured admin password hash cannot be used")
		return "", time.Time{}, apperrors.ErrUnauthorized
	}
	if !validUser || !validPassword {
		s.LogWarn(ctx, "Rejected admin login", slog.String("username", username))
		return "", time.Time{}, apperrors.ErrUnauthorized
	}

	token, expiresAt, err := utils.IssueAdminToken(s.cfg.AdminUsername, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token")
		return "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return token, expiresAt, nil
}
