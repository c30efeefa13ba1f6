package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	pkgAuth "github.com/vroommkart/storefront/pkg/auth"
	"github.com/vroommkart/storefront/pkg/config"
	pkgerrors "github.com/vroommkart/storefront/pkg/errors"
	"github.com/vroommkart/storefront/pkg/logger"
	"github.com/vroommkart/storefront/pkg/security"
)

const invalidPasscodeMessage = "invalid passcode"

// Service defines the behavior needed by the admin gate controller and middleware.
type Service interface {
	Unlock(ctx context.Context, req UnlockRequest) (*UnlockResponse, error)
	Authorize(ctx context.Context, token string) (*pkgAuth.GateClaims, error)
}

type service struct {
	cfg          config.AdminConfig
	passcodeHash string
	now          func() time.Time
	logg         *logger.Logger
}

// ServiceParams bundles the dependencies required to build the admin gate.
type ServiceParams struct {
	Config config.AdminConfig
	Logger *logger.Logger
	Now    func() time.Time
}

// NewService hashes the configured passcode once so requests never compare plaintext.
func NewService(params ServiceParams) (Service, error) {
	passcode := strings.TrimSpace(params.Config.Passcode)
	if passcode == "" {
		return nil, fmt.Errorf("admin passcode is required")
	}
	hash, err := security.HashSecret(passcode, security.DefaultParams())
	if err != nil {
		return nil, fmt.Errorf("hash admin passcode: %w", err)
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	logg := params.Logger
	if logg == nil {
		logg = logger.Nop()
	}
	return &service{
		cfg:          params.Config,
		passcodeHash: hash,
		now:          now,
		logg:         logg,
	}, nil
}

func (s *service) Unlock(ctx context.Context, req UnlockRequest) (*UnlockResponse, error) {
	ok, err := security.VerifySecret(strings.TrimSpace(req.Passcode), s.passcodeHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify passcode")
	}
	if !ok {
		s.logg.Warn(ctx, "admin unlock rejected")
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidPasscodeMessage)
	}

	token, expiresAt, err := pkgAuth.MintGateToken(s.cfg, s.now().UTC())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint gate token")
	}
	s.logg.Info(ctx, "admin gate unlocked")
	return &UnlockResponse{Token: token, ExpiresAt: expiresAt}, nil
}

func (s *service) Authorize(ctx context.Context, token string) (*pkgAuth.GateClaims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing gate token")
	}
	claims, err := pkgAuth.ParseGateToken(s.cfg, token, s.now())
	if err != nil {
		s.logg.Debug(s.logg.WithField(ctx, "reason", err.Error()), "gate token rejected")
		return nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid gate token")
	}
	return claims, nil
}
