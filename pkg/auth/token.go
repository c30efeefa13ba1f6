package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/vroommkart/storefront/pkg/config"
)

var jwtSigningMethod = jwt.SigningMethodHS256

// MintGateToken issues a signed admin gate token valid for the configured TTL.
func MintGateToken(cfg config.AdminConfig, now time.Time) (string, time.Time, error) {
	if cfg.TokenSecret == "" {
		return "", time.Time{}, fmt.Errorf("admin token secret is required")
	}
	if strings.TrimSpace(cfg.TokenIssuer) == "" {
		return "", time.Time{}, fmt.Errorf("admin token issuer is required")
	}
	if cfg.TokenTTL <= 0 {
		return "", time.Time{}, fmt.Errorf("admin token ttl must be positive")
	}

	expiresAt := now.Add(cfg.TokenTTL)
	claims := GateClaims{
		Scope: ScopeAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.TokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwtSigningMethod, claims)
	signed, err := token.SignedString([]byte(cfg.TokenSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing jwt: %w", err)
	}
	return signed, expiresAt, nil
}

// ParseGateToken validates the JWT string and returns typed claims.
func ParseGateToken(cfg config.AdminConfig, tokenString string, now time.Time) (*GateClaims, error) {
	if cfg.TokenSecret == "" {
		return nil, fmt.Errorf("admin token secret is required")
	}

	claims := &GateClaims{}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwtSigningMethod.Alg()}),
		jwt.WithIssuer(cfg.TokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	_, err := parser.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if token.Method != jwtSigningMethod {
				return nil, fmt.Errorf("unexpected signing method %s", token.Header["alg"])
			}
			return []byte(cfg.TokenSecret), nil
		},
	)
	if err != nil {
		return nil, err
	}
	if claims.Scope != ScopeAdmin {
		return nil, fmt.Errorf("unexpected token scope %q", claims.Scope)
	}

	return claims, nil
}
