package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vroommkart/storefront/pkg/config"
)

func testAdminConfig() config.AdminConfig {
	return config.AdminConfig{
		Passcode:    "2025",
		TokenSecret: "secret",
		TokenIssuer: "vroommkart",
		TokenTTL:    30 * time.Minute,
	}
}

func TestMintAndParseGateToken(t *testing.T) {
	cfg := testAdminConfig()
	now := time.Now().UTC()

	token, expiresAt, err := MintGateToken(cfg, now)
	if err != nil {
		t.Fatalf("mint gate token: %v", err)
	}
	if !expiresAt.Equal(now.Add(cfg.TokenTTL)) {
		t.Fatalf("expected expiry %v, got %v", now.Add(cfg.TokenTTL), expiresAt)
	}

	claims, err := ParseGateToken(cfg, token, now)
	if err != nil {
		t.Fatalf("parse gate token: %v", err)
	}
	if claims.Scope != ScopeAdmin {
		t.Fatalf("unexpected scope %q", claims.Scope)
	}
	if claims.Issuer != cfg.TokenIssuer {
		t.Fatalf("expected issuer %s, got %s", cfg.TokenIssuer, claims.Issuer)
	}
	if claims.ID == "" {
		t.Fatal("expected jti to be set")
	}

	diff := claims.ExpiresAt.Sub(expiresAt)
	if diff < 0 {
		diff = -diff
	}
	if diff >= time.Second {
		t.Fatalf("expected exp roughly %v, got %v", expiresAt, claims.ExpiresAt.UTC())
	}
}

func TestParseGateTokenInvalidSignature(t *testing.T) {
	cfg := testAdminConfig()
	now := time.Now()
	token, _, err := MintGateToken(cfg, now)
	if err != nil {
		t.Fatalf("mint gate token: %v", err)
	}

	other := cfg
	other.TokenSecret = "other-secret"
	if _, err := ParseGateToken(other, token, now); err == nil {
		t.Fatal("expected signature error")
	}
}

func TestParseGateTokenExpired(t *testing.T) {
	cfg := testAdminConfig()
	issued := time.Now().Add(-time.Hour)
	token, _, err := MintGateToken(cfg, issued)
	if err != nil {
		t.Fatalf("mint gate token: %v", err)
	}
	if _, err := ParseGateToken(cfg, token, time.Now()); err == nil {
		t.Fatal("expected expiry error")
	}
}

func TestParseGateTokenWrongIssuer(t *testing.T) {
	cfg := testAdminConfig()
	now := time.Now()
	token, _, err := MintGateToken(cfg, now)
	if err != nil {
		t.Fatalf("mint gate token: %v", err)
	}
	other := cfg
	other.TokenIssuer = "someone-else"
	if _, err := ParseGateToken(other, token, now); err == nil {
		t.Fatal("expected issuer error")
	}
}

func TestParseGateTokenRejectsOtherScope(t *testing.T) {
	cfg := testAdminConfig()
	now := time.Now()
	claims := GateClaims{
		Scope: "viewer",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.TokenIssuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwtSigningMethod, claims).SignedString([]byte(cfg.TokenSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseGateToken(cfg, token, now); err == nil || !strings.Contains(err.Error(), "scope") {
		t.Fatalf("expected scope error, got %v", err)
	}
}

func TestMintGateTokenRequiresConfig(t *testing.T) {
	cases := map[string]func(*config.AdminConfig){
		"secret": func(c *config.AdminConfig) { c.TokenSecret = "" },
		"issuer": func(c *config.AdminConfig) { c.TokenIssuer = " " },
		"ttl":    func(c *config.AdminConfig) { c.TokenTTL = 0 },
	}
	for name, mutate := range cases {
		cfg := testAdminConfig()
		mutate(&cfg)
		if _, _, err := MintGateToken(cfg, time.Now()); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}
