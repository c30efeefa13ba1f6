package auth

import "github.com/golang-jwt/jwt/v5"

// ScopeAdmin marks a token minted after the back-office passcode was accepted.
const ScopeAdmin = "admin"

// GateClaims represents the typed JWT issued when the admin gate unlocks.
type GateClaims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}
