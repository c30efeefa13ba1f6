package auth

import "time"

// UnlockRequest carries the back-office passcode.
type UnlockRequest struct {
	Passcode string `json:"passcode" validate:"required"`
}

// UnlockResponse contains the gate token minted after a successful unlock.
type UnlockResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
