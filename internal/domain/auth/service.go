package auth

import (
	"context"
	"time"
)

// RefreshToken is a persisted refresh token; revocation survives restarts.
type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}

type RefreshTokenRepository interface {
	Store(ctx context.Context, token RefreshToken) error
	Get(ctx context.Context, token string) (RefreshToken, error)
	Revoke(ctx context.Context, token string) error
}

// AuthService defines authentication business logic
type AuthService interface {
	Signup(ctx context.Context, req SignupRequest) (LoginResponse, error)
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (LoginResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error

	// Me returns the account profile of the authenticated user.
	Me(ctx context.Context, userID string) (ProfileResponse, error)
}
