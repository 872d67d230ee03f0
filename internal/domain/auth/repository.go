package auth

import "context"

// RefreshTokenRepository persists issued refresh tokens. Tokens are stored
// hashed; callers always pass the raw token.
type RefreshTokenRepository interface {
	CreateRefreshToken(ctx context.Context, userID string, token string, expiresAt int64, session SessionTrackingRequest) error
	// IsRefreshTokenRevoked reports the owner of token and whether it was
	// revoked or has expired.
	IsRefreshTokenRevoked(ctx context.Context, token string) (userID string, revoked bool, err error)
	RevokeRefreshToken(ctx context.Context, token string) error
}
