package auth

import (
	"context"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/user"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest, session SessionTrackingRequest) (TokenResponse, error)
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	// Logout revokes the refresh token and, when given, the access token.
	Logout(ctx context.Context, refreshToken string, accessToken string) error
	Me(ctx context.Context, userID string) (user.UserResponse, error)
	CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error)
}
