package auth

import "context"

// AuthService defines login and token lifecycle operations
type AuthService interface {
	// Login authenticates a back-office user against a bcrypt hash.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// AgentLogin compares the roster credential as a plaintext string, a
	// weakness carried over from the legacy system. The role claim it
	// issues is a UI convenience, not a security boundary.
	AgentLogin(ctx context.Context, req AgentLoginRequest) (TokenResponse, error)

	Refresh(ctx context.Context, req RefreshRequest) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}
