package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/agent"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/auth"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/user"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	agent.AgentRepository
	jwt.Service
}

func NewAuthService(userRepository user.UserRepository, agentRepository agent.AgentRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository:  userRepository,
		AgentRepository: agentRepository,
		Service:         jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(jwt.Identity{
		UserID: userData.ID,
		Role:   string(userData.Role),
		Name:   userData.Name,
	})
}

// AgentLogin implements auth.AuthService. The roster credential is compared
// as a plaintext string; see the agent entity for the caveat.
func (a *AuthServiceImpl) AgentLogin(ctx context.Context, req auth.AgentLoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	agentData, err := a.AgentRepository.GetByCNIC(ctx, req.CNIC)
	if err != nil {
		if errors.Is(err, agent.ErrAgentNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get agent by cnic: %w", err)
	}

	if !agentData.IsActive() {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(agentData.Password), []byte(req.Password)) != 1 {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(jwt.Identity{
		AgentCNIC: agentData.CNIC,
		Role:      string(user.RoleAgent),
		Name:      agentData.Name,
	})
}

// Refresh implements auth.AuthService. The presented refresh token is
// revoked and a fresh pair issued, so each refresh token is single-use.
func (a *AuthServiceImpl) Refresh(ctx context.Context, req auth.RefreshRequest) (auth.TokenResponse, error) {
	if req.RefreshToken == "" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if a.Service.IsTokenRevoked(req.RefreshToken) {
		return auth.TokenResponse{}, auth.ErrTokenRevoked
	}

	identity, err := a.Service.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	// Re-check the principal still exists before re-issuing.
	switch {
	case identity.UserID != "":
		if _, err := a.UserRepository.GetByID(ctx, identity.UserID); err != nil {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
	case identity.AgentCNIC != "":
		agentData, err := a.AgentRepository.GetByCNIC(ctx, identity.AgentCNIC)
		if err != nil || !agentData.IsActive() {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
	default:
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	a.Service.RevokeToken(req.RefreshToken)

	return a.issueTokens(identity)
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return auth.ErrInvalidToken
	}
	a.Service.RevokeToken(refreshToken)
	return nil
}

func (a *AuthServiceImpl) issueTokens(identity jwt.Identity) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse
	var err error

	tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(identity)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(identity)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	tokenResponse.Role = identity.Role
	tokenResponse.DisplayName = identity.Name

	return tokenResponse, nil
}
