package auth

import "github.com/hexaline-bpo/agentpay-backend-go/internal/pkg/validator"

// LoginRequest authenticates a back-office user (admin or QA) by email.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AgentLoginRequest authenticates a floor agent by CNIC against the roster.
type AgentLoginRequest struct {
	CNIC     string `json:"cnic"`
	Password string `json:"password"`
}

func (r *AgentLoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CNIC) {
		errs = append(errs, validator.ValidationError{Field: "cnic", Message: "is required"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type TokenResponse struct {
	AccessToken           string `json:"access_token"`
	AccessTokenExpiresIn  int64  `json:"access_token_expires_in"`
	RefreshToken          string `json:"refresh_token"`
	RefreshTokenExpiresIn int64  `json:"refresh_token_expires_in"`
	Role                  string `json:"role"`
	DisplayName           string `json:"display_name"`
}
