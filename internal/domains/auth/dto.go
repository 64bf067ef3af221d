package auth

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ========================================
// AUTH DTOs
// ========================================

// LoginRequest - owner unlocks edit mode with the shared secret
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Password, validation.Required.Error("password is required")),
	)
}

// ChangeSecretRequest - replaces the persisted secret. The only field-level
// rule in the whole system: the new secret must be non-empty.
type ChangeSecretRequest struct {
	NewPassword string `json:"new_password" binding:"required"`
}

func (r ChangeSecretRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.NewPassword, validation.Required.Error("new password must not be empty")),
	)
}

// LoginResponse carries the session token for the Authorization header.
type LoginResponse struct {
	Token string `json:"token"`
}
