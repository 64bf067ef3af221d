package auth

import (
	"errors"
	"fmt"
	"net/http"
)

// AuthError định nghĩa base error cho auth domain
type AuthError struct {
	Code    string
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// ============================================
// DOMAIN-SPECIFIC ERROR DEFINITIONS
// ============================================

// ErrInvalidPassword - sai secret. Reported ngay cho user, không lockout,
// không rate limiting.
var ErrInvalidPassword = &AuthError{
	Code:    "INVALID_PASSWORD",
	Message: "Invalid password",
}

// ErrEmptySecret - secret mới rỗng
var ErrEmptySecret = &AuthError{
	Code:    "EMPTY_SECRET",
	Message: "New password must not be empty",
}

// ErrInvalidSession - token hỏng/hết hạn/đã logout
var ErrInvalidSession = &AuthError{
	Code:    "INVALID_SESSION",
	Message: "Invalid or expired session",
}

// ErrSecretNotSaved - không persist được secret mới
var ErrSecretNotSaved = &AuthError{
	Code:    "SECRET_NOT_SAVED",
	Message: "Password change not saved",
}

// GetErrorResponse maps domain error sang (statusCode, message, code)
func GetErrorResponse(err error) (int, string, string) {
	var domainErr *AuthError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case ErrInvalidPassword.Code, ErrInvalidSession.Code:
			return http.StatusUnauthorized, domainErr.Message, domainErr.Code
		case ErrEmptySecret.Code:
			return http.StatusBadRequest, domainErr.Message, domainErr.Code
		case ErrSecretNotSaved.Code:
			return http.StatusInternalServerError, domainErr.Message, domainErr.Code
		}
	}
	return http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR"
}
