package editor

import (
	"errors"
	"fmt"
	"net/http"
)

// EditorError định nghĩa base error cho editor domain
type EditorError struct {
	Code    string
	Message string
	Err     error
}

func (e *EditorError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *EditorError) Unwrap() error {
	return e.Err
}

// ============================================
// DOMAIN-SPECIFIC ERROR DEFINITIONS
// ============================================

// ErrSessionNotFound - session đã đóng hoặc chưa mở
var ErrSessionNotFound = &EditorError{
	Code:    "SESSION_NOT_FOUND",
	Message: "Edit session not found",
}

// ErrInvalidTarget - target thiếu section hoặc kind không hợp lệ
var ErrInvalidTarget = &EditorError{
	Code:    "INVALID_TARGET",
	Message: "Invalid edit target",
}

// ErrUnknownField - field ngoài schema của target
var ErrUnknownField = &EditorError{
	Code:    "UNKNOWN_FIELD",
	Message: "Field does not exist on edit target",
}

// ErrFieldBusy - field đang chờ refine, không trigger lặp lại được
var ErrFieldBusy = &EditorError{
	Code:    "FIELD_BUSY",
	Message: "Field has a refinement in flight",
}

// ErrNotAnImageField - attach image vào field không phải image
var ErrNotAnImageField = &EditorError{
	Code:    "NOT_AN_IMAGE_FIELD",
	Message: "Field does not accept an image",
}

// ErrNotRefinable - refine chỉ áp dụng cho text fields
var ErrNotRefinable = &EditorError{
	Code:    "NOT_REFINABLE",
	Message: "Field does not hold refinable text",
}

// ErrDeleteNotAllowed - delete chỉ cho existing collection item
var ErrDeleteNotAllowed = &EditorError{
	Code:    "DELETE_NOT_ALLOWED",
	Message: "Only an existing section item can be deleted",
}

func NewUnknownField(field string) *EditorError {
	return &EditorError{
		Code:    ErrUnknownField.Code,
		Message: fmt.Sprintf("Field %q does not exist on edit target", field),
	}
}

// GetErrorResponse maps domain error sang (statusCode, message, code)
func GetErrorResponse(err error) (int, string, string) {
	var domainErr *EditorError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case ErrSessionNotFound.Code:
			return http.StatusNotFound, domainErr.Message, domainErr.Code
		case ErrInvalidTarget.Code, ErrUnknownField.Code, ErrNotAnImageField.Code, ErrNotRefinable.Code, ErrDeleteNotAllowed.Code:
			return http.StatusBadRequest, domainErr.Message, domainErr.Code
		case ErrFieldBusy.Code:
			return http.StatusConflict, domainErr.Message, domainErr.Code
		}
	}
	return http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR"
}
