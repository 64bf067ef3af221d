package model

import (
	"errors"
	"fmt"
	"net/http"
)

// PortfolioError định nghĩa base error cho portfolio domain
type PortfolioError struct {
	Code    string // Error code duy nhất (VD: "SECTION_NOT_FOUND")
	Message string // Human-readable message
	Err     error  // Underlying error
}

// Error implements error interface
func (e *PortfolioError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap allows error wrapping compatibility
func (e *PortfolioError) Unwrap() error {
	return e.Err
}

// ============================================
// DOMAIN-SPECIFIC ERROR DEFINITIONS
// ============================================

// ErrUnknownSection - section name ngoài sáu collections cố định
var ErrUnknownSection = &PortfolioError{
	Code:    "SECTION_NOT_FOUND",
	Message: "Unknown portfolio section",
}

// ErrItemNotFound - item không tồn tại trong collection
var ErrItemNotFound = &PortfolioError{
	Code:    "ITEM_NOT_FOUND",
	Message: "Item not found in section",
}

// ErrItemTypeMismatch - item có concrete type sai cho section
var ErrItemTypeMismatch = &PortfolioError{
	Code:    "ITEM_TYPE_MISMATCH",
	Message: "Item type does not belong to section",
}

// ErrDocumentNotSaved - blob write thất bại, changes not saved
var ErrDocumentNotSaved = &PortfolioError{
	Code:    "DOCUMENT_NOT_SAVED",
	Message: "Changes not saved",
}

func NewUnknownSection(name string) *PortfolioError {
	return &PortfolioError{
		Code:    ErrUnknownSection.Code,
		Message: fmt.Sprintf("Unknown portfolio section: %q", name),
	}
}

func NewItemNotFound(section, id string) *PortfolioError {
	return &PortfolioError{
		Code:    ErrItemNotFound.Code,
		Message: fmt.Sprintf("Item %q not found in section %q", id, section),
	}
}

func NewItemTypeMismatch(section string) *PortfolioError {
	return &PortfolioError{
		Code:    ErrItemTypeMismatch.Code,
		Message: fmt.Sprintf("Item type does not belong to section %q", section),
	}
}

func NewDocumentNotSaved(err error) *PortfolioError {
	return &PortfolioError{
		Code:    ErrDocumentNotSaved.Code,
		Message: ErrDocumentNotSaved.Message,
		Err:     err,
	}
}

// GetErrorResponse maps domain error sang HTTP response
// Trả về (statusCode, message, code) cho handler layer
func GetErrorResponse(err error) (int, string, string) {
	var domainErr *PortfolioError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case ErrUnknownSection.Code, ErrItemNotFound.Code:
			return http.StatusNotFound, domainErr.Message, domainErr.Code
		case ErrItemTypeMismatch.Code:
			return http.StatusBadRequest, domainErr.Message, domainErr.Code
		case ErrDocumentNotSaved.Code:
			return http.StatusInternalServerError, domainErr.Message, domainErr.Code
		}
	}
	return http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR"
}
