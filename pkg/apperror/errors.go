package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds used by the sale workflow. Handlers and tests branch on these
// rather than on HTTP codes, which overlap between kinds.
const (
	KindOutOfStock          = "OUT_OF_STOCK"
	KindInsufficientStock   = "INSUFFICIENT_STOCK"
	KindInsufficientPayment = "INSUFFICIENT_PAYMENT"
	KindRemoteFailure       = "REMOTE_FAILURE"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int          `json:"code"`
	Kind    string       `json:"kind,omitempty"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrNotFound       = &AppError{Code: http.StatusNotFound, Message: "Resource not found"}
	ErrUnauthorized   = &AppError{Code: http.StatusUnauthorized, Message: "Unauthorized"}
	ErrForbidden      = &AppError{Code: http.StatusForbidden, Message: "Forbidden"}
	ErrBadRequest     = &AppError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrInternalServer = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error"}
	ErrInvalidPIN     = &AppError{Code: http.StatusUnauthorized, Message: "Invalid operator PIN"}
	ErrTokenExpired   = &AppError{Code: http.StatusUnauthorized, Message: "Token has expired"}
	ErrInvalidToken   = &AppError{Code: http.StatusUnauthorized, Message: "Invalid token"}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: resource + " not found",
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// NewOutOfStockError reports a product that cannot be added because it has no
// sellable stock, or the requested quantity exceeds what is available.
func NewOutOfStockError(productName string) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Kind:    KindOutOfStock,
		Message: fmt.Sprintf("%s is out of stock", productName),
	}
}

// NewInsufficientStockError reports a merge that would push an existing cart
// line past the stock ceiling captured when the line was created.
func NewInsufficientStockError(productName string, ceiling int) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Kind:    KindInsufficientStock,
		Message: fmt.Sprintf("Not enough stock for %s (max %d)", productName, ceiling),
	}
}

// NewInsufficientPaymentError reports a submission attempted with less cash
// received than the payable total.
func NewInsufficientPaymentError() *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindInsufficientPayment,
		Message: "Received amount is less than the total. Please collect full payment",
	}
}

// NewRemoteFailureError wraps a failure reported by the backend API, keeping
// whatever detail it provided.
func NewRemoteFailureError(detail string) *AppError {
	msg := "Backend request failed"
	if detail != "" {
		msg = msg + ": " + detail
	}
	return &AppError{
		Code:    http.StatusBadGateway,
		Kind:    KindRemoteFailure,
		Message: msg,
	}
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
