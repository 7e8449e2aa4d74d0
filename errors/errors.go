package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidRole  ErrorCode = "INVALID_ROLE"

	// Category errors
	ErrCodeInvalidCategory ErrorCode = "INVALID_CATEGORY"
	ErrCodeInvalidStatus   ErrorCode = "INVALID_STATUS"
	ErrCodeInvalidQuantity ErrorCode = "INVALID_QUANTITY"
	ErrCodeInvalidPricing  ErrorCode = "INVALID_PRICING"

	// Booking errors
	ErrCodeAvailabilityConflict ErrorCode = "AVAILABILITY_CONFLICT"
	ErrCodeCapacityExceeded     ErrorCode = "CAPACITY_EXCEEDED"
	ErrCodeSelectionLimit       ErrorCode = "SELECTION_LIMIT"
	ErrCodePricingUnavailable   ErrorCode = "PRICING_UNAVAILABLE"
	ErrCodeMixedCurrency        ErrorCode = "MIXED_CURRENCY"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidDate   ErrorCode = "INVALID_DATE"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return nil
}

var (
	// Category errors
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryInactive = errors.New("category inactive")

	// Offer errors
	ErrOfferNotFound      = errors.New("offer not found")
	ErrOfferUnpriced      = errors.New("offer has no configured price")
	ErrCategoryQuantity   = errors.New("category quantity exceeded")
	ErrCombinedRoomLimit  = errors.New("combined room limit exceeded")
	ErrMixedCurrency      = errors.New("mixed currencies in selection")
	ErrChildrenUnplaced   = errors.New("children could not be placed")
	ErrCapacityExceeded   = errors.New("total guests exceed selected capacity")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidFormat   = errors.New("invalid format")
)
