package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Room errors
	ErrCodeInvalidRoomID ErrorCode = "INVALID_ROOM_ID"
	ErrCodeRoomNotFound  ErrorCode = "ROOM_NOT_FOUND"
	ErrCodeInvalidPrice  ErrorCode = "INVALID_PRICE"
	ErrCodeInvalidStatus ErrorCode = "INVALID_STATUS"

	// Promotion errors
	ErrCodeInvalidPercent ErrorCode = "INVALID_PERCENT"
	ErrCodeInvalidWindow  ErrorCode = "INVALID_WINDOW"

	// Booking errors
	ErrCodeRoomUnavailable ErrorCode = "ROOM_UNAVAILABLE"
	ErrCodeInvalidStay     ErrorCode = "INVALID_STAY"

	// Database errors
	ErrCodeDBError    ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound ErrorCode = "DB_NOT_FOUND"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
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
	var appErr *AppError
	return errors.As(err, &appErr)
}

var (
	// Room errors
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomNotAvailable = errors.New("room not available")

	// Booking errors
	ErrBookingNotFound  = errors.New("booking not found")
	ErrBookingInvalid   = errors.New("invalid booking")
	ErrBookingCancelled = errors.New("booking already cancelled")
	ErrBookingCompleted = errors.New("booking already completed")

	// Promotion errors
	ErrPromotionNotFound = errors.New("promotion not found")
	ErrPromotionInactive = errors.New("promotion is inactive")

	// Payment errors
	ErrPaymentFailed = errors.New("payment failed")
	ErrInvalidAmount = errors.New("invalid amount")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidFormat   = errors.New("invalid format")
)
