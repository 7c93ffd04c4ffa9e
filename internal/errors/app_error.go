package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code       string
	Message    string
	Detail     string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail

	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

const (
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeInternal           = "INTERNAL_ERROR"
	ErrCodeEmptyCart          = "EMPTY_CART"
	ErrCodeMissingAddress     = "MISSING_ADDRESS"
	ErrCodeMissingPayment     = "MISSING_PAYMENT_METHOD"
	ErrCodeInvalidCode        = "INVALID_VERIFICATION_CODE"
	ErrCodeInvalidCoupon      = "INVALID_COUPON"
	ErrCodeNegativePayable    = "NEGATIVE_PAYABLE"
	ErrCodeCheckoutInProgress = "CHECKOUT_IN_PROGRESS"
	ErrCodeCheckoutState      = "CHECKOUT_STATE"
)

func ValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, http.StatusBadRequest)
}

func BadRequestError(message string) *AppError {
	return NewAppError(ErrCodeBadRequest, message, http.StatusBadRequest)
}

func NotFoundError(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, http.StatusNotFound)
}

func InternalError(message string) *AppError {
	return NewAppError(ErrCodeInternal, message, http.StatusInternalServerError)
}

func EmptyCartError(message string) *AppError {
	return NewAppError(ErrCodeEmptyCart, message, http.StatusConflict)
}

func MissingAddressError(message string) *AppError {
	return NewAppError(ErrCodeMissingAddress, message, http.StatusUnprocessableEntity)
}

func MissingPaymentError(message string) *AppError {
	return NewAppError(ErrCodeMissingPayment, message, http.StatusUnprocessableEntity)
}

func InvalidCodeError(message string) *AppError {
	return NewAppError(ErrCodeInvalidCode, message, http.StatusUnprocessableEntity)
}

func InvalidCouponError(message string) *AppError {
	return NewAppError(ErrCodeInvalidCoupon, message, http.StatusUnprocessableEntity)
}

func NegativePayableError(message string) *AppError {
	return NewAppError(ErrCodeNegativePayable, message, http.StatusConflict)
}

func CheckoutInProgressError(message string) *AppError {
	return NewAppError(ErrCodeCheckoutInProgress, message, http.StatusConflict)
}

func CheckoutStateError(message string) *AppError {
	return NewAppError(ErrCodeCheckoutState, message, http.StatusConflict)
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}

// field validation error.
func AddValidationError(field, reason string) *AppError {
	return ValidationError(fmt.Sprintf("Invalid field '%s': %s", field, reason))
}
