package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// HasCode reports whether err is (or wraps) an AppError with the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// ---- Comments (CMT) ----

func ErrInvalidComment(message string) *AppError {
	return New("CMT_001", message, http.StatusBadRequest)
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap("CMT_002", "Comment encryption failure", http.StatusInternalServerError, err)
}

// ---- Identity (IDN) ----

func ErrInvalidPhoneNumber() *AppError {
	return New("IDN_001", "Phone number must be in E.164 format", http.StatusBadRequest)
}

func ErrInvalidAddress() *AppError {
	return New("IDN_002", "Invalid account address", http.StatusBadRequest)
}

func ErrVerificationFailure(err error) *AppError {
	return Wrap("IDN_003", "Identity metadata verification failed", http.StatusBadGateway, err)
}

// ---- Data encryption keys (DEK) ----

func ErrDEKMissing() *AppError {
	return New("DEK_001", "No data encryption key for this account", http.StatusConflict)
}

func ErrInvalidMnemonic(err error) *AppError {
	return Wrap("DEK_002", "Invalid mnemonic", http.StatusBadRequest, err)
}

// ErrRelayerRegistration is fatal for onboarding and must reach the caller.
func ErrRelayerRegistration(err error) *AppError {
	return Wrap("DEK_003", "Relayed wallet and DEK registration failed", http.StatusBadGateway, err)
}

func ErrInsufficientBalance(err error) *AppError {
	return Wrap("DEK_004", "Insufficient balance to register DEK", http.StatusPaymentRequired, err)
}

func ErrRegistrationInProgress() *AppError {
	return New("DEK_005", "DEK registration already in progress", http.StatusConflict)
}

// ---- Resources (RES) ----

func ErrNotFound(entity string) *AppError {
	return New("RES_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Requests (REQ) ----

func ErrPayloadTooLarge() *AppError {
	return New("REQ_001", "Request body too large", http.StatusRequestEntityTooLarge)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrChainUnavailable(err error) *AppError {
	return Wrap("SYS_002", "Blockchain node unavailable", http.StatusServiceUnavailable, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a CMT_001-style validation error.
func Validation(message string) *AppError {
	return New("CMT_001", message, http.StatusBadRequest)
}
