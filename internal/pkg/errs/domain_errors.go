package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Booking request errors
	ErrRequestNotFound = errors.New("booking request not found")
	ErrSlotNotFound    = errors.New("slot not found")

	// Claim errors
	ErrInvalidToken    = errors.New("invalid invite token")
	ErrQuotaExceeded   = errors.New("selection quota exceeded")
	ErrScopeMismatch   = errors.New("slot does not belong to invite's request")
	ErrSlotUnavailable = errors.New("slot no longer available")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
