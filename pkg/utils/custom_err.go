package utils

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrPlanNotFound         = errors.New("subscription plan not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrOrderForbidden       = errors.New("order belongs to another user")
	ErrDuplicateOrderNumber = errors.New("duplicate order number")
	ErrOrderAlreadyPaid     = errors.New("order already paid")
	ErrInvalidTransition    = errors.New("invalid order state transition")
	ErrAmountMismatch       = errors.New("notified amount does not match order amount")

	ErrSignatureInvalid    = errors.New("notification signature invalid")
	ErrNotificationInvalid = errors.New("notification missing required fields")
	ErrGatewayUnavailable  = errors.New("payment gateway unavailable")
	ErrGatewayRejected     = errors.New("payment gateway rejected the order")

	ErrAudioNotFound = errors.New("audio track not found")

	ErrDatabaseError = errors.New("database error")
)
