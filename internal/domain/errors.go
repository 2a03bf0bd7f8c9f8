package domain

import "errors"

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrPaymentNotFound = errors.New("payment not found")
	ErrTicketNotFound  = errors.New("ticket not found")
)

// Settlement.
var (
	ErrUnauthenticated          = errors.New("invalid webhook signature")
	ErrMalformedNotification    = errors.New("malformed gateway notification")
	ErrIntegrityFault           = errors.New("payment amount does not match gateway amount")
	ErrDuplicateReference       = errors.New("payment reference already exists")
	ErrTransitionConflict       = errors.New("payment state changed concurrently")
	ErrAlreadyPaid              = errors.New("payer has already paid for this event")
	ErrGatewayUnavailable       = errors.New("payment gateway unavailable")
	ErrGatewayTransactionAbsent = errors.New("gateway has no such transaction")
)

// Admission.
var (
	ErrAlreadyAdmitted  = errors.New("payer already admitted to this event")
	ErrCapacityExceeded = errors.New("event capacity exceeded")
	ErrEventNotActive   = errors.New("event is not active")
)

// Scan.
var (
	ErrWrongEvent        = errors.New("ticket belongs to another event")
	ErrTicketAlreadyUsed = errors.New("ticket already used")
	ErrTicketForged      = errors.New("ticket token is invalid")
)

var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)
