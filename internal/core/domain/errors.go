package domain

import "errors"

// Stable error kinds returned by the core. The HTTP layer maps these to
// status codes; services wrap them with detail via fmt.Errorf("%w: ...").
var (
	ErrValidation         = errors.New("invalid input")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrRoomNotFound    = errors.New("room not found")
	ErrPaymentNotFound = errors.New("payment not found")
	ErrUserNotFound    = errors.New("user not found")

	ErrDuplicateRoomNumber = errors.New("room number already exists")
	ErrDuplicatePayment    = errors.New("payment for this period already recorded")
	ErrUserExists          = errors.New("user already exists")
	ErrRoomHasPendingBills = errors.New("room has pending payments")
	ErrUserOccupiesRoom    = errors.New("user still occupies a room")
)
