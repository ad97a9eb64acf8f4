package errors

import "errors"

var (
	ErrNotFound             = errors.New("order not found")
	ErrDuplicateID          = errors.New("order id already exists")
	ErrAmountExceedsLimit   = errors.New("amount exceeds maximum transaction limit")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrOrderNotPaid         = errors.New("order has not been paid")
	ErrAlreadyPaid          = errors.New("order already paid")
	ErrCardDeclined         = errors.New("card declined")
	ErrGenerationFailed     = errors.New("design generation failed")
)
