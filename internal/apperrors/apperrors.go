package apperrors

import "errors"

// Workflow errors produced by the order orchestrator. Each one is terminal
// for the current request and carries its user-facing message.
var (
	// ErrIncorrectRequest is returned when the request carries no line items.
	ErrIncorrectRequest = errors.New("empty item order not allowed")

	// ErrAccountNotFound is returned when the account id resolves to nothing.
	ErrAccountNotFound = errors.New("account not found")

	// ErrPaymentNotAccepted is returned when payment authorization is denied.
	// By the time it surfaces the denied order has already been persisted.
	ErrPaymentNotAccepted = errors.New("the credit card added to your account was not accepted, please verify")
)
