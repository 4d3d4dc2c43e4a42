package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness constraint was violated.
	ErrAlreadyExists = errors.New("already exists")
	// ErrNoActivePrice indicates a product has no price whose window
	// contains the requested instant.
	ErrNoActivePrice = errors.New("no active price")
	// ErrMixedCurrency indicates a cart references prices in more than
	// one currency.
	ErrMixedCurrency = errors.New("mixed currencies in cart")
	// ErrInvalidInput wraps request validation failures so transports can
	// map them to a client error.
	ErrInvalidInput = errors.New("invalid input")
)
