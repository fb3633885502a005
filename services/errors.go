package services

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by stores when a document does not exist.
// Services translate it into the entity-specific sentinels below.
var ErrNotFound = errors.New("not found")

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailNotVerified   = errors.New("email not verified")

	ErrCookNotFound    = errors.New("cook profile not found")
	ErrNotACook        = errors.New("only cook accounts can own a cook profile")
	ErrCookProfileHeld = errors.New("user already has a cook profile")

	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrItemNotAvailable = errors.New("menu item is not available")

	ErrCartNotFound  = errors.New("cart not found")
	ErrItemNotInCart = errors.New("item not found in cart")
	ErrCartCookClash = errors.New("you can only order from one cook at a time, please clear your current cart first")
	ErrEmptyCart     = errors.New("cart is empty")

	ErrOrderNotFound    = errors.New("order not found")
	ErrOrderNotDeletable = errors.New("order cannot be deleted in current status")

	ErrDuplicateReview = errors.New("you have already reviewed this cook")
)

// ValidationError marks client-recoverable input problems. Handlers map it
// to a 400 with a stable error code.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// UnavailableItemError names the first cart line whose menu item became
// unavailable between add-to-cart and checkout.
type UnavailableItemError struct {
	ItemName string
}

func (e *UnavailableItemError) Error() string {
	return fmt.Sprintf("%q is no longer available", e.ItemName)
}

// StatusTransitionError reports a rejected order status change.
type StatusTransitionError struct {
	From, To string
}

func (e *StatusTransitionError) Error() string {
	return fmt.Sprintf("cannot change order status from %q to %q", e.From, e.To)
}
