package domain

import (
	"errors"
	"fmt"
)

var ErrUserNotFound = errors.New("user not found or inactive")
var ErrInvalidPIN = errors.New("invalid PIN")
var ErrInvalidIdentifier = errors.New("identifier must have exactly 11 digits")
var ErrInvalidPINFormat = errors.New("PIN must have 4 to 8 digits")
var ErrInvalidAction = errors.New("unknown action")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidPeriod = errors.New("invalid period")
var ErrAdminUnauthorized = errors.New("admin token missing or invalid")
var ErrIPNotAllowed = errors.New("origin address not allowed")

// AlternationError is returned when a check-in repeats the user's most
// recent action. It carries the prior action so callers can tell the
// user which action to register instead.
type AlternationError struct {
	Prior Action
}

func (e *AlternationError) Error() string {
	return fmt.Sprintf("last registered action was %q, register %q first", e.Prior, e.Prior.Opposite())
}
