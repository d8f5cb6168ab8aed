package professional

import (
	"errors"
	"fmt"
)

// ErrOwnerNotFound signals that the account a profile operation was issued
// for does not exist.
var ErrOwnerNotFound = errors.New("user not found")

// ErrNoProfileYet signals that the account has no linked or email-matching
// profile.
var ErrNoProfileYet = errors.New("no provider profile yet")

// ValidationError rejects admin input missing a required field.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Message)
}
