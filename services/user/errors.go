package user

import (
	"errors"
	"fmt"
)

// ErrUserNotFound signals that no account exists for the requested id.
var ErrUserNotFound = errors.New("user not found")

// AccountBannedError rejects a banned account at the authentication
// boundary, regardless of its role.
type AccountBannedError struct {
	Email string
}

func (e AccountBannedError) Error() string {
	return fmt.Sprintf("account %s is banned", e.Email)
}

// ForbiddenSelfActionError rejects an admin targeting their own account for
// a role or ban change.
type ForbiddenSelfActionError struct {
	Action string
}

func (e ForbiddenSelfActionError) Error() string {
	return fmt.Sprintf("administrators cannot perform %s on their own account", e.Action)
}

// InvalidRoleError rejects a role value outside the known set.
type InvalidRoleError struct {
	Role string
}

func (e InvalidRoleError) Error() string {
	return fmt.Sprintf("invalid role %q", e.Role)
}
