package goConsole

import "fmt"

// Role defines a public type used by goConsole APIs.
//
// Role instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Role string

const (
	// RoleAdmin is an exported constant or variable used by the console client.
	RoleAdmin Role = "admin"
	// RoleUser is an exported constant or variable used by the console client.
	RoleUser Role = "user"
)

// ParseRole describes the parserole operation and its observable behavior.
//
// ParseRole may return an error when input validation, dependency calls, or security checks fail.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleUser:
		return RoleUser, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrRoleUnknown, s)
	}
}

// Identity defines a public type used by goConsole APIs.
//
// Identity instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Identity struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
}

// FullName describes the fullname operation and its observable behavior.
//
// FullName does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (i Identity) FullName() string {
	if i.FirstName == "" {
		return i.LastName
	}
	if i.LastName == "" {
		return i.FirstName
	}
	return i.FirstName + " " + i.LastName
}

// SignUpInput defines a public type used by goConsole APIs.
//
// SignUpInput instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type SignUpInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// AuthResult defines a public type used by goConsole APIs.
//
// AuthResult instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuthResult struct {
	Identity Identity
	Token    string
}
