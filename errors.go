package goConsole

import "errors"

var (
	// ErrClientNotReady is an exported constant or variable used by the console client.
	ErrClientNotReady = errors.New("client not initialized")
	// ErrUnauthorized is an exported constant or variable used by the console client.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidCredentials is an exported constant or variable used by the console client.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrSignupInvalid is an exported constant or variable used by the console client.
	ErrSignupInvalid = errors.New("invalid signup request")
	// ErrValidation is an exported constant or variable used by the console client.
	ErrValidation = errors.New("invalid input")
	// ErrEmailExists is an exported constant or variable used by the console client.
	ErrEmailExists = errors.New("email already registered")
	// ErrTokenInvalid is an exported constant or variable used by the console client.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrSessionExpired is an exported constant or variable used by the console client.
	ErrSessionExpired = errors.New("session expired")
	// ErrAnonymous is an exported constant or variable used by the console client.
	ErrAnonymous = errors.New("no active session")
	// ErrRoleDenied is an exported constant or variable used by the console client.
	ErrRoleDenied = errors.New("role not permitted")
	// ErrRoleUnknown is an exported constant or variable used by the console client.
	ErrRoleUnknown = errors.New("unknown role")
	// ErrProfileUnavailable is an exported constant or variable used by the console client.
	ErrProfileUnavailable = errors.New("profile fetch failed after login")
	// ErrNotFound is an exported constant or variable used by the console client.
	ErrNotFound = errors.New("resource not found")
	// ErrServerUnavailable is an exported constant or variable used by the console client.
	ErrServerUnavailable = errors.New("console api unavailable")
)
