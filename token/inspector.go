package token

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMalformed is an exported constant or variable used by the console client.
	ErrMalformed = errors.New("token malformed")
	// ErrExpiryMissing is an exported constant or variable used by the console client.
	ErrExpiryMissing = errors.New("token expiry claim missing")
	// ErrSubjectInvalid is an exported constant or variable used by the console client.
	ErrSubjectInvalid = errors.New("token subject invalid")
	// ErrRoleMissing is an exported constant or variable used by the console client.
	ErrRoleMissing = errors.New("token role claim missing")
)

// Claims defines a public type used by goConsole APIs.
//
// Claims instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Claims struct {
	Role  string `json:"role,omitempty"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Config defines a public type used by goConsole APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Leeway time.Duration
	Now    func() time.Time
}

// Inspector defines a public type used by goConsole APIs.
//
// Inspector instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Inspector struct {
	leeway time.Duration
	now    func() time.Time
}

// NewInspector describes the newinspector operation and its observable behavior.
//
// NewInspector may return an error when input validation, dependency calls, or security checks fail.
func NewInspector(cfg Config) (*Inspector, error) {
	if cfg.Leeway < 0 || cfg.Leeway > 2*time.Minute {
		return nil, errors.New("invalid leeway configuration")
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Inspector{leeway: cfg.Leeway, now: cfg.Now}, nil
}

// Peek decodes claims without verifying the signature. Any parse failure
// maps to [ErrMalformed]; callers never see the library's internal errors.
func (i *Inspector) Peek(tokenStr string) (*Claims, error) {
	if tokenStr == "" {
		return nil, ErrMalformed
	}

	parser := jwt.NewParser()
	parsed, _, err := parser.ParseUnverified(tokenStr, &Claims{})
	if err != nil {
		return nil, ErrMalformed
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, ErrMalformed
	}
	return claims, nil
}

// Expired reports whether the claims' expiry has passed the inspector's
// clock. A missing expiry counts as expired.
func (i *Inspector) Expired(claims *Claims) bool {
	if claims == nil || claims.ExpiresAt == nil {
		return true
	}
	return claims.ExpiresAt.Time.Add(i.leeway).Before(i.now())
}

// SubjectID parses the numeric subject the console API issues.
func (i *Inspector) SubjectID(claims *Claims) (int64, error) {
	if claims == nil || claims.Subject == "" {
		return 0, ErrSubjectInvalid
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrSubjectInvalid
	}
	return id, nil
}

// Role returns the role claim, failing when absent.
func (i *Inspector) Role(claims *Claims) (string, error) {
	if claims == nil || claims.Role == "" {
		return "", ErrRoleMissing
	}
	return claims.Role, nil
}
