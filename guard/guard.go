package guard

import (
	"context"
	"errors"
	"net/http"

	goConsole "github.com/MrEthical07/goConsole"
)

// Authorizer is the slice of the client the guard needs.
type Authorizer interface {
	AuthorizeView(ctx context.Context, roles ...goConsole.Role) error
}

// Decision defines a public type used by goConsole APIs.
//
// Decision instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

// Guard defines a public type used by goConsole APIs.
//
// Guard instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Guard struct {
	auth          Authorizer
	loginPath     string
	forbiddenPath string
}

// New describes the new operation and its observable behavior.
//
// New may return an error when input validation, dependency calls, or security checks fail.
func New(auth Authorizer, cfg goConsole.GuardConfig) (*Guard, error) {
	if auth == nil {
		return nil, errors.New("authorizer required")
	}
	if cfg.LoginPath == "" {
		cfg.LoginPath = "/login"
	}
	if cfg.ForbiddenPath == "" {
		cfg.ForbiddenPath = "/"
	}
	return &Guard{
		auth:          auth,
		loginPath:     cfg.LoginPath,
		forbiddenPath: cfg.ForbiddenPath,
	}, nil
}

// Decide answers whether navigation to a view restricted to the given
// roles may proceed. An empty role list only requires authentication.
// The redirect target distinguishes the two denial reasons: anonymous
// sessions go to the login path, wrong roles to the forbidden path.
func (g *Guard) Decide(ctx context.Context, roles ...goConsole.Role) Decision {
	if g == nil {
		return Decision{RedirectTo: "/login"}
	}

	err := g.auth.AuthorizeView(ctx, roles...)
	switch {
	case err == nil:
		return Decision{Allowed: true}
	case errors.Is(err, goConsole.ErrRoleDenied):
		return Decision{RedirectTo: g.forbiddenPath}
	default:
		return Decision{RedirectTo: g.loginPath}
	}
}

// Middleware wraps an http.Handler with the same decision Decide makes,
// answering 303 redirects for denied navigation.
func (g *Guard) Middleware(roles ...goConsole.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if g == nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			decision := g.Decide(r.Context(), roles...)
			if !decision.Allowed {
				http.Redirect(w, r, decision.RedirectTo, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
