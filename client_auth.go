package goConsole

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MrEthical07/goConsole/internal/flows"
	"github.com/MrEthical07/goConsole/session"
)

type profileJSON struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role,omitempty"`
}

func (p *profileJSON) flowProfile() *flows.Profile {
	return &flows.Profile{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Role:      p.Role,
	}
}

func identityFromProfile(p flows.Profile) Identity {
	return Identity{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Role:      Role(p.Role),
	}
}

// RestoreSession loads the persisted session pair into memory. Call it
// once at startup, before the first authenticated request. A corrupt or
// half-written pair restores as anonymous.
func (c *Client) RestoreSession(ctx context.Context) error {
	if c == nil || !c.ready {
		return ErrClientNotReady
	}
	if err := c.sessions.Restore(ctx); err != nil {
		return err
	}
	if rec, ok := c.sessions.Current(); ok {
		c.metrics.Inc(MetricSessionRestored)
		c.emitAudit(ctx, EventSessionRestored, true, rec.UserID, rec.Role, nil, nil)
	}
	return nil
}

// SignUp registers a new admin account and starts a session with the
// returned token. The endpoint only creates admins; the stored role is
// admin no matter what the response body says.
func (c *Client) SignUp(ctx context.Context, input SignUpInput) (AuthResult, error) {
	if c == nil || !c.ready {
		return AuthResult{}, ErrClientNotReady
	}
	if err := validateSignUp(input); err != nil {
		c.metrics.Inc(MetricSignupFailure)
		c.emitAudit(ctx, EventSignupFailure, false, 0, "", err, nil)
		return AuthResult{}, err
	}

	profile, tok, err := flows.RunSignup(ctx, flows.SignupDeps{
		Post: func(ctx context.Context) (*flows.SignupReply, error) {
			var resp struct {
				AccessToken string       `json:"access_token"`
				Admin       *profileJSON `json:"admin"`
			}
			if err := c.do(ctx, http.MethodPost, "/auth/signup", input, &resp); err != nil {
				switch apiStatus(err) {
				case http.StatusBadRequest:
					return nil, errors.Join(ErrSignupInvalid, err)
				case http.StatusConflict:
					return nil, errors.Join(ErrEmailExists, err)
				}
				return nil, err
			}
			reply := &flows.SignupReply{Token: resp.AccessToken}
			if resp.Admin != nil {
				reply.Admin = resp.Admin.flowProfile()
			}
			return reply, nil
		},
		Save:      c.saveSession,
		MetricInc: c.metricIncByIndex,
		EmitAudit: c.flowAudit,
		Metrics: flows.SignupMetrics{
			Success: int(MetricSignupSuccess),
			Failure: int(MetricSignupFailure),
		},
		Events: flows.SignupEvents{
			Success: EventSignupSuccess,
			Failure: EventSignupFailure,
		},
		Errors: flows.SignupErrors{
			ClientNotReady:     ErrClientNotReady,
			TokenInvalid:       ErrTokenInvalid,
			ProfileUnavailable: ErrProfileUnavailable,
		},
	})
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Identity: identityFromProfile(*profile), Token: tok}, nil
}

// LogIn authenticates with email and password and starts a session. The
// response may carry an admin profile, a user profile, or only a token;
// in the token-only case the role comes from the token claims and the
// profile is fetched from the matching endpoint.
func (c *Client) LogIn(ctx context.Context, email, password string) (AuthResult, error) {
	if c == nil || !c.ready {
		return AuthResult{}, ErrClientNotReady
	}
	if err := validateLogin(email, password); err != nil {
		c.metrics.Inc(MetricLoginFailure)
		c.emitAudit(ctx, EventLoginFailure, false, 0, "", err, nil)
		return AuthResult{}, err
	}

	profile, tok, err := flows.RunLogin(ctx, flows.LoginDeps{
		Post: func(ctx context.Context) (*flows.LoginReply, error) {
			body := map[string]string{"email": email, "password": password}
			var resp struct {
				AccessToken string       `json:"access_token"`
				Admin       *profileJSON `json:"admin"`
				User        *profileJSON `json:"user"`
			}
			if err := c.do(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
				switch apiStatus(err) {
				case http.StatusBadRequest, http.StatusUnauthorized, http.StatusNotFound:
					return nil, errors.Join(ErrInvalidCredentials, err)
				}
				return nil, err
			}
			reply := &flows.LoginReply{Token: resp.AccessToken}
			if resp.Admin != nil {
				reply.Admin = resp.Admin.flowProfile()
			}
			if resp.User != nil {
				reply.User = resp.User.flowProfile()
			}
			return reply, nil
		},
		PeekToken:    c.peekToken,
		FetchProfile: c.fetchProfile,
		Save:         c.saveSession,
		MetricInc:    c.metricIncByIndex,
		EmitAudit:    c.flowAudit,
		Metrics: flows.LoginMetrics{
			Success: int(MetricLoginSuccess),
			Failure: int(MetricLoginFailure),
		},
		Events: flows.LoginEvents{
			Success: EventLoginSuccess,
			Failure: EventLoginFailure,
		},
		Errors: flows.LoginErrors{
			ClientNotReady:     ErrClientNotReady,
			TokenInvalid:       ErrTokenInvalid,
			ProfileUnavailable: ErrProfileUnavailable,
		},
	})
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Identity: identityFromProfile(*profile), Token: tok}, nil
}

// LogOut ends the session. The server call is best effort: local state
// is cleared even when the network call fails, and only a local storage
// failure surfaces as an error. Logging out while anonymous is a no-op.
func (c *Client) LogOut(ctx context.Context) error {
	if c == nil || !c.ready {
		return ErrClientNotReady
	}

	return flows.RunLogout(ctx, flows.LogoutDeps{
		CurrentSession: func() (int64, string, bool) {
			rec, ok := c.sessions.Current()
			return rec.UserID, rec.Role, ok
		},
		Post: func(ctx context.Context, role string) error {
			path := "/auth/logout"
			if role == string(RoleUser) {
				path = "/auth/user/logout"
			}
			return c.do(ctx, http.MethodPost, path, nil, nil)
		},
		Clear:     c.sessions.Clear,
		MetricInc: c.metricIncByIndex,
		EmitAudit: c.flowAudit,
		Metrics: flows.LogoutMetrics{
			Logout:       int(MetricLogout),
			ServerFailed: int(MetricLogoutServerFailed),
		},
		Events: flows.LogoutEvents{
			Logout:       EventLogout,
			ServerFailed: EventLogoutServerFailed,
		},
		Errors: flows.LogoutErrors{
			ClientNotReady: ErrClientNotReady,
		},
	})
}

// CurrentIdentity returns the identity of the active session. ok is
// false when anonymous. No expiry check happens here; pair it with
// IsAuthenticated when staleness matters.
func (c *Client) CurrentIdentity() (Identity, bool) {
	if c == nil || !c.ready {
		return Identity{}, false
	}
	rec, ok := c.sessions.Current()
	if !ok {
		return Identity{}, false
	}
	return Identity{
		ID:        rec.UserID,
		FirstName: rec.FirstName,
		LastName:  rec.LastName,
		Email:     rec.Email,
		Role:      Role(rec.Role),
	}, true
}

// IsAuthenticated reports whether a session exists and its token has
// not expired locally. An expired or unreadable token clears the
// session as a side effect, so the next read is anonymous.
func (c *Client) IsAuthenticated(ctx context.Context) bool {
	if c == nil || !c.ready {
		return false
	}

	generation := c.sessions.Generation()
	rec, ok := c.sessions.Current()
	if !ok {
		return false
	}

	claims, err := c.inspector.Peek(rec.Token)
	if err == nil && !c.inspector.Expired(claims) {
		return true
	}

	if cleared, cerr := c.sessions.ClearGeneration(ctx, generation); cerr == nil && cleared {
		c.metrics.Inc(MetricSessionExpired)
		c.emitAudit(ctx, EventSessionExpired, false, rec.UserID, rec.Role, ErrSessionExpired, nil)
	}
	return false
}

// AuthorizeView decides whether the active session may open a view
// restricted to the given roles. An empty role list only requires
// authentication. The error distinguishes "not logged in" from "wrong
// role" so navigation can pick the right redirect.
func (c *Client) AuthorizeView(ctx context.Context, roles ...Role) error {
	if c == nil || !c.ready {
		return ErrClientNotReady
	}

	if !c.IsAuthenticated(ctx) {
		c.metrics.Inc(MetricGuardDeniedAnonymous)
		c.emitAudit(ctx, EventGuardDenied, false, 0, "", ErrAnonymous, nil)
		return ErrAnonymous
	}

	identity, _ := c.CurrentIdentity()
	if len(roles) == 0 {
		c.metrics.Inc(MetricGuardAllowed)
		return nil
	}
	for _, role := range roles {
		if role == identity.Role {
			c.metrics.Inc(MetricGuardAllowed)
			return nil
		}
	}

	c.metrics.Inc(MetricGuardDeniedRole)
	c.emitAudit(ctx, EventGuardDenied, false, identity.ID, string(identity.Role), ErrRoleDenied, map[string]string{
		"role": string(identity.Role),
	})
	return ErrRoleDenied
}

func (c *Client) peekToken(tok string) (int64, string, error) {
	claims, err := c.inspector.Peek(tok)
	if err != nil {
		return 0, "", errors.Join(ErrTokenInvalid, err)
	}
	id, err := c.inspector.SubjectID(claims)
	if err != nil {
		return 0, "", errors.Join(ErrTokenInvalid, err)
	}
	roleClaim, err := c.inspector.Role(claims)
	if err != nil {
		return 0, "", errors.Join(ErrTokenInvalid, err)
	}
	role, err := ParseRole(roleClaim)
	if err != nil {
		return 0, "", errors.Join(ErrTokenInvalid, err)
	}
	return id, string(role), nil
}

// fetchProfile runs between login and session save, so the fresh token
// travels via context instead of the not-yet-populated session.
func (c *Client) fetchProfile(ctx context.Context, tok, role string, id int64) (*flows.Profile, error) {
	path := fmt.Sprintf("/user/%d", id)
	if role == string(RoleAdmin) {
		path = fmt.Sprintf("/admin/%d", id)
	}

	var profile profileJSON
	if err := c.do(withBearerToken(ctx, tok), http.MethodGet, path, nil, &profile); err != nil {
		return nil, err
	}
	return profile.flowProfile(), nil
}

func (c *Client) saveSession(ctx context.Context, tok string, p flows.Profile) error {
	return c.sessions.Set(ctx, session.Record{
		UserID:    p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Role:      p.Role,
		Token:     tok,
	})
}

func (c *Client) metricIncByIndex(id int) {
	c.metrics.Inc(MetricID(id))
}

func (c *Client) flowAudit(ctx context.Context, event string, success bool, userID int64, cause error, meta map[string]string) {
	role := ""
	if meta != nil {
		role = meta["role"]
	}
	c.emitAudit(ctx, event, success, userID, role, cause, meta)
}
