package flows

import "context"

// Profile is the flow-local identity shape.
type Profile struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Role      string
}

// LoginReply is the decoded login response. The server tags the profile
// with the account kind; at most one of Admin or User is set. Token-only
// replies carry neither.
type LoginReply struct {
	Token string
	Admin *Profile
	User  *Profile
}

// LoginMetrics carries metric IDs used by the login flow.
type LoginMetrics struct {
	Success int
	Failure int
}

// LoginEvents carries audit event names used by the login flow.
type LoginEvents struct {
	Success string
	Failure string
}

// LoginErrors carries host-level sentinel errors used by the login flow.
type LoginErrors struct {
	ClientNotReady     error
	TokenInvalid       error
	ProfileUnavailable error
}

// LoginDeps captures login dependencies.
type LoginDeps struct {
	Post         func(context.Context) (*LoginReply, error)
	PeekToken    func(token string) (id int64, role string, err error)
	FetchProfile func(ctx context.Context, token, role string, id int64) (*Profile, error)
	Save         func(ctx context.Context, token string, p Profile) error

	MetricInc func(int)
	EmitAudit func(ctx context.Context, event string, success bool, userID int64, cause error, meta map[string]string)

	Metrics LoginMetrics
	Events  LoginEvents
	Errors  LoginErrors
}

// RunLogin executes the login flow: call the endpoint, resolve the
// identity from whichever reply variant came back, and persist the
// session. The stored profile always carries the role the reply was
// tagged with; a token-only reply resolves the role from the token and
// fetches the matching profile.
func RunLogin(ctx context.Context, deps LoginDeps) (*Profile, string, error) {
	if deps.MetricInc == nil {
		deps.MetricInc = func(int) {}
	}
	if deps.EmitAudit == nil {
		deps.EmitAudit = func(context.Context, string, bool, int64, error, map[string]string) {}
	}
	if deps.Post == nil || deps.PeekToken == nil || deps.FetchProfile == nil || deps.Save == nil {
		return nil, "", deps.Errors.ClientNotReady
	}

	reply, err := deps.Post(ctx)
	if err != nil {
		deps.MetricInc(deps.Metrics.Failure)
		deps.EmitAudit(ctx, deps.Events.Failure, false, 0, err, nil)
		return nil, "", err
	}
	if reply == nil || reply.Token == "" {
		deps.MetricInc(deps.Metrics.Failure)
		deps.EmitAudit(ctx, deps.Events.Failure, false, 0, deps.Errors.TokenInvalid, map[string]string{
			"reason": "missing_access_token",
		})
		return nil, "", deps.Errors.TokenInvalid
	}

	var profile *Profile
	switch {
	case reply.Admin != nil:
		profile = reply.Admin
		profile.Role = "admin"
	case reply.User != nil:
		profile = reply.User
		profile.Role = "user"
	default:
		id, role, peekErr := deps.PeekToken(reply.Token)
		if peekErr != nil {
			deps.MetricInc(deps.Metrics.Failure)
			deps.EmitAudit(ctx, deps.Events.Failure, false, 0, peekErr, map[string]string{
				"reason": "token_claims_unusable",
			})
			return nil, "", deps.Errors.TokenInvalid
		}
		fetched, fetchErr := deps.FetchProfile(ctx, reply.Token, role, id)
		if fetchErr != nil {
			deps.MetricInc(deps.Metrics.Failure)
			deps.EmitAudit(ctx, deps.Events.Failure, false, id, fetchErr, map[string]string{
				"reason": "profile_fetch_failed",
			})
			return nil, "", deps.Errors.ProfileUnavailable
		}
		profile = fetched
		profile.Role = role
	}

	if err := deps.Save(ctx, reply.Token, *profile); err != nil {
		deps.MetricInc(deps.Metrics.Failure)
		deps.EmitAudit(ctx, deps.Events.Failure, false, profile.ID, err, map[string]string{
			"reason": "session_save_failed",
		})
		return nil, "", err
	}

	deps.MetricInc(deps.Metrics.Success)
	deps.EmitAudit(ctx, deps.Events.Success, true, profile.ID, nil, map[string]string{
		"role": profile.Role,
	})
	return profile, reply.Token, nil
}
