package flows

import "context"

// SignupReply is the decoded signup response. The endpoint only creates
// admin accounts, so the profile is always tagged as admin.
type SignupReply struct {
	Token string
	Admin *Profile
}

// SignupMetrics carries metric IDs used by the signup flow.
type SignupMetrics struct {
	Success int
	Failure int
}

// SignupEvents carries audit event names used by the signup flow.
type SignupEvents struct {
	Success string
	Failure string
}

// SignupErrors carries host-level sentinel errors used by the signup flow.
type SignupErrors struct {
	ClientNotReady     error
	TokenInvalid       error
	ProfileUnavailable error
}

// SignupDeps captures signup dependencies.
type SignupDeps struct {
	Post func(context.Context) (*SignupReply, error)
	Save func(ctx context.Context, token string, p Profile) error

	MetricInc func(int)
	EmitAudit func(ctx context.Context, event string, success bool, userID int64, cause error, meta map[string]string)

	Metrics SignupMetrics
	Events  SignupEvents
	Errors  SignupErrors
}

// RunSignup executes the signup flow and persists the fresh session.
// The stored role is always admin regardless of what the profile body
// claims; the endpoint cannot create anything else.
func RunSignup(ctx context.Context, deps SignupDeps) (*Profile, string, error) {
	if deps.MetricInc == nil {
		deps.MetricInc = func(int) {}
	}
	if deps.EmitAudit == nil {
		deps.EmitAudit = func(context.Context, string, bool, int64, error, map[string]string) {}
	}
	if deps.Post == nil || deps.Save == nil {
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
	if reply.Admin == nil {
		deps.MetricInc(deps.Metrics.Failure)
		deps.EmitAudit(ctx, deps.Events.Failure, false, 0, deps.Errors.ProfileUnavailable, map[string]string{
			"reason": "missing_admin_profile",
		})
		return nil, "", deps.Errors.ProfileUnavailable
	}

	profile := reply.Admin
	profile.Role = "admin"

	if err := deps.Save(ctx, reply.Token, *profile); err != nil {
		deps.MetricInc(deps.Metrics.Failure)
		deps.EmitAudit(ctx, deps.Events.Failure, false, profile.ID, err, map[string]string{
			"reason": "session_save_failed",
		})
		return nil, "", err
	}

	deps.MetricInc(deps.Metrics.Success)
	deps.EmitAudit(ctx, deps.Events.Success, true, profile.ID, nil, nil)
	return profile, reply.Token, nil
}
