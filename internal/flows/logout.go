package flows

import "context"

// LogoutMetrics carries metric IDs used by the logout flow.
type LogoutMetrics struct {
	Logout       int
	ServerFailed int
}

// LogoutEvents carries audit event names used by the logout flow.
type LogoutEvents struct {
	Logout       string
	ServerFailed string
}

// LogoutErrors carries host-level sentinel errors used by the logout flow.
type LogoutErrors struct {
	ClientNotReady error
}

// LogoutDeps captures logout dependencies.
type LogoutDeps struct {
	CurrentSession func() (userID int64, role string, ok bool)
	Post           func(ctx context.Context, role string) error
	Clear          func(ctx context.Context) error

	MetricInc func(int)
	EmitAudit func(ctx context.Context, event string, success bool, userID int64, cause error, meta map[string]string)

	Metrics LogoutMetrics
	Events  LogoutEvents
	Errors  LogoutErrors
}

// RunLogout executes the logout flow. The server call is best effort;
// local state is cleared no matter how it went, and the only error the
// caller sees is a failure to clear local storage. Logout with no
// active session is a no-op.
func RunLogout(ctx context.Context, deps LogoutDeps) error {
	if deps.MetricInc == nil {
		deps.MetricInc = func(int) {}
	}
	if deps.EmitAudit == nil {
		deps.EmitAudit = func(context.Context, string, bool, int64, error, map[string]string) {}
	}
	if deps.CurrentSession == nil || deps.Post == nil || deps.Clear == nil {
		return deps.Errors.ClientNotReady
	}

	userID, role, ok := deps.CurrentSession()
	if ok {
		if err := deps.Post(ctx, role); err != nil {
			deps.MetricInc(deps.Metrics.ServerFailed)
			deps.EmitAudit(ctx, deps.Events.ServerFailed, false, userID, err, map[string]string{
				"role": role,
			})
		}
	}

	if err := deps.Clear(ctx); err != nil {
		return err
	}
	if ok {
		deps.MetricInc(deps.Metrics.Logout)
		deps.EmitAudit(ctx, deps.Events.Logout, true, userID, nil, map[string]string{
			"role": role,
		})
	}
	return nil
}
