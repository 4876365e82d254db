package internaldefs

import (
	goConsole "github.com/MrEthical07/goConsole"
)

// CounterDef defines a public type used by goConsole APIs.
//
// CounterDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   goConsole.MetricID
	Name string
	Help string
}

// HistogramDef defines a public type used by goConsole APIs.
//
// HistogramDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type HistogramDef struct {
	ID   goConsole.MetricID
	Name string
	Help string
}

// CounterDefs is an exported constant or variable used by the console client.
var CounterDefs = []CounterDef{
	{ID: goConsole.MetricSignupSuccess, Name: "goconsole_signup_success_total", Help: "Successful signups."},
	{ID: goConsole.MetricSignupFailure, Name: "goconsole_signup_failure_total", Help: "Failed signups."},
	{ID: goConsole.MetricLoginSuccess, Name: "goconsole_login_success_total", Help: "Successful logins."},
	{ID: goConsole.MetricLoginFailure, Name: "goconsole_login_failure_total", Help: "Failed logins."},
	{ID: goConsole.MetricLogout, Name: "goconsole_logout_total", Help: "Completed logouts."},
	{ID: goConsole.MetricLogoutServerFailed, Name: "goconsole_logout_server_failed_total", Help: "Logouts whose server call failed and were completed locally."},
	{ID: goConsole.MetricSessionRestored, Name: "goconsole_session_restored_total", Help: "Sessions restored from storage at startup."},
	{ID: goConsole.MetricSessionExpired, Name: "goconsole_session_expired_total", Help: "Sessions cleared by the local expiry check."},
	{ID: goConsole.MetricSessionInvalidated, Name: "goconsole_session_invalidated_total", Help: "Sessions cleared after a server 401."},
	{ID: goConsole.MetricGuardAllowed, Name: "goconsole_guard_allowed_total", Help: "View authorizations granted."},
	{ID: goConsole.MetricGuardDeniedAnonymous, Name: "goconsole_guard_denied_anonymous_total", Help: "View authorizations denied for missing session."},
	{ID: goConsole.MetricGuardDeniedRole, Name: "goconsole_guard_denied_role_total", Help: "View authorizations denied for wrong role."},
	{ID: goConsole.MetricRequestFailure, Name: "goconsole_request_failure_total", Help: "API requests that failed at transport level or answered an error status."},
}

// HistogramDefs is an exported constant or variable used by the console client.
var HistogramDefs = []HistogramDef{
	{ID: goConsole.MetricRequestLatency, Name: "goconsole_request_latency_seconds", Help: "API request latency histogram."},
}

// HistogramBounds is an exported constant or variable used by the console client.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"+Inf",
}

// HistogramBoundSuffix is an exported constant or variable used by the console client.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"inf",
}

// NormalizeBuckets describes the normalizebuckets operation and its observable behavior.
//
// NormalizeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets describes the cumulativebuckets operation and its observable behavior.
//
// CumulativeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
