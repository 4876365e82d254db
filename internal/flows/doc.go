// Package flows holds the auth flow logic behind the public client
// methods. Each flow receives its dependencies as plain functions so the
// decision logic stays testable without a real HTTP server or storage
// backend. Sentinel errors, metric IDs, and audit event names are passed
// in by the host package; this package never defines its own.
package flows
