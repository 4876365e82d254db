// Package goConsole is the client SDK for the Rooeel admin console API:
// session persistence, authentication, role-gated navigation, and typed
// resource access over one authenticated HTTP transport.
//
// The package is designed for long-lived host applications: Client
// methods are safe to call from multiple goroutines after initialization
// through [Builder.Build].
//
// # Architecture boundaries
//
// goConsole is the public surface. It exposes [Client], [Builder],
// [Config], and value types (Identity, MetricsSnapshot, AuditEvent,
// resource models). Flow orchestration lives under internal/ and is
// never exported; session persistence and token inspection live in the
// session and token sub-packages.
//
// # What this package must NOT do
//
//   - Verify token signatures or decide authorization locally. The
//     server is the authority; the client only checks expiry and reads
//     claims to finish a login.
//   - Let the in-memory session and its persisted mirror drift apart.
//     Every mutation goes through the session manager, which writes
//     storage first.
//   - Leave a session half-cleared after a 401. Invalidation is atomic
//     and fires its side effects exactly once per session generation.
package goConsole
