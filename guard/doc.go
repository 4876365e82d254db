// Package guard maps view authorization onto navigation decisions.
//
// A [Guard] asks the client whether the active session may open a view
// and turns the answer into either "proceed" or "redirect here": the
// login path when no session exists, the forbidden path when the role
// does not match. [Guard.Middleware] applies the same decision to an
// http.Handler chain for hosts that serve the console views themselves.
package guard
