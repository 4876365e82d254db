// Package session owns the persisted login state of a goConsole client.
//
// A [Record] mirrors the authenticated identity and its bearer token. The
// [Manager] is the only writer: Set and Clear mutate memory and durable
// storage within the same call, so the two can never be observed out of
// sync. Storage backends implement the two-slot [Storage] contract (one
// slot for the raw token, one for the encoded identity) and must persist
// or remove both slots as a unit.
//
// Decoding is fail-closed: a corrupt or partially written record is treated
// as no session at all, never as an authenticated one.
package session
