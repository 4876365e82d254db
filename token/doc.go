// Package token inspects bearer tokens issued by the console API.
//
// The client never holds a signing key, so nothing here verifies a
// signature; the server remains the authority on token validity and
// answers 401 when it disagrees. What the client can and does check
// locally is the embedded expiry claim, plus the subject and role needed
// to finish a token-only login. Every ambiguous outcome (unparseable
// token, absent expiry, non-numeric subject) is reported as an error and
// callers treat it as "not authenticated".
package token
