// Package auth implements the credential and token handling used by the
// vowvenues API.
//
// Passwords are never stored. A registration derives a 64 byte key from the
// plaintext using scrypt and a random per-user salt, and stores the pair as
// "<hashHex>.<saltHex>". Verification re-derives the key with the stored
// salt and compares the two in constant time, so a malformed or truncated
// stored credential can only ever fail the comparison, never bypass it.
//
// Sessions are stateless bearer tokens: an HS256 signed claims object
// carrying the user id and username with a 7 day expiry. There is no
// server-side revocation, losing the token is the only way to log out.
//
// The signing secret is read from the environment exactly once and scrubbed
// from the process environment afterwards. A missing secret is a startup
// failure, there is no fallback value.
package auth
