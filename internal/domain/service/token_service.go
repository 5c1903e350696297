// Package service defines the domain-facing ports implemented by the infra
// layer: token signing and event publishing.
package service

import "time"

// Claims is the identity carried by a validated token. Tokens are
// tamper-evident and verifiable without a database round trip.
type Claims struct {
	UserID     int64  // Numeric user id from the "sub" claim.
	LineUserID string // External provider id.
	IssuedAt   time.Time
	ExpiresAt  time.Time
}

// TokenService defines the interface for issuing and validating the signed,
// time-limited identity tokens used by the authentication middleware and the
// login flow. Implementations are stateless: validity is purely a function of
// signature and expiry.
type TokenService interface {
	// Issue produces a signed token embedding the user identity, issued now
	// and expiring after the configured lifetime.
	Issue(userID int64, lineUserID string) (string, error)

	// Validate verifies signature integrity and expiry and returns the
	// embedded identity. Failures are the typed token errors from the domain
	// errors package; any failure is terminal for the request.
	Validate(token string) (*Claims, error)
}
