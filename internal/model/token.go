package model

import "time"

// TokenManager validates identity-provider session tokens. Generation is
// used by development tooling and tests.
type TokenManager interface {
	GenerateSessionToken(owner string, ttl time.Duration) (string, error)
	ParseSessionToken(token string) (string, error)
}
