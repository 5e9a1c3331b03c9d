package service

import (
	"crosslink/internal/domain/entity"
)

// TokenService issues and validates the session tokens that carry an
// already-authenticated identity between the platform front-ends and this
// service. The platform's own cryptographic verification happens before a
// token is minted.
type TokenService interface {
	// IssueSessionToken creates a signed token for the identity.
	IssueSessionToken(identity entity.Identity) (string, error)

	// ParseSessionToken validates a token and returns the identity it carries.
	ParseSessionToken(token string) (entity.Identity, error)
}
