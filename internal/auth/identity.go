package auth

import "github.com/heartmarshall/qa-moderation/internal/domain"

// Identity is the caller carried by a validated token. The service performs
// no authentication of its own; it trusts whoever signed the token.
type Identity struct {
	Username string
	Role     domain.Role
}
