package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

// Identity is who the access token says the user is. Display only; the
// server is the one verifying signatures.
type Identity struct {
	Subject string
	Name    string
	Email   string
}

// IdentityFromToken extracts display identity from a JWT access token
// without verifying it. Returns false when the token is not a parseable
// JWT (e.g. an opaque token from an env override).
func IdentityFromToken(tok *oauth2.Token) (Identity, bool) {
	if tok == nil || tok.AccessToken == "" {
		return Identity{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok.AccessToken, claims); err != nil {
		return Identity{}, false
	}

	id := Identity{}
	if sub, err := claims.GetSubject(); err == nil {
		id.Subject = sub
	}
	if name, ok := claims["name"].(string); ok {
		id.Name = name
	}
	if email, ok := claims["email"].(string); ok {
		id.Email = email
	}
	return id, id.Subject != "" || id.Name != "" || id.Email != ""
}

// DisplayName returns the best label available for the user.
func (i Identity) DisplayName() string {
	switch {
	case i.Name != "":
		return i.Name
	case i.Email != "":
		return i.Email
	default:
		return i.Subject
	}
}
