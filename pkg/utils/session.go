package utils

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are the claims carried by the identity provider's session
// token (HS256, signed with the provider's JWT secret). The subject is the
// user id.
type SessionClaims struct {
	Email       string                 `json:"email"`
	AppMetadata map[string]interface{} `json:"app_metadata,omitempty"`
	jwt.RegisteredClaims
}

func (c *SessionClaims) UserID() string {
	return c.Subject
}

// ParseSessionToken verifies the session token signature and expiry.
func ParseSessionToken(tokenString string, secret []byte) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid session token")
	}

	return claims, nil
}
