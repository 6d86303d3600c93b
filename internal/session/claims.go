package session

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims holds the fields this client reads out of a session token.
type Claims struct {
	// UserID is the authenticated user's identifier (the JWT subject).
	UserID string
}

// DecodeClaims splits the token, base64url-decodes the payload segment, and
// parses it without verifying the signature. It returns false on any
// malformed input and never panics.
//
// This is an untrusted, client-side convenience for reading the user ID.
// It must never be used as an authorization check.
func DecodeClaims(token string) (Claims, bool) {
	parser := jwt.NewParser()

	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return Claims{}, false
	}

	id := subjectID(claims)
	if id == "" {
		return Claims{}, false
	}

	return Claims{UserID: id}, true
}

// subjectID extracts a user ID from the sub claim. Older server releases
// issued an object subject {"id": ..., "is_admin": ...}; newer ones a
// plain string.
func subjectID(claims jwt.MapClaims) string {
	sub, ok := claims["sub"]
	if !ok {
		return ""
	}

	switch v := sub.(type) {
	case string:
		return v
	case map[string]interface{}:
		if id, ok := v["id"].(string); ok {
			return id
		}
	}
	return ""
}
