// Package token decodes bearer-token claims for client-side routing.
//
// Decoding is deliberately unverified: the gateway never holds the signing
// secret and never treats decoded claims as an authorization decision. The
// backend re-validates the token on every forwarded request; claims here
// only pick the dashboard a user lands on.
package token

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/smarthr/hr-gateway/internal/core/domain"
)

// Claims are the fields of the token payload the gateway cares about.
type Claims struct {
	Subject string
	Roles   []string
}

// Decode parses a compact three-segment token and extracts its claims
// without verifying the signature. It never panics: a token with the wrong
// segment count, a non-base64 payload, or a non-JSON payload yields
// domain.ErrInvalidToken.
func Decode(raw string) (Claims, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return Claims{}, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}

	out := Claims{}
	if sub, err := claims.GetSubject(); err == nil {
		out.Subject = sub
	}
	out.Roles = rolesFromClaims(claims)
	return out, nil
}

// rolesFromClaims reads the "roles" claim, accepting either a JSON array of
// strings or a single string value.
func rolesFromClaims(claims jwt.MapClaims) []string {
	switch v := claims["roles"].(type) {
	case []any:
		roles := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				roles = append(roles, s)
			}
		}
		return roles
	case []string:
		return v
	case string:
		return []string{v}
	default:
		return nil
	}
}
