package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTParams are the checks applied when verifying a token.
type JWTParams struct {
	SignKey  string
	Issuer   string
	Audience string
	// Now overrides the verification clock. Nil means time.Now.
	Now func() time.Time
}

// SignJWT signs claims with HMAC-SHA256.
//
// Example usage:
//
//	signed, err := utils.SignJWT(&models.SessionClaims{...}, "secret")
func SignJWT(claims jwt.Claims, signKey string) (string, error) {
	if signKey == "" {
		return "", errors.New("invalid params for generating JWT Token")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during singing JWT token: %w", err)
	}
	return signed, nil
}

// ParseJWT verifies tokenString and decodes it into claims.
//
// Validation includes:
//   - HS256 signature using params.SignKey (other algorithms are rejected)
//   - issuer (iss) and audience (aud) equality
//   - a required, unexpired expiration (exp)
func ParseJWT(tokenString string, claims jwt.Claims, params JWTParams) error {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(params.Issuer),
		jwt.WithAudience(params.Audience),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	}
	if params.Now != nil {
		opts = append(opts, jwt.WithTimeFunc(params.Now))
	}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(params.SignKey), nil
	}, opts...)
	if err != nil {
		return fmt.Errorf("error occurred validating and parsing token: %w", err)
	}
	return nil
}
