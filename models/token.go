package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token audiences. A token signed for one audience is never accepted for the
// other, so a table QR token cannot be replayed as an admin session.
const (
	AudienceTable = "table"
	AudienceAdmin = "admin"
)

// TableClaims is the payload of a table token: a signed, expiring capability
// that authorizes actions on behalf of one table.
type TableClaims struct {
	TableID TableID `json:"tid"`
	jwt.RegisteredClaims
}

// SessionClaims is the payload of the admin session cookie.
type SessionClaims struct {
	jwt.RegisteredClaims
}

// TableToken is the verified, decoded form of a table token.
type TableToken struct {
	TableID   TableID   `json:"tableId"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`

	// SignedString is the compact JWS form. Empty for tokens obtained by
	// verification.
	SignedString string `json:"-"`
}

// Session is a verified admin session.
type Session struct {
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"-"`

	SignedString string `json:"-"`
}
