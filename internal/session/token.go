package session

import (
	"fmt"
	"time"

	"github.com/Sharmaisbatman/AcctFlow/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// TokenSigner issues and verifies HS256 session tokens. The token is
// the Go rendition of a signed session cookie: it carries only the
// session id, no identity.
type TokenSigner struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenSigner creates a signer with the given HMAC secret and token
// lifetime.
func NewTokenSigner(secret string, ttl time.Duration) *TokenSigner {
	return &TokenSigner{secret: []byte(secret), ttl: ttl}
}

// SessionClaims are the custom claims carried by a session token.
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Sign issues a token for the session id.
func (s *TokenSigner) Sign(sessionID string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Parse verifies a token and returns the session id it carries.
func (s *TokenSigner) Parse(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", &domain.ErrUnauthorized{Message: "invalid session token"}
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return "", &domain.ErrUnauthorized{Message: "invalid session token"}
	}
	return claims.SessionID, nil
}
