package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the HTTP-only cookie carrying the session token.
const SessionCookieName = "auth_token"

// ErrInvalidToken covers every rejection: structural corruption, signature
// mismatch and expiry. Callers must not learn which one it was.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenCodec issues and verifies the signed session tokens. Tokens are
// stateless bearer credentials; there is no server-side revocation, and
// rotating the secret invalidates every outstanding session.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// Issue creates a token for userID that expires after the configured TTL.
func (c *TokenCodec) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"iat":     now.Unix(),
		"exp":     now.Add(c.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Verify checks signature integrity and expiry and returns the embedded
// user ID. The codec never partially trusts a token.
func (c *TokenCodec) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", ErrInvalidToken
	}
	return userID, nil
}
