package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskhive/task-api/internal/core/domain"
)

const defaultTokenTTL = time.Hour

// JWTSigner implements ports.TokenSigner using HS256 JWTs. The secret is
// injected once at construction and is read-only afterwards, so the signer is
// safe to share across request handlers.
type JWTSigner struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTSigner returns a signer for the given secret. An empty secret is a
// configuration error: the service must fail closed instead of issuing
// tokens signed with a default key.
func NewJWTSigner(secret string, ttl time.Duration) (*JWTSigner, error) {
	if secret == "" {
		return nil, errors.New("auth: signing secret must not be empty")
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &JWTSigner{secret: []byte(secret), ttl: ttl}, nil
}

// Issue produces a signed token carrying the user id, valid for the
// configured TTL.
func (s *JWTSigner) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":  userID,
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates token, returning the embedded user id.
func (s *JWTSigner) Verify(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrTokenInvalid
	}

	id, ok := claims["id"].(string)
	if !ok || id == "" {
		return "", domain.ErrTokenInvalid
	}
	return id, nil
}
