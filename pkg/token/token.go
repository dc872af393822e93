package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Claims is the payload carried by a session token. Subject is the user's
// email. Role is embedded as a hint only; the auth middleware re-resolves the
// live role from the user record, so a stale claim never grants access.
type Claims struct {
	Email string
	Role  string
}

// Manager mints and verifies HS256-signed session tokens. Tokens are
// stateless: validity derives from signature and expiry alone, there is no
// server-side revocation list and no refresh mechanism.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// TTL reports the configured token lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Generate mints a signed token for the given identity, expiring after the
// configured TTL.
func (m *Manager) Generate(email, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  email,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(m.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Verify parses and validates a token string. Any signature mismatch,
// malformed payload or expired timestamp yields ErrInvalidToken.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	t, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !t.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	email, _ := mapClaims["sub"].(string)
	if email == "" {
		return nil, ErrInvalidToken
	}
	role, _ := mapClaims["role"].(string)

	return &Claims{Email: email, Role: role}, nil
}
