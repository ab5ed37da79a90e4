package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"projecthub/internal/core/domain"
	"projecthub/internal/core/ports"
	"projecthub/pkg/clock"
)

var ErrInvalidToken = errors.New("invalid token")

// JWTManager issues and verifies HS256 tokens whose subject is the user id.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

var (
	_ ports.TokenIssuer   = (*JWTManager)(nil)
	_ ports.TokenVerifier = (*JWTManager)(nil)
)

func NewJWTManager(secret string, ttl time.Duration, clk clock.Clock) *JWTManager {
	return &JWTManager{secret: []byte(secret), ttl: ttl, clock: clk}
}

func (m *JWTManager) Issue(id domain.UserID) (string, error) {
	now := m.clock.Now()
	claims := jwt.RegisteredClaims{
		Subject:   string(id),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *JWTManager) Verify(tokenString string) (domain.UserID, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithTimeFunc(m.clock.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return domain.UserID(claims.Subject), nil
}
