package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrBadAdminKey  = errors.New("invalid admin key")
)

// Service issues and validates the bearer tokens that gate dataset
// mutation. There is no user store: a single operator credential (the admin
// API key) is exchanged for a short-lived token.
type Service struct {
	jwtSecret   []byte
	adminAPIKey string
	tokenTTL    time.Duration
}

// NewService creates a new authentication service
func NewService(jwtSecret, adminAPIKey string, tokenTTL time.Duration) *Service {
	return &Service{
		jwtSecret:   []byte(jwtSecret),
		adminAPIKey: adminAPIKey,
		tokenTTL:    tokenTTL,
	}
}

// IssueToken exchanges the operator admin key for a signed token.
func (s *Service) IssueToken(adminKey string) (string, time.Time, error) {
	if s.adminAPIKey == "" || adminKey != s.adminAPIKey {
		return "", time.Time{}, ErrBadAdminKey
	}

	expiresAt := time.Now().Add(s.tokenTTL)
	claims := jwt.MapClaims{
		"sub": "operator",
		"exp": expiresAt.Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// ValidateToken validates a bearer token, accepting an optional
// "Bearer " prefix.
func (s *Service) ValidateToken(tokenString string) error {
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrExpiredToken
		}
		return ErrInvalidToken
	}

	if !token.Valid {
		return ErrInvalidToken
	}

	return nil
}
