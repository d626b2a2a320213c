// Package auth implements the credential check and the login token. The
// token is a signed identity claim, not a session: callers re-fetch the user
// by id on every request and a token stays valid until the client discards
// it (no expiry is set or checked).
package auth

import (
	"errors"
	"fmt"
	"time"

	"checktrack/internal/models"
	"checktrack/internal/services"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for unknown usernames and wrong
// passwords alike.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidToken is returned when a token cannot be parsed or its signature
// does not verify.
var ErrInvalidToken = errors.New("invalid token")

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type Service struct {
	users  *services.UserService
	secret []byte
}

func NewService(users *services.UserService, secret string) *Service {
	return &Service{users: users, secret: []byte(secret)}
}

// Authenticate checks username and password against the users collection. On
// success it stamps lastLogin on the user and returns the updated record
// together with a fresh token.
func (s *Service) Authenticate(username, password string) (models.User, string, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	updated, err := s.users.TouchLastLogin(user.ID)
	if err != nil {
		return models.User{}, "", fmt.Errorf("stamp last login: %w", err)
	}

	token, err := s.issueToken(updated)
	if err != nil {
		return models.User{}, "", err
	}
	return updated, token, nil
}

func (s *Service) issueToken(user models.User) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  user.ID,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	})
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ResolveToken verifies the token and returns the user id it was issued for.
func (s *Service) ResolveToken(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	c, ok := parsed.Claims.(*claims)
	if !ok || c.Subject == "" {
		return "", ErrInvalidToken
	}
	return c.Subject, nil
}
