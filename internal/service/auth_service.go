package service

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const operatorSubject = "operator"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

type AuthConfig struct {
	// PasswordHash is a bcrypt hash and wins over Password when both are set.
	Password     string
	PasswordHash string
	Secret       string
	TTL          time.Duration
}

type AuthService interface {
	Login(password string) (token string, expiresAt time.Time, err error)
	Verify(token string) (*jwt.RegisteredClaims, error)
}

type authService struct {
	cfg AuthConfig
	now func() time.Time
}

func NewAuthService(cfg AuthConfig) AuthService {
	return &authService{cfg: cfg, now: time.Now}
}

func (s *authService) Login(password string) (string, time.Time, error) {
	if !s.checkPassword(password) {
		return "", time.Time{}, ErrInvalidCredentials
	}

	now := s.now()
	expiresAt := now.Add(s.cfg.TTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   operatorSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})

	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

func (s *authService) Verify(token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte(s.cfg.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithSubject(operatorSubject),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims, nil
}

func (s *authService) checkPassword(password string) bool {
	if password == "" {
		return false
	}
	if s.cfg.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(password)) == nil
	}
	if s.cfg.Password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(s.cfg.Password), []byte(password)) == 1
}
