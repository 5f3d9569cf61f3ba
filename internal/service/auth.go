package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Kavitha8494/ca/internal/config"
	"github.com/Kavitha8494/ca/internal/repository"
)

// AuthService handles back-office authentication: password verification and
// the signed session token carried in a cookie.
type AuthService interface {
	// Login verifies the credentials and returns a signed session token.
	// Wrong username and wrong password both yield ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, error)

	// Verify parses and validates a session token, returning the username it
	// was issued for.
	Verify(token string) (string, error)

	// EnsureAdmin creates the account or resets its password. The password is
	// always stored as a bcrypt hash.
	EnsureAdmin(ctx context.Context, username, password string) error
}

type authService struct {
	repo   repository.AdminRepository
	secret []byte
	expiry time.Duration
}

// NewAuthService constructs a new AuthService.
func NewAuthService(repo repository.AdminRepository, cfg config.AuthConfig) AuthService {
	return &authService{
		repo:   repo,
		secret: []byte(cfg.Secret),
		expiry: cfg.TokenExpiry,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	admin, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   admin.Username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

func (s *authService) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", errors.New("token has no subject")
	}
	return claims.Subject, nil
}

func (s *authService) EnsureAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return errors.New("username and password are required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if _, err := s.repo.Upsert(ctx, username, string(hash)); err != nil {
		return fmt.Errorf("save admin: %w", err)
	}
	return nil
}
