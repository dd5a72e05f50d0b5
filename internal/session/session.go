// Package session is the client's stand-in for the browser's localStorage
// token slot: one bearer token persisted to a file, passed explicitly to
// every component that needs it instead of read ad hoc.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoSession    = errors.New("no active session")
	ErrExpiredToken = errors.New("token has expired")
)

// Claims is the subset of the backend's JWT claims the client reads.
// The token is parsed unverified since the backend is the authority; the
// client only peeks at identity and expiry to gate authenticated calls
// before issuing them.
type Claims struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// Store persists the session token to a file
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Token returns the stored token, or ErrNoSession when none is stored
func (s *Store) Token() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoSession
		}
		return "", fmt.Errorf("failed to read session token: %w", err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNoSession
	}
	return token, nil
}

// Save writes the token with owner-only permissions
func (s *Store) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to write session token: %w", err)
	}
	return nil
}

// Clear removes the stored token; clearing an absent token is not an error
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear session token: %w", err)
	}
	return nil
}

// Authenticated reports whether a non-expired token is stored
func (s *Store) Authenticated() bool {
	token, err := s.Token()
	if err != nil {
		return false
	}
	if _, err := Inspect(token); err != nil {
		// Opaque (non-JWT) tokens are still treated as a live session;
		// the backend decides whether they are valid.
		return !errors.Is(err, ErrExpiredToken)
	}
	return true
}

// Claims returns the claims of the stored token
func (s *Store) Claims() (*Claims, error) {
	token, err := s.Token()
	if err != nil {
		return nil, err
	}
	return Inspect(token)
}

// Inspect parses a JWT without verifying its signature and checks expiry
func Inspect(token string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return nil, ErrExpiredToken
	}
	return claims, nil
}
