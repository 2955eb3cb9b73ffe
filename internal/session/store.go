// Package session owns the authentication token and the identity derived
// from it. The store trusts the token's claims only for UI gating; the
// backend re-authorizes every call, so nothing here is a security boundary.
package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/OmarT94/Webshop/internal/keystore"
)

const (
	keyToken     = "token"
	keyEmail     = "tokenEmail"
	keyFirstName = "firstName"
	keyLastName  = "lastName"
)

const adminRole = "ROLE_ADMIN"

var ErrMissingIdentity = errors.New("token carries no identity claim")

type tokenClaims struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// identity returns the email the token identifies, preferring the email
// claim and falling back to the subject.
func (c *tokenClaims) identity() string {
	if c.Email != "" {
		return c.Email
	}
	return c.Subject
}

// Store is one user's session. Instances are injected, never shared as a
// package singleton, so tests can run isolated sessions side by side.
type Store struct {
	keys keystore.Store
	log  zerolog.Logger

	mu        sync.RWMutex
	token     string
	email     string
	firstName string
	lastName  string
	isAdmin   bool
}

func NewStore(keys keystore.Store, log zerolog.Logger) *Store {
	return &Store{keys: keys, log: log}
}

// SetToken decodes token and, on success, persists it together with the
// derived identity and updates in-memory state. A token that does not decode
// or carries no identity leaves the store exactly as it was.
func (s *Store) SetToken(token string) error {
	claims, err := decode(token)
	if err != nil {
		s.log.Error().Err(err).Msg("rejected token")
		return err
	}

	if err := s.persist(token, claims); err != nil {
		s.log.Error().Err(err).Msg("failed to persist session")
		return err
	}

	s.apply(token, claims)
	s.log.Info().Str("email", claims.identity()).Bool("admin", s.IsAdmin()).Msg("session established")
	return nil
}

// Restore repopulates the session from durable storage. It reports whether a
// session was restored; a missing token or identity marker is a clean no-op.
// A stored token that no longer decodes wipes the stored session. Safe to
// call any number of times.
func (s *Store) Restore() (bool, error) {
	token, hasToken, err := s.keys.Get(keyToken)
	if err != nil {
		return false, fmt.Errorf("failed to read stored token: %w", err)
	}
	_, hasEmail, err := s.keys.Get(keyEmail)
	if err != nil {
		return false, fmt.Errorf("failed to read stored identity: %w", err)
	}
	if !hasToken || !hasEmail {
		return false, nil
	}

	claims, err := decode(token)
	if err != nil {
		s.log.Warn().Err(err).Msg("stored token no longer decodes, dropping session")
		if delErr := s.clearPersisted(); delErr != nil {
			return false, delErr
		}
		return false, nil
	}

	s.apply(token, claims)
	s.log.Info().Str("email", claims.identity()).Msg("session restored")
	return true, nil
}

// Logout clears durable storage and resets the session to the
// unauthenticated baseline.
func (s *Store) Logout() error {
	if err := s.clearPersisted(); err != nil {
		s.log.Error().Err(err).Msg("failed to clear persisted session")
		return err
	}

	s.mu.Lock()
	s.token = ""
	s.email = ""
	s.firstName = ""
	s.lastName = ""
	s.isAdmin = false
	s.mu.Unlock()

	s.log.Info().Msg("logged out")
	return nil
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) Email() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.email
}

func (s *Store) FirstName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.firstName
}

func (s *Store) LastName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastName
}

func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isAdmin
}

func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// decode extracts the claims without verifying the signature: the client
// holds no key, and the backend validates the token on every request anyway.
func decode(token string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}
	if claims.identity() == "" {
		return nil, ErrMissingIdentity
	}
	return claims, nil
}

func (s *Store) persist(token string, claims *tokenClaims) error {
	pairs := map[string]string{
		keyToken:     token,
		keyEmail:     claims.identity(),
		keyFirstName: claims.FirstName,
		keyLastName:  claims.LastName,
	}
	for key, value := range pairs {
		if err := s.keys.Put(key, value); err != nil {
			return fmt.Errorf("failed to persist %s: %w", key, err)
		}
	}
	return nil
}

func (s *Store) clearPersisted() error {
	if err := s.keys.Delete(keyToken, keyEmail, keyFirstName, keyLastName); err != nil {
		return fmt.Errorf("failed to clear session keys: %w", err)
	}
	return nil
}

func (s *Store) apply(token string, claims *tokenClaims) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.email = claims.identity()
	s.firstName = claims.FirstName
	s.lastName = claims.LastName
	s.isAdmin = claims.Role == adminRole
}
