package client

import (
	"context"
	"errors"
	"sync"
)

// errorMessage prefers the server's message over fallback.
func errorMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// AuthStore mirrors the signed-in user.
type AuthStore struct {
	api *Client

	mu      sync.RWMutex
	user    *User
	loading bool
	err     string
}

func NewAuthStore(api *Client) *AuthStore {
	return &AuthStore{api: api}
}

func (s *AuthStore) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *AuthStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

func (s *AuthStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the last failure message, or "".
func (s *AuthStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *AuthStore) ClearError() {
	s.mu.Lock()
	s.err = ""
	s.mu.Unlock()
}

func (s *AuthStore) Reset() {
	s.mu.Lock()
	s.user, s.loading, s.err = nil, false, ""
	s.mu.Unlock()
}

func (s *AuthStore) begin() {
	s.mu.Lock()
	s.loading, s.err = true, ""
	s.mu.Unlock()
}

// finish records the outcome of an auth call that yields a user.
func (s *AuthStore) finish(user *User, err error, fallback string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = errorMessage(err, fallback)
		return
	}
	s.user = user
}

// Login bootstraps the CSRF cookie before posting credentials.
func (s *AuthStore) Login(ctx context.Context, in Credentials) (*User, error) {
	s.begin()
	user, err := s.withCSRF(ctx, func() (*User, error) { return s.api.Login(ctx, in) })
	s.finish(user, err, "Login failed")
	return user, err
}

func (s *AuthStore) Register(ctx context.Context, in Registration) (*User, error) {
	s.begin()
	user, err := s.withCSRF(ctx, func() (*User, error) { return s.api.Register(ctx, in) })
	s.finish(user, err, "Registration failed")
	return user, err
}

func (s *AuthStore) withCSRF(ctx context.Context, call func() (*User, error)) (*User, error) {
	if err := s.api.CSRFCookie(ctx); err != nil {
		return nil, err
	}
	return call()
}

// Logout always forgets the local user, even when the server call fails.
func (s *AuthStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	err := s.api.Logout(ctx)

	s.mu.Lock()
	s.user, s.loading = nil, false
	s.mu.Unlock()
	return err
}

// FetchUser refreshes the user. Any failure signs the store out.
func (s *AuthStore) FetchUser(ctx context.Context) (*User, error) {
	s.begin()
	user, err := s.api.User(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = errorMessage(err, "Failed to fetch user")
		s.user = nil
		return nil, err
	}
	s.user = user
	return user, nil
}
