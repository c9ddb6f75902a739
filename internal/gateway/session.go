// Package gateway is the Go client for the inventory API. Its transport
// transparently retries a 401 response once after exchanging the refresh
// token for a new access token, so callers never handle token expiry.
package gateway

import "sync"

// Session holds the token pair returned by a successful login.
type Session struct {
	AccessToken  string
	RefreshToken string
	Username     string
}

// sessionStore guards the current session for concurrent requests.
type sessionStore struct {
	mu      sync.RWMutex
	session Session
}

func (s *sessionStore) get() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.session
}

func (s *sessionStore) set(session Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = session
}

// setAccessToken swaps only the access token, keeping the refresh token.
func (s *sessionStore) setAccessToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.AccessToken = token
}

func (s *sessionStore) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = Session{}
}
