package users

import (
	"crypto/subtle"
	"net/http"
	"sync"

	"github.com/doorward/doorman-go/internal/basicauth"
)

// Store holds username/password pairs in memory. Lookups are safe for
// concurrent use alongside Put and Remove.
type Store struct {
	mu    sync.RWMutex
	users map[string]string
}

func NewStore(users map[string]string) *Store {
	m := make(map[string]string, len(users))
	for u, p := range users {
		m[u] = p
	}
	return &Store{users: m}
}

func (s *Store) Put(username, password string) {
	s.mu.Lock()
	s.users[username] = password
	s.mu.Unlock()
}

func (s *Store) Remove(username string) {
	s.mu.Lock()
	delete(s.users, username)
	s.mu.Unlock()
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// Validate reports whether the pair matches a stored user. The password
// comparison is constant-time.
func (s *Store) Validate(username, password string) bool {
	s.mu.RLock()
	want, ok := s.users[username]
	s.mu.RUnlock()
	if !ok {
		// burn a comparison so unknown users cost about the same
		subtle.ConstantTimeCompare([]byte(password), []byte(password))
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(want)) == 1
}

// Validator adapts the store to the filter's contract. Absent attempts are
// rejected; accepted requests carry the username on their context.
func (s *Store) Validator() basicauth.Validator {
	return func(r *http.Request, attempt basicauth.Attempt) (*http.Request, basicauth.Decision) {
		creds, ok := attempt.Credentials()
		if !ok {
			return r, basicauth.Unauthorized
		}
		if !s.Validate(creds.Username, creds.Password) {
			return r, basicauth.Unauthorized
		}
		return basicauth.WithUsername(r, creds.Username), basicauth.Authorized
	}
}
