// Package auth provides mock accounts and in-memory sessions
package auth

import (
	"crypto/subtle"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/umputun/hnscope/pkg/domain"
)

// ErrInvalidCredentials is returned for unknown user or wrong password
var ErrInvalidCredentials = errors.New("invalid username or password")

// Account is a mock account allowed to log in
type Account struct {
	Username string
	Password string
	Beta     bool
	Company  string
}

// Users checks credentials against a fixed set of accounts
type Users struct {
	accounts map[string]Account
	order    []string
}

// NewUsers makes Users from accounts, later duplicates replace earlier ones
func NewUsers(accounts []Account) *Users {
	res := &Users{accounts: make(map[string]Account, len(accounts))}
	for _, a := range accounts {
		if _, ok := res.accounts[a.Username]; !ok {
			res.order = append(res.order, a.Username)
		}
		res.accounts[a.Username] = a
	}
	return res
}

// Authenticate returns the user for valid credentials
func (u *Users) Authenticate(username, password string) (domain.User, error) {
	a, ok := u.accounts[username]
	if !ok || subtle.ConstantTimeCompare([]byte(a.Password), []byte(password)) != 1 {
		return domain.User{}, ErrInvalidCredentials
	}
	return domain.User{Username: a.Username, Beta: a.Beta, Company: a.Company}, nil
}

// Lookup returns the account by name, used to prefill the login form
func (u *Users) Lookup(username string) (Account, bool) {
	a, ok := u.accounts[username]
	return a, ok
}

// Accounts returns all accounts in configuration order
func (u *Users) Accounts() []Account {
	res := make([]Account, 0, len(u.order))
	for _, name := range u.order {
		res = append(res, u.accounts[name])
	}
	return res
}

type session struct {
	user    domain.User
	expires time.Time
}

// Sessions keeps logged in users in memory, keyed by random token
type Sessions struct {
	ttl time.Duration
	now func() time.Time

	mu       sync.Mutex
	sessions map[string]session
}

// NewSessions makes an empty session store, ttl 0 means sessions never expire
func NewSessions(ttl time.Duration) *Sessions {
	return &Sessions{ttl: ttl, now: time.Now, sessions: map[string]session{}}
}

// Create starts a session for the user and returns its token
func (s *Sessions) Create(user domain.User) string {
	token := uuid.NewString()
	var expires time.Time
	if s.ttl > 0 {
		expires = s.now().Add(s.ttl)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = session{user: user, expires: expires}
	return token
}

// Get returns the user of a live session, expired sessions are removed
func (s *Sessions) Get(token string) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return domain.User{}, false
	}
	if !sess.expires.IsZero() && s.now().After(sess.expires) {
		delete(s.sessions, token)
		return domain.User{}, false
	}
	return sess.user, true
}

// Delete drops the session
func (s *Sessions) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// Len returns the number of stored sessions
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
