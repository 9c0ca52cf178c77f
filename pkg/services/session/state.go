package session

import (
	"crypto/subtle"
	"errors"
	"strings"
	"sync"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

const (
	DemoEmail    = "admin@example.com"
	DemoPassword = "password"
)

// State is the process-wide authentication flag. Subscribers are notified synchronously,
// in subscription order, after every change.
type State interface {
	Authenticated() bool
	SignIn(email, password string) error
	SignOut()
	Set(authenticated bool)
	Subscribe(fn func(authenticated bool)) (unsubscribe func())
}

type subscriber struct {
	id int
	fn func(bool)
}

type state struct {
	mu            sync.RWMutex
	authenticated bool
	nextID        int
	subscribers   []subscriber
}

func NewState() State {
	return &state{}
}

func (s *state) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

func (s *state) SignIn(email, password string) error {
	emailOK := strings.EqualFold(strings.TrimSpace(email), DemoEmail)
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(DemoPassword)) == 1
	if !emailOK || !passwordOK {
		return ErrInvalidCredentials
	}
	s.Set(true)
	return nil
}

func (s *state) SignOut() {
	s.Set(false)
}

func (s *state) Set(authenticated bool) {
	s.mu.Lock()
	changed := s.authenticated != authenticated
	s.authenticated = authenticated
	subs := append([]subscriber(nil), s.subscribers...)
	s.mu.Unlock()

	if !changed {
		return
	}
	for _, sub := range subs {
		sub.fn(authenticated)
	}
}

// Subscribe registers fn and returns a func removing it. Unsubscribing twice is a no-op.
func (s *state) Subscribe(fn func(bool)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}
