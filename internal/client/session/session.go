// Package session tracks who is logged in to the console. A Session is an
// explicit value handed to the screens that need it; the tables never read
// it. Changes are pushed to subscribers and persisted in the local metadata
// store, so the console can resume after a restart.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sync"

	"github.com/dmitrijs2005/hrconsole/internal/client/client"
	"github.com/dmitrijs2005/hrconsole/internal/client/models"
	"github.com/dmitrijs2005/hrconsole/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/hrconsole/internal/logging"
)

// Keys under which the session is persisted.
const (
	KeyCurrentUser     = "currentUser"
	KeyCurrentUserType = "currentUserType"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// Directory finds accounts by field equality.
type Directory interface {
	Find(ctx context.Context, query url.Values) ([]*models.Account, error)
}

type Session struct {
	admins Directory
	users  Directory
	store  metadata.Repository
	log    logging.Logger

	mu      sync.Mutex
	current *models.Account
	subs    map[uint64]func(*models.Account)
	nextSub uint64
}

func New(admins, users Directory, store metadata.Repository, log logging.Logger) *Session {
	return &Session{
		admins: admins,
		users:  users,
		store:  store,
		log:    log.With("module", "session"),
		subs:   make(map[uint64]func(*models.Account)),
	}
}

// Login looks the credentials up in the admin collection first and in the
// employee collection second. An unreachable store aborts the attempt.
func (s *Session) Login(ctx context.Context, username string, password []byte) (*models.Account, error) {
	q := url.Values{"username": {username}, "password": {string(password)}}

	acc, err := s.lookup(ctx, s.admins, q, models.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		if acc, err = s.lookup(ctx, s.users, q, models.RoleUser); err != nil {
			return nil, err
		}
	}
	if acc == nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.persist(ctx, acc); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	s.set(acc)

	s.log.Info(ctx, "logged in", "username", acc.Username, "role", acc.Role)
	return acc.Clone(), nil
}

func (s *Session) lookup(ctx context.Context, d Directory, q url.Values, role models.Role) (*models.Account, error) {
	found, err := d.Find(ctx, q)
	switch {
	case errors.Is(err, client.ErrUnavailable):
		return nil, err
	case err != nil:
		s.log.Warn(ctx, "account lookup failed", "role", role, "error", err)
		return nil, nil
	case len(found) == 0:
		return nil, nil
	}

	acc := found[0]
	acc.Role = role
	return acc, nil
}

// Logout forgets the current account locally and on disk.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx, KeyCurrentUser, KeyCurrentUserType); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.set(nil)
	return nil
}

// Restore loads a previously persisted session. It returns nil, nil when
// nobody was logged in.
func (s *Session) Restore(ctx context.Context) (*models.Account, error) {
	raw, found, err := s.store.Get(ctx, KeyCurrentUser)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	var acc models.Account
	if err := json.Unmarshal(raw, &acc); err != nil {
		return nil, fmt.Errorf("decode saved session: %w", err)
	}

	role, found, err := s.store.Get(ctx, KeyCurrentUserType)
	if err != nil {
		return nil, err
	}
	if found {
		acc.Role = models.Role(role)
	}

	s.set(&acc)
	return acc.Clone(), nil
}

// Current returns a copy of the logged-in account, or nil.
func (s *Session) Current() *models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

func (s *Session) Role() models.Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return models.RoleNone
	}
	return s.current.Role
}

// Subscribe calls fn with the current account right away and after every
// change until the returned cancel func is called.
func (s *Session) Subscribe(fn func(*models.Account)) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	current := s.current.Clone()
	s.mu.Unlock()

	fn(current)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

func (s *Session) set(acc *models.Account) {
	s.mu.Lock()
	s.current = acc
	subs := make([]func(*models.Account), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(acc.Clone())
	}
}

func (s *Session) persist(ctx context.Context, acc *models.Account) error {
	b, err := json.Marshal(acc)
	if err != nil {
		return err
	}
	return s.store.SetAll(ctx, map[string][]byte{
		KeyCurrentUser:     b,
		KeyCurrentUserType: []byte(acc.Role),
	})
}
