package memory

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/recitebot/internal/domain"
	"github.com/bnema/recitebot/internal/ports"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	DefaultMaxUsers = 10_000
	DefaultIdleTTL  = 24 * time.Hour
)

type userSession struct {
	mu    sync.Mutex
	state domain.SessionState
	// refs counts Do calls holding or waiting for mu; guarded by Store.mu.
	refs int
}

// Store keeps session state in process memory. Each user's state is guarded by
// its own mutex; users that stay idle for IdleTTL, or fall off the end of the
// MaxUsers LRU, start over from a fresh state. A session in use by Do is pinned
// and survives eviction until its last caller returns.
type Store struct {
	mu       sync.Mutex
	sessions *expirable.LRU[int64, *userSession]
	inUse    map[int64]*userSession
}

var _ ports.SessionStore = (*Store)(nil)

type Options struct {
	MaxUsers int
	IdleTTL  time.Duration
}

func NewStore(opts Options) *Store {
	if opts.MaxUsers <= 0 {
		opts.MaxUsers = DefaultMaxUsers
	}
	if opts.IdleTTL < 0 {
		opts.IdleTTL = DefaultIdleTTL
	}

	return &Store{
		sessions: expirable.NewLRU[int64, *userSession](opts.MaxUsers, nil, opts.IdleTTL),
		inUse:    make(map[int64]*userSession),
	}
}

func (s *Store) Do(ctx context.Context, userID int64, fn func(state *domain.SessionState) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	session := s.acquire(userID)
	defer s.release(userID, session)

	session.mu.Lock()
	defer session.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	return fn(&session.state)
}

// Len counts sessions held in the LRU plus pinned sessions it has evicted.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.sessions.Len()
	for userID := range s.inUse {
		if !s.sessions.Contains(userID) {
			n++
		}
	}
	return n
}

// Snapshot returns a copy of the user's state without creating one.
func (s *Store) Snapshot(userID int64) (domain.SessionState, bool) {
	s.mu.Lock()
	session, ok := s.inUse[userID]
	if !ok {
		session, ok = s.sessions.Peek(userID)
	}
	s.mu.Unlock()
	if !ok {
		return domain.SessionState{}, false
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	return session.state, true
}

func (s *Store) acquire(userID int64) *userSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.inUse[userID]
	if !ok {
		session, ok = s.sessions.Get(userID)
		if !ok {
			session = &userSession{state: domain.NewSessionState()}
		}
		s.inUse[userID] = session
	}
	session.refs++
	// Re-adding refreshes the idle deadline.
	s.sessions.Add(userID, session)

	return session
}

// release unpins session once its last caller is done and puts it back into
// the LRU in case it was evicted meanwhile.
func (s *Store) release(userID int64, session *userSession) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session.refs--
	if session.refs > 0 {
		return
	}
	delete(s.inUse, userID)
	s.sessions.Add(userID, session)
}
