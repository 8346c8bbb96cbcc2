package session

import (
	"sync"
	"time"
)

// StoreConfig configures the in-memory session table.
type StoreConfig struct {
	MaxSessions int
	Timeout     time.Duration

	// OnEvict runs for every session removed by sweep or capacity
	// eviction, so associated state (rate-limit windows) goes with it.
	OnEvict func(userID string)

	// Now overrides the clock in tests.
	Now func() time.Time
}

// Store is the keyed session table with TTL expiry and LRU-by-timestamp
// capacity eviction. GetOrCreate is the only path that creates or evicts
// sessions; it never fails, it self-heals by evicting.
type Store struct {
	mu          sync.Mutex
	sessions    map[string]*Session
	maxSessions int
	timeout     time.Duration
	onEvict     func(userID string)
	now         func() time.Time
}

// NewStore creates a session store.
func NewStore(cfg StoreConfig) *Store {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Store{
		sessions:    make(map[string]*Session),
		maxSessions: cfg.MaxSessions,
		timeout:     cfg.Timeout,
		onEvict:     cfg.OnEvict,
		now:         now,
	}
}

// GetOrCreate returns the session for userID, creating it if absent.
// Expired sessions are swept first; if the table is full and the key is
// new, the least-recently-used session is evicted to make room. The
// returned session's last-access time is always refreshed.
func (st *Store) GetOrCreate(userID string) *Session {
	now := st.now()

	st.mu.Lock()
	evicted := st.sweepLocked(now)

	s, ok := st.sessions[userID]
	if !ok {
		if len(st.sessions) >= st.maxSessions {
			if victim := st.oldestLocked(); victim != "" {
				delete(st.sessions, victim)
				evicted = append(evicted, victim)
			}
		}
		s = newSession(userID, now)
		st.sessions[userID] = s
	}
	// Refresh last-access before releasing the table lock, so a concurrent
	// sweep can never expire a session between lookup and touch.
	s.touch(now)
	st.mu.Unlock()

	st.notifyEvicted(evicted)
	return s
}

// Sweep removes all sessions idle longer than the timeout and returns how
// many were dropped.
func (st *Store) Sweep() int {
	st.mu.Lock()
	evicted := st.sweepLocked(st.now())
	st.mu.Unlock()

	st.notifyEvicted(evicted)
	return len(evicted)
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Contains reports whether a session exists for userID without touching it.
func (st *Store) Contains(userID string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	_, ok := st.sessions[userID]
	return ok
}

func (st *Store) sweepLocked(now time.Time) []string {
	var evicted []string
	for id, s := range st.sessions {
		if now.Sub(s.LastAccess()) > st.timeout {
			delete(st.sessions, id)
			evicted = append(evicted, id)
		}
	}
	return evicted
}

// oldestLocked picks the session with the oldest last-access time.
// Ties go to whichever of the oldest the map iteration reaches first.
func (st *Store) oldestLocked() string {
	var victim string
	var oldest time.Time
	for id, s := range st.sessions {
		at := s.LastAccess()
		if victim == "" || at.Before(oldest) {
			victim = id
			oldest = at
		}
	}
	return victim
}

func (st *Store) notifyEvicted(userIDs []string) {
	if st.onEvict == nil {
		return
	}
	for _, id := range userIDs {
		st.onEvict(id)
	}
}
