package session

import (
	"fmt"
	"testing"
	"time"
)

// fakeClock is a manually advanced clock for deterministic TTL tests.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestStoreGetOrCreate(t *testing.T) {
	clock := newFakeClock()
	st := NewStore(StoreConfig{MaxSessions: 10, Timeout: time.Hour, Now: clock.Now})

	s1 := st.GetOrCreate("alice")
	if s1 == nil {
		t.Fatal("expected session")
	}
	if s1.UserID != "alice" {
		t.Errorf("UserID = %q, want alice", s1.UserID)
	}
	if got, ok := s1.LastResult(); ok {
		t.Errorf("fresh session has LastResult %v", got)
	}
	if s1.HistoryLen() != 0 {
		t.Errorf("fresh session has %d history turns", s1.HistoryLen())
	}

	s2 := st.GetOrCreate("alice")
	if s1 != s2 {
		t.Error("same key returned a different session")
	}
	if st.Len() != 1 {
		t.Errorf("Len = %d, want 1", st.Len())
	}
}

func TestStoreSessionIsolation(t *testing.T) {
	clock := newFakeClock()
	st := NewStore(StoreConfig{MaxSessions: 10, Timeout: time.Hour, Now: clock.Now})

	alice := st.GetOrCreate("alice")
	bob := st.GetOrCreate("bob")

	alice.RecordCalculation("5 + 10", 15)
	alice.AppendTurn("user", "what is 5 + 10")

	if _, ok := bob.LastResult(); ok {
		t.Error("bob sees alice's running total")
	}
	if bob.HistoryLen() != 0 {
		t.Error("bob sees alice's history")
	}
	if got, _ := alice.LastResult(); got != 15 {
		t.Errorf("alice LastResult = %v, want 15", got)
	}
}

func TestStoreTTLEviction(t *testing.T) {
	clock := newFakeClock()
	var evicted []string
	st := NewStore(StoreConfig{
		MaxSessions: 10,
		Timeout:     time.Hour,
		OnEvict:     func(id string) { evicted = append(evicted, id) },
		Now:         clock.Now,
	})

	s := st.GetOrCreate("alice")
	s.AppendTurn("user", "hello")

	clock.Advance(time.Hour + time.Minute)
	if n := st.Sweep(); n != 1 {
		t.Fatalf("Sweep removed %d sessions, want 1", n)
	}
	if st.Contains("alice") {
		t.Error("expired session still present")
	}
	if len(evicted) != 1 || evicted[0] != "alice" {
		t.Errorf("OnEvict calls = %v, want [alice]", evicted)
	}

	// A new GetOrCreate for the same key returns a fresh session.
	fresh := st.GetOrCreate("alice")
	if fresh.HistoryLen() != 0 {
		t.Error("recreated session kept old history")
	}
}

func TestStoreSweepOnGetOrCreate(t *testing.T) {
	clock := newFakeClock()
	st := NewStore(StoreConfig{MaxSessions: 10, Timeout: time.Hour, Now: clock.Now})

	st.GetOrCreate("stale")
	clock.Advance(2 * time.Hour)

	// GetOrCreate for another key sweeps the stale one first.
	st.GetOrCreate("fresh")
	if st.Contains("stale") {
		t.Error("stale session survived GetOrCreate sweep")
	}
	if st.Len() != 1 {
		t.Errorf("Len = %d, want 1", st.Len())
	}
}

func TestStoreGetOrCreateRefreshesLastAccess(t *testing.T) {
	clock := newFakeClock()
	st := NewStore(StoreConfig{MaxSessions: 10, Timeout: time.Hour, Now: clock.Now})

	s := st.GetOrCreate("alice")

	clock.Advance(59 * time.Minute)
	st.GetOrCreate("alice")
	if got := s.LastAccess(); !got.Equal(clock.Now()) {
		t.Errorf("LastAccess = %v, want refreshed to %v", got, clock.Now())
	}

	// A sweep exactly one timeout after the refresh retains the session;
	// one tick later it does not.
	clock.Advance(time.Hour)
	if n := st.Sweep(); n != 0 {
		t.Fatalf("Sweep evicted %d sessions within the timeout", n)
	}
	clock.Advance(time.Second)
	if n := st.Sweep(); n != 1 {
		t.Errorf("Sweep = %d, want 1", n)
	}
}

func TestStoreConcurrentGetOrCreateAndSweep(t *testing.T) {
	// Real clock, tight timeout: the session is always touched within the
	// same GetOrCreate call that returns it, so a concurrent sweeper must
	// never catch it idle.
	st := NewStore(StoreConfig{MaxSessions: 4, Timeout: 50 * time.Millisecond})

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			st.Sweep()
		}
	}()

	for i := 0; i < 500; i++ {
		st.GetOrCreate("alice")
		if !st.Contains("alice") {
			t.Fatal("session evicted while its user was mid-request")
		}
	}
	<-done
}

func TestStoreCapacityEviction(t *testing.T) {
	clock := newFakeClock()
	var evicted []string
	st := NewStore(StoreConfig{
		MaxSessions: 3,
		Timeout:     24 * time.Hour,
		OnEvict:     func(id string) { evicted = append(evicted, id) },
		Now:         clock.Now,
	})

	for i := 0; i < 3; i++ {
		st.GetOrCreate(fmt.Sprintf("user%d", i))
		clock.Advance(time.Minute)
	}

	// user0 has the oldest last-access; inserting a fourth evicts it.
	st.GetOrCreate("user3")
	if st.Len() != 3 {
		t.Errorf("Len = %d, want 3", st.Len())
	}
	if st.Contains("user0") {
		t.Error("oldest session not evicted")
	}
	if len(evicted) != 1 || evicted[0] != "user0" {
		t.Errorf("OnEvict calls = %v, want [user0]", evicted)
	}

	// Refreshing an old session protects it from the next eviction.
	st.GetOrCreate("user1")
	clock.Advance(time.Minute)
	st.GetOrCreate("user4")
	if !st.Contains("user1") {
		t.Error("recently touched session was evicted")
	}
	if st.Contains("user2") {
		t.Error("expected user2 to be the eviction victim")
	}
}

func TestSessionHistoryBounded(t *testing.T) {
	clock := newFakeClock()
	st := NewStore(StoreConfig{MaxSessions: 10, Timeout: time.Hour, Now: clock.Now})
	s := st.GetOrCreate("alice")

	for i := 0; i < maxHistoryTurns+20; i++ {
		s.AppendTurn("user", fmt.Sprintf("turn %d", i))
	}
	if s.HistoryLen() != maxHistoryTurns {
		t.Errorf("history length = %d, want %d", s.HistoryLen(), maxHistoryTurns)
	}

	recent := s.RecentTurns(1)
	if len(recent) != 1 || recent[0].Content != fmt.Sprintf("turn %d", maxHistoryTurns+19) {
		t.Errorf("most recent turn = %+v", recent)
	}
}
