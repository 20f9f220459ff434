package assess

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/harborwatch/route-risk/internal/model"
)

// DefaultMemoTTL is how long a completed assessment stays reusable.
const DefaultMemoTTL = time.Hour

// Memo is an in-memory TTL map of completed assessments keyed by the
// normalized query tuple. Expiry is lazy: a read compares the entry
// timestamp against the TTL and treats an expired entry as absent. There is
// no background eviction.
type Memo struct {
	mu      sync.Mutex
	ttl     time.Duration
	clock   clockwork.Clock
	entries map[string]memoEntry
}

type memoEntry struct {
	assessment model.RouteAssessment
	storedAt   time.Time
}

// NewMemo builds a memo with the given TTL. A non-positive ttl falls back to
// DefaultMemoTTL.
func NewMemo(ttl time.Duration, clock clockwork.Clock) *Memo {
	if ttl <= 0 {
		ttl = DefaultMemoTTL
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Memo{
		ttl:     ttl,
		clock:   clock,
		entries: make(map[string]memoEntry),
	}
}

// Get returns the memoized assessment for key, or false if absent or
// expired. Expired entries are deleted on the way out.
func (m *Memo) Get(key string) (*model.RouteAssessment, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	if m.clock.Since(e.storedAt) >= m.ttl {
		delete(m.entries, key)
		return nil, false
	}
	out := e.assessment
	return &out, true
}

// Put stores a completed assessment under key, replacing any prior entry.
func (m *Memo) Put(key string, a *model.RouteAssessment) {
	if a == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = memoEntry{assessment: *a, storedAt: m.clock.Now()}
}

// Len reports the number of live and expired entries currently held.
func (m *Memo) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
