package assess

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborwatch/route-risk/internal/model"
)

func TestMemoGetPut(t *testing.T) {
	clock := clockwork.NewFakeClock()
	m := NewMemo(time.Hour, clock)

	_, ok := m.Get("k")
	assert.False(t, ok)

	m.Put("k", &model.RouteAssessment{ID: "a-1", RiskScore: 4})
	got, ok := m.Get("k")
	require.True(t, ok)
	assert.Equal(t, "a-1", got.ID)
	assert.Equal(t, 4, got.RiskScore)
}

func TestMemoExpiry(t *testing.T) {
	clock := clockwork.NewFakeClock()
	m := NewMemo(time.Hour, clock)
	m.Put("k", &model.RouteAssessment{ID: "a-1"})

	clock.Advance(59 * time.Minute)
	_, ok := m.Get("k")
	assert.True(t, ok, "entry should survive inside the TTL")

	clock.Advance(2 * time.Minute)
	_, ok = m.Get("k")
	assert.False(t, ok, "entry past the TTL reads as absent")
	assert.Equal(t, 0, m.Len(), "expired entry is deleted on read")
}

func TestMemoExpiryIsLazy(t *testing.T) {
	clock := clockwork.NewFakeClock()
	m := NewMemo(time.Minute, clock)
	m.Put("k1", &model.RouteAssessment{ID: "a-1"})
	m.Put("k2", &model.RouteAssessment{ID: "a-2"})

	clock.Advance(2 * time.Minute)
	// No reads yet, so nothing has been evicted.
	assert.Equal(t, 2, m.Len())

	_, ok := m.Get("k1")
	assert.False(t, ok)
	assert.Equal(t, 1, m.Len())
}

func TestMemoPutReplaces(t *testing.T) {
	clock := clockwork.NewFakeClock()
	m := NewMemo(time.Hour, clock)
	m.Put("k", &model.RouteAssessment{ID: "old"})
	m.Put("k", &model.RouteAssessment{ID: "new"})

	got, ok := m.Get("k")
	require.True(t, ok)
	assert.Equal(t, "new", got.ID)
}

func TestMemoReturnsCopy(t *testing.T) {
	clock := clockwork.NewFakeClock()
	m := NewMemo(time.Hour, clock)
	m.Put("k", &model.RouteAssessment{ID: "a-1", RiskScore: 3})

	first, ok := m.Get("k")
	require.True(t, ok)
	first.RiskScore = 9

	second, ok := m.Get("k")
	require.True(t, ok)
	assert.Equal(t, 3, second.RiskScore, "callers must not mutate the memoized value")
}

func TestMemoDefaults(t *testing.T) {
	m := NewMemo(0, nil)
	assert.Equal(t, DefaultMemoTTL, m.ttl)
	assert.NotNil(t, m.clock)
}
