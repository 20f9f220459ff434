package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborwatch/route-risk/internal/model"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	st, err := NewSQLite(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() }) //nolint:errcheck
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func testAssessment(id string, score int, prov model.Provenance, at time.Time) *model.RouteAssessment {
	return &model.RouteAssessment{
		ID:              id,
		RiskScore:       score,
		RiskDescription: "Moderate risk on a routine lane",
		Summary:         "No unusual activity beyond normal corridor traffic levels.",
		Departure: &model.LocationRecord{
			Key: "Shanghai", Name: "Port of Shanghai", Country: "China",
		},
		Destination: &model.LocationRecord{
			Key: "Rotterdam", Name: "Port of Rotterdam", Country: "Netherlands",
		},
		EstimatedTransitDays: 21,
		DistanceKm:           8930.5,
		Provenance:           prov,
		AssessedAt:           at,
	}
}

func TestSQLite_RecordAndGet(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	a := testAssessment("a-1", 6, model.ProvenanceAssessor, time.Now().UTC())
	require.NoError(t, st.Record(ctx, a))

	got, err := st.Get(ctx, "a-1")
	require.NoError(t, err)
	assert.Equal(t, 6, got.RiskScore)
	assert.Equal(t, model.ProvenanceAssessor, got.Provenance)
	assert.Equal(t, "Shanghai", got.Departure.Key)
	assert.Equal(t, 21, got.EstimatedTransitDays)
}

func TestSQLite_GetNotFound(t *testing.T) {
	st := newTestSQLiteStore(t)

	_, err := st.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrNotFound))
}

func TestSQLite_ListNewestFirst(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, st.Record(ctx, testAssessment("a-1", 3, model.ProvenanceAssessor, now.Add(-2*time.Hour))))
	require.NoError(t, st.Record(ctx, testAssessment("a-2", 7, model.ProvenanceFallback, now.Add(-1*time.Hour))))
	require.NoError(t, st.Record(ctx, testAssessment("a-3", 5, model.ProvenanceAssessor, now)))

	got, err := st.List(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "a-3", got[0].ID)
	assert.Equal(t, "a-1", got[2].ID)
}

func TestSQLite_ListFilters(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, st.Record(ctx, testAssessment("a-1", 3, model.ProvenanceAssessor, now.Add(-2*time.Hour))))
	require.NoError(t, st.Record(ctx, testAssessment("a-2", 7, model.ProvenanceFallback, now)))

	other := testAssessment("a-3", 4, model.ProvenanceAssessor, now.Add(-time.Minute))
	other.Departure = &model.LocationRecord{Key: "Singapore", Name: "Port of Singapore", Country: "Singapore"}
	require.NoError(t, st.Record(ctx, other))

	byProv, err := st.List(ctx, Filter{Provenance: model.ProvenanceFallback})
	require.NoError(t, err)
	require.Len(t, byProv, 1)
	assert.Equal(t, "a-2", byProv[0].ID)

	byPort, err := st.List(ctx, Filter{Port: "Singapore"})
	require.NoError(t, err)
	require.Len(t, byPort, 1)
	assert.Equal(t, "a-3", byPort[0].ID)

	since, err := st.List(ctx, Filter{Since: now.Add(-time.Hour)})
	require.NoError(t, err)
	assert.Len(t, since, 2)

	limited, err := st.List(ctx, Filter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "a-2", limited[0].ID)
}

func TestSQLite_ListTimestampTieOrder(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	// Identical timestamps order by insertion, newest insert first.
	require.NoError(t, st.Record(ctx, testAssessment("t-1", 3, model.ProvenanceAssessor, now)))
	require.NoError(t, st.Record(ctx, testAssessment("t-2", 5, model.ProvenanceAssessor, now)))
	require.NoError(t, st.Record(ctx, testAssessment("t-3", 7, model.ProvenanceAssessor, now)))

	got, err := st.List(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "t-3", got[0].ID)
	assert.Equal(t, "t-2", got[1].ID)
	assert.Equal(t, "t-1", got[2].ID)

	limited, err := st.List(ctx, Filter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "t-3", limited[0].ID)
}

func TestSQLite_CollectStats(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, st.Record(ctx, testAssessment("a-1", 2, model.ProvenanceAssessor, now)))
	require.NoError(t, st.Record(ctx, testAssessment("a-2", 8, model.ProvenanceFallback, now)))
	// Outside the lookback window.
	require.NoError(t, st.Record(ctx, testAssessment("a-3", 10, model.ProvenanceFallback, now.Add(-48*time.Hour))))

	stats, err := st.CollectStats(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.FallbackCount)
	assert.InDelta(t, 5.0, stats.AvgRiskScore, 0.001)
	assert.Equal(t, 8, stats.MaxRiskScore)
}

func TestSQLite_CollectStatsEmpty(t *testing.T) {
	st := newTestSQLiteStore(t)

	stats, err := st.CollectStats(context.Background(), time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0.0, stats.AvgRiskScore)
}

func TestSQLite_DeleteBefore(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, st.Record(ctx, testAssessment("a-1", 3, model.ProvenanceAssessor, now.Add(-72*time.Hour))))
	require.NoError(t, st.Record(ctx, testAssessment("a-2", 5, model.ProvenanceAssessor, now)))

	n, err := st.DeleteBefore(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = st.Get(ctx, "a-1")
	assert.True(t, eris.Is(err, ErrNotFound))

	got, err := st.Get(ctx, "a-2")
	require.NoError(t, err)
	assert.Equal(t, "a-2", got.ID)
}
