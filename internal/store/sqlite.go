package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/harborwatch/route-risk/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS assessments (
	id           TEXT PRIMARY KEY,
	departure    TEXT NOT NULL,
	destination  TEXT NOT NULL,
	risk_score   INTEGER NOT NULL,
	provenance   TEXT NOT NULL,
	transit_days INTEGER NOT NULL,
	distance_km  REAL NOT NULL,
	payload      TEXT NOT NULL,
	assessed_at  DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_assessments_assessed_at ON assessments(assessed_at);
CREATE INDEX IF NOT EXISTS idx_assessments_provenance ON assessments(provenance);
CREATE INDEX IF NOT EXISTS idx_assessments_departure ON assessments(departure);
CREATE INDEX IF NOT EXISTS idx_assessments_destination ON assessments(destination);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Record appends one completed assessment to the audit log.
func (s *SQLiteStore) Record(ctx context.Context, a *model.RouteAssessment) error {
	if a == nil {
		return eris.New("sqlite: nil assessment")
	}
	payload, err := json.Marshal(a)
	if err != nil {
		return eris.Wrap(err, "sqlite: marshal assessment")
	}

	dep, dest := "", ""
	if a.Departure != nil {
		dep = a.Departure.Key
	}
	if a.Destination != nil {
		dest = a.Destination.Key
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO assessments (id, departure, destination, risk_score, provenance, transit_days, distance_km, payload, assessed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, dep, dest, a.RiskScore, string(a.Provenance),
		a.EstimatedTransitDays, a.DistanceKm, string(payload), a.AssessedAt.UTC(),
	)
	return eris.Wrapf(err, "sqlite: insert assessment %s", a.ID)
}

// Get retrieves one assessment by ID.
func (s *SQLiteStore) Get(ctx context.Context, id string) (*model.RouteAssessment, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM assessments WHERE id = ?`, id,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, eris.Wrapf(ErrNotFound, "sqlite: %s", id)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: get assessment %s", id)
	}

	var a model.RouteAssessment
	if err := json.Unmarshal([]byte(payload), &a); err != nil {
		return nil, eris.Wrapf(err, "sqlite: decode assessment %s", id)
	}
	return &a, nil
}

// List returns audit entries matching the filter, newest first.
func (s *SQLiteStore) List(ctx context.Context, filter Filter) ([]model.RouteAssessment, error) {
	var (
		where []string
		args  []any
	)
	if filter.Provenance != "" {
		where = append(where, "provenance = ?")
		args = append(args, string(filter.Provenance))
	}
	if filter.Port != "" {
		where = append(where, "(departure = ? OR destination = ?)")
		args = append(args, filter.Port, filter.Port)
	}
	if !filter.Since.IsZero() {
		where = append(where, "assessed_at >= ?")
		args = append(args, filter.Since.UTC())
	}

	query := `SELECT payload FROM assessments`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	// rowid breaks timestamp ties so pagination is stable.
	query += " ORDER BY assessed_at DESC, rowid DESC"

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	query += " LIMIT ? OFFSET ?"
	args = append(args, limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list assessments")
	}
	defer rows.Close()

	var out []model.RouteAssessment
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan assessment")
		}
		var a model.RouteAssessment
		if err := json.Unmarshal([]byte(payload), &a); err != nil {
			return nil, eris.Wrap(err, "sqlite: decode assessment")
		}
		out = append(out, a)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: list assessments")
}

// CollectStats aggregates the audit log over the trailing lookback window.
func (s *SQLiteStore) CollectStats(ctx context.Context, lookback time.Duration) (*Stats, error) {
	cutoff := time.Now().UTC().Add(-lookback)

	var st Stats
	var avg sql.NullFloat64
	var max sql.NullInt64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN provenance = ? THEN 1 ELSE 0 END), 0),
		        AVG(risk_score),
		        MAX(risk_score)
		 FROM assessments WHERE assessed_at >= ?`,
		string(model.ProvenanceFallback), cutoff,
	).Scan(&st.Total, &st.FallbackCount, &avg, &max)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: collect stats")
	}
	st.AvgRiskScore = avg.Float64
	st.MaxRiskScore = int(max.Int64)
	return &st, nil
}

// DeleteBefore prunes audit entries older than cutoff and reports how many
// rows were removed.
func (s *SQLiteStore) DeleteBefore(ctx context.Context, cutoff time.Time) (int, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM assessments WHERE assessed_at < ?`, cutoff.UTC(),
	)
	if err != nil {
		return 0, eris.Wrap(err, "sqlite: delete old assessments")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, eris.Wrap(err, "sqlite: rows affected")
	}
	return int(n), nil
}
