package store

import (
	"context"
	"fmt"
	"time"
)

// timeFormat is fixed-width so stored timestamps compare correctly as text.
const timeFormat = "2006-01-02T15:04:05Z"

// Visit is one page view. HashedIP never holds the raw address.
type Visit struct {
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	At        time.Time `json:"at"`
}

// VisitStats summarises recorded visits.
type VisitStats struct {
	TotalVisits    int64   `json:"total_visits"`
	UniqueVisitors int64   `json:"unique_visitors"`
	VisitsToday    int64   `json:"visits_today"`
	VisitsThisWeek int64   `json:"visits_this_week"`
	Recent         []Visit `json:"recent"`
}

// RecordVisit stores v. A zero At is replaced with the current time.
func (s *SQLiteStore) RecordVisit(ctx context.Context, v Visit) error {
	if v.At.IsZero() {
		v.At = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visits (hashed_ip, user_agent, path, created_at) VALUES (?, ?, ?, ?)
	`, v.HashedIP, v.UserAgent, v.Path, v.At.UTC().Format(timeFormat))
	if err != nil {
		return fmt.Errorf("recording visit: %w", err)
	}
	return nil
}

// VisitStats computes counts relative to now and returns up to recent of the
// latest visits, newest first.
func (s *SQLiteStore) VisitStats(ctx context.Context, now time.Time, recent int) (*VisitStats, error) {
	now = now.UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Format(timeFormat)
	weekStart := now.Add(-7 * 24 * time.Hour).Format(timeFormat)

	stats := &VisitStats{Recent: []Visit{}}
	err := s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COUNT(DISTINCT hashed_ip),
			COALESCE(SUM(CASE WHEN created_at >= ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN created_at >= ? THEN 1 ELSE 0 END), 0)
		FROM visits
	`, dayStart, weekStart).Scan(&stats.TotalVisits, &stats.UniqueVisitors, &stats.VisitsToday, &stats.VisitsThisWeek)
	if err != nil {
		return nil, fmt.Errorf("counting visits: %w", err)
	}

	if recent <= 0 {
		return stats, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT hashed_ip, user_agent, path, created_at
		FROM visits
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, recent)
	if err != nil {
		return nil, fmt.Errorf("listing visits: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var v Visit
		var at string
		if err := rows.Scan(&v.HashedIP, &v.UserAgent, &v.Path, &at); err != nil {
			return nil, fmt.Errorf("scanning visit: %w", err)
		}
		v.At, _ = time.Parse(timeFormat, at)
		stats.Recent = append(stats.Recent, v)
	}
	return stats, rows.Err()
}

// PruneVisits deletes visits older than before and reports how many went.
func (s *SQLiteStore) PruneVisits(ctx context.Context, before time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM visits WHERE created_at < ?`, before.UTC().Format(timeFormat))
	if err != nil {
		return 0, fmt.Errorf("pruning visits: %w", err)
	}
	return result.RowsAffected()
}
