package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// RoundRecord is one finished round as persisted.
type RoundRecord struct {
	ID        string
	PlayedAt  time.Time
	IntervalA float64
	IntervalB float64
	Unitary   bool
	Acute     bool
	F1        string
	F2        string
	Angle     float64
	Guess     float64
	Score     float64
}

// Summary aggregates the whole round history.
type Summary struct {
	Rounds    int
	AvgScore  float64
	BestScore float64
	AvgError  float64
}

// SaveRound appends one finished round.
func (s *Store) SaveRound(ctx context.Context, r RoundRecord) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO rounds (id, played_at, interval_a, interval_b, unitary, acute, f1, f2, angle, guess, score)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.PlayedAt.UTC(), r.IntervalA, r.IntervalB, r.Unitary, r.Acute,
		r.F1, r.F2, r.Angle, r.Guess, r.Score,
	)
	if err != nil {
		return fmt.Errorf("save round: %w", err)
	}
	return nil
}

// RecentRounds returns up to limit rounds, newest first.
func (s *Store) RecentRounds(ctx context.Context, limit int) ([]RoundRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, played_at, interval_a, interval_b, unitary, acute, f1, f2, angle, guess, score
FROM rounds ORDER BY played_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query rounds: %w", err)
	}
	defer rows.Close()

	var out []RoundRecord
	for rows.Next() {
		var r RoundRecord
		if err := rows.Scan(&r.ID, &r.PlayedAt, &r.IntervalA, &r.IntervalB,
			&r.Unitary, &r.Acute, &r.F1, &r.F2, &r.Angle, &r.Guess, &r.Score); err != nil {
			return nil, fmt.Errorf("scan round: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// RoundSummary computes history-wide aggregates. An empty history yields a
// zero Summary.
func (s *Store) RoundSummary(ctx context.Context) (Summary, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT COUNT(*), COALESCE(AVG(score), 0), COALESCE(MAX(score), 0), COALESCE(AVG(ABS(angle - guess)), 0)
FROM rounds`)

	var sum Summary
	err := row.Scan(&sum.Rounds, &sum.AvgScore, &sum.BestScore, &sum.AvgError)
	if errors.Is(err, sql.ErrNoRows) {
		return Summary{}, nil
	}
	if err != nil {
		return Summary{}, fmt.Errorf("summarize rounds: %w", err)
	}
	return sum, nil
}
