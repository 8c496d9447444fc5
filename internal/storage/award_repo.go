package storage

import (
	"context"
	"fmt"
	"time"
)

// AwardRepo records every XP grant: one row per completion, never updated.
type AwardRepo struct {
	db DBTX
}

func NewAwardRepo(db DBTX) *AwardRepo {
	return &AwardRepo{db: db}
}

// Insert appends a grant. awardedDate is the caller's calendar day in ISO
// form; the history view groups by it rather than by the timestamp so day
// boundaries follow the user's clock, not UTC.
func (r *AwardRepo) Insert(ctx context.Context, taskID, userID string, awardedAt time.Time, awardedDate string, xp int) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO xp_awards (task_id, user_id, awarded_at, awarded_date, xp)
		VALUES (?, ?, ?, ?, ?)
	`, taskID, userID, awardedAt, awardedDate, xp)
	if err != nil {
		return 0, fmt.Errorf("award insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("award last insert id: %w", err)
	}
	return id, nil
}

func (r *AwardRepo) CountByTask(ctx context.Context, taskID string) (int, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM xp_awards WHERE task_id = ?
	`, taskID)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("award count: %w", err)
	}
	return n, nil
}

// DailyTotals groups grants by award day, newest first.
func (r *AwardRepo) DailyTotals(ctx context.Context, userID string, sinceDate string) ([]DayTotal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT awarded_date, COUNT(*), SUM(xp)
		FROM xp_awards
		WHERE user_id = ? AND awarded_date >= ?
		GROUP BY awarded_date
		ORDER BY awarded_date DESC
	`, userID, sinceDate)
	if err != nil {
		return nil, fmt.Errorf("award daily totals: %w", err)
	}
	defer rows.Close()

	var out []DayTotal
	for rows.Next() {
		var d DayTotal
		if err := rows.Scan(&d.Date, &d.Completed, &d.XP); err != nil {
			return nil, fmt.Errorf("award totals scan: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("award totals rows: %w", err)
	}
	return out, nil
}
