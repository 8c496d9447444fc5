package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// DefaultProfileID is the profile used when none is configured. The store is
// local-first and single-user by default, but every row is keyed by user so
// multiple profiles can share one database.
const DefaultProfileID = "main"

type ProfileRepo struct {
	db DBTX
}

func NewProfileRepo(db DBTX) *ProfileRepo {
	return &ProfileRepo{db: db}
}

func (r *ProfileRepo) Get(ctx context.Context, userID string) (*Profile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT user_id, current_xp, current_streak, best_streak, last_task_date
		FROM profiles
		WHERE user_id = ?
	`, userID)

	var p Profile
	var lastDate sql.NullString
	if err := row.Scan(&p.UserID, &p.CurrentXP, &p.CurrentStreak, &p.BestStreak, &lastDate); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("profile get: %w", err)
	}
	if lastDate.Valid {
		v := lastDate.String
		p.LastTaskDate = &v
	}
	return &p, nil
}

func (r *ProfileRepo) GetOrCreate(ctx context.Context, userID string) (*Profile, error) {
	p, err := r.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	if _, err := r.db.ExecContext(ctx, `INSERT INTO profiles (user_id) VALUES (?)`, userID); err != nil {
		return nil, fmt.Errorf("profile insert: %w", err)
	}
	return r.Get(ctx, userID)
}

func (r *ProfileRepo) Update(ctx context.Context, p *Profile) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE profiles
		SET current_xp = ?, current_streak = ?, best_streak = ?, last_task_date = ?
		WHERE user_id = ?
	`, p.CurrentXP, p.CurrentStreak, p.BestStreak, p.LastTaskDate, p.UserID)
	if err != nil {
		return fmt.Errorf("profile update: %w", err)
	}
	return nil
}
